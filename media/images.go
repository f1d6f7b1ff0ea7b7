package media

import (
	"bytes"
	"io/fs"

	// PNG decoder for NewImageFromReader
	_ "image/png"

	"github.com/automoto/dodgefall/assets"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageCache decodes registry images on first use.
type ImageCache struct {
	fsys   fs.FS
	logger *log.Logger
	images map[string]*ebiten.Image
}

func NewImageCache(fsys fs.FS, logger *log.Logger) *ImageCache {
	return &ImageCache{
		fsys:   fsys,
		logger: logger,
		images: make(map[string]*ebiten.Image),
	}
}

// Get returns the decoded image for h, or nil if h is nil or the file
// cannot be decoded. A failure is logged once and remembered.
func (c *ImageCache) Get(h *assets.ImageHandle) *ebiten.Image {
	if h == nil {
		return nil
	}
	if img, ok := c.images[h.Path]; ok {
		return img
	}

	img, err := c.load(h.Path)
	if err != nil {
		c.logger.Warn("image not loaded, drawing placeholder", "key", h.Key, "err", err)
	}
	c.images[h.Path] = img
	return img
}

func (c *ImageCache) load(p string) (*ebiten.Image, error) {
	data, err := fs.ReadFile(c.fsys, p)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}
