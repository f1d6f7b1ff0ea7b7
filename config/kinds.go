package config

import (
	"fmt"
	"math/rand"
)

// KindID identifies a falling entity variant. The zero value is not a kind.
type KindID int

const (
	KindAttackNormal KindID = iota + 1
	KindAttackFirst
	KindItemPortion
	KindItemSpeedUp
	KindItemBig
)

// Category separates hazards from collectibles.
type Category int

const (
	CategoryAttack Category = iota
	CategoryItem
)

func (c Category) String() string {
	switch c {
	case CategoryAttack:
		return "attack"
	case CategoryItem:
		return "item"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ItemEffect is the reaction applied when the player collects an item.
type ItemEffect int

const (
	EffectNone ItemEffect = iota
	EffectHeal
	EffectSpeedUp
	EffectBig
)

// KindConfig contains the immutable attributes of a kind.
type KindConfig struct {
	Name     string
	Category Category

	// Descent in pixels per tick
	Speed float64

	// Sprite and collider size
	ScaleX float64
	ScaleY float64

	SoundKey string
	ImageKey string

	// Attacks
	Damage int

	// Items
	Effect ItemEffect
	Heal   int
}

var Kinds map[KindID]KindConfig

// AttackKinds and ItemKinds list the defined variants of each category in
// a stable order.
var (
	AttackKinds = []KindID{KindAttackNormal, KindAttackFirst}
	ItemKinds   = []KindID{KindItemPortion, KindItemSpeedUp, KindItemBig}
)

func init() {
	Kinds = map[KindID]KindConfig{
		KindAttackNormal: {
			Name:     "normal",
			Category: CategoryAttack,
			Speed:    7.0,
			ScaleX:   25,
			ScaleY:   25,
			SoundKey: "normal",
			ImageKey: "normal",
			Damage:   10,
		},
		KindAttackFirst: {
			Name:     "first",
			Category: CategoryAttack,
			Speed:    10.0,
			ScaleX:   30,
			ScaleY:   30,
			SoundKey: "first",
			ImageKey: "first",
			Damage:   10,
		},
		KindItemPortion: {
			Name:     "portion",
			Category: CategoryItem,
			Speed:    7.0,
			ScaleX:   25,
			ScaleY:   25,
			SoundKey: "recovery",
			ImageKey: "portion",
			Effect:   EffectHeal,
			Heal:     10,
		},
		KindItemSpeedUp: {
			Name:     "speedup",
			Category: CategoryItem,
			Speed:    10.0,
			ScaleX:   30,
			ScaleY:   30,
			SoundKey: "powerup",
			ImageKey: "powerup",
			Effect:   EffectSpeedUp,
		},
		KindItemBig: {
			Name:     "big",
			Category: CategoryItem,
			Speed:    5.0,
			ScaleX:   45,
			ScaleY:   45,
			SoundKey: "big",
			ImageKey: "big",
			Effect:   EffectBig,
		},
	}
}

// Valid reports whether k is one of the defined kinds.
func (k KindID) Valid() bool {
	_, ok := Kinds[k]
	return ok
}

// Config returns the attributes of k. Looking up an undefined kind is a
// programming error and panics.
func (k KindID) Config() KindConfig {
	kc, ok := Kinds[k]
	if !ok {
		panic(fmt.Sprintf("config: undefined kind %d", int(k)))
	}
	return kc
}

func (k KindID) String() string {
	if kc, ok := Kinds[k]; ok {
		return kc.Name
	}
	return fmt.Sprintf("KindID(%d)", int(k))
}

func (k KindID) Speed() float64 {
	return k.Config().Speed
}

// Scale returns the sprite and collider size.
func (k KindID) Scale() (w, h float64) {
	kc := k.Config()
	return kc.ScaleX, kc.ScaleY
}

func (k KindID) SoundKey() string {
	return k.Config().SoundKey
}

func (k KindID) ImageKey() string {
	return k.Config().ImageKey
}

func (k KindID) Category() Category {
	return k.Config().Category
}

func (k KindID) Effect() ItemEffect {
	return k.Config().Effect
}

// RandomAttackKind draws uniformly from AttackKinds.
func RandomAttackKind(r *rand.Rand) KindID {
	return AttackKinds[r.Intn(len(AttackKinds))]
}

// RandomItemKind draws uniformly from ItemKinds.
func RandomItemKind(r *rand.Rand) KindID {
	return ItemKinds[r.Intn(len(ItemKinds))]
}
