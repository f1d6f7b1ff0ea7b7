package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Attack = donburi.NewTag().SetName("Attack")
	Item   = donburi.NewTag().SetName("Item")
)

// Resolv tags for collider objects
const (
	ResolvPlayer = "Player"
	ResolvAttack = "Attack"
	ResolvItem   = "Item"
)
