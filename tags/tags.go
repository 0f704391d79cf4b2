package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Platform    = donburi.NewTag().SetName("Platform")
	Collectible = donburi.NewTag().SetName("Collectible")
	Zone        = donburi.NewTag().SetName("Zone")
	Monster     = donburi.NewTag().SetName("Monster")
)

// Resolv tags for space queries
const (
	ResolvPlayer      = "Player"
	ResolvSolid       = "solid"
	ResolvCollectible = "collectible"
	ResolvZone        = "zone"
)
