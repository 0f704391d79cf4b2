package client

import "github.com/yohamta/donburi/ecs"

// Draw layers, back to front.
const (
	LayerWorld ecs.LayerID = iota
	LayerEffects
	LayerHUD
	LayerOverlay
)
