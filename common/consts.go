package common

const (
	BaseWidth  = 800
	BaseHeight = 600

	Gravity = 450.0

	// Player jump envelope in pixels. Layout validation uses these to decide
	// whether a platform can be reached at all; they must stay in sync with
	// the player's jump impulse or generated levels stop being honest.
	MaxJumpHeight   = 160.0
	MaxJumpDistance = 180.0

	GroundThickness = 50.0
)
