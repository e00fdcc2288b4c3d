package constants

import "time"

// Field geometry
const (
	// FieldCols is the interior width of the playing field in cells
	FieldCols = 60

	// FieldRows is the interior height of the playing field in cells
	FieldRows = 20
)

// Speed is measured in ticks per second
const (
	InitialSpeed = 20
	SpeedStep    = 4
	MinSpeed     = 4
	MaxSpeed     = 40
)

// Game Loop Timing Constants
const (
	// GameOverPause is how long the banner stays up before an acknowledgement is read
	GameOverPause = 1 * time.Second
)
