package constants

import "time"

// Frame Timing
const (
	// TickRate is the simulation and presentation cadence
	TickRate = 60

	// TickInterval is the frame ticker period derived from TickRate
	TickInterval = time.Second / TickRate
)

// Input Timing
const (
	// KeyHoldWindow is how long a movement key counts as held after its last
	// event. Terminals report presses only, never releases; OS autorepeat
	// refreshes the window while the key stays down.
	KeyHoldWindow = 250 * time.Millisecond
)
