package sealing

import "time"

const (
	defaultSealTimeout   = 5 * time.Minute
	idleSleepDuration    = 500 * time.Millisecond
	backoffSleepDuration = 5 * time.Second

	intakeFlushSize     = 256
	intakeFlushInterval = 250 * time.Millisecond
)
