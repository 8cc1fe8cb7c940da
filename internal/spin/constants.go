package spin

// Animation tuning
const (
	InitialSpeed = 30.0 // degrees per tick at launch
	SpeedDecay   = 0.4  // linear slowdown per tick
	MinSpeed     = 1.0  // floor so the wheel never stalls before TotalTicks
	MinTicks     = 60
	MaxTicks     = 100
)
