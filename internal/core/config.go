package core

// RuntimeConfig contains configuration passed to the driver at start-up.
// The simulation itself reads none of it; only the cadence and input
// sampling depend on these values.
type RuntimeConfig struct {
	TickRate  int // Simulation ticks per second (default 60)
	HoldTicks int // Ticks a control stays held after its last key press
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:  60,
		HoldTicks: 8,
	}
}

// Normalize fills zero or negative fields with their defaults.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	d := DefaultConfig()
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if c.HoldTicks <= 0 {
		c.HoldTicks = d.HoldTicks
	}
	return c
}
