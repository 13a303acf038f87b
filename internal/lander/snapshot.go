package lander

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is a flat, read-only copy of a State for telemetry, traces and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64  `yaml:"tick"`
	Phase       string  `yaml:"phase"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	VX          float64 `yaml:"vx"`
	VY          float64 `yaml:"vy"`
	Fuel        float64 `yaml:"fuel"`
	Angle       float64 `yaml:"angle"`
	Score       int     `yaml:"score"`
	Thrust      bool    `yaml:"thrust"`
	RotateLeft  bool    `yaml:"rotate_left"`
	RotateRight bool    `yaml:"rotate_right"`
}

// Snapshot returns the state flattened into a Snapshot.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Tick:        s.tick,
		Phase:       s.phase.String(),
		X:           s.pos.X(),
		Y:           s.pos.Y(),
		VX:          s.vel.X(),
		VY:          s.vel.Y(),
		Fuel:        s.fuel,
		Angle:       s.angle,
		Score:       s.Score(),
		Thrust:      s.controls.Thrust,
		RotateLeft:  s.controls.RotateLeft,
		RotateRight: s.controls.RotateRight,
	}
}

// Hash returns a digest of the exact bit patterns in the snapshot.
// Two snapshots hash equal only if every float is bit-identical.
func (snap *Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		//nolint:errcheck // xxhash.Digest.Write never fails
		d.Write(buf[:])
	}

	put(snap.Tick)
	//nolint:errcheck // xxhash.Digest.WriteString never fails
	d.WriteString(snap.Phase)
	put(math.Float64bits(snap.X))
	put(math.Float64bits(snap.Y))
	put(math.Float64bits(snap.VX))
	put(math.Float64bits(snap.VY))
	put(math.Float64bits(snap.Fuel))
	put(math.Float64bits(snap.Angle))
	put(uint64(snap.Score)) //#nosec G115 -- hash computation
	put(packControls(snap.Thrust, snap.RotateLeft, snap.RotateRight))

	return d.Sum64()
}

// packControls folds the control flags into one word for hashing.
func packControls(flags ...bool) uint64 {
	var v uint64
	for i, f := range flags {
		if f {
			v |= 1 << i
		}
	}
	return v
}
