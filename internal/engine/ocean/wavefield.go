// Package ocean implements a procedural ocean surface as a superposition of
// randomized sinusoidal waves, with analytic partial derivatives for normal
// generation and regular-grid mesh sampling.
package ocean

import (
	"fmt"
	gomath "math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Variant selects the wave equation family. Directional waves travel along a
// fixed horizontal direction; circular waves radiate from a point. Rounded
// crests are plain sines, pointed crests raise the sine to a power.
type Variant int

const (
	DirectionalRounded Variant = iota
	DirectionalPointed
	CircularRounded
	CircularPointed
)

var variantNames = map[Variant]string{
	DirectionalRounded: "directional-rounded",
	DirectionalPointed: "directional-pointed",
	CircularRounded:    "circular-rounded",
	CircularPointed:    "circular-pointed",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant converts a config string like "directional-rounded" to a Variant.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown wave variant %q", s)
}

// Default per-wave bounds, tuned for calm water at demo scale.
const (
	DefaultMaxFrequency = 1.0
	DefaultMaxSpeed     = 0.005
)

// Config describes a wave field: the rectangular patch of water it covers,
// the grid resolution it is sampled at, and the bounds for the randomized
// wave components.
type Config struct {
	CenterX, CenterZ float32 // world position of the patch center
	Width, Length    float32 // patch extent along x and z
	Cols, Rows       int     // sample counts along x and z
	MaxAmplitude     float32 // upper bound for per-wave amplitude
	WaveCount        int
	MaxFrequency     float32 // zero means DefaultMaxFrequency
	MaxSpeed         float32 // zero means DefaultMaxSpeed
	Variant          Variant
	Animated         bool

	// CorrectedSpeedBias rescales each wave's phase speed into the upper
	// half of the speed bound. The original tuning biased it against the
	// frequency bound instead; leave false to reproduce that behavior.
	CorrectedSpeedBias bool
}

// WaveComponent is one sinusoidal term of the height field.
type WaveComponent struct {
	Amplitude float32
	Frequency float32
	Direction mgl32.Vec2 // each component drawn from [-1,1], deliberately not renormalized
	Speed     float32    // phase speed constant
}

// WaveField is an immutable set of wave components plus an internal clock.
// All evaluations are pure functions of (x, z, t); the clock only advances
// through Advance and is read back through Time.
type WaveField struct {
	cfg   Config
	waves []WaveComponent
	clock float32
}

// New constructs a wave field, drawing WaveCount components from rng.
// Only the DirectionalRounded variant has a defined equation; any other
// variant is rejected here rather than producing undefined output later.
func New(cfg Config, rng *rand.Rand) (*WaveField, error) {
	if cfg.Variant != DirectionalRounded {
		return nil, fmt.Errorf("unsupported wave variant %s", cfg.Variant)
	}
	if cfg.Cols < 2 || cfg.Rows < 2 {
		return nil, fmt.Errorf("grid resolution %dx%d too small, need at least 2x2", cfg.Cols, cfg.Rows)
	}
	if cfg.MaxFrequency == 0 {
		cfg.MaxFrequency = DefaultMaxFrequency
	}
	if cfg.MaxSpeed == 0 {
		cfg.MaxSpeed = DefaultMaxSpeed
	}

	speedBias := cfg.MaxFrequency
	if cfg.CorrectedSpeedBias {
		speedBias = cfg.MaxSpeed
	}

	waves := make([]WaveComponent, cfg.WaveCount)
	for i := range waves {
		waves[i] = WaveComponent{
			Amplitude: rng.Float32() * cfg.MaxAmplitude,
			Frequency: rng.Float32()*cfg.MaxFrequency*0.5 + cfg.MaxFrequency*0.5,
			Direction: mgl32.Vec2{
				rng.Float32()*2 - 1,
				rng.Float32()*2 - 1,
			},
			Speed: rng.Float32()*cfg.MaxSpeed*0.5 + speedBias*0.5,
		}
	}

	return &WaveField{cfg: cfg, waves: waves}, nil
}

// NewWithComponents constructs a wave field from explicit components instead
// of random draws, for deterministic replay.
func NewWithComponents(cfg Config, waves []WaveComponent) (*WaveField, error) {
	f, err := New(cfg, rand.New(rand.NewSource(0)))
	if err != nil {
		return nil, err
	}
	f.waves = append([]WaveComponent(nil), waves...)
	f.cfg.WaveCount = len(waves)
	return f, nil
}

// Wave evaluates the i-th component at (x, z, t):
//
//	W_i = A_i * sin(D_i . (x,z) * w_i + S_i * w_i * t)
//
// The index must be < WaveCount; out-of-range access panics.
func (f *WaveField) Wave(i int, x, z, t float32) float32 {
	w := f.waves[i]
	return w.Amplitude * sin32(f.phase(w, x, z, t))
}

// Height is the sum of all wave components at (x, z, t).
func (f *WaveField) Height(x, z, t float32) float32 {
	var sum float32
	for _, w := range f.waves {
		sum += w.Amplitude * sin32(f.phase(w, x, z, t))
	}
	return sum
}

// PartialX is the partial derivative of Height with respect to x.
func (f *WaveField) PartialX(x, z, t float32) float32 {
	var sum float32
	for _, w := range f.waves {
		sum += w.Frequency * w.Direction.X() * w.Amplitude * cos32(f.phase(w, x, z, t))
	}
	return sum
}

// PartialZ is the partial derivative of Height with respect to z.
func (f *WaveField) PartialZ(x, z, t float32) float32 {
	var sum float32
	for _, w := range f.waves {
		sum += w.Frequency * w.Direction.Y() * w.Amplitude * cos32(f.phase(w, x, z, t))
	}
	return sum
}

// Tangent returns the surface tangent along x: (1, 0, dH/dx).
func (f *WaveField) Tangent(x, z, t float32) mgl32.Vec3 {
	return mgl32.Vec3{1, 0, f.PartialX(x, z, t)}
}

// Binormal returns the surface tangent along z: (0, 1, dH/dz).
func (f *WaveField) Binormal(x, z, t float32) mgl32.Vec3 {
	return mgl32.Vec3{0, 1, f.PartialZ(x, z, t)}
}

// Normal returns the raw surface-normal candidate (-dH/dx, -dH/dz, 1).
// It is NOT unit length; the texture baking arithmetic is tuned against this
// magnitude, so callers needing a unit normal must normalize explicitly.
func (f *WaveField) Normal(x, z, t float32) mgl32.Vec3 {
	return mgl32.Vec3{-f.PartialX(x, z, t), -f.PartialZ(x, z, t), 1}
}

// Advance adds dt to the internal clock.
func (f *WaveField) Advance(dt float32) {
	f.clock += dt
}

// Time returns the internal clock value.
func (f *WaveField) Time() float32 {
	return f.clock
}

// WaveCount returns the number of wave components.
func (f *WaveField) WaveCount() int {
	return len(f.waves)
}

// Component returns the i-th wave component. Out-of-range access panics.
func (f *WaveField) Component(i int) WaveComponent {
	return f.waves[i]
}

// Animated reports whether the field is configured to advance with time.
func (f *WaveField) Animated() bool {
	return f.cfg.Animated
}

// GridSize returns the configured sample counts along x and z.
func (f *WaveField) GridSize() (cols, rows int) {
	return f.cfg.Cols, f.cfg.Rows
}

// Bounds returns the world-space patch the field covers.
func (f *WaveField) Bounds() (centerX, centerZ, width, length float32) {
	return f.cfg.CenterX, f.cfg.CenterZ, f.cfg.Width, f.cfg.Length
}

func (f *WaveField) phase(w WaveComponent, x, z, t float32) float32 {
	return w.Direction.Dot(mgl32.Vec2{x, z})*w.Frequency + w.Speed*w.Frequency*t
}

func sin32(x float32) float32 { return float32(gomath.Sin(float64(x))) }
func cos32(x float32) float32 { return float32(gomath.Cos(float64(x))) }
