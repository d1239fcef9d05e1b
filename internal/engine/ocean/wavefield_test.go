package ocean

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Width: 50, Length: 50,
		Cols: 16, Rows: 16,
		MaxAmplitude: 0.1,
		WaveCount:    20,
		Variant:      DirectionalRounded,
	}
}

func TestNewRejectsUnsupportedVariants(t *testing.T) {
	for _, v := range []Variant{DirectionalPointed, CircularRounded, CircularPointed} {
		cfg := testConfig()
		cfg.Variant = v
		_, err := New(cfg, rand.New(rand.NewSource(1)))
		require.Error(t, err, "variant %s must be rejected at construction", v)
		assert.Contains(t, err.Error(), "unsupported wave variant")
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range []Variant{DirectionalRounded, DirectionalPointed, CircularRounded, CircularPointed} {
		parsed, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}

	_, err := ParseVariant("gerstner")
	assert.Error(t, err)
}

func TestComponentDrawsRespectBounds(t *testing.T) {
	cfg := testConfig()
	f, err := New(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, cfg.WaveCount, f.WaveCount())

	for i := 0; i < f.WaveCount(); i++ {
		w := f.Component(i)
		assert.GreaterOrEqual(t, w.Amplitude, float32(0))
		assert.LessOrEqual(t, w.Amplitude, cfg.MaxAmplitude)

		// Frequency is biased into the upper half of its range.
		assert.GreaterOrEqual(t, w.Frequency, float32(DefaultMaxFrequency*0.5))
		assert.LessOrEqual(t, w.Frequency, float32(DefaultMaxFrequency))

		assert.GreaterOrEqual(t, w.Direction.X(), float32(-1))
		assert.LessOrEqual(t, w.Direction.X(), float32(1))
		assert.GreaterOrEqual(t, w.Direction.Y(), float32(-1))
		assert.LessOrEqual(t, w.Direction.Y(), float32(1))

		// Legacy bias: speed is rescaled against the frequency bound.
		assert.GreaterOrEqual(t, w.Speed, float32(DefaultMaxFrequency*0.5))
		assert.LessOrEqual(t, w.Speed, float32(DefaultMaxFrequency*0.5+DefaultMaxSpeed*0.5))
	}
}

func TestCorrectedSpeedBias(t *testing.T) {
	cfg := testConfig()
	cfg.CorrectedSpeedBias = true
	f, err := New(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	for i := 0; i < f.WaveCount(); i++ {
		w := f.Component(i)
		assert.GreaterOrEqual(t, w.Speed, float32(DefaultMaxSpeed*0.5))
		assert.LessOrEqual(t, w.Speed, float32(DefaultMaxSpeed))
	}
}

func TestSameSeedSameField(t *testing.T) {
	cfg := testConfig()
	a, err := New(cfg, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := New(cfg, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for i := 0; i < a.WaveCount(); i++ {
		assert.Equal(t, a.Component(i), b.Component(i))
	}
}

func TestWaveBoundedByAmplitude(t *testing.T) {
	f, err := New(testConfig(), rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	for i := 0; i < f.WaveCount(); i++ {
		amp := f.Component(i).Amplitude
		for _, p := range [][3]float32{{0, 0, 0}, {1, 2, 3}, {-25, 25, 100}, {12.3, -7.7, 0.5}} {
			v := f.Wave(i, p[0], p[1], p[2])
			assert.LessOrEqual(t, float64(v), float64(amp)+1e-6)
			assert.GreaterOrEqual(t, float64(v), -float64(amp)-1e-6)
		}
	}
}

func TestHeightIsSumOfWaves(t *testing.T) {
	f, err := New(testConfig(), rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	x, z, tt := float32(3.5), float32(-8.25), float32(41)
	var sum float32
	for i := 0; i < f.WaveCount(); i++ {
		sum += f.Wave(i, x, z, tt)
	}
	assert.InDelta(t, sum, f.Height(x, z, tt), 1e-5)
}

func TestZeroWaveFieldIsFlat(t *testing.T) {
	cfg := testConfig()
	cfg.WaveCount = 0
	f, err := New(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for _, p := range [][3]float32{{0, 0, 0}, {10, -10, 5}, {-25, 25, 1000}} {
		assert.Zero(t, f.Height(p[0], p[1], p[2]))
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, f.Normal(p[0], p[1], p[2]))
	}
}

func TestWavePeriodicity(t *testing.T) {
	comp := WaveComponent{
		Amplitude: 0.25,
		Frequency: 0.8,
		Direction: mgl32.Vec2{0.6, -0.3},
		Speed:     0.5,
	}
	f, err := NewWithComponents(testConfig(), []WaveComponent{comp})
	require.NoError(t, err)

	period := float32(2 * math.Pi / float64(comp.Speed*comp.Frequency))
	for _, tt := range []float32{0, 1.5, 10} {
		assert.InDelta(t, f.Wave(0, 2, 3, tt), f.Wave(0, 2, 3, tt+period), 1e-4)
	}
}

func TestForcedSingleWave(t *testing.T) {
	cfg := Config{
		Width: 2, Length: 2,
		Cols: 2, Rows: 2,
		WaveCount: 1,
		Variant:   DirectionalRounded,
	}
	f, err := NewWithComponents(cfg, []WaveComponent{{
		Amplitude: 1,
		Frequency: 1,
		Direction: mgl32.Vec2{1, 0},
		Speed:     0,
	}})
	require.NoError(t, err)

	assert.InDelta(t, math.Sin(1), float64(f.Height(1, 0, 0)), 1e-5)
	assert.InDelta(t, math.Cos(1), float64(f.PartialX(1, 0, 0)), 1e-5)
	assert.Zero(t, f.PartialZ(1, 0, 0))

	assert.Equal(t, mgl32.Vec3{1, 0, f.PartialX(1, 0, 0)}, f.Tangent(1, 0, 0))
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, f.Binormal(1, 0, 0))
	assert.Equal(t, mgl32.Vec3{-f.PartialX(1, 0, 0), 0, 1}, f.Normal(1, 0, 0))
}

func TestNormalIsNotNormalized(t *testing.T) {
	f, err := NewWithComponents(testConfig(), []WaveComponent{{
		Amplitude: 2,
		Frequency: 1,
		Direction: mgl32.Vec2{1, 1},
		Speed:     0,
	}})
	require.NoError(t, err)

	// Pick a point with a steep slope; the candidate keeps its raw magnitude.
	n := f.Normal(0, 0, 0)
	assert.Greater(t, n.Len(), float32(1.01))
	assert.Equal(t, float32(1), n.Z())
}

func TestAdvanceAccumulates(t *testing.T) {
	f, err := New(testConfig(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Zero(t, f.Time())
	f.Advance(0.25)
	f.Advance(0.5)
	assert.InDelta(t, 0.75, float64(f.Time()), 1e-6)
}

func TestWaveIndexOutOfRangePanics(t *testing.T) {
	cfg := testConfig()
	cfg.WaveCount = 2
	f, err := New(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Panics(t, func() { f.Wave(2, 0, 0, 0) })
	assert.Panics(t, func() { f.Component(-1) })
}
