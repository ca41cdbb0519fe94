package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendulum_StartsAtInitialAngle(t *testing.T) {
	frames, err := Pendulum(45, 3)
	require.NoError(t, err)
	require.Len(t, frames, 3)

	assert.Equal(t, 0.0, frames[0].T)
	assert.InDelta(t, 45.0, frames[0].Angle, 1e-9)
	assert.InDelta(t, 50+150*math.Sin(math.Pi/4), frames[0].BobX, 1e-9)
	assert.InDelta(t, 20+150*math.Cos(math.Pi/4), frames[0].BobY, 1e-9)
	assert.InDelta(t, 0.05, frames[1].T, 1e-12)
}

func TestPendulum_StaysWithinAmplitude(t *testing.T) {
	frames, err := Pendulum(30, MaxFrames)
	require.NoError(t, err)

	for _, f := range frames {
		assert.LessOrEqual(t, math.Abs(f.Angle), 30.0+1e-9)
	}
}

func TestPendulum_QuarterPeriodCrossesZero(t *testing.T) {
	omega := math.Sqrt(gravity / pendulumLength)
	quarter := math.Pi / (2 * omega)
	frame := int(math.Round(quarter / pendulumStep))

	frames, err := Pendulum(60, frame+1)
	require.NoError(t, err)
	assert.InDelta(t, 0, frames[frame].Angle, 1.0)
}

func TestPendulum_InvalidParameters(t *testing.T) {
	_, err := Pendulum(1, 10)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Pendulum(45, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Pendulum(45, MaxFrames+1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestWavePoints(t *testing.T) {
	points := WavePoints(20, 2, 0)
	require.Len(t, points, 51)

	assert.Equal(t, 0.0, points[0].X)
	assert.InDelta(t, 50.0, points[0].Y, 1e-9)
	assert.Equal(t, 100.0, points[50].X)

	for _, p := range points {
		assert.GreaterOrEqual(t, p.Y, 30.0-1e-9)
		assert.LessOrEqual(t, p.Y, 70.0+1e-9)
	}
}

func TestWave_FramesAdvanceTime(t *testing.T) {
	frames, err := Wave(25, 1.5, 4)
	require.NoError(t, err)
	require.Len(t, frames, 4)
	assert.InDelta(t, 0.3, frames[3].T, 1e-12)
	assert.InDelta(t, 50+25*math.Sin(-0.3), frames[3].Points[0].Y, 1e-9)
}

func TestWave_InvalidParameters(t *testing.T) {
	_, err := Wave(5, 2, 10)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Wave(20, 6, 10)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestStep(t *testing.T) {
	testCases := []struct {
		name string
		in   Particle
		want Particle
	}{
		{
			name: "free flight applies gravity",
			in:   Particle{X: 10, Y: 50, VX: 5, VY: 0},
			want: Particle{X: 15, Y: 50, VX: 5, VY: 0.5},
		},
		{
			name: "wraps horizontally past the right edge",
			in:   Particle{X: 98, Y: 50, VX: 5, VY: 0},
			want: Particle{X: 0, Y: 50, VX: 5, VY: 0.5},
		},
		{
			name: "bounces and respawns below the floor",
			in:   Particle{X: 10, Y: 88, VX: 1, VY: 4},
			want: Particle{X: 11, Y: 50, VX: 1, VY: -4.5 * 0.8},
		},
		{
			name: "bounces exactly on the floor without respawn",
			in:   Particle{X: 10, Y: 86, VX: 1, VY: 4},
			want: Particle{X: 11, Y: 90, VX: 1, VY: -4.5 * 0.8},
		},
		{
			name: "respawns above the ceiling",
			in:   Particle{X: 10, Y: 12, VX: 1, VY: -5},
			want: Particle{X: 11, Y: 50, VX: 1, VY: -4.5},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Step(tc.in)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
			assert.InDelta(t, tc.want.VX, got.VX, 1e-9)
			assert.InDelta(t, tc.want.VY, got.VY, 1e-9)
		})
	}
}

func TestProjectile(t *testing.T) {
	frames, err := Projectile(5, 20)
	require.NoError(t, err)
	require.Len(t, frames, 20)

	assert.Equal(t, InitialParticles(5), frames[0])
	for _, frame := range frames {
		require.Len(t, frame, 3)
		for _, p := range frame {
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.LessOrEqual(t, p.X, 100.0)
			assert.LessOrEqual(t, p.Y, 90.0)
		}
	}

	_, err = Projectile(11, 5)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
