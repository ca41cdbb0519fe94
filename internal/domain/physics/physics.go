// Package physics computes the frames shown by the physics gallery widgets.
// Coordinates are expressed in the widget's 0..100 percent space.
package physics

import (
	"errors"
	"fmt"
	"math"
)

// Simulation kinds served by the gallery.
const (
	KindPendulum   = "pendulum"
	KindWave       = "wave"
	KindProjectile = "projectile"
)

const (
	pendulumLength  = 150.0
	gravity         = 9.81
	pendulumStep    = 0.05
	pendulumPivotX  = 50.0
	pendulumPivotY  = 20.0
	waveStep        = 0.1
	waveBaseline    = 50.0
	waveSampleEvery = 2
	particleGravity = 0.5
	particleDamping = 0.8
	particleFloor   = 90.0
	particleCeiling = 10.0
	particleRespawn = 50.0
	particleWrapX   = 100.0

	// MaxFrames bounds how many frames a single request may compute.
	MaxFrames = 500
)

// ErrInvalidParameter is returned when a simulation parameter is out of range.
var ErrInvalidParameter = errors.New("invalid simulation parameter")

// Kinds lists the simulation kinds in gallery order.
func Kinds() []string {
	return []string{KindPendulum, KindWave, KindProjectile}
}

// PendulumFrame is one sample of the simple pendulum.
type PendulumFrame struct {
	T     float64 `json:"t"`
	Angle float64 `json:"angle"`
	BobX  float64 `json:"bob_x"`
	BobY  float64 `json:"bob_y"`
}

// Pendulum returns frames of a small-angle pendulum released from
// initialAngle degrees: θ(t) = θ0·cos(√(g/L)·t).
func Pendulum(initialAngle float64, frames int) ([]PendulumFrame, error) {
	if initialAngle < 5 || initialAngle > 90 {
		return nil, fmt.Errorf("pendulum angle %.1f outside [5, 90]: %w", initialAngle, ErrInvalidParameter)
	}
	if err := checkFrames(frames); err != nil {
		return nil, err
	}

	omega := math.Sqrt(gravity / pendulumLength)
	out := make([]PendulumFrame, 0, frames)
	for i := range frames {
		t := float64(i) * pendulumStep
		angle := initialAngle * math.Cos(omega*t)
		rad := angle * math.Pi / 180
		out = append(out, PendulumFrame{
			T:     t,
			Angle: angle,
			BobX:  pendulumPivotX + pendulumLength*math.Sin(rad),
			BobY:  pendulumPivotY + pendulumLength*math.Cos(rad),
		})
	}
	return out, nil
}

// Point is a 2D sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WaveFrame is the wave polyline at time T.
type WaveFrame struct {
	T      float64 `json:"t"`
	Points []Point `json:"points"`
}

// Wave returns frames of y(x, t) = 50 + A·sin((x/10)·f − t), sampled every
// 2 units of x in [0, 100].
func Wave(amplitude, frequency float64, frames int) ([]WaveFrame, error) {
	if amplitude < 10 || amplitude > 40 {
		return nil, fmt.Errorf("wave amplitude %.1f outside [10, 40]: %w", amplitude, ErrInvalidParameter)
	}
	if frequency < 1 || frequency > 5 {
		return nil, fmt.Errorf("wave frequency %.1f outside [1, 5]: %w", frequency, ErrInvalidParameter)
	}
	if err := checkFrames(frames); err != nil {
		return nil, err
	}

	out := make([]WaveFrame, 0, frames)
	for i := range frames {
		t := float64(i) * waveStep
		out = append(out, WaveFrame{T: t, Points: WavePoints(amplitude, frequency, t)})
	}
	return out, nil
}

// WavePoints samples the wave at time t.
func WavePoints(amplitude, frequency, t float64) []Point {
	points := make([]Point, 0, 100/waveSampleEvery+1)
	for x := 0; x <= 100; x += waveSampleEvery {
		fx := float64(x)
		points = append(points, Point{
			X: fx,
			Y: waveBaseline + amplitude*math.Sin((fx/10)*frequency-t),
		})
	}
	return points
}

// Particle is the state of one projectile.
type Particle struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

// InitialParticles returns the three projectiles launched with base velocity v.
func InitialParticles(v float64) []Particle {
	return []Particle{
		{X: 10, Y: 50, VX: v, VY: 0},
		{X: 20, Y: 50, VX: v * 0.8, VY: 2},
		{X: 30, Y: 50, VX: v * 1.2, VY: -1},
	}
}

// Step advances a particle by one tick: move, apply gravity, then wrap,
// respawn and bounce against the widget bounds.
func Step(p Particle) Particle {
	moved := Particle{
		X:  p.X + p.VX,
		Y:  p.Y + p.VY,
		VX: p.VX,
		VY: p.VY + particleGravity,
	}

	next := moved
	if moved.X > particleWrapX {
		next.X = 0
	}
	if moved.Y > particleFloor || moved.Y < particleCeiling {
		next.Y = particleRespawn
	}
	if moved.Y >= particleFloor {
		next.VY = -math.Abs(moved.VY) * particleDamping
	}
	return next
}

// Projectile returns frames of the particle system; frame 0 is the launch state.
func Projectile(velocity float64, frames int) ([][]Particle, error) {
	if velocity < 2 || velocity > 10 {
		return nil, fmt.Errorf("particle velocity %.1f outside [2, 10]: %w", velocity, ErrInvalidParameter)
	}
	if err := checkFrames(frames); err != nil {
		return nil, err
	}

	out := make([][]Particle, 0, frames)
	current := InitialParticles(velocity)
	for range frames {
		out = append(out, current)
		next := make([]Particle, len(current))
		for i, p := range current {
			next[i] = Step(p)
		}
		current = next
	}
	return out, nil
}

func checkFrames(frames int) error {
	if frames < 1 || frames > MaxFrames {
		return fmt.Errorf("frame count %d outside [1, %d]: %w", frames, MaxFrames, ErrInvalidParameter)
	}
	return nil
}
