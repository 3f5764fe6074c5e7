// Package hero computes the decorative header animation. Frames are derived from
// elapsed time only; the package has no access to listing state.
package hero

import (
	"math"
	"time"
)

// FrameRate is the reference refresh rate the rotation steps are expressed in.
const FrameRate = 60

const (
	bobAmplitude = 0.25
	spinY        = 0.003
	spinX        = 0.0015

	planeBaseY     = 0.2
	planeAmplitude = 0.15
	planeRollRate  = 0.5
	planeRollMax   = 0.15
	planeBobRate   = 1.2
)

type Vec3 struct {
	X, Y, Z float64
}

type Bubble struct {
	Position Vec3
	Color    string
	Scale    float64
}

type Scene struct {
	Bubbles []Bubble
	Plane   Vec3
}

// BubbleFrame is the transform of one bubble at a point in time.
type BubbleFrame struct {
	Position Vec3
	RotX     float64
	RotY     float64
	Color    string
	Scale    float64
}

type PlaneFrame struct {
	Position Vec3
	RotZ     float64
}

type Frame struct {
	Elapsed time.Duration
	Bubbles []BubbleFrame
	Plane   PlaneFrame
}

func DefaultScene() Scene {
	return Scene{
		Bubbles: []Bubble{
			{Position: Vec3{-2.5, 0.2, -1.5}, Color: "#38bdf8", Scale: 1.1},
			{Position: Vec3{2.0, 0.0, -1.0}, Color: "#a78bfa", Scale: 0.9},
			{Position: Vec3{0.0, -0.2, -1.8}, Color: "#34d399", Scale: 0.8},
			{Position: Vec3{-1.2, -0.4, -1.2}, Color: "#f472b6", Scale: 0.7},
		},
	}
}

// Frame returns the scene transforms after elapsed. Negative durations are treated as zero.
func (s Scene) Frame(elapsed time.Duration) Frame {
	if elapsed < 0 {
		elapsed = 0
	}
	t := elapsed.Seconds()
	ticks := t * FrameRate

	out := Frame{
		Elapsed: elapsed,
		Bubbles: make([]BubbleFrame, 0, len(s.Bubbles)),
	}
	for _, b := range s.Bubbles {
		pos := b.Position
		pos.Y = b.Position.Y + math.Sin(t+b.Position.X)*bobAmplitude
		out.Bubbles = append(out.Bubbles, BubbleFrame{
			Position: pos,
			RotX:     ticks * spinX,
			RotY:     ticks * spinY,
			Color:    b.Color,
			Scale:    b.Scale,
		})
	}

	plane := s.Plane
	plane.Y = s.Plane.Y + planeBaseY + math.Sin(t*planeBobRate)*planeAmplitude
	out.Plane = PlaneFrame{
		Position: plane,
		RotZ:     math.Sin(t*planeRollRate) * planeRollMax,
	}
	return out
}
