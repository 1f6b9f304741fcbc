package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/satindergrewal/joystick"
)

const (
	clickSampleRate = 44100
	clickDuration   = 40 * time.Millisecond
)

// Click pitch per direction; the center gets the lowest tone.
var clickTones = map[joystick.Direction]float64{
	joystick.Center:    330,
	joystick.North:     660,
	joystick.NorthEast: 698,
	joystick.East:      784,
	joystick.SouthEast: 831,
	joystick.South:     880,
	joystick.SouthWest: 932,
	joystick.West:      988,
	joystick.NorthWest: 1047,
}

// clicker plays a short tone when the stick changes direction.
type clicker struct {
	sr beep.SampleRate
}

func newClicker() (*clicker, error) {
	sr := beep.SampleRate(clickSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &clicker{sr: sr}, nil
}

func (c *clicker) click(dir joystick.Direction) {
	freq, ok := clickTones[dir]
	if !ok {
		return
	}
	sine, err := generators.SineTone(c.sr, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.sr.N(clickDuration), sine))
}

func (c *clicker) Close() {
	speaker.Close()
}
