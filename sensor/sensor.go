// Package sensor turns device orientation readings into simulation gravity
// Sources never touch simulation state; they hand vectors to a Sink
package sensor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/ballpit/vmath"
)

// ErrNoDevice is returned when no accelerometer is present
var ErrNoDevice = errors.New("no accelerometer device")

// Sink receives gravity updates, typically by posting onto the simulation loop
type Sink func(g vmath.Vec2)

// Source is a gravity feed that runs until ctx is cancelled
type Source interface {
	Name() string
	Run(ctx context.Context, sink Sink) error
}

// Mode selects which gravity feed is started next to the keyboard
type Mode uint8

const (
	// ModeKeyboard uses arrow key tilt only
	ModeKeyboard Mode = iota
	// ModeIIO requires a Linux IIO accelerometer
	ModeIIO
	// ModeAuto tries IIO and falls back to keyboard silently
	ModeAuto
)

var modeNames = map[Mode]string{
	ModeKeyboard: "keyboard",
	ModeIIO:      "iio",
	ModeAuto:     "auto",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseMode resolves a case-insensitive sensor mode name
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for m, s := range modeNames {
		if s == n {
			return m, nil
		}
	}
	return ModeKeyboard, fmt.Errorf("unknown sensor mode %q", name)
}
