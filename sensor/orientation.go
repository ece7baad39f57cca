package sensor

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/vmath"
)

// Orientation maps raw accelerometer axes to arena gravity
// Platforms disagree on units and axis signs; the simulation only sees the mapped vector
type Orientation uint8

const (
	// OrientationIdentity passes readings through unchanged
	OrientationIdentity Orientation = iota
	// OrientationAndroid expects m/s² with x pointing right when held upright: {−ax, ay}
	OrientationAndroid
	// OrientationIOS expects g units with inverted y: {10·ax, −10·ay}
	OrientationIOS
)

var orientationNames = map[Orientation]string{
	OrientationIdentity: "identity",
	OrientationAndroid:  "android",
	OrientationIOS:      "ios",
}

func (o Orientation) String() string {
	if s, ok := orientationNames[o]; ok {
		return s
	}
	return "unknown"
}

// ParseOrientation resolves a case-insensitive orientation name
func ParseOrientation(name string) (Orientation, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for o, s := range orientationNames {
		if s == n {
			return o, nil
		}
	}
	return OrientationIdentity, fmt.Errorf("unknown orientation %q", name)
}

// Map converts a raw reading to a gravity vector
func (o Orientation) Map(a vmath.Vec2) vmath.Vec2 {
	switch o {
	case OrientationAndroid:
		return vmath.V2(-a.X, a.Y)
	case OrientationIOS:
		return vmath.V2(parameter.IOSAccelScale*a.X, -parameter.IOSAccelScale*a.Y)
	default:
		return a
	}
}
