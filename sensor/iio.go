package sensor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/vmath"
)

// IIO polls a Linux industrial I/O accelerometer through sysfs
// Readings are raw·scale in m/s², mapped through an Orientation
type IIO struct {
	dir      string
	scaleX   float64
	scaleY   float64
	orient   Orientation
	interval time.Duration
	log      *zap.Logger
}

// FindIIO returns the first device directory under root exposing accelerometer axes
func FindIIO(root string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(root, "iio:device*", "in_accel_x_raw"))
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", root, err)
	}
	if len(matches) == 0 {
		return "", ErrNoDevice
	}
	sort.Strings(matches)
	return filepath.Dir(matches[0]), nil
}

// NewIIO locates a device under root and reads its scale factors
func NewIIO(root string, orient Orientation, interval time.Duration, log *zap.Logger) (*IIO, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = parameter.SensorPollInterval
	}
	dir, err := FindIIO(root)
	if err != nil {
		return nil, err
	}
	scaleX, err := readScale(dir, "x")
	if err != nil {
		return nil, err
	}
	scaleY, err := readScale(dir, "y")
	if err != nil {
		return nil, err
	}
	return &IIO{
		dir:      dir,
		scaleX:   scaleX,
		scaleY:   scaleY,
		orient:   orient,
		interval: interval,
		log:      log,
	}, nil
}

// Name identifies the device for logs
func (s *IIO) Name() string {
	return "iio:" + filepath.Base(s.dir)
}

// Read samples both axes once and returns the mapped gravity vector
func (s *IIO) Read() (vmath.Vec2, error) {
	x, err := readFloat(filepath.Join(s.dir, "in_accel_x_raw"))
	if err != nil {
		return vmath.Zero, err
	}
	y, err := readFloat(filepath.Join(s.dir, "in_accel_y_raw"))
	if err != nil {
		return vmath.Zero, err
	}
	return s.orient.Map(vmath.V2(x*s.scaleX, y*s.scaleY)), nil
}

// Run polls until ctx is done; a read failure stops the feed and gravity keeps its last value
func (s *IIO) Run(ctx context.Context, sink Sink) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("accelerometer feed started", zap.String("device", s.Name()), zap.Duration("interval", s.interval))

	var last vmath.Vec2
	first := true
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			g, err := s.Read()
			if err != nil {
				s.log.Warn("accelerometer read failed", zap.String("device", s.Name()), zap.Error(err))
				return fmt.Errorf("read %s: %w", s.Name(), err)
			}
			if !vmath.IsFinite(g) || (!first && g == last) {
				continue
			}
			first = false
			last = g
			sink(g)
		}
	}
}

// readScale prefers the per-axis scale, then the shared one, then unity
func readScale(dir, axis string) (float64, error) {
	for _, name := range []string{"in_accel_" + axis + "_scale", "in_accel_scale"} {
		v, err := readFloat(filepath.Join(dir, name))
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return 0, err
		}
	}
	return 1, nil
}

func readFloat(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}

// Open builds the hardware source for mode
// Keyboard mode, and auto mode without a device, return a nil Source and no error
func Open(mode Mode, root string, orient Orientation, interval time.Duration, log *zap.Logger) (Source, error) {
	switch mode {
	case ModeKeyboard:
		return nil, nil
	case ModeIIO, ModeAuto:
		src, err := NewIIO(root, orient, interval, log)
		if err != nil {
			if mode == ModeAuto && errors.Is(err, ErrNoDevice) {
				return nil, nil
			}
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unsupported sensor mode %v", mode)
	}
}
