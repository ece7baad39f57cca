package parameter

import "time"

// Accelerometer polling
const (
	// SensorPollInterval is the sysfs accelerometer read cadence
	SensorPollInterval = 50 * time.Millisecond

	// IIORoot is the Linux industrial I/O sysfs device directory
	IIORoot = "/sys/bus/iio/devices"

	// IOSAccelScale converts g-unit readings to arena gravity
	IOSAccelScale = 10.0
)
