package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Impact click
const (
	// MinSoundGap between consecutive clicks; bounces inside the gap are merged
	MinSoundGap = 50 * time.Millisecond

	ImpactDuration = 40 * time.Millisecond
	ImpactDecay    = 90.0 // envelope exponent per second

	// ImpactBaseFreq is the click pitch for a single bounce; more bounces drop the pitch
	ImpactBaseFreq = 880.0
	ImpactMinFreq  = 220.0

	// ImpactMaxBounces saturates loudness
	ImpactMaxBounces = 8

	ImpactMinAmplitude = 0.08
	ImpactMaxAmplitude = 0.35
)
