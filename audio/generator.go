package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/ballpit/parameter"
)

// ClickGenerator is a sine burst with exponential decay, the sound of a wall impact
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	amp  float64
	pos  int
}

// NewClickGenerator creates an impact click
func NewClickGenerator(sr beep.SampleRate, freq, amp float64) *ClickGenerator {
	return &ClickGenerator{sr: sr, freq: freq, amp: amp}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * parameter.ImpactDecay)
		sample := g.amp * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}

// impactVoice maps a bounce count to click pitch and amplitude
// More simultaneous bounces sound louder and lower, saturating at ImpactMaxBounces
func impactVoice(bounces int) (freq, amp float64) {
	if bounces < 1 {
		return 0, 0
	}
	k := float64(min(bounces, parameter.ImpactMaxBounces)-1) / float64(parameter.ImpactMaxBounces-1)
	freq = parameter.ImpactBaseFreq + (parameter.ImpactMinFreq-parameter.ImpactBaseFreq)*k
	amp = parameter.ImpactMinAmplitude + (parameter.ImpactMaxAmplitude-parameter.ImpactMinAmplitude)*k
	return freq, amp
}
