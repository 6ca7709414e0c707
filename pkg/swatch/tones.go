package swatch

import "math"

// Tone pairs a tone label with its target lightness.
type Tone struct {
	Label     int     `json:"tone"`
	Lightness float64 `json:"lightness"`
}

// ToneTable is an ordered list of tones, ascending by label.
type ToneTable []Tone

// Labels returns the tone labels in table order.
func (t ToneTable) Labels() []int {
	labels := make([]int, len(t))
	for i, tone := range t {
		labels[i] = tone.Label
	}
	return labels
}

// Lightness returns the target lightness for label.
func (t ToneTable) Lightness(label int) (float64, bool) {
	for _, tone := range t {
		if tone.Label == label {
			return tone.Lightness, true
		}
	}
	return 0, false
}

// Fixed tone tables. Lightness options do not apply to these.
var (
	fixedTones11 = ToneTable{
		{50, 0.97}, {100, 0.92}, {200, 0.85}, {300, 0.78}, {400, 0.69},
		{500, 0.57}, {600, 0.46}, {700, 0.35}, {800, 0.24}, {900, 0.18},
		{950, 0.10},
	}

	fixedTones21 = ToneTable{
		{0, 0.99}, {50, 0.97}, {100, 0.94}, {150, 0.91}, {200, 0.87},
		{250, 0.83}, {300, 0.78}, {350, 0.73}, {400, 0.67}, {450, 0.61},
		{500, 0.55}, {550, 0.49}, {600, 0.43}, {650, 0.38}, {700, 0.33},
		{750, 0.28}, {800, 0.23}, {850, 0.19}, {900, 0.15}, {950, 0.10},
		{1000, 0.05},
	}
)

// BuildToneTable returns the tone table for validated options.
func BuildToneTable(o Options) ToneTable {
	if o.Scale == ScaleFixed {
		src := fixedTones11
		if o.Steps == 21 {
			src = fixedTones21
		}
		out := make(ToneTable, len(src))
		copy(out, src)
		return out
	}
	return dynamicTones(o.Steps, o.LightnessFactor, o.MinLightness, o.MaxLightness)
}

// dynamicTones computes lightness(i) = max - (max-min) * (i/(steps-1))^factor.
func dynamicTones(steps int, factor, minLightness, maxLightness float64) ToneTable {
	table := make(ToneTable, steps)
	last := float64(steps - 1)
	for i := 0; i < steps; i++ {
		t := math.Pow(float64(i)/last, factor)
		table[i] = Tone{
			Label:     toneLabel(i, steps),
			Lightness: maxLightness - (maxLightness-minLightness)*t,
		}
	}
	return table
}

// toneLabel maps a step index to its positional label.
//
//	11 steps: 50, 100, 200, ..., 900, 950
//	21 steps: 0, 50, 100, 150, ..., 950, 1000
func toneLabel(i, steps int) int {
	if steps == 21 {
		switch i {
		case 0:
			return 0
		case 1:
			return 50
		case 20:
			return 1000
		default:
			return (i-1)*50 + 50
		}
	}

	switch i {
	case 0:
		return 50
	case 10:
		return 950
	default:
		return i * 100
	}
}
