package lpc

import "math"

// Deterministic signal generators for round-trip tests. Every generator
// returns the same samples on every run, so encoded bytes are comparable
// across test runs and platforms.

func genSilence(n int) []int16 {
	return make([]int16, n)
}

// genSine returns a pure tone of the given frequency and peak amplitude,
// sampled at 16kHz.
func genSine(n int, freq float64, amp int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / 16000
		out[i] = int16(float64(amp) * math.Sin(2*math.Pi*freq*t))
	}
	return out
}

// genSweep returns a logarithmic sweep from 20Hz to 4kHz at 16kHz.
func genSweep(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / 16000
		progress := float64(i) / float64(n)
		freq := 20 * math.Pow(200, progress)
		out[i] = int16(0.7 * 32767 * math.Sin(2*math.Pi*freq*t))
	}
	return out
}

// genNoise returns pseudo-random noise with the given peak amplitude,
// generated by a per-index LCG so any subrange is reproducible.
func genNoise(n int, amp int32) []int16 {
	out := make([]int16, n)
	for i := range out {
		seed := uint32(i + 12345)
		seed = seed*1103515245 + 12345
		out[i] = int16(int64(int32(seed)) * int64(amp) >> 31)
	}
	return out
}

// genImpulse returns periodic impulses over silence, a worst case for the
// predictor at every impulse onset.
func genImpulse(n, period int, amp int16) []int16 {
	out := make([]int16, n)
	for i := 0; i < n; i += period {
		out[i] = amp
	}
	return out
}

// genSpeechLike returns a harmonic stack over a 150Hz fundamental with a
// little noise and a syllable-rate amplitude envelope.
func genSpeechLike(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / 16000
		const f0 = 150.0
		s := 0.3 * math.Sin(2*math.Pi*f0*t)
		s += 0.2 * math.Sin(2*math.Pi*2*f0*t)
		s += 0.15 * math.Sin(2*math.Pi*3*f0*t)
		s += 0.1 * math.Sin(2*math.Pi*4*f0*t)
		seed := uint32(i + 54321)
		seed = seed*1103515245 + 12345
		s += float64(int32(seed)) / math.MaxInt32 * 0.05
		s *= 0.5 + 0.5*math.Sin(2*math.Pi*4*t)
		out[i] = int16(s * 32767)
	}
	return out
}

// genExtremes alternates full-scale values to exercise the residual range
// limits and the saturating arithmetic.
func genExtremes(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		switch i % 4 {
		case 0, 2:
			out[i] = math.MaxInt16
		case 1:
			out[i] = math.MinInt16
		}
	}
	return out
}

func testSignals() []struct {
	name    string
	samples []int16
} {
	return []struct {
		name    string
		samples []int16
	}{
		{"silence", genSilence(512)},
		{"sine1k", genSine(512, 1000, 26000)},
		{"sweep", genSweep(512)},
		{"noise", genNoise(512, 16000)},
		{"impulse", genImpulse(512, 100, 29000)},
		{"speech_like", genSpeechLike(512)},
		{"extremes", genExtremes(512)},
	}
}
