package audio

import "math"

// envelope is an ADSR shape over a sound's normalised progress [0,1]. The
// stage lengths are fractions of the whole sound.
type envelope struct {
	attack, decay, sustain, release float64
}

func (e envelope) at(p float64) float64 {
	switch {
	case p < e.attack:
		return p / e.attack
	case p < e.attack+e.decay:
		return 1 - (p-e.attack)/e.decay*(1-e.sustain)
	case p < 1-e.release:
		return e.sustain
	default:
		return e.sustain * (1 - (p-(1-e.release))/e.release)
	}
}

// noise is a deterministic white noise source, so the samples are identical
// on every run.
type noise uint64

func (n *noise) next() float64 {
	*n = *n*6364136223846793005 + 1442695040888963407
	return float64(int64(*n>>33)-int64(1<<30)) / float64(1<<30)
}

// render synthesises seconds of audio as interleaved float32 LE stereo.
// sample receives the time in seconds and the progress in [0,1); its output
// is soft clipped.
func render(seconds float64, sample func(t, p float64) float64) []byte {
	n := int(seconds * SampleRate)
	buf := make([]byte, n*4*ChannelCount)
	for i := 0; i < n; i++ {
		v := math.Float32bits(float32(math.Tanh(sample(float64(i)/SampleRate, float64(i)/float64(n)))))
		for c := 0; c < ChannelCount; c++ {
			o := (i*ChannelCount + c) * 4
			buf[o] = byte(v)
			buf[o+1] = byte(v >> 8)
			buf[o+2] = byte(v >> 16)
			buf[o+3] = byte(v >> 24)
		}
	}
	return buf
}

func generate(kind Sound) []byte {
	switch kind {
	case SoundStep:
		return genStep()
	case SoundBump:
		return genBump()
	}
	return nil
}

// genStep: muffled heel thump plus a short scuff of low-passed noise.
func genStep() []byte {
	env := envelope{attack: 0.02, decay: 0.3, sustain: 0.2, release: 0.5}
	src := noise(0x57E9)
	lp := 0.0
	return render(0.09, func(t, p float64) float64 {
		e := env.at(p)
		lp += (src.next() - lp) * 0.18
		return math.Sin(2*math.Pi*(90-40*p)*t)*e*0.35 + lp*e*0.25
	})
}

// genBump: low thud, a falling carrier phase modulated at 1.4x its pitch
// with the modulation fading out.
func genBump() []byte {
	env := envelope{attack: 0.01, decay: 0.45, sustain: 0.15, release: 0.3}
	return render(0.12, func(t, p float64) float64 {
		freq := 140 - 70*p
		mod := math.Sin(2 * math.Pi * freq * 1.4 * t)
		return math.Sin(2*math.Pi*freq*t+2.2*(1-p)*mod) * env.at(p) * 0.5
	})
}
