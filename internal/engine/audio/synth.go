package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep/v2"
)

type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
)

// oscillator generates a fixed-frequency tone for a fixed duration.
type oscillator struct {
	freq       float64
	wave       waveType
	sampleRate beep.SampleRate
	phase      float64
	remaining  int
}

func newOscillator(freq float64, dur time.Duration, wave waveType, sr beep.SampleRate) *oscillator {
	if sr == 0 {
		sr = DefaultSampleRate
	}
	return &oscillator{
		freq:       freq,
		wave:       wave,
		sampleRate: sr,
		remaining:  sr.N(dur),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.remaining <= 0 {
		return 0, false
	}
	for i := range samples {
		if o.remaining <= 0 {
			return i, true
		}
		v := o.sample()
		samples[i][0] = v
		samples[i][1] = v
		o.phase += o.freq / float64(o.sampleRate)
		if o.phase >= 1 {
			o.phase -= 1
		}
		o.remaining--
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func (o *oscillator) sample() float64 {
	switch o.wave {
	case waveSquare:
		if o.phase < 0.5 {
			return 0.6
		}
		return -0.6
	case waveSaw:
		return 2*o.phase - 1
	default:
		return math.Sin(2 * math.Pi * o.phase)
	}
}

// sweep generates a tone whose frequency glides exponentially from start
// to end over the duration.
type sweep struct {
	start, end float64
	sampleRate beep.SampleRate
	phase      float64
	pos        int
	total      int
}

func newSweep(start, end float64, dur time.Duration, sr beep.SampleRate) *sweep {
	if sr == 0 {
		sr = DefaultSampleRate
	}
	return &sweep{
		start:      start,
		end:        end,
		sampleRate: sr,
		total:      sr.N(dur),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		t := float64(s.pos) / float64(s.total)
		freq := s.start * math.Pow(s.end/s.start, t)
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += freq / float64(s.sampleRate)
		if s.phase >= 1 {
			s.phase -= 1
		}
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noiseBurst generates white noise for a fixed duration.
type noiseBurst struct {
	rng       *rand.Rand
	remaining int
}

func newNoiseBurst(dur time.Duration, sr beep.SampleRate) *noiseBurst {
	if sr == 0 {
		sr = DefaultSampleRate
	}
	return &noiseBurst{
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		remaining: sr.N(dur),
	}
}

func (b *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	if b.remaining <= 0 {
		return 0, false
	}
	for i := range samples {
		if b.remaining <= 0 {
			return i, true
		}
		v := b.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
		b.remaining--
	}
	return len(samples), true
}

func (b *noiseBurst) Err() error { return nil }

// envelope applies a linear attack and release to a finite streamer so
// effects never click at their edges.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, dur, attack, release time.Duration, sr beep.SampleRate) *envelope {
	if sr == 0 {
		sr = DefaultSampleRate
	}
	total := sr.N(dur)
	a := sr.N(attack)
	r := sr.N(release)
	if a+r > total {
		a = total / 2
		r = total - a
	}
	return &envelope{streamer: s, total: total, attack: a, release: r}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		} else if left := e.total - e.pos; left < e.release {
			gain = float64(left) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return nil }
