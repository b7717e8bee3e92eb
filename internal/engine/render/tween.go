package render

// Easing maps normalized elapsed time [0,1] to progress [0,1].
type Easing func(t float64) float64

// EaseLinear is constant-rate progress.
func EaseLinear(t float64) float64 { return t }

// EaseOutBounce decelerates with three diminishing bounces at the end.
func EaseOutBounce(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75

	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// tween animates one cube's Y back toward a resting value. Tweens are
// fire-and-forget: nothing observes their completion, and a tween whose
// target cube has been discarded is simply dropped with the list.
type tween struct {
	target   *Cube
	start    float32
	end      float32
	elapsed  float64
	duration float64
	easing   Easing
}

// TweenList advances fire-and-forget animations once per frame.
type TweenList struct {
	tweens []tween
}

// Animate starts moving the cube's Y from its current value to endY over
// the given duration in seconds.
func (l *TweenList) Animate(target *Cube, endY float32, duration float64, easing Easing) {
	if duration <= 0 || target == nil {
		return
	}
	l.tweens = append(l.tweens, tween{
		target:   target,
		start:    target.Y,
		end:      endY,
		duration: duration,
		easing:   easing,
	})
}

// Advance steps every active tween by dt seconds and removes the finished
// ones. Finished tweens land exactly on their end value.
func (l *TweenList) Advance(dt float64) {
	active := l.tweens[:0]
	for i := range l.tweens {
		tw := &l.tweens[i]
		tw.elapsed += dt
		if tw.elapsed >= tw.duration {
			tw.target.Y = tw.end
			continue
		}
		progress := tw.easing(tw.elapsed / tw.duration)
		tw.target.Y = tw.start + (tw.end-tw.start)*float32(progress)
		active = append(active, *tw)
	}
	l.tweens = active
}

// Clear drops every active tween without touching its target. Called when
// the cube set a tween points into is rebuilt from a fresh snapshot.
func (l *TweenList) Clear() {
	l.tweens = l.tweens[:0]
}

// Len returns the number of active tweens.
func (l *TweenList) Len() int {
	return len(l.tweens)
}
