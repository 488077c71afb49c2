package player

// MouseTracker turns absolute cursor positions into look deltas.
// The first sample only primes the tracker so capturing the cursor does not
// produce a large jump.
type MouseTracker struct {
	lastX, lastY float64
	primed       bool
}

// Delta returns the motion since the previous sample. dy is inverted so
// that moving the mouse up yields a positive value.
func (t *MouseTracker) Delta(x, y float64) (dx, dy float32) {
	if !t.primed {
		t.lastX, t.lastY = x, y
		t.primed = true
	}
	dx = float32(x - t.lastX)
	dy = float32(t.lastY - y)
	t.lastX, t.lastY = x, y
	return dx, dy
}

// Reset forgets the last position; the next sample primes again.
func (t *MouseTracker) Reset() { t.primed = false }
