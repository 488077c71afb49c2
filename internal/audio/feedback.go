package audio

// Bump sounds are spaced at least this far apart while a move stays blocked.
const bumpCooldown = 0.35

// Feedback turns per-frame movement results into footsteps and bumps.
type Feedback struct {
	out          Player
	stepInterval float64
	walked       float64
	bumpWait     float64
}

func NewFeedback(out Player, stepInterval float64) *Feedback {
	return &Feedback{out: out, stepInterval: stepInterval}
}

// Update is called once per frame. moved means at least one move
// succeeded this frame, blocked that at least one was rejected.
func (f *Feedback) Update(dt float64, moved, blocked bool) {
	if f.bumpWait > 0 {
		f.bumpWait -= dt
	}
	if moved && f.stepInterval > 0 {
		f.walked += dt
		if f.walked >= f.stepInterval {
			f.walked -= f.stepInterval
			f.out.Play(SoundStep)
		}
	} else if !moved {
		f.walked = 0
	}
	if blocked && !moved && f.bumpWait <= 0 {
		f.out.Play(SoundBump)
		f.bumpWait = bumpCooldown
	}
}
