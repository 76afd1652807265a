package core

// Cue identifies a short sound effect requested by the simulation.
type Cue int

const (
	CueJump Cue = iota // Player left the ground
	CueCoin            // Coin collected
	CueHit             // Player ran into an obstacle
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCoin:
		return "coin"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}

// CueSink receives audio cues. Implementations must not block and must
// swallow their own playback failures.
type CueSink interface {
	Play(c Cue)
}

// NopCues is a CueSink that discards every cue.
type NopCues struct{}

// Play implements CueSink.
func (NopCues) Play(Cue) {}

// CueRecorder collects cues in memory. Useful for tests and headless runs.
type CueRecorder struct {
	Cues []Cue
}

// Play implements CueSink.
func (r *CueRecorder) Play(c Cue) {
	r.Cues = append(r.Cues, c)
}

// Count returns how many times the given cue was played.
func (r *CueRecorder) Count(c Cue) int {
	n := 0
	for _, got := range r.Cues {
		if got == c {
			n++
		}
	}
	return n
}
