package t2048

// Animation lengths in ticks
const (
	slideAnimationTicks = 8 // ~133ms at 60fps
	popAnimationTicks   = 6 // ~100ms at 60fps
)

type animationPhase int

const (
	phaseNone animationPhase = iota
	phaseSlide
	phasePop
)

// animator plays back the tile moves of the last move: first every tile
// slides from its old cell to its new one, then the spawned tile pops in.
type animator struct {
	phase   animationPhase
	ticks   int
	slides  []TileMove
	spawned *Tile
}

// start begins the slide phase for a move.
func (a *animator) start(moves []TileMove, spawned *Tile) {
	a.slides = moves
	a.spawned = spawned
	a.ticks = 0
	a.phase = phaseSlide
	if len(moves) == 0 {
		a.nextPhase()
	}
}

// stop drops any running animation.
func (a *animator) stop() {
	*a = animator{}
}

// active reports whether an animation is running.
func (a *animator) active() bool {
	return a.phase != phaseNone
}

// advance moves the animation one tick forward.
func (a *animator) advance() {
	if a.phase == phaseNone {
		return
	}
	a.ticks++
	if a.ticks >= a.duration() {
		a.nextPhase()
	}
}

func (a *animator) nextPhase() {
	if a.phase == phaseSlide && a.spawned != nil {
		a.phase = phasePop
		a.ticks = 0
		return
	}
	a.stop()
}

func (a *animator) duration() int {
	if a.phase == phasePop {
		return popAnimationTicks
	}
	return slideAnimationTicks
}

// progress returns how far the current phase is, eased, in [0, 1].
func (a *animator) progress() float64 {
	if a.phase == phaseNone {
		return 1
	}
	t := float64(a.ticks) / float64(a.duration())
	return easeOutQuad(min(t, 1))
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// at returns the fractional cell a sliding tile occupies at progress t.
func (m TileMove) at(t float64) (row, col float64) {
	row = float64(m.From.Row) + float64(m.To.Row-m.From.Row)*t
	col = float64(m.From.Col) + float64(m.To.Col-m.From.Col)*t
	return row, col
}
