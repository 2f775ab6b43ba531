package t2048

import "math/rand"

// Spawn4Probability is the chance that a spawned tile is a 4 instead of a 2.
const Spawn4Probability = 0.25

// Spawner places new tiles on empty cells using a seeded random source,
// so a seed fully determines the spawn sequence of a game.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner seeded with seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// Spawn picks an empty cell uniformly at random and writes a 2 or a 4
// into g. A full grid is left alone and reported with ok == false.
func (s *Spawner) Spawn(g Grid) (tile Tile, ok bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Tile{}, false
	}

	pos := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < Spawn4Probability {
		value = 4
	}

	g[pos.Row][pos.Col] = value
	return Tile{Value: value, Pos: pos}, true
}
