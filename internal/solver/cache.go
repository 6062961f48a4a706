package solver

// state is what a history reveals: its constraints and the candidates that
// survive them.
type state struct {
	constraints Constraints
	candidates  Candidates
}

type probeResult struct {
	probe probe
	ok    bool
}

// cache memoizes the pure steps of Guess. Every entry is keyed by the
// complete input it was computed from, so entries never go stale.
//
// A game replays growing prefixes of one history, so each map gains at most
// one entry per guess: the cache is bounded by the round budget of the game
// and needs no eviction. Reset drops it between games.
type cache struct {
	// by game.History.Key
	states map[string]*state
	// by Candidates.key
	rankings map[string][]string
	// by extra letters, doubles, valid letters and (in hard mode) candidates
	probes map[string]probeResult
}

func newCache() *cache {
	return &cache{
		states:   make(map[string]*state),
		rankings: make(map[string][]string),
		probes:   make(map[string]probeResult),
	}
}

func (c *cache) len() int {
	return len(c.states) + len(c.rankings) + len(c.probes)
}
