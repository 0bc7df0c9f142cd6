package lyrics

import "sync/atomic"

// Generations hands out load generation tokens:
// only the most recently issued one is current
type Generations struct {
	counter atomic.Uint64
}

// Generation identifies a single load: results obtained under
// a generation which is no longer current must be discarded
type Generation struct {
	id          uint64
	generations *Generations
}

func (generations *Generations) Next() Generation {
	return Generation{generations.counter.Add(1), generations}
}

// Current tells whether no newer generation has been issued since;
// the zero Generation is never superseded
func (generation Generation) Current() bool {
	return generation.generations == nil || generation.generations.counter.Load() == generation.id
}
