package stream

import "sync/atomic"

type counters struct {
	draws      atomic.Int64
	seeds      atomic.Int64
	plants     atomic.Int64
	lazyPlants atomic.Int64
	selects    atomic.Int64
}

func newCounters() *counters {
	return &counters{
		draws:      atomic.Int64{},
		seeds:      atomic.Int64{},
		plants:     atomic.Int64{},
		lazyPlants: atomic.Int64{},
		selects:    atomic.Int64{},
	}
}

func (c *counters) snapshot() (draws, seeds, plants, lazyPlants, selects int64) {
	return c.draws.Load(), c.seeds.Load(), c.plants.Load(), c.lazyPlants.Load(), c.selects.Load()
}
