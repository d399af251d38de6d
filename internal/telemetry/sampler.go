package telemetry

// Metered is the counter surface of *stream.Engine.
type Metered interface {
	Metrics() (draws, seeds, plants, lazyPlants, selects int64)
	Stream() int
}

type sampler struct {
	engine Metered
}

func newSampler(e Metered) sampler {
	return sampler{engine: e}
}

// snapshot holds cumulative counters (monotonic).
type snapshot struct {
	draws      uint64
	seeds      uint64
	plants     uint64
	lazyPlants uint64
	selects    uint64
}

func (s sampler) snapshot() snapshot {
	draws, seeds, plants, lazyPlants, selects := s.engine.Metrics()

	return snapshot{
		draws:      uint64(max(draws, 0)),
		seeds:      uint64(max(seeds, 0)),
		plants:     uint64(max(plants, 0)),
		lazyPlants: uint64(max(lazyPlants, 0)),
		selects:    uint64(max(selects, 0)),
	}
}

// deltaSnapshot converts cumulative snapshots to per-interval deltas.
// If counters reset (cur < prev), it treats cur as the delta.
func deltaSnapshot(prev, cur snapshot) snapshot {
	return snapshot{
		draws:      delta(prev.draws, cur.draws),
		seeds:      delta(prev.seeds, cur.seeds),
		plants:     delta(prev.plants, cur.plants),
		lazyPlants: delta(prev.lazyPlants, cur.lazyPlants),
		selects:    delta(prev.selects, cur.selects),
	}
}

func delta(prev, cur uint64) uint64 {
	if cur >= prev {
		return cur - prev
	}
	return cur
}
