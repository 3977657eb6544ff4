package tickprof

// epsilon absorbs floating-point rounding in percentile threshold
// comparisons.
const epsilon = 1e-6

// TotalEvents returns the number of recorded events. It reads a
// single atomic counter and never takes the histogram lock.
func (p *Profiler) TotalEvents() uint64 {
	return p.total.Load()
}

// TotalTime returns the sum of all recorded durations, in ticks.
// Returns 0 for an empty profiler.
func (p *Profiler) TotalTime() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	var sum uint64
	for d, n := range p.buckets {
		sum += d * n
	}

	return sum
}

// AverageTime returns the mean recorded duration in ticks.
// Returns 0 for an empty profiler.
func (p *Profiler) AverageTime() float64 {
	events := p.total.Load()
	if events == 0 {
		return 0
	}

	return float64(p.TotalTime()) / float64(events)
}

// PercentileByEvents returns the smallest duration d such that the
// fraction of recorded events with duration <= d is at least pct.
//
// pct is a fraction in [0, 1]: 0 yields the minimum recorded
// duration, 1 the maximum. Returns 0 for an empty profiler.
func (p *Profiler) PercentileByEvents(pct float64) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := p.total.Load()
	if total == 0 {
		return 0
	}

	p.sortKeysLocked()

	if pct <= epsilon {
		return p.keys[0]
	}

	if pct >= 1-epsilon {
		return p.keys[len(p.keys)-1]
	}

	var accum uint64
	for _, d := range p.keys {
		accum += p.buckets[d]
		if float64(accum)/float64(total) >= pct-epsilon {
			return d
		}
	}

	// The last key's cumulative fraction is exactly 1; reachable only
	// through floating-point rounding.
	return p.keys[len(p.keys)-1]
}

// PercentileByTime returns the first recorded duration positioned at
// or past fraction pct of the observed duration range [min, max],
// along with the occurrence count at that duration.
//
// This is a different statistic than PercentileByEvents: it
// interpolates over duration magnitude and ignores how many events
// landed at each value. The two disagree for skewed distributions.
// Returns (0, 0) for an empty profiler.
func (p *Profiler) PercentileByTime(pct float64) (duration, count uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.total.Load() == 0 {
		return 0, 0
	}

	p.sortKeysLocked()

	minKey := p.keys[0]
	maxKey := p.keys[len(p.keys)-1]

	if pct <= epsilon {
		return minKey, p.buckets[minKey]
	}

	if pct >= 1-epsilon || minKey == maxKey {
		return maxKey, p.buckets[maxKey]
	}

	span := float64(maxKey - minKey)

	for _, d := range p.keys {
		if float64(d-minKey)/span >= pct-epsilon {
			return d, p.buckets[d]
		}
	}

	return maxKey, p.buckets[maxKey]
}
