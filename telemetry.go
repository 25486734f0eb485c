package chanselect

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// EnableAllocTracing gates the optional call-site-keyed live-channel
// telemetry. Off by default, since attributing every live channel to
// its [WithAllocSite] label costs a map lookup per construction/
// destruction that most callers never asked for.
func EnableAllocTracing(enabled bool) { allocTracingEnabled.Store(enabled) }

var allocTracingEnabled atomic.Bool

var liveSharedStates atomic.Int64

var nextSharedStateID atomic.Uint64

var siteCounters struct {
	sync.Mutex
	counts map[string]*atomic.Int64
}

func init() {
	siteCounters.counts = make(map[string]*atomic.Int64)
}

// registerSharedState assigns a fresh allocation id to s, bumps the
// live-object counters, and schedules their decrement for whenever s
// becomes unreachable. Go has no destructors, so this cleanup callback
// is the closest equivalent to the original's construction/destruction
// pair - it fires once, at some point after the last reference to s is
// dropped, not deterministically at scope exit.
func registerSharedState[T any](s *sharedState[T]) uint64 {
	id := nextSharedStateID.Add(1)
	liveSharedStates.Add(1)
	site := ""
	if allocTracingEnabled.Load() && s.allocSite != "" {
		site = s.allocSite
		counterFor(site).Add(1)
	}
	runtime.AddCleanup(s, func(site string) {
		liveSharedStates.Add(-1)
		if site != "" {
			counterFor(site).Add(-1)
		}
	}, site)
	return id
}

func counterFor(site string) *atomic.Int64 {
	siteCounters.Lock()
	defer siteCounters.Unlock()
	c, ok := siteCounters.counts[site]
	if !ok {
		c = &atomic.Int64{}
		siteCounters.counts[site] = c
	}
	return c
}

// AllocSiteStat is one row of [TopAllocSites].
type AllocSiteStat struct {
	Site  string
	Count int64
}

// TopAllocSites returns up to n call sites (as tagged via
// [WithAllocSite]) with the most live channels right now, highest
// first. Empty unless [EnableAllocTracing] was enabled before the
// channels in question were constructed. A negative n returns every
// tracked site.
func TopAllocSites(n int) []AllocSiteStat {
	siteCounters.Lock()
	sites := maps.Keys(siteCounters.counts)
	stats := make([]AllocSiteStat, 0, len(sites))
	for _, site := range sites {
		if v := siteCounters.counts[site].Load(); v > 0 {
			stats = append(stats, AllocSiteStat{Site: site, Count: v})
		}
	}
	siteCounters.Unlock()
	slices.SortFunc(stats, func(a, b AllocSiteStat) int { return int(b.Count - a.Count) })
	if n >= 0 && n < len(stats) {
		stats = stats[:n]
	}
	return stats
}

// LiveChannelCount returns the number of shared channel states
// currently live (constructed but not yet collected), independent of
// [EnableAllocTracing].
func LiveChannelCount() int64 { return liveSharedStates.Load() }
