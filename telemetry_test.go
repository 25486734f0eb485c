package chanselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiveChannelCountIncrementsOnConstruction(t *testing.T) {
	before := LiveChannelCount()
	_, err := New[int]()
	require.NoError(t, err)
	require.Equal(t, before+1, LiveChannelCount())
}

func TestTopAllocSitesTracksTaggedConstruction(t *testing.T) {
	EnableAllocTracing(true)
	defer EnableAllocTracing(false)

	site := "telemetry_test.go:TestTopAllocSitesTracksTaggedConstruction"
	var kept []*Channel[int]
	for i := 0; i < 3; i++ {
		ch, err := New[int](WithAllocSite(site))
		require.NoError(t, err)
		kept = append(kept, ch)
	}

	stats := TopAllocSites(-1)
	var found bool
	for _, s := range stats {
		if s.Site == site {
			found = true
			require.GreaterOrEqual(t, s.Count, int64(3))
		}
	}
	require.True(t, found)
	_ = kept
}

func TestTopAllocSitesRespectsLimit(t *testing.T) {
	EnableAllocTracing(true)
	defer EnableAllocTracing(false)

	var kept []*Channel[int]
	for i := 0; i < 5; i++ {
		ch, err := New[int](WithAllocSite("limit-site-a"))
		require.NoError(t, err)
		kept = append(kept, ch)
	}
	for i := 0; i < 2; i++ {
		ch, err := New[int](WithAllocSite("limit-site-b"))
		require.NoError(t, err)
		kept = append(kept, ch)
	}

	stats := TopAllocSites(1)
	require.Len(t, stats, 1)
	require.Equal(t, "limit-site-a", stats[0].Site)
	_ = kept
}

func TestTopAllocSitesEmptyWhenTracingDisabled(t *testing.T) {
	EnableAllocTracing(false)
	ch, err := New[int](WithAllocSite("disabled-site"))
	require.NoError(t, err)
	defer func() { _ = ch }()

	for _, s := range TopAllocSites(-1) {
		require.NotEqual(t, "disabled-site", s.Site)
	}
}
