// internal/metrics/collector_test.go
package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRecordSearch(t *testing.T) {
	r := NewRegistry()

	r.RecordSearch("rent", 40*time.Millisecond, 12)
	r.RecordSearch("rent", 80*time.Millisecond, 3)
	r.RecordSearch("buy", 10*time.Millisecond, 7)

	snap := r.Snapshot()
	require.Contains(t, snap.Searches, "rent")
	require.Contains(t, snap.Searches, "buy")

	rent := snap.Searches["rent"]
	assert.Equal(t, int64(2), rent.Count)
	assert.Equal(t, int64(15), rent.TotalMatched)
	assert.Equal(t, int64(120), rent.TotalMillis)
	assert.Equal(t, int64(80), rent.MaxMillis)

	assert.Equal(t, int64(1), snap.Searches["buy"].Count)
}

func TestRegistryRecordLookup(t *testing.T) {
	r := NewRegistry()

	r.RecordLookup("buy", true)
	r.RecordLookup("buy", true)
	r.RecordLookup("buy", false)

	snap := r.Snapshot()
	assert.Equal(t, int64(2), snap.Lookups["buy"].Hits)
	assert.Equal(t, int64(1), snap.Lookups["buy"].Misses)
}

func TestSnapshotIsACopy(t *testing.T) {
	r := NewRegistry()
	r.RecordLookup("rent", true)

	snap := r.Snapshot()
	r.RecordLookup("rent", true)

	assert.Equal(t, int64(1), snap.Lookups["rent"].Hits)
	assert.Equal(t, int64(2), r.Snapshot().Lookups["rent"].Hits)
}

func TestRegistryConcurrentUse(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.RecordSearch("rent", time.Millisecond, 1)
				r.RecordLookup("rent", j%2 == 0)
			}
		}()
	}
	wg.Wait()

	snap := r.Snapshot()
	assert.Equal(t, int64(800), snap.Searches["rent"].Count)
	assert.Equal(t, int64(800), snap.Lookups["rent"].Hits+snap.Lookups["rent"].Misses)
}

func TestNoopImplementsCollector(t *testing.T) {
	var c Collector = Noop{}

	c.RecordSearch("rent", time.Second, 100)
	c.RecordLookup("buy", false)
}
