package column

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHitCounterConcurrent(t *testing.T) {
	var h HitCounter
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				h.Add("doc.a", 1)
			}
		}()
	}
	wg.Wait()
	h.Add("doc.b", 2)
	assert.EqualValues(t, 800, h.Get("doc.a"))
	assert.EqualValues(t, 0, h.Get("doc.c"))
	assert.Equal(t, map[string]int64{"doc.a": 800, "doc.b": 2}, h.Snapshot())
}

func TestCollector(t *testing.T) {
	stats := NewStats()
	stats.FlatHits.Add("doc.a", 1)
	stats.FlatHits.Add("doc.b", 1)
	stats.DynamicHits.Add("doc.c", 3)
	stats.FlattenNanos.Add(int64(2 * time.Second))
	c := NewCollector("docflat", stats)
	assert.Equal(t, 4, testutil.CollectAndCount(c))
	assert.Equal(t, 2, testutil.CollectAndCount(c, "docflat_flat_json_hits_total"))
	assert.Equal(t, 2*time.Second, stats.FlattenTime())
}

func TestErrorsClassify(t *testing.T) {
	cause := assert.AnError
	err := ReadError(cause)
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, cause)
	assert.Same(t, err, ReadError(err))
	assert.ErrorIs(t, InitError(cause), ErrInit)
	assert.NoError(t, InitError(nil))
}

func TestCheckPanicsWithFault(t *testing.T) {
	assert.NotPanics(t, func() { Check(true, "fine") })
	assert.PanicsWithError(t, "internal consistency fault: rows 1 != 2", func() {
		Check(false, "rows %d != %d", 1, 2)
	})
}

func TestAccessPath(t *testing.T) {
	root := NewAccessPath("doc")
	b := root.AddChild("a").AddChild("b")
	assert.Equal(t, "doc.a.b", b.AbsolutePath())
	assert.Equal(t, "doc", root.AbsolutePath())
	assert.Equal(t, "a", b.Parent().Name)
}
