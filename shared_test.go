package probe_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-theft-auto/probe"
	"github.com/go-theft-auto/probe/probetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type vehicle struct {
	Speed float64
	Gear  int
}

func (v *vehicle) Probe(probe.Surface, *probe.Style) probe.Response { return probe.Response{} }
func (v *vehicle) HasInner() bool                                   { return true }
func (v *vehicle) IterateInner(s probe.Surface, visit probe.Visit) {
	visit("speed", s, probe.Number(&v.Speed))
	visit("gear", s, probe.Number(&v.Gear).Range(-1, 6))
}

func vehicleElem(v *vehicle) probe.Prober { return v }

func TestSharedWritesBackEdits(t *testing.T) {
	var mu sync.RWMutex
	v := vehicle{Gear: 1}
	h := probetest.New()
	openRoot(t, h, "car")
	fn := show("car", probe.Shared(&mu, &v, vehicleElem))

	f := h.Frame(fn)
	h.SetValue(f.Widget(t, probetest.KindDrag, "1"), 3)
	h.Frame(fn)
	assert.Equal(t, vehicle{Gear: 3}, v)
}

func TestSharedEditorMayTakeTheLock(t *testing.T) {
	var mu sync.RWMutex
	v := 1
	// The editor locks mu itself, which deadlocks if the probe holds it.
	elem := func(n *int) probe.Prober {
		return probe.With(n, func(n *int, s probe.Surface, style *probe.Style) probe.Response {
			mu.Lock()
			defer mu.Unlock()
			return probe.Number(n).Probe(s, style)
		})
	}
	h := probetest.New()
	fn := show("n", probe.Shared(&mu, &v, elem))

	done := make(chan struct{})
	go func() {
		defer close(done)
		f := h.Frame(fn)
		h.SetValue(f.All(probetest.KindDrag)[0], 9)
		h.Frame(fn)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("probe held the lock across the editor")
	}
	assert.Equal(t, 9, v)
}

func TestSharedStress(t *testing.T) {
	var mu sync.RWMutex
	v := vehicle{}
	h := probetest.New()
	openRoot(t, h, "car")
	fn := show("car", probe.Shared(&mu, &v, vehicleElem))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	writers, wctx := errgroup.WithContext(ctx)
	stop := make(chan struct{})
	for w := range 4 {
		writers.Go(func() error {
			for i := 0; ; i++ {
				select {
				case <-stop:
					return nil
				case <-wctx.Done():
					return wctx.Err()
				default:
				}
				mu.Lock()
				v.Speed = float64(w*1000 + i)
				v.Gear = i % 6
				mu.Unlock()
			}
		})
	}

	rendered := make(chan error, 1)
	go func() {
		for range 300 {
			if err := ctx.Err(); err != nil {
				rendered <- err
				return
			}
			f := h.Frame(fn)
			// Keep editing too, so write-backs race the writers.
			if drags := f.All(probetest.KindDrag); len(drags) == 2 {
				h.SetValue(drags[1], 2)
			}
		}
		rendered <- nil
	}()

	var err error
	select {
	case err = <-rendered:
	case <-ctx.Done():
		err = ctx.Err()
	}
	close(stop)
	require.NoError(t, err, "rendering did not finish in time")
	require.NoError(t, writers.Wait())

	mu.RLock()
	defer mu.RUnlock()
	assert.GreaterOrEqual(t, v.Gear, 0)
	assert.Less(t, v.Gear, 6)
}
