package texture

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// stubGenerator counts GenerateAll invocations and optionally blocks until
// released.
type stubGenerator struct {
	calls   atomic.Int64
	release chan struct{}
}

func (g *stubGenerator) GenerateAll(ctx context.Context, numLevels int) map[int]*Set {
	g.calls.Add(1)
	if g.release != nil {
		<-g.release
	}
	sets := make(map[int]*Set, numLevels)
	for level := 1; level <= numLevels; level++ {
		sets[level] = NewSet(level, []Texture{
			{Role: RoleBackground, Image: Placeholder(RoleBackground, level, 8)},
		})
	}
	return sets
}

func TestProvisionerSingleFlight(t *testing.T) {
	gen := &stubGenerator{}
	p := NewProvisioner(nil, gen, 3, time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Begin()
		}()
	}
	wg.Wait()
	p.Get(1)

	if got := gen.calls.Load(); got != 1 {
		t.Fatalf("GenerateAll ran %d times, want 1", got)
	}
}

func TestProvisionerGetBlocksUntilReady(t *testing.T) {
	gen := &stubGenerator{release: make(chan struct{})}
	p := NewProvisioner(nil, gen, 2, 5*time.Second)
	p.Begin()

	if p.Ready() {
		t.Fatalf("Ready before generation finished")
	}

	done := make(chan *Set)
	go func() { done <- p.Get(2) }()

	select {
	case <-done:
		t.Fatalf("Get returned before generation finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(gen.release)
	set := <-done
	if set.Len() == 0 {
		t.Fatalf("Get returned empty set after successful generation")
	}
	if !p.Ready() {
		t.Fatalf("not Ready after generation finished")
	}
}

func TestProvisionerGetTimesOut(t *testing.T) {
	gen := &stubGenerator{release: make(chan struct{})}
	defer close(gen.release)

	p := NewProvisioner(nil, gen, 2, 20*time.Millisecond)
	set := p.Get(1)

	if set == nil {
		t.Fatalf("Get returned nil on timeout")
	}
	if set.Len() != 0 {
		t.Fatalf("timed-out Get should return an empty set, got %d textures", set.Len())
	}
	if set.Level != 1 {
		t.Fatalf("empty set carries level %d, want 1", set.Level)
	}
}

func TestProvisionerGetUnknownLevel(t *testing.T) {
	p := NewProvisioner(nil, &stubGenerator{}, 2, time.Second)

	set := p.Get(99)
	if set.Len() != 0 || set.Level != 99 {
		t.Fatalf("unknown level should yield an empty set for that level")
	}
}

func TestProvisionerRegenerateStartsFreshCycle(t *testing.T) {
	gen := &stubGenerator{}
	p := NewProvisioner(nil, gen, 2, time.Second)

	p.Get(1)
	if got := gen.calls.Load(); got != 1 {
		t.Fatalf("GenerateAll ran %d times before regenerate, want 1", got)
	}

	p.Regenerate()
	p.Get(1)
	if got := gen.calls.Load(); got != 2 {
		t.Fatalf("GenerateAll ran %d times after regenerate, want 2", got)
	}
}

func TestProvisionerRegenerateDoesNotTearInFlightGets(t *testing.T) {
	gen := &stubGenerator{release: make(chan struct{})}
	p := NewProvisioner(nil, gen, 2, 5*time.Second)
	p.Begin()

	done := make(chan *Set)
	go func() { done <- p.Get(1) }()
	time.Sleep(20 * time.Millisecond)

	// Release the first cycle, then immediately swap in a second one. The
	// in-flight Get snapshotted the first generation and must complete
	// against it.
	close(gen.release)
	set := <-done
	if set.Len() == 0 {
		t.Fatalf("in-flight Get lost its generation")
	}

	gen.release = nil
	p.Regenerate()
	if set2 := p.Get(1); set2.Len() == 0 {
		t.Fatalf("post-regenerate Get got empty set")
	}
}
