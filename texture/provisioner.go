package texture

import (
	"context"
	"log"
	"sync"
	"time"
)

// Generator is the part of the pipeline the provisioner drives. Split out as
// an interface so tests can stall or stub generation.
type Generator interface {
	GenerateAll(ctx context.Context, numLevels int) map[int]*Set
}

// generation is one provisioning cycle: its sets are written exactly once,
// before ready is closed. Readers snapshot the whole generation, so a
// concurrent Regenerate can never hand them a torn cache — they see either
// this cycle's complete sets or the next cycle's.
type generation struct {
	ready   chan struct{}
	sets    map[int]*Set
	started bool
}

// Provisioner owns the per-level texture Sets and fills them from a single
// background task. Begin is single-flight: no matter how many callers race
// into it, at most one generation goroutine runs per cycle.
type Provisioner struct {
	store     *Store
	generator Generator
	numLevels int
	timeout   time.Duration

	mu  sync.Mutex
	gen *generation
}

func NewProvisioner(store *Store, generator Generator, numLevels int, timeout time.Duration) *Provisioner {
	return &Provisioner{
		store:     store,
		generator: generator,
		numLevels: numLevels,
		timeout:   timeout,
		gen:       &generation{ready: make(chan struct{})},
	}
}

// Begin kicks off background provisioning. Idempotent: if a task is already
// in flight or finished for the current cycle, it is a no-op.
func (p *Provisioner) Begin() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen.started {
		return
	}
	p.gen.started = true
	go p.run(p.gen)
}

// run fills one generation and closes its ready channel exactly once.
// Persisted-file fast path first; full generation otherwise. Failures are
// absorbed by the pipeline, so completion is unconditional — provisioning
// never hangs.
func (p *Provisioner) run(gen *generation) {
	start := time.Now()

	var sets map[int]*Set
	if p.store != nil && p.store.Complete(p.numLevels) {
		log.Printf("texture: loading existing textures from %s", p.store.TextureDir)
		sets = p.store.LoadExisting(p.numLevels)
	} else {
		sets = p.generator.GenerateAll(context.Background(), p.numLevels)
	}
	if sets == nil {
		sets = map[int]*Set{}
	}

	gen.sets = sets
	close(gen.ready)
	log.Printf("texture: provisioning complete in %s", time.Since(start).Round(time.Millisecond))
}

// Get returns the texture Set for a level, starting provisioning if needed
// and blocking until readiness or the configured timeout. On timeout the
// caller gets an empty Set; gameplay proceeds with placeholders.
func (p *Provisioner) Get(level int) *Set {
	p.Begin()

	p.mu.Lock()
	gen := p.gen
	p.mu.Unlock()

	select {
	case <-gen.ready:
	case <-time.After(p.timeout):
		log.Printf("texture: wait for level %d textures timed out after %s", level, p.timeout)
		return EmptySet(level)
	}

	if s, ok := gen.sets[level]; ok && s != nil {
		return s
	}
	return EmptySet(level)
}

// Ready reports whether the current provisioning cycle has completed.
func (p *Provisioner) Ready() bool {
	p.mu.Lock()
	gen := p.gen
	p.mu.Unlock()
	select {
	case <-gen.ready:
		return true
	default:
		return false
	}
}

// Regenerate swaps in a fresh un-ready generation and starts it. In-flight
// Get calls that already snapshotted the old generation still complete
// against the old sets; later callers wait on the new cycle.
func (p *Provisioner) Regenerate() {
	p.mu.Lock()
	p.gen = &generation{ready: make(chan struct{})}
	p.mu.Unlock()

	log.Printf("texture: regenerating textures")
	p.Begin()
}
