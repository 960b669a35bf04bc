package stretch

import (
	"fmt"
	"sync"
)

// Factory constructs a fresh [Digest].  Each call must return an independent
// instance; stretch computations do not share digest state.
type Factory func() Digest

// Registry is a thread-safe named registry of digest algorithms with a
// nominated default.
//
// Register one or more [Factory] functions, nominate a default algorithm,
// then resolve digests by name with [Registry.New] or run whole computations
// against the default with [Registry.Stretch] / [Registry.Verify].
//
// # Thread safety
//
// All Registry methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (Register, SetDefault) while allowing
// concurrent reads.
type Registry struct {
	mu         sync.RWMutex
	algorithms map[AlgorithmName]Factory
	def        AlgorithmName
}

// NewRegistry creates an empty Registry with the given default algorithm
// name.  Algorithms must be registered with [Registry.Register] before any
// computation is run through the Registry.
//
// Use [NewDefaultRegistry] for the batteries-included variant.
func NewRegistry(def AlgorithmName) *Registry {
	return &Registry{
		algorithms: make(map[AlgorithmName]Factory),
		def:        def,
	}
}

// NewDefaultRegistry creates a Registry with every built-in algorithm
// registered.  The default algorithm is [AlgorithmSHA256].
func NewDefaultRegistry() *Registry {
	r := NewRegistry(AlgorithmSHA256)
	for _, name := range Algorithms() {
		// New cannot fail for a built-in name.
		factory := func(n AlgorithmName) Factory {
			return func() Digest {
				d, _ := New(n)
				return d
			}
		}(name)
		_ = r.Register(name, factory)
	}
	return r
}

// Register adds or replaces a named digest factory.  It is safe to call
// Register while other goroutines are using the Registry.
//
// Custom algorithms only need a [hash.Hash] implementation:
//
//	r.Register("whirlpool", func() stretch.Digest {
//		return stretch.Wrap("whirlpool", whirlpool.New())
//	})
func (r *Registry) Register(name AlgorithmName, f Factory) error {
	if name == "" {
		return ErrEmptyAlgorithmName
	}
	if f == nil {
		return ErrNilFactory
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.algorithms[name] = f
	return nil
}

// New returns a fresh [Digest] for the named algorithm, or
// [ErrUnknownAlgorithm] if it has not been registered.
func (r *Registry) New(name AlgorithmName) (Digest, error) {
	r.mu.RLock()
	f, ok := r.algorithms[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return f(), nil
}

// Has reports whether an algorithm with the given name is registered.
func (r *Registry) Has(name AlgorithmName) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.algorithms[name]
	return ok
}

// SetDefault changes the algorithm used by [Registry.Stretch] and
// [Registry.Verify].  The named algorithm must already be registered.
func (r *Registry) SetDefault(name AlgorithmName) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.algorithms[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call Register first",
			ErrUnknownAlgorithm, name)
	}
	r.def = name
	return nil
}

// Default returns the name of the currently configured default algorithm.
func (r *Registry) Default() AlgorithmName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.def
}

// Stretch runs the stretch computation with the Registry's default
// algorithm.  p.Digest is ignored and replaced with a fresh instance.
func (r *Registry) Stretch(p Params) ([]byte, error) {
	d, err := r.resolveDefault()
	if err != nil {
		return nil, err
	}
	p.Digest = d
	return Stretch(p)
}

// Verify verifies reference with the Registry's default algorithm.
// p.Digest is ignored and replaced with a fresh instance.
func (r *Registry) Verify(p Params, reference []byte) (bool, error) {
	d, err := r.resolveDefault()
	if err != nil {
		return false, err
	}
	p.Digest = d
	return Verify(p, reference)
}

func (r *Registry) resolveDefault() (Digest, error) {
	r.mu.RLock()
	def := r.def
	r.mu.RUnlock()
	d, err := r.New(def)
	if err != nil {
		return nil, fmt.Errorf("%w: default algorithm %q has not been registered",
			ErrUnknownAlgorithm, def)
	}
	return d, nil
}
