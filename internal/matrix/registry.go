package matrix

import (
	"fmt"
	"sort"
	"sync"
)

// StrategyFactory is an interface for creating MultiplyStrategy instances.
// It allows for flexible strategy instantiation and registration, enabling
// dependency injection and easier testing.
type StrategyFactory interface {
	// Create creates a new MultiplyStrategy instance by name.
	// Returns an error if the strategy is not registered.
	Create(name string) (MultiplyStrategy, error)

	// Get returns a cached MultiplyStrategy instance by name.
	// Returns an error if the strategy is not registered.
	Get(name string) (MultiplyStrategy, error)

	// List returns a sorted list of registered strategy names.
	List() []string

	// Register adds a new strategy to the factory.
	Register(name string, creator func() MultiplyStrategy) error

	// Has reports whether a strategy with the given name is registered.
	Has(name string) bool
}

// DefaultFactory is the default implementation of StrategyFactory.
// It maintains a thread-safe registry of strategy creators and caches
// instances for reuse; the strategies themselves are stateless.
type DefaultFactory struct {
	mu         sync.RWMutex
	creators   map[string]func() MultiplyStrategy
	strategies map[string]MultiplyStrategy
}

// NewDefaultFactory creates a factory with the standard multiplication
// strategies pre-registered:
//   - "naive": triple-loop reference implementation
//   - "blocked": 64-edge cache-blocked tiling
//   - "unrolled": 32-edge tiling with a 4-way unrolled inner loop
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:   make(map[string]func() MultiplyStrategy),
		strategies: make(map[string]MultiplyStrategy),
	}

	_ = f.Register("naive", func() MultiplyStrategy { return &NaiveMultiply{} })
	_ = f.Register("blocked", func() MultiplyStrategy { return &BlockedMultiply{} })
	_ = f.Register("unrolled", func() MultiplyStrategy { return &UnrolledMultiply{} })

	return f
}

// Register adds a new strategy to the factory. The creator function is
// called lazily when the strategy is first requested. Re-registering a name
// replaces the previous creator and invalidates its cached instance.
func (f *DefaultFactory) Register(name string, creator func() MultiplyStrategy) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	delete(f.strategies, name)
	return nil
}

// Create creates a fresh MultiplyStrategy instance by name, bypassing the
// cache.
func (f *DefaultFactory) Create(name string) (MultiplyStrategy, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown multiply strategy: %s", name)
	}
	return creator(), nil
}

// Get returns a MultiplyStrategy instance by name, caching it for
// subsequent calls. This is the preferred accessor for most use cases.
func (f *DefaultFactory) Get(name string) (MultiplyStrategy, error) {
	f.mu.RLock()
	if s, exists := f.strategies[name]; exists {
		f.mu.RUnlock()
		return s, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring the write lock.
	if s, exists := f.strategies[name]; exists {
		return s, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown multiply strategy: %s", name)
	}

	s := creator()
	f.strategies[name] = s
	return s, nil
}

// Has reports whether a strategy with the given name is registered.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.creators[name]
	return ok
}

// List returns a sorted list of all registered strategy names.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// globalFactory is the process-wide strategy registry.
var (
	globalFactory     *DefaultFactory
	globalFactoryOnce sync.Once
)

// GlobalFactory returns the process-wide strategy factory, creating it on
// first use.
func GlobalFactory() StrategyFactory {
	globalFactoryOnce.Do(func() {
		globalFactory = NewDefaultFactory()
	})
	return globalFactory
}
