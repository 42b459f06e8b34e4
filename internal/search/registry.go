package search

import (
	"fmt"
	"sort"
	"sync"
)

// StrategyFactory manages the registration and retrieval of search
// strategies by name.
type StrategyFactory interface {
	// Create returns a new instance of the named strategy.
	Create(name string) (Strategy, error)

	// Get returns a cached instance of the named strategy, creating it on
	// first use.
	Get(name string) (Strategy, error)

	// List returns the names of all registered strategies in sorted order.
	List() []string

	// Register adds a strategy constructor under the given name.
	Register(name string, creator func() Strategy) error

	// Has reports whether a strategy is registered under the given name.
	Has(name string) bool
}

// DefaultFactory is the standard StrategyFactory implementation. It is safe
// for concurrent use.
type DefaultFactory struct {
	mu         sync.RWMutex
	creators   map[string]func() Strategy
	strategies map[string]Strategy
}

// NewDefaultFactory returns a factory with every built-in search strategy
// pre-registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:   make(map[string]func() Strategy),
		strategies: make(map[string]Strategy),
	}
	_ = f.Register("naive", func() Strategy { return &NaiveSearch{} })
	_ = f.Register("firstbyte", func() Strategy { return &FirstByteSearch{} })
	_ = f.Register("kmp", func() Strategy { return &KMPSearch{} })
	_ = f.Register("boyermoore", func() Strategy { return &BoyerMooreSearch{} })
	_ = f.Register("rabinkarp", func() Strategy { return &RabinKarpSearch{} })
	return f
}

// Create implements the StrategyFactory interface.
func (f *DefaultFactory) Create(name string) (Strategy, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown search strategy: %q", name)
	}
	return creator(), nil
}

// Get implements the StrategyFactory interface.
func (f *DefaultFactory) Get(name string) (Strategy, error) {
	f.mu.RLock()
	if s, ok := f.strategies[name]; ok {
		f.mu.RUnlock()
		return s, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.strategies[name]; ok {
		return s, nil
	}
	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown search strategy: %q", name)
	}
	s := creator()
	f.strategies[name] = s
	return s, nil
}

// List implements the StrategyFactory interface.
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

// Register implements the StrategyFactory interface. Re-registering a name
// replaces the previous creator and invalidates its cached instance.
func (f *DefaultFactory) Register(name string, creator func() Strategy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creators[name] = creator
	delete(f.strategies, name)
	return nil
}

// Has implements the StrategyFactory interface.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.creators[name]
	return ok
}

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
