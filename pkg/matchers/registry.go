package matchers

import (
	"sort"
	"sync"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/a11y"
	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/logging"
)

// Registry is a table of named matcher factories plus the
// collaborators their matchers draw on. It is safe for
// concurrent use: the table is written during test setup and
// read afterwards.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	scanner   Scanner
	resources ResourceService
	logger    logging.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithScanner sets the accessibility scanner used by the
// accessible matcher.
func WithScanner(s Scanner) RegistryOption {
	return func(r *Registry) {
		r.scanner = s
	}
}

// WithResources sets the resource lookup service used by the
// resource text matchers.
func WithResources(svc ResourceService) RegistryOption {
	return func(r *Registry) {
		r.resources = svc
	}
}

// WithLogger sets the logger used for registry diagnostics.
func WithLogger(logger logging.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		logger:    logging.NullLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default is the package-level registry behind the top-level
// Expect and Install helpers.
var Default = NewRegistry(
	WithScanner(a11y.NewRuleScanner()),
)

// Register installs factories into the registry. Registering
// the same name again simply overwrites the entry, so invoking
// Register from a per-test setup hook is idempotent.
func (r *Registry) Register(factories map[string]Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, factory := range factories {
		r.factories[name] = factory
	}
}

// Has reports whether a matcher is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered matcher names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Matcher builds a fresh Matcher for name. The second return
// value is false when no factory is registered under name.
func (r *Registry) Matcher(name string) (Matcher, bool) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return factory(), true
}

// SetScanner replaces the accessibility scanner.
func (r *Registry) SetScanner(s Scanner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scanner = s
}

// SetResources replaces the resource lookup service.
func (r *Registry) SetResources(svc ResourceService) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources = svc
}

// context assembles the collaborator set handed to a matcher
// for one comparison.
func (r *Registry) context(sink FailSink) Context {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Context{
		Sink:      sink,
		Scanner:   r.scanner,
		Resources: r.resources,
	}
}

// Factories returns the full table of built-in matcher
// factories, keyed by the names the expectation builder
// dispatches on.
func Factories() map[string]Factory {
	return map[string]Factory{
		NameVisible:                func() Matcher { return matcherFunc(compareVisible) },
		NameExists:                 func() Matcher { return matcherFunc(compareExists) },
		NameHasCssClass:            func() Matcher { return matcherFunc(compareHasCssClass) },
		NameHasStyle:               func() Matcher { return matcherFunc(compareHasStyle) },
		NameHasText:                func() Matcher { return matcherFunc(compareHasText) },
		NameAccessible:             func() Matcher { return matcherFunc(compareAccessible) },
		NameResourceTextEquals:     func() Matcher { return matcherFunc(compareResourceTextEquals) },
		NameElementHasResourceText: func() Matcher { return matcherFunc(compareElementHasResourceText) },
	}
}

// Install registers the built-in factories into the default
// registry. Call it from a per-test setup hook; repeat calls
// are no-ops in effect.
func Install() {
	Default.Register(Factories())
}

// Expect starts an expectation on actual against the default
// registry, reporting failures to sink.
func Expect(sink FailSink, actual any) *Expectation {
	return Default.Expect(sink, actual)
}
