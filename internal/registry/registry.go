// Package registry provides a global registry for content source factories.
// Sources register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tunehunt/internal/content"
)

// ErrUnknownSource is returned by Create for unregistered names.
var ErrUnknownSource = errors.New("registry: unknown content source")

// Options carries the settings a factory may need.
type Options struct {
	URL         string
	File        string
	CatalogPath string
	Timeout     time.Duration
	Logger      *log.Logger
}

// SourceInfo contains metadata about a registered source.
type SourceInfo struct {
	Name        string
	Description string
}

// Factory creates a configured content source.
type Factory func(opts Options) (content.Source, error)

type entry struct {
	factory     Factory
	description string
}

var (
	factories = make(map[string]entry)
	mu        sync.RWMutex
)

// Register adds a source factory to the registry.
// Typically called from a source package's init() function.
// Panics if a source with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: source %q already registered", name))
	}

	factories[name] = entry{factory: f, description: description}
}

// List returns information about all registered sources, sorted by name.
func List() []SourceInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SourceInfo, 0, len(factories))
	for name, e := range factories {
		result = append(result, SourceInfo{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a source by name.
func Create(name string, opts Options) (content.Source, error) {
	mu.RLock()
	e, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSource, name)
	}

	src, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create source %q: %w", name, err)
	}
	return src, nil
}

// Exists checks if a source with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
