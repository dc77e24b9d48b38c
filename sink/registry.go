// Package sink keeps a registry of canvases a playback can be replayed
// onto.
//
// Sinks register themselves from init, following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/cmdlog/sink/raster" // Register "raster"
//
//	c, err := sink.New("raster", 800, 600)
//	if err != nil {
//	    // Handle error - sink not registered
//	}
//	pb.Replay(c)
package sink

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/cmdlog"
)

// ErrUnknownSink is returned by New for a name nobody registered.
var ErrUnknownSink = errors.New("sink: unknown sink")

// Factory creates a canvas of the given size.
type Factory func(width, height int) cmdlog.Canvas

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a sink available under name. It panics if factory is nil
// or the name is taken, so that clashes surface during initialization.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("sink: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("sink: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a sink. Mostly useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates a sink by name.
func New(name string, width, height int) (cmdlog.Canvas, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownSink, name)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sink: invalid size %dx%d for %q", width, height, name)
	}
	return factory(width, height), nil
}

// Names returns the registered sink names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a sink is registered under name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
