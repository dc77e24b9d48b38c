package sink

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/cmdlog"
	"github.com/gogpu/cmdlog/recorder"
)

// resetRegistry clears all registered sinks for test isolation.
func resetRegistry(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	saved := factories
	factories = make(map[string]Factory)
	registryMu.Unlock()

	t.Cleanup(func() {
		registryMu.Lock()
		factories = saved
		registryMu.Unlock()
	})
}

func newRecorder(width, height int) cmdlog.Canvas {
	return recorder.New(width, height)
}

func TestRegisterAndNew(t *testing.T) {
	resetRegistry(t)
	Register("rec", newRecorder)

	c, err := New("rec", 30, 20)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	r, ok := c.(*recorder.Recorder)
	if !ok {
		t.Fatalf("New() = %T, want *recorder.Recorder", c)
	}
	if r.Width() != 30 || r.Height() != 20 {
		t.Errorf("size = %dx%d, want 30x20", r.Width(), r.Height())
	}
}

func TestNewErrors(t *testing.T) {
	resetRegistry(t)
	Register("rec", newRecorder)

	if _, err := New("missing", 10, 10); !errors.Is(err, ErrUnknownSink) {
		t.Errorf("New(missing) error = %v, want ErrUnknownSink", err)
	}
	if _, err := New("rec", 0, 10); err == nil {
		t.Error("New with zero width should fail")
	}
}

func TestRegisterPanics(t *testing.T) {
	resetRegistry(t)

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil factory", func() { Register("nil", nil) }},
		{"duplicate", func() {
			Register("dup", newRecorder)
			Register("dup", newRecorder)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestNamesAndUnregister(t *testing.T) {
	resetRegistry(t)
	Register("b", newRecorder)
	Register("a", newRecorder)

	if got := Names(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v", got)
	}
	Unregister("a")
	Unregister("never-registered")
	if IsRegistered("a") || !IsRegistered("b") {
		t.Errorf("after Unregister: Names() = %v", Names())
	}
}
