package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManagerLoadAll(t *testing.T) {
	t.Run("Loads enabled features in order", func(t *testing.T) {
		mgr := NewManager()
		a := &stubFeature{name: "a", enabled: true}
		b := &stubFeature{name: "b", enabled: true}
		mgr.Register(a)
		mgr.Register(b)

		err := mgr.LoadAll(fiber.New())
		assert.NoError(t, err)
		assert.True(t, a.loaded)
		assert.True(t, b.loaded)
	})

	t.Run("Skips disabled features", func(t *testing.T) {
		mgr := NewManager()
		disabled := &stubFeature{name: "off", enabled: false}
		mgr.Register(disabled)

		err := mgr.LoadAll(fiber.New())
		assert.NoError(t, err)
		assert.False(t, disabled.loaded)
	})

	t.Run("Stops at first load error", func(t *testing.T) {
		mgr := NewManager()
		failing := &stubFeature{name: "bad", enabled: true, loadErr: errors.New("boom")}
		after := &stubFeature{name: "after", enabled: true}
		mgr.Register(failing)
		mgr.Register(after)

		err := mgr.LoadAll(fiber.New())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "bad")
		assert.False(t, after.loaded)
	})
}
