// Package preset persists studio parameters between runs.
package preset

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/asaro-studio/internal/logger"
	"github.com/Faultbox/asaro-studio/internal/params"
)

// Storage layout.
const (
	sessionObject   = "session"
	sessionProperty = "last"
	presetObject    = "presets"
)

// Manager saves and loads parameter sets. Without a data directory
// everything is kept in memory for the lifetime of the manager.
type Manager struct {
	data *gdata.Manager
	mem  map[string][]byte
}

// Open creates a manager backed by the per-user data directory of appName.
func Open(appName string) (*Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open preset storage: %w", err)
	}
	return &Manager{data: m}, nil
}

// NewMemory creates a manager that never touches disk.
func NewMemory() *Manager {
	return &Manager{mem: make(map[string][]byte)}
}

// Persistent reports whether the manager writes to disk.
func (m *Manager) Persistent() bool {
	return m.data != nil
}

// Load returns the last saved session. ok is false when nothing was saved.
func (m *Manager) Load() (s params.State, ok bool, err error) {
	return m.load(sessionObject, sessionProperty)
}

// Save stores s as the last session.
func (m *Manager) Save(s params.State) error {
	return m.save(sessionObject, sessionProperty, s)
}

// LoadNamed returns the preset called name.
func (m *Manager) LoadNamed(name string) (params.State, bool, error) {
	return m.load(presetObject, name)
}

// SaveNamed stores s under name.
func (m *Manager) SaveNamed(name string, s params.State) error {
	if name == "" {
		return fmt.Errorf("preset name is empty")
	}
	return m.save(presetObject, name, s)
}

func (m *Manager) load(object, prop string) (params.State, bool, error) {
	data, ok, err := m.read(object, prop)
	if err != nil || !ok {
		return params.State{}, false, err
	}

	s := params.Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return params.State{}, false, fmt.Errorf("decode %s/%s: %w", object, prop, err)
	}

	logger.Debug("preset loaded", zap.String("object", object), zap.String("name", prop))
	return s.Sanitize(), true, nil
}

func (m *Manager) save(object, prop string, s params.State) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", object, prop, err)
	}
	if err := m.write(object, prop, data); err != nil {
		return fmt.Errorf("save %s/%s: %w", object, prop, err)
	}

	logger.Debug("preset saved", zap.String("object", object), zap.String("name", prop))
	return nil
}

func (m *Manager) read(object, prop string) ([]byte, bool, error) {
	if m.data == nil {
		data, ok := m.mem[object+"/"+prop]
		return data, ok, nil
	}
	if !m.data.ObjectPropExists(object, prop) {
		return nil, false, nil
	}
	data, err := m.data.LoadObjectProp(object, prop)
	if err != nil {
		return nil, false, fmt.Errorf("load %s/%s: %w", object, prop, err)
	}
	return data, true, nil
}

func (m *Manager) write(object, prop string, data []byte) error {
	if m.data == nil {
		if m.mem == nil {
			m.mem = make(map[string][]byte)
		}
		m.mem[object+"/"+prop] = data
		return nil
	}
	return m.data.SaveObjectProp(object, prop, data)
}
