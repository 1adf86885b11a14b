package watchclient

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrEditLocked is returned for mutations that need edit mode while it is
// locked. The gate is client-side only.
var ErrEditLocked = errors.New("edit mode is locked")

type unlocker interface {
	Unlock(ctx context.Context, password string) error
}

type editState struct {
	Unlocked   bool       `yaml:"unlocked"`
	UnlockedAt *time.Time `yaml:"unlocked_at,omitempty"`
}

// EditMode is the password-gated edit flag, persisted to a YAML file so it
// survives restarts. An empty path keeps the flag in memory only.
type EditMode struct {
	path string

	mu    sync.RWMutex
	state editState
	now   func() time.Time
}

// LoadEditMode reads the state file. A missing file means locked.
func LoadEditMode(path string) (*EditMode, error) {
	em := &EditMode{path: path, now: time.Now}
	if path == "" {
		return em, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return em, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read edit state: %w", err)
	}
	if err := yaml.Unmarshal(data, &em.state); err != nil {
		return nil, fmt.Errorf("parse edit state %s: %w", path, err)
	}
	return em, nil
}

// Unlocked reports whether edit mode is on.
func (e *EditMode) Unlocked() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Unlocked
}

// Unlock verifies the password with the server and persists the flag on
// success. On failure the state is left untouched.
func (e *EditMode) Unlock(ctx context.Context, api unlocker, password string) error {
	if err := api.Unlock(ctx, password); err != nil {
		return err
	}

	now := e.now()
	return e.set(editState{Unlocked: true, UnlockedAt: &now})
}

// Lock turns edit mode off and persists it.
func (e *EditMode) Lock() error {
	return e.set(editState{})
}

func (e *EditMode) set(s editState) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.path != "" {
		data, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("encode edit state: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(e.path), 0o700); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
		if err := os.WriteFile(e.path, data, 0o600); err != nil {
			return fmt.Errorf("write edit state: %w", err)
		}
	}
	e.state = s
	return nil
}
