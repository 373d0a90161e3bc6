// Package mods tracks the mod list shown by the view and which enable
// toggles have not been saved yet.
package mods

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrModNotFound is returned when no mod has the requested unique ID.
	ErrModNotFound = errors.New("mod not found")

	// ErrInvalidModList is returned by SetMods for empty or repeated unique IDs.
	ErrInvalidModList = errors.New("invalid mod list")
)

// ModInfo describes one installed mod. JSON names follow the mod manifest
// fields the front-end already uses.
type ModInfo struct {
	Name              string   `json:"name"`
	Author            string   `json:"author"`
	Version           string   `json:"version"`
	Description       string   `json:"description"`
	UniqueID          string   `json:"uniqueId"`
	MinimumAPIVersion string   `json:"MinimumApiVersion"`
	UpdateKeys        []string `json:"UpdateKeys"`
	LastUpdate        string   `json:"last_update"`
	Enabled           bool     `json:"enabled"`
	Updatable         bool     `json:"updatable"`
}

func (m ModInfo) clone() ModInfo {
	m.UpdateKeys = slices.Clone(m.UpdateKeys)
	if m.UpdateKeys == nil {
		m.UpdateKeys = []string{}
	}
	return m
}

// Catalog holds the current mod list and a snapshot of each mod's enabled
// flag as of the last save.
type Catalog struct {
	mu    sync.RWMutex
	mods  []ModInfo
	saved map[string]bool
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{saved: map[string]bool{}}
}

// SetMods replaces the mod list and marks it saved.
func (c *Catalog) SetMods(list []ModInfo) error {
	seen := make(map[string]struct{}, len(list))
	next := make([]ModInfo, 0, len(list))
	for i, m := range list {
		if m.UniqueID == "" {
			return fmt.Errorf("%w: mod at index %d has no uniqueId", ErrInvalidModList, i)
		}
		if _, dup := seen[m.UniqueID]; dup {
			return fmt.Errorf("%w: duplicate uniqueId %q", ErrInvalidModList, m.UniqueID)
		}
		seen[m.UniqueID] = struct{}{}
		next = append(next, m.clone())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.mods = next
	c.markSavedLocked()
	return nil
}

// List returns a copy of the mod list in the order it was set.
func (c *Catalog) List() []ModInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]ModInfo, len(c.mods))
	for i, m := range c.mods {
		out[i] = m.clone()
	}
	return out
}

// Toggle flips the enabled flag of the mod with the given unique ID and
// returns the new value.
func (c *Catalog) Toggle(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.mods {
		if c.mods[i].UniqueID == id {
			c.mods[i].Enabled = !c.mods[i].Enabled
			return c.mods[i].Enabled, nil
		}
	}
	return false, fmt.Errorf("%w: %s", ErrModNotFound, id)
}

// MarkSaved records the current enabled flags as the saved state.
func (c *Catalog) MarkSaved() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markSavedLocked()
}

func (c *Catalog) markSavedLocked() {
	c.saved = make(map[string]bool, len(c.mods))
	for _, m := range c.mods {
		c.saved[m.UniqueID] = m.Enabled
	}
}

// EnabledIDs returns the unique IDs of enabled mods in list order. The
// result is never nil.
func (c *Catalog) EnabledIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := []string{}
	for _, m := range c.mods {
		if m.Enabled {
			ids = append(ids, m.UniqueID)
		}
	}
	return ids
}

// HasUnsavedChanges reports whether any enabled flag differs from the last
// saved state.
func (c *Catalog) HasUnsavedChanges() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, m := range c.mods {
		if saved, ok := c.saved[m.UniqueID]; !ok || saved != m.Enabled {
			return true
		}
	}
	return false
}
