package wailsapp

import "github.com/valleykit/modshell/internal/mods"

// ModsStateDTO summarizes the enable toggles for the save bar.
type ModsStateDTO struct {
	EnabledIDs        []string `json:"enabledIds"`
	HasUnsavedChanges bool     `json:"hasUnsavedChanges"`
}

func (a *App) modsState() ModsStateDTO {
	return ModsStateDTO{
		EnabledIDs:        a.mods.EnabledIDs(),
		HasUnsavedChanges: a.mods.HasUnsavedChanges(),
	}
}

// ListMods returns the current mod list.
func (a *App) ListMods() []mods.ModInfo {
	return a.mods.List()
}

// SetMods replaces the mod list and records it as saved.
func (a *App) SetMods(list []mods.ModInfo) (ModsStateDTO, error) {
	if err := a.mods.SetMods(list); err != nil {
		a.logger.Warn().Err(err).Msg("Rejected mod list")
		return ModsStateDTO{}, err
	}
	a.logger.Debug().Int("count", len(list)).Msg("Mod list replaced")
	return a.modsState(), nil
}

// ToggleMod flips the enabled flag of one mod.
func (a *App) ToggleMod(id string) (ModsStateDTO, error) {
	enabled, err := a.mods.Toggle(id)
	if err != nil {
		return ModsStateDTO{}, err
	}
	a.logger.Debug().Str("mod", id).Bool("enabled", enabled).Msg("Mod toggled")
	return a.modsState(), nil
}

// MarkModsSaved records the current enable toggles as saved.
func (a *App) MarkModsSaved() ModsStateDTO {
	a.mods.MarkSaved()
	return a.modsState()
}

// GetModsState returns the enabled IDs and whether they differ from the
// last save.
func (a *App) GetModsState() ModsStateDTO {
	return a.modsState()
}
