// ABOUTME: AppDeps bundles everything the TUI needs from the outside world
// ABOUTME: Constructed once in main and threaded through the model tree

package tui

import (
	"github.com/lectern/lectern/internal/catalog"
	"github.com/lectern/lectern/internal/config"
	"github.com/lectern/lectern/internal/player"
	"github.com/lectern/lectern/pkg/theme"
)

// AppDeps carries the app's external dependencies. A single value is shared
// by pointer across the model tree so hot-reloaded settings are visible
// everywhere.
type AppDeps struct {
	Catalog  *catalog.Catalog
	Settings *config.Settings
	Player   *player.Launcher
	Mode     theme.Mode
	Version  string
}
