// Package theme holds the active visual skin used to resolve style
// descriptors.
package theme

import (
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	kiterrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Theme identifies one skin of the kit.
type Theme string

const (
	IOS      Theme = "ios"
	Material Theme = "material"
)

// All returns every supported theme in declaration order.
func All() []Theme {
	return []Theme{IOS, Material}
}

// Valid reports whether t belongs to the supported set.
func (t Theme) Valid() bool {
	switch t {
	case IOS, Material:
		return true
	default:
		return false
	}
}

// Validate returns an UnknownThemeError when t is not supported.
func (t Theme) Validate() error {
	if !t.Valid() {
		return kiterrors.NewUnknownThemeError(string(t))
	}
	return nil
}

func (t Theme) String() string {
	return string(t)
}

// Parse converts user input into a Theme.
func Parse(value string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(value)))
	if err := t.Validate(); err != nil {
		return "", kiterrors.NewUnknownThemeError(value)
	}
	return t, nil
}

// Flags forces a theme for a single call, overriding the process default.
type Flags struct {
	IOS      bool
	Material bool
}

// Forced reports whether any theme is forced.
func (f Flags) Forced() bool {
	return f.IOS || f.Material
}

// Select picks the theme for one call. The iOS flag takes precedence over the
// Material flag, which takes precedence over def. Forcing both is tolerated:
// iOS wins and a warning is logged.
func Select(flags Flags, def Theme, log *logger.Logger) Theme {
	switch {
	case !flags.Forced():
		return def
	case flags.IOS && flags.Material:
		log.Theme(IOS.String()).
			WarnErr(kiterrors.NewAmbiguousThemeOverrideError(string(IOS), string(Material)), "both themes forced")
		return IOS
	case flags.IOS:
		return IOS
	default:
		return Material
	}
}

// Manager coordinates access to the process-wide default theme. The default
// is written during start-up and read on every resolution.
type Manager struct {
	mu  sync.RWMutex
	def Theme
}

// NewManager allocates a Manager. An empty def leaves it unconfigured.
func NewManager(def Theme) (*Manager, error) {
	if def != "" {
		if err := def.Validate(); err != nil {
			return nil, err
		}
	}
	return &Manager{def: def}, nil
}

// SetDefault replaces the default theme.
func (m *Manager) SetDefault(t Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	m.def = t
	m.mu.Unlock()
	return nil
}

// Default returns the configured default, or "" when unconfigured.
func (m *Manager) Default() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// Active resolves flags against the managed default.
func (m *Manager) Active(flags Flags, log *logger.Logger) Theme {
	return Select(flags, m.Default(), log)
}

var defaultManager = &Manager{}

// SetDefault sets the process-wide default theme.
func SetDefault(t Theme) error {
	return defaultManager.SetDefault(t)
}

// Default returns the process-wide default theme.
func Default() Theme {
	return defaultManager.Default()
}

// Active resolves flags against the process-wide default.
func Active(flags Flags, log *logger.Logger) Theme {
	return defaultManager.Active(flags, log)
}
