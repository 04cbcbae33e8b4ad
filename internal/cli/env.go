package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/IbrahimElmourchidi/px-responsive/responsive"
)

// envOverrides maps PXR_* variables onto config fields. Pointer fields
// stay nil when the variable is unset, so an explicit 0 (remove a cap)
// is distinguishable from absence.
type envOverrides struct {
	ConfigPath       *string  `env:"PXR_CONFIG"`
	MaxWidth         *float32 `env:"PXR_MAX_WIDTH"`
	MobileBreakpoint *float32 `env:"PXR_MOBILE_BREAKPOINT"`
	TabletBreakpoint *float32 `env:"PXR_TABLET_BREAKPOINT"`
	MinScale         *float32 `env:"PXR_MIN_SCALE"`
	MaxScale         *float32 `env:"PXR_MAX_SCALE"`
	MaxTextScale     *float32 `env:"PXR_MAX_TEXT_SCALE"`
}

// LoadDemoConfig layers the demo config: defaults, then the token file
// (the -config flag, or PXR_CONFIG when the flag is empty), then PXR_*
// field overrides. The merged result is validated. The returned path is
// the token file actually used, for the -watch path.
func LoadDemoConfig(flagPath string) (responsive.Config, string, error) {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return responsive.Config{}, "", fmt.Errorf("parse env: %w", err)
	}

	path := flagPath
	if path == "" && ov.ConfigPath != nil {
		path = *ov.ConfigPath
	}

	cfg := responsive.DefaultConfig()
	if path != "" {
		var err error
		cfg, err = responsive.LoadConfig(path)
		if err != nil {
			return responsive.Config{}, "", err
		}
	}

	if ov.MaxWidth != nil {
		cfg.MaxWidth = *ov.MaxWidth
	}
	if ov.MobileBreakpoint != nil {
		cfg.MobileBreakpoint = *ov.MobileBreakpoint
	}
	if ov.TabletBreakpoint != nil {
		cfg.TabletBreakpoint = *ov.TabletBreakpoint
	}
	if ov.MinScale != nil {
		cfg.MinScale = *ov.MinScale
	}
	if ov.MaxScale != nil {
		cfg.MaxScale = *ov.MaxScale
	}
	if ov.MaxTextScale != nil {
		cfg.MaxTextScale = *ov.MaxTextScale
	}

	if err := cfg.Validate(); err != nil {
		return responsive.Config{}, "", err
	}
	return cfg, path, nil
}
