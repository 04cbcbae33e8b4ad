package responsive

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML design-token schema. Pointer fields
// distinguish "key absent, keep the default" from an explicit zero
// (which removes a cap or bound).
type fileConfig struct {
	Mobile  *fileSize `yaml:"mobile"`
	Tablet  *fileSize `yaml:"tablet"`
	Desktop *fileSize `yaml:"desktop"`

	Breakpoints *struct {
		Mobile *float32 `yaml:"mobile"`
		Tablet *float32 `yaml:"tablet"`
	} `yaml:"breakpoints"`

	MaxWidth *float32 `yaml:"max_width"`

	Scale *struct {
		Min     *float32 `yaml:"min"`
		Max     *float32 `yaml:"max"`
		MaxText *float32 `yaml:"max_text"`
	} `yaml:"scale"`
}

type fileSize struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// LoadConfig reads a YAML design-token file and returns the resulting
// config. Keys absent from the file keep their DefaultConfig values.
// The merged result is validated before being returned.
//
// Schema:
//
//	mobile:      {width: 375, height: 812}
//	tablet:      {width: 834, height: 1194}
//	desktop:     {width: 1920, height: 1080}
//	breakpoints: {mobile: 600, tablet: 1200}
//	max_width:   1600
//	scale:       {min: 0.5, max: 2.0, max_text: 1.5}
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML design tokens, merged over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := DefaultConfig()
	if fc.Mobile != nil {
		cfg.Mobile = fyne.NewSize(fc.Mobile.Width, fc.Mobile.Height)
	}
	if fc.Tablet != nil {
		cfg.Tablet = fyne.NewSize(fc.Tablet.Width, fc.Tablet.Height)
	}
	if fc.Desktop != nil {
		cfg.Desktop = fyne.NewSize(fc.Desktop.Width, fc.Desktop.Height)
	}
	if fc.Breakpoints != nil {
		if fc.Breakpoints.Mobile != nil {
			cfg.MobileBreakpoint = *fc.Breakpoints.Mobile
		}
		if fc.Breakpoints.Tablet != nil {
			cfg.TabletBreakpoint = *fc.Breakpoints.Tablet
		}
	}
	if fc.MaxWidth != nil {
		cfg.MaxWidth = *fc.MaxWidth
	}
	if fc.Scale != nil {
		if fc.Scale.Min != nil {
			cfg.MinScale = *fc.Scale.Min
		}
		if fc.Scale.Max != nil {
			cfg.MaxScale = *fc.Scale.Max
		}
		if fc.Scale.MaxText != nil {
			cfg.MaxTextScale = *fc.Scale.MaxText
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
