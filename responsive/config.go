// Package responsive derives width, height, font and radius scale factors
// from a viewport size, relative to per-tier baseline design sizes.
//
// The entry point is Scaler: feed it the current viewport with Init, then
// read factors or scale values through W, H, Sp and R. Config carries the
// baseline sizes, tier breakpoints and clamp bounds.
package responsive

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
)

// ErrInvalidConfig is wrapped by all validation failures.
var ErrInvalidConfig = errors.New("invalid responsive config")

// Config holds the design baselines and thresholds the scaling math runs
// against. It is a plain comparable value: compare two configs with ==.
//
// Optional fields use zero as "absent": MaxWidth 0 means no width cap,
// MinScale/MaxScale 0 mean unbounded on that side, MaxTextScale 0 means
// fall back to MaxScale.
type Config struct {
	Mobile  fyne.Size // baseline design size for the mobile tier
	Tablet  fyne.Size // baseline design size for the tablet tier
	Desktop fyne.Size // baseline design size for the desktop tier

	MobileBreakpoint float32 // widths below this are mobile
	TabletBreakpoint float32 // widths below this (and >= mobile) are tablet

	MaxWidth float32 // cap on the width used for width scaling, 0 = uncapped

	MinScale     float32 // lower clamp for all factors, 0 = unbounded
	MaxScale     float32 // upper clamp for all factors, 0 = unbounded
	MaxTextScale float32 // tighter upper clamp for font scaling, 0 = MaxScale
}

// DefaultConfig returns the stock design baselines: common phone, tablet
// and full-HD desktop reference sizes with 600/1200 breakpoints.
func DefaultConfig() Config {
	return Config{
		Mobile:           fyne.NewSize(375, 812),
		Tablet:           fyne.NewSize(834, 1194),
		Desktop:          fyne.NewSize(1920, 1080),
		MobileBreakpoint: 600,
		TabletBreakpoint: 1200,
		MinScale:         0.5,
		MaxScale:         2.0,
		MaxTextScale:     1.5,
	}
}

// Validate checks the config invariants. All failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.MobileBreakpoint <= 0 {
		return fmt.Errorf("%w: mobile breakpoint must be positive, got %g", ErrInvalidConfig, c.MobileBreakpoint)
	}
	if c.TabletBreakpoint <= c.MobileBreakpoint {
		return fmt.Errorf("%w: tablet breakpoint %g must be greater than mobile breakpoint %g",
			ErrInvalidConfig, c.TabletBreakpoint, c.MobileBreakpoint)
	}
	if c.MaxWidth < 0 {
		return fmt.Errorf("%w: max width must not be negative, got %g", ErrInvalidConfig, c.MaxWidth)
	}
	if c.MinScale < 0 {
		return fmt.Errorf("%w: min scale must not be negative, got %g", ErrInvalidConfig, c.MinScale)
	}
	if c.MaxScale < 0 {
		return fmt.Errorf("%w: max scale must not be negative, got %g", ErrInvalidConfig, c.MaxScale)
	}
	if c.MinScale > 0 && c.MaxScale > 0 && c.MinScale > c.MaxScale {
		return fmt.Errorf("%w: min scale %g exceeds max scale %g", ErrInvalidConfig, c.MinScale, c.MaxScale)
	}
	if c.MaxTextScale < 0 {
		return fmt.Errorf("%w: max text scale must not be negative, got %g", ErrInvalidConfig, c.MaxTextScale)
	}
	if c.MinScale > 0 && c.MaxTextScale > 0 && c.MinScale > c.MaxTextScale {
		return fmt.Errorf("%w: min scale %g exceeds max text scale %g", ErrInvalidConfig, c.MinScale, c.MaxTextScale)
	}
	return nil
}

// Option overrides a single Config field. Options are applied to a copy,
// never to the receiver they came from.
type Option func(*Config)

// WithMobileSize overrides the mobile baseline size.
func WithMobileSize(s fyne.Size) Option { return func(c *Config) { c.Mobile = s } }

// WithTabletSize overrides the tablet baseline size.
func WithTabletSize(s fyne.Size) Option { return func(c *Config) { c.Tablet = s } }

// WithDesktopSize overrides the desktop baseline size.
func WithDesktopSize(s fyne.Size) Option { return func(c *Config) { c.Desktop = s } }

// WithBreakpoints overrides both tier breakpoints.
func WithBreakpoints(mobile, tablet float32) Option {
	return func(c *Config) {
		c.MobileBreakpoint = mobile
		c.TabletBreakpoint = tablet
	}
}

// WithMaxWidth overrides the effective-width cap. Pass 0 to remove the cap.
func WithMaxWidth(w float32) Option { return func(c *Config) { c.MaxWidth = w } }

// WithScaleBounds overrides the clamp bounds. Pass 0 for an unbounded side.
func WithScaleBounds(min, max float32) Option {
	return func(c *Config) {
		c.MinScale = min
		c.MaxScale = max
	}
}

// WithMaxTextScale overrides the font-scale upper bound. Pass 0 to fall
// back to MaxScale.
func WithMaxTextScale(m float32) Option { return func(c *Config) { c.MaxTextScale = m } }

// NewConfig builds a validated config from the defaults plus overrides.
func NewConfig(opts ...Option) (Config, error) {
	return DefaultConfig().With(opts...)
}

// With returns a copy of the config with the given overrides applied,
// re-validated. The receiver is left untouched.
func (c Config) With(opts ...Option) (Config, error) {
	out := c
	for _, opt := range opts {
		opt(&out)
	}
	if err := out.Validate(); err != nil {
		return Config{}, err
	}
	return out, nil
}
