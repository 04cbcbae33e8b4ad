package responsive

import "fyne.io/fyne/v2"

// Scaler computes scale factors for the most recently seen viewport.
//
// It is a plain context object: construct one per window (or layout scope)
// and pass it to whatever needs scaled values. Init overwrites the whole
// state, so calling it once per layout pass keeps every read consistent
// with the pass that produced it.
//
// A Scaler is not safe for concurrent use. It is meant to live on the Fyne
// driver goroutine, written and read between layout passes.
type Scaler struct {
	cfg         Config
	width       float32
	height      float32
	pixelRatio  float32
	initialized bool
}

// New returns a Scaler carrying the default config and zero measurements.
// Reads before Init are valid: dimensions report 0 and factors derive from
// a zero-width viewport. The zero Scaler value also works; it differs from
// New only in carrying a zero config.
func New() *Scaler {
	return &Scaler{cfg: DefaultConfig()}
}

// Init records the viewport and config with a pixel ratio of 1.
func (s *Scaler) Init(viewport fyne.Size, cfg Config) {
	s.InitWithPixelRatio(viewport, cfg, 1)
}

// InitWithPixelRatio records the viewport, config and device pixel ratio.
// A pixel ratio of zero or less is stored as 1.
func (s *Scaler) InitWithPixelRatio(viewport fyne.Size, cfg Config, pixelRatio float32) {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	s.cfg = cfg
	s.width = viewport.Width
	s.height = viewport.Height
	s.pixelRatio = pixelRatio
	s.initialized = true
}

// Reset restores the New() state: default config, zero measurements,
// uninitialized.
func (s *Scaler) Reset() {
	*s = Scaler{cfg: DefaultConfig()}
}

// Initialized reports whether Init has run since construction or Reset.
func (s *Scaler) Initialized() bool { return s.initialized }

// Config returns the active config.
func (s *Scaler) Config() Config { return s.cfg }

// ViewportWidth returns the last measured viewport width.
func (s *Scaler) ViewportWidth() float32 { return s.width }

// ViewportHeight returns the last measured viewport height.
func (s *Scaler) ViewportHeight() float32 { return s.height }

// PixelRatio returns the last recorded device pixel ratio, or 0 before Init.
func (s *Scaler) PixelRatio() float32 { return s.pixelRatio }

// EffectiveWidth is the width used for width scaling: the measured width,
// capped at Config.MaxWidth when a cap is set.
func (s *Scaler) EffectiveWidth() float32 {
	if s.cfg.MaxWidth > 0 && s.width > s.cfg.MaxWidth {
		return s.cfg.MaxWidth
	}
	return s.width
}

// Tier classifies the current viewport. Classification deliberately uses
// the raw measured width, not EffectiveWidth: a viewport wider than the
// MaxWidth cap still counts as the tier its real width puts it in, even
// though its width factor is computed from the capped value.
func (s *Scaler) Tier() Tier { return s.cfg.TierFor(s.width) }

// IsMobile reports whether the current tier is mobile.
func (s *Scaler) IsMobile() bool { return s.Tier() == TierMobile }

// IsTablet reports whether the current tier is tablet.
func (s *Scaler) IsTablet() bool { return s.Tier() == TierTablet }

// IsDesktop reports whether the current tier is desktop.
func (s *Scaler) IsDesktop() bool { return s.Tier() == TierDesktop }

// BaseSize returns the baseline design size for the current tier.
func (s *Scaler) BaseSize() fyne.Size {
	switch s.Tier() {
	case TierTablet:
		return s.cfg.Tablet
	case TierDesktop:
		return s.cfg.Desktop
	default:
		return s.cfg.Mobile
	}
}

// VisibleOn reports whether the current tier is one of the given tiers.
func (s *Scaler) VisibleOn(tiers ...Tier) bool {
	current := s.Tier()
	for _, t := range tiers {
		if t == current {
			return true
		}
	}
	return false
}

// rawScaleW is effective width over baseline width. A degenerate baseline
// (zero width) yields a neutral 1 instead of dividing by zero.
func (s *Scaler) rawScaleW() float32 {
	base := s.BaseSize()
	if base.Width <= 0 {
		return 1
	}
	return s.EffectiveWidth() / base.Width
}

// rawScaleH is viewport height over baseline height, with the same
// degenerate-baseline guard as rawScaleW.
func (s *Scaler) rawScaleH() float32 {
	base := s.BaseSize()
	if base.Height <= 0 {
		return 1
	}
	return s.height / base.Height
}

// ScaleW is the clamped width factor.
func (s *Scaler) ScaleW() float32 {
	return clamp(s.rawScaleW(), s.cfg.MinScale, s.cfg.MaxScale)
}

// ScaleH is the clamped height factor.
func (s *Scaler) ScaleH() float32 {
	return clamp(s.rawScaleH(), s.cfg.MinScale, s.cfg.MaxScale)
}

// ScaleR is the clamped radius factor: the smaller of the raw width and
// height factors, so rounded corners never outgrow the tighter axis.
func (s *Scaler) ScaleR() float32 {
	raw := s.rawScaleW()
	if h := s.rawScaleH(); h < raw {
		raw = h
	}
	return clamp(raw, s.cfg.MinScale, s.cfg.MaxScale)
}

// ScaleSp is the clamped font factor. It follows the width factor but its
// upper bound is MaxTextScale when set, keeping text readable on very wide
// viewports even when general scaling is allowed to run higher.
func (s *Scaler) ScaleSp() float32 {
	upper := s.cfg.MaxTextScale
	if upper <= 0 {
		upper = s.cfg.MaxScale
	}
	return clamp(s.rawScaleW(), s.cfg.MinScale, upper)
}

// clamp bounds v below by lo and above by hi; a bound of zero or less is
// treated as absent.
func clamp(v, lo, hi float32) float32 {
	if lo > 0 && v < lo {
		v = lo
	}
	if hi > 0 && v > hi {
		v = hi
	}
	return v
}
