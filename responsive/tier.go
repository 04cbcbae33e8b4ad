package responsive

// Tier is a device class derived from viewport width. It is always
// recomputed from the current width, never cached.
type Tier int

const (
	TierMobile Tier = iota
	TierTablet
	TierDesktop
)

func (t Tier) String() string {
	switch t {
	case TierMobile:
		return "mobile"
	case TierTablet:
		return "tablet"
	case TierDesktop:
		return "desktop"
	}
	return "unknown"
}

// TierFor classifies a viewport width against the config's breakpoints.
func (c Config) TierFor(width float32) Tier {
	switch {
	case width < c.MobileBreakpoint:
		return TierMobile
	case width < c.TabletBreakpoint:
		return TierTablet
	default:
		return TierDesktop
	}
}

// Choice holds one alternative per tier. Mobile is required; Tablet and
// Desktop are optional and fall back down the chain when nil: desktop uses
// tablet's value if unset, tablet uses mobile's.
type Choice[T any] struct {
	Mobile  T
	Tablet  *T
	Desktop *T
}

// Of returns a pointer to v, for filling the optional Choice fields inline.
func Of[T any](v T) *T { return &v }

// For resolves the choice for a tier, applying the fallback chain.
func (c Choice[T]) For(tier Tier) T {
	switch tier {
	case TierDesktop:
		if c.Desktop != nil {
			return *c.Desktop
		}
		fallthrough
	case TierTablet:
		if c.Tablet != nil {
			return *c.Tablet
		}
	}
	return c.Mobile
}

// Pick resolves a per-tier choice against the scaler's current tier.
// Methods cannot be generic, hence the package-level function.
func Pick[T any](s *Scaler, c Choice[T]) T {
	return c.For(s.Tier())
}
