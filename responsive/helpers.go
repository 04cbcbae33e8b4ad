package responsive

// Numeric helpers. Each multiplies a design value by one of the current
// factors, with clamped variants for pinning results to pixel bounds.

// W scales a design width value.
func (s *Scaler) W(v float32) float32 { return v * s.ScaleW() }

// H scales a design height value.
func (s *Scaler) H(v float32) float32 { return v * s.ScaleH() }

// Sp scales a font size.
func (s *Scaler) Sp(v float32) float32 { return v * s.ScaleSp() }

// R scales a corner radius.
func (s *Scaler) R(v float32) float32 { return v * s.ScaleR() }

// WidthPercent returns p percent of the effective viewport width.
func (s *Scaler) WidthPercent(p float32) float32 {
	return p / 100 * s.EffectiveWidth()
}

// HeightPercent returns p percent of the viewport height.
func (s *Scaler) HeightPercent(p float32) float32 {
	return p / 100 * s.height
}

// ParentWidthPercent returns p percent of a parent width, for sizing
// relative to an enclosing container rather than the window. When no
// parent width is available (zero or less) it falls back to WidthPercent.
func (s *Scaler) ParentWidthPercent(p, parentWidth float32) float32 {
	if parentWidth <= 0 {
		return s.WidthPercent(p)
	}
	return p / 100 * parentWidth
}

// WMin scales a width and pins it to at least min.
func (s *Scaler) WMin(v, min float32) float32 { return atLeast(s.W(v), min) }

// WMax scales a width and pins it to at most max.
func (s *Scaler) WMax(v, max float32) float32 { return atMost(s.W(v), max) }

// WClamp scales a width and pins it to [lo, hi].
func (s *Scaler) WClamp(v, lo, hi float32) float32 { return atMost(atLeast(s.W(v), lo), hi) }

// HMin scales a height and pins it to at least min.
func (s *Scaler) HMin(v, min float32) float32 { return atLeast(s.H(v), min) }

// HMax scales a height and pins it to at most max.
func (s *Scaler) HMax(v, max float32) float32 { return atMost(s.H(v), max) }

// HClamp scales a height and pins it to [lo, hi].
func (s *Scaler) HClamp(v, lo, hi float32) float32 { return atMost(atLeast(s.H(v), lo), hi) }

// SpMin scales a font size and pins it to at least min.
func (s *Scaler) SpMin(v, min float32) float32 { return atLeast(s.Sp(v), min) }

// SpMax scales a font size and pins it to at most max.
func (s *Scaler) SpMax(v, max float32) float32 { return atMost(s.Sp(v), max) }

// SpClamp scales a font size and pins it to [lo, hi].
func (s *Scaler) SpClamp(v, lo, hi float32) float32 { return atMost(atLeast(s.Sp(v), lo), hi) }

func atLeast(v, min float32) float32 {
	if v < min {
		return min
	}
	return v
}

func atMost(v, max float32) float32 {
	if v > max {
		return max
	}
	return v
}
