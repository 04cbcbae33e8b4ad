package ui

import (
	"fyne.io/fyne/v2"

	"github.com/IbrahimElmourchidi/px-responsive/responsive"
)

// ApplyVisibility shows obj when the scaler's current tier is one of the
// given tiers and hides it otherwise. Call it inside a Builder so the
// decision tracks every layout pass.
func ApplyVisibility(s *responsive.Scaler, obj fyne.CanvasObject, tiers ...responsive.Tier) {
	if s.VisibleOn(tiers...) {
		obj.Show()
	} else {
		obj.Hide()
	}
}

// OnlyOn returns obj on the given tiers and nil otherwise, for building
// tier-dependent slices of canvas objects. Callers must drop nil entries.
func OnlyOn(s *responsive.Scaler, obj fyne.CanvasObject, tiers ...responsive.Tier) fyne.CanvasObject {
	if s.VisibleOn(tiers...) {
		return obj
	}
	return nil
}
