// Package ui bridges the responsive scaling engine into Fyne widget trees.
//
// Container is the wiring point: drop one into a window and its builder is
// re-run with a freshly measured Scaler on every layout pass, so the subtree
// it produces always reflects the current viewport and device tier.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/IbrahimElmourchidi/px-responsive/responsive"
)

// Builder produces a subtree from the current scaler state. It runs on the
// Fyne driver goroutine during layout and must not block.
type Builder func(s *responsive.Scaler) fyne.CanvasObject

// Container measures itself each layout pass, feeds the measurement (and
// the canvas pixel ratio) into its Scaler, and rebuilds its child through
// the Builder. Consumers read the scaler inside the builder; nothing feeds
// back into the engine.
type Container struct {
	widget.BaseWidget

	scaler *responsive.Scaler
	cfg    responsive.Config
	build  Builder
}

// NewContainer creates a responsive container with its own Scaler.
func NewContainer(cfg responsive.Config, build Builder) *Container {
	c := &Container{
		scaler: responsive.New(),
		cfg:    cfg,
		build:  build,
	}
	c.ExtendBaseWidget(c)
	return c
}

// Scaler exposes the container's scaler for reads outside the builder.
func (c *Container) Scaler() *responsive.Scaler { return c.scaler }

// SetConfig swaps the active config and triggers a rebuild. Used by the
// live-reload path.
func (c *Container) SetConfig(cfg responsive.Config) {
	c.cfg = cfg
	c.Refresh()
}

// CreateRenderer returns the container's renderer.
func (c *Container) CreateRenderer() fyne.WidgetRenderer {
	c.ExtendBaseWidget(c)
	return &containerRenderer{c: c}
}

type containerRenderer struct {
	c        *Container
	child    fyne.CanvasObject
	lastSize fyne.Size
	lastCfg  responsive.Config
}

// Layout re-measures the scaler and rebuilds the child. Rebuilds are
// skipped while neither the size nor the config has changed, so scroll and
// repaint passes stay cheap.
func (r *containerRenderer) Layout(size fyne.Size) {
	if r.child == nil || size != r.lastSize || r.c.cfg != r.lastCfg {
		r.c.scaler.InitWithPixelRatio(size, r.c.cfg, r.pixelRatio())
		r.child = r.c.build(r.c.scaler)
		r.lastSize = size
		r.lastCfg = r.c.cfg
	}
	r.child.Move(fyne.NewPos(0, 0))
	r.child.Resize(size)
}

// pixelRatio reads the canvas scale, or 1 when the container is not yet
// attached to a canvas.
func (r *containerRenderer) pixelRatio() float32 {
	canvas := fyne.CurrentApp().Driver().CanvasForObject(r.c)
	if canvas == nil {
		return 1
	}
	return canvas.Scale()
}

func (r *containerRenderer) MinSize() fyne.Size {
	if r.child == nil {
		return fyne.NewSize(0, 0)
	}
	return r.child.MinSize()
}

// Refresh drops the cached child so the next layout pass rebuilds it.
func (r *containerRenderer) Refresh() {
	r.child = nil
	r.Layout(r.c.Size())
	if r.child != nil {
		r.child.Refresh()
	}
}

func (r *containerRenderer) Objects() []fyne.CanvasObject {
	if r.child == nil {
		return nil
	}
	return []fyne.CanvasObject{r.child}
}

func (r *containerRenderer) Destroy() {}
