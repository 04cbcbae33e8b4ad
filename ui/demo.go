package ui

import (
	"fmt"
	"image/color"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/IbrahimElmourchidi/px-responsive/responsive"
)

// BuildDemoWindow creates the demo window: a responsive container whose
// subtree re-renders with live tier and factor readouts as the window is
// resized. When configPath is non-empty the design tokens hot-reload from
// that file.
func BuildDemoWindow(a fyne.App, cfg responsive.Config, configPath string) fyne.Window {
	win := a.NewWindow("px-responsive demo")
	win.Resize(NewDemoWindowSize())

	rc := NewContainer(cfg, buildDemoView)
	win.SetContent(rc)

	if configPath != "" {
		w, err := responsive.WatchConfig(configPath, func(next responsive.Config) {
			fyne.Do(func() { rc.SetConfig(next) })
		}, responsive.WithErrorHandler(func(err error) {
			fmt.Fprintf(os.Stderr, "config reload: %v\n", err)
		}))
		if err != nil {
			fmt.Fprintf(os.Stderr, "config watch disabled: %v\n", err)
		} else {
			win.SetCloseIntercept(func() {
				w.Close()
				win.Close()
			})
		}
	}

	return win
}

var demoTierColors = map[responsive.Tier]color.Color{
	responsive.TierMobile:  color.NRGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff},
	responsive.TierTablet:  color.NRGBA{R: 0x15, G: 0x65, B: 0xc0, A: 0xff},
	responsive.TierDesktop: color.NRGBA{R: 0x6a, G: 0x1b, B: 0x9a, A: 0xff},
}

// buildDemoView renders one card sized through the scaler plus a readout
// of every derived quantity. Rebuilt on each layout pass by the Container.
func buildDemoView(s *responsive.Scaler) fyne.CanvasObject {
	card := canvas.NewRectangle(demoTierColors[s.Tier()])
	card.CornerRadius = s.R(DemoCardRadius)
	cardSize := fyne.NewSize(s.WMin(DemoCardWidth, DemoCardMinWidth), s.H(DemoCardHeight))
	card.SetMinSize(cardSize)

	title := canvas.NewText(s.Tier().String(), color.White)
	title.TextSize = s.Sp(DemoTitleSize)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	readout := canvas.NewText(fmt.Sprintf(
		"viewport %.0fx%.0f  effective %.0f  W %.2f  H %.2f  Sp %.2f  R %.2f",
		s.ViewportWidth(), s.ViewportHeight(), s.EffectiveWidth(),
		s.ScaleW(), s.ScaleH(), s.ScaleSp(), s.ScaleR()), color.Gray{Y: 0x99})
	readout.TextSize = s.SpMin(DemoBodySize, 10)
	readout.Alignment = fyne.TextAlignCenter

	columns := responsive.Pick(s, responsive.Choice[string]{
		Mobile:  "single column",
		Tablet:  responsive.Of("two columns"),
		Desktop: responsive.Of("sidebar + content"),
	})
	layoutHint := canvas.NewText("layout: "+columns, color.Gray{Y: 0xcc})
	layoutHint.TextSize = s.Sp(DemoBodySize)
	layoutHint.Alignment = fyne.TextAlignCenter

	// Pixel ratio only matters on hidpi canvases; hide the row elsewhere.
	ratio := canvas.NewText(fmt.Sprintf("pixel ratio %.2f", s.PixelRatio()), color.Gray{Y: 0x77})
	ratio.TextSize = s.Sp(DemoBodySize)
	ratio.Alignment = fyne.TextAlignCenter
	ApplyVisibility(s, ratio, responsive.TierTablet, responsive.TierDesktop)

	return container.NewVBox(
		container.NewCenter(container.NewStack(card, container.NewCenter(title))),
		readout,
		layoutHint,
		ratio,
	)
}
