package main

import (
	"image/color"
	"os"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"github.com/jfrummel/cintel-02-data/src/config"
	"github.com/jfrummel/cintel-02-data/src/dataset"
	"github.com/jfrummel/cintel-02-data/src/logging"
	"github.com/jfrummel/cintel-02-data/src/reactive"
	"github.com/jfrummel/cintel-02-data/src/views"
)

// cyborg primary accent
var accent = color.NRGBA{R: 0x2a, G: 0x9f, B: 0xd6, A: 0xff}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameHyperlink, theme.ColorNameFocus:
		return accent
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		logging.Errorf("config: %v", err)
		os.Exit(2)
	}
	logging.SetLogLevel(cfg.LogLevel)

	ds, err := loadDataset(cfg.DataPath)
	if err != nil {
		logging.Errorf("dataset: %v", err)
		os.Exit(1)
	}
	logging.Infof("loaded %d penguins (%v)", ds.Len(), ds.Species())

	comp, err := reactive.New(cfg.Initial, views.Catalog(ds))
	if err != nil {
		logging.Errorf("outputs: %v", err)
		os.Exit(1)
	}
	comp.RenderAll()

	if cfg.DumpTables {
		if err := dumpTables(os.Stdout, ds, comp); err != nil {
			logging.Errorf("dump: %v", err)
			os.Exit(1)
		}
		return
	}
	if cfg.ScreenshotsDir != "" {
		if err := RunScreenshotsMode(comp, cfg.ScreenshotsDir, float32(cfg.Width)); err != nil {
			logging.Errorf("screenshots: %v", err)
			os.Exit(1)
		}
		logging.Infof("screenshots written to %s", cfg.ScreenshotsDir)
		return
	}

	a := app.NewWithID("io.github.jfrummel.penguinboard")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow(cfg.Title)
	w.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	state := newUIState(a, w, cfg, comp)
	w.SetContent(buildContent(state))

	// Redraw charts on window resize so they scale with width
	prevW := int(w.Canvas().Size().Width)
	done := make(chan struct{})
	w.SetOnClosed(func() { close(done) })
	go func() {
		t := time.NewTicker(300 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				curW := int(w.Canvas().Size().Width)
				if curW != prevW {
					prevW = curW
					fyne.Do(func() { state.redrawCharts() })
				}
			}
		}
	}()

	w.ShowAndRun()
}

func loadDataset(path string) (*dataset.Table, error) {
	defer logging.TimeTrack(time.Now(), "load dataset")
	if path == "" {
		return dataset.Load()
	}
	return dataset.LoadFile(path)
}
