package main

import (
	"image"
	"image/color"
	"math"
	"net/url"
	"strconv"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/jfrummel/cintel-02-data/cmd/penguinboard/uihelpers"
	"github.com/jfrummel/cintel-02-data/src/config"
	"github.com/jfrummel/cintel-02-data/src/dataset"
	"github.com/jfrummel/cintel-02-data/src/logging"
	"github.com/jfrummel/cintel-02-data/src/params"
	"github.com/jfrummel/cintel-02-data/src/reactive"
	"github.com/jfrummel/cintel-02-data/src/render"
	"github.com/jfrummel/cintel-02-data/src/views"
)

// pageRows is the main panel layout, top to bottom.
var pageRows = [][]views.OutputID{
	{views.PenguinsTable, views.PenguinsGrid},
	{views.PlotlyHistogram, views.SeabornHistogram},
	{views.PlotlyScatterplot},
}

// rowWidth returns how many cards share the row holding id.
func rowWidth(id views.OutputID) int {
	for _, row := range pageRows {
		for _, o := range row {
			if o == id {
				return len(row)
			}
		}
	}
	return 1
}

// card is one output panel in the main area.
type card struct {
	id     views.OutputID
	header string
	cols   int

	result reactive.Result

	// chart cards
	img *canvas.Image
	// table cards
	table       *widget.Table
	data        *views.Table
	selectedRow int // 1-based table row, -1 when nothing is selected
}

type uiState struct {
	app    fyne.App
	window fyne.Window
	cfg    *config.Config
	comp   *reactive.Composer

	attrSelect    *widget.Select
	plotlyEntry   *widget.Entry
	seabornSlider *widget.Slider
	seabornLabel  *widget.Label
	speciesGroup  *widget.CheckGroup

	cards map[views.OutputID]*card
}

func newUIState(a fyne.App, w fyne.Window, cfg *config.Config, comp *reactive.Composer) *uiState {
	return &uiState{app: a, window: w, cfg: cfg, comp: comp, cards: map[views.OutputID]*card{}}
}

// buildContent assembles sidebar and cards, and subscribes every card to its output.
func buildContent(s *uiState) fyne.CanvasObject {
	sidebar := buildSidebar(s)
	rows := make([]fyne.CanvasObject, 0, len(pageRows))
	for _, row := range pageRows {
		objs := make([]fyne.CanvasObject, 0, len(row))
		for _, id := range row {
			objs = append(objs, s.newCard(id, len(row)))
		}
		rows = append(rows, container.NewGridWithColumns(len(row), objs...))
	}
	panel := container.NewVScroll(container.NewVBox(rows...))
	return container.NewBorder(nil, nil, sidebar, nil, panel)
}

func buildSidebar(s *uiState) fyne.CanvasObject {
	start := s.comp.State()

	heading := widget.NewLabelWithStyle("Sidebar", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	headingBg := canvas.NewRectangle(color.NRGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff})

	s.attrSelect = widget.NewSelect(dataset.NumericAttributes, nil)
	s.attrSelect.SetSelected(start.Attribute)
	s.attrSelect.OnChanged = s.onAttributeChanged

	s.plotlyEntry = widget.NewEntry()
	s.plotlyEntry.SetText(strconv.Itoa(start.PlotlyBins))
	s.plotlyEntry.OnChanged = s.onPlotlyBinsChanged

	s.seabornSlider = widget.NewSlider(params.SeabornBinsMin, params.SeabornBinsMax)
	s.seabornSlider.Step = 1
	s.seabornSlider.SetValue(float64(start.SeabornBins))
	s.seabornLabel = widget.NewLabel(strconv.Itoa(start.SeabornBins))
	s.seabornSlider.OnChanged = func(v float64) { s.seabornLabel.SetText(strconv.Itoa(int(math.Round(v)))) }
	s.seabornSlider.OnChangeEnded = s.onSeabornBinsChanged

	s.speciesGroup = widget.NewCheckGroup(dataset.SpeciesChoices, nil)
	s.speciesGroup.SetSelected(start.Species)
	s.speciesGroup.OnChanged = s.onSpeciesChanged

	var link fyne.CanvasObject
	if u, err := url.Parse(s.cfg.LinkURL); err == nil && u.Scheme != "" {
		link = widget.NewHyperlink(s.cfg.LinkText, u)
	} else {
		logging.Warnf("link url %q is not absolute, showing plain text", s.cfg.LinkURL)
		link = widget.NewLabel(s.cfg.LinkText)
	}

	box := container.NewVBox(
		container.NewStack(headingBg, heading),
		widget.NewLabel("Attribute"),
		s.attrSelect,
		widget.NewLabel("Plotly Count"),
		s.plotlyEntry,
		widget.NewLabel("Seaborn Bins"),
		container.NewBorder(nil, nil, nil, s.seabornLabel, s.seabornSlider),
		widget.NewLabel("Species"),
		s.speciesGroup,
		widget.NewSeparator(),
		link,
	)
	width := canvas.NewRectangle(color.Transparent)
	width.SetMinSize(fyne.NewSize(uihelpers.SidebarWidth, 0))
	return container.NewStack(width, container.NewPadded(box))
}

// setParam forwards a widget change to the composer. Rejected values are logged and leave
// every output as it was.
func (s *uiState) setParam(id params.ID, v interface{}) []views.OutputID {
	changed, err := s.comp.Set(id, v)
	if err != nil {
		logging.Warnf("ignoring %s=%v: %v", id, v, err)
		return nil
	}
	if len(changed) > 0 {
		logging.Debugf("%s=%v recomputed %v", id, v, changed)
	}
	return changed
}

func (s *uiState) onAttributeChanged(v string) { s.setParam(params.SelectedAttribute, v) }

func (s *uiState) onPlotlyBinsChanged(text string) {
	n, ok := uihelpers.ParseBinCount(text)
	if !ok {
		logging.Debugf("plotly bins %q is not a whole number, keeping previous value", text)
		return
	}
	s.setParam(params.PlotlyBinCount, n)
}

func (s *uiState) onSeabornBinsChanged(v float64) {
	n := int(math.Round(v))
	if s.seabornLabel != nil {
		s.seabornLabel.SetText(strconv.Itoa(n))
	}
	s.setParam(params.SeabornBinCount, n)
}

func (s *uiState) onSpeciesChanged(selected []string) {
	s.setParam(params.SelectedSpecies, append([]string(nil), selected...))
}

func (s *uiState) newCard(id views.OutputID, cols int) fyne.CanvasObject {
	c := &card{id: id, header: s.comp.Header(id), cols: cols, selectedRow: -1}
	s.cards[id] = c

	var body fyne.CanvasObject
	if res, _ := s.comp.Result(id); isTable(res) {
		c.table = s.newPenguinTable(c)
		body = container.NewGridWrap(fyne.NewSize(views.TableWidthPx, views.TableHeightPx), c.table)
	} else {
		w, h := uihelpers.ComputeCardChartSize(s.windowWidth(), cols)
		c.img = canvas.NewImageFromImage(render.Blank(w, h))
		c.img.FillMode = canvas.ImageFillContain
		c.img.SetMinSize(fyne.NewSize(float32(w), float32(h)))
		body = c.img
	}

	if err := s.comp.Subscribe(id, func(r reactive.Result) { s.applyResult(c, r) }); err != nil {
		logging.Errorf("subscribe %s: %v", id, err)
	}

	full := widget.NewButtonWithIcon("", theme.ViewFullScreenIcon(), func() { s.openFullscreen(c) })
	title := widget.NewLabelWithStyle(c.header, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	head := container.NewBorder(nil, nil, nil, full, title)
	return widget.NewCard("", "", container.NewBorder(head, nil, nil, nil, body))
}

func isTable(r reactive.Result) bool {
	_, ok := r.Artifact.(*views.Table)
	return ok
}

// applyResult pushes a recomputed output into its card.
func (s *uiState) applyResult(c *card, r reactive.Result) {
	c.result = r
	if c.table != nil {
		if t, ok := r.Artifact.(*views.Table); ok {
			c.data = t
			c.selectedRow = -1
			applyColumnWidths(c.table, float32(t.Width))
		} else if r.Err != nil {
			logging.Warnf("%s: %v", c.id, r.Err)
		}
		c.table.Refresh()
		return
	}
	if c.img == nil {
		return
	}
	w, h := uihelpers.ComputeCardChartSize(s.windowWidth(), c.cols)
	c.img.Image = chartImage(r, w, h)
	c.img.SetMinSize(fyne.NewSize(float32(w), float32(h)))
	c.img.Refresh()
}

// redrawCharts re-renders every chart card at the current window width.
func (s *uiState) redrawCharts() {
	defer logging.TimeTrack(time.Now(), "redraw charts")
	for _, c := range s.cards {
		if c.img != nil {
			s.applyResult(c, c.result)
		}
	}
}

func (s *uiState) windowWidth() float32 {
	if s.window != nil {
		if w := s.window.Canvas().Size().Width; w > 0 {
			return w
		}
	}
	return float32(s.cfg.Width)
}

// chartImage renders a result, falling back to an error placeholder.
func chartImage(r reactive.Result, w, h int) image.Image {
	if r.Err != nil {
		return render.ErrorImage(w, h, r.Err.Error())
	}
	if r.Artifact == nil {
		return render.Blank(w, h)
	}
	img, err := render.Image(r.Artifact, w, h)
	if err != nil {
		logging.Warnf("render %s: %v", r.Output, err)
		return render.ErrorImage(w, h, err.Error())
	}
	return img
}

func (s *uiState) newPenguinTable(c *card) *widget.Table {
	t := widget.NewTable(
		// header row plus data rows
		func() (int, int) {
			if c.data == nil {
				return 1, len(dataset.Columns)
			}
			return c.data.RowCount() + 1, len(c.data.Columns)
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			lbl.TextStyle = fyne.TextStyle{Bold: id.Row == 0 || id.Row == c.selectedRow}
			lbl.SetText(cellText(c.data, id.Row, id.Col))
		},
	)
	t.OnSelected = func(id widget.TableCellID) {
		s.onRowSelected(c, id.Row)
		t.UnselectAll()
	}
	applyColumnWidths(t, views.TableWidthPx)
	return t
}

func applyColumnWidths(t *widget.Table, tableW float32) {
	for i, w := range uihelpers.ComputeTableColumnWidths(tableW) {
		t.SetColumnWidth(i, float32(w))
	}
}

// cellText maps a table cell to its text. Row 0 is the header.
func cellText(t *views.Table, row, col int) string {
	if t == nil {
		if row == 0 && col >= 0 && col < len(dataset.Columns) {
			return dataset.Columns[col]
		}
		return ""
	}
	if col < 0 || col >= len(t.Columns) {
		return ""
	}
	if row == 0 {
		return t.Columns[col]
	}
	if row-1 >= len(t.Rows) {
		return ""
	}
	return t.Rows[row-1][col]
}

// onRowSelected toggles the highlighted row of a table card. Only row selection is offered.
func (s *uiState) onRowSelected(c *card, row int) {
	if c.data == nil || c.data.SelectionMode != views.SelectRow || row <= 0 {
		return
	}
	if c.selectedRow == row {
		c.selectedRow = -1
	} else {
		c.selectedRow = row
	}
	logging.Debugf("%s: selected row %d", c.id, c.selectedRow)
	if c.table != nil {
		c.table.Refresh()
	}
}

// openFullscreen shows one card's output alone in a new window.
func (s *uiState) openFullscreen(c *card) fyne.Window {
	w := s.app.NewWindow(c.header)
	size := fyne.NewSize(float32(s.cfg.Width), float32(s.cfg.Height))
	if c.data != nil {
		full := &card{id: c.id, header: c.header, cols: 1, data: c.data, selectedRow: -1}
		full.table = s.newPenguinTable(full)
		applyColumnWidths(full.table, size.Width-40)
		w.SetContent(full.table)
	} else {
		cw, ch := uihelpers.ComputeFullscreenChartSize(size.Width, size.Height)
		img := canvas.NewImageFromImage(chartImage(c.result, cw, ch))
		img.FillMode = canvas.ImageFillContain
		w.SetContent(img)
	}
	w.Resize(size)
	w.Show()
	return w
}
