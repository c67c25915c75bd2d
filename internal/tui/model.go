package tui

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/apod-gallery/internal/apod"
	"github.com/glabrego/apod-gallery/internal/gallery"
	"github.com/glabrego/apod-gallery/internal/logging"
	"github.com/glabrego/apod-gallery/internal/tui/actions"
	"github.com/glabrego/apod-gallery/internal/tui/platform"
	"github.com/glabrego/apod-gallery/internal/tui/state"
	tuitheme "github.com/glabrego/apod-gallery/internal/tui/theme"
	"github.com/glabrego/apod-gallery/internal/tui/view"
)

const (
	appTitle      = "NASA Space Explorer"
	idleMessage   = "Pick a date range and press enter to get space images."
	dateLayoutLen = len(time.DateOnly)
)

type Service = actions.Service

type focusArea int

const (
	focusStart focusArea = iota
	focusEnd
	focusGallery
	focusCount
)

// displayState is what the display area currently holds. Cards and the
// failure message never show together.
type displayState int

const (
	displayIdle displayState = iota
	displayLoading
	displayCards
	displayFailed
)

type Options struct {
	Service Service
	Logger  *slog.Logger
	// Range pre-fills the date inputs. Zero means the default range ending
	// today.
	Range              apod.Range
	Fact               string
	FetchTimeout       time.Duration
	InlineImagePreview bool
	// PreviewClient downloads images for the inline preview.
	PreviewClient *http.Client
	// AutoFetch loads Range as soon as the program starts.
	AutoFetch bool
	Now       func() time.Time
}

type Model struct {
	service Service
	logger  *slog.Logger
	theme   tuitheme.Theme
	keys    keyMap

	nowFn           func() time.Time
	openURLFn       func(string) error
	copyURLFn       func(string) error
	renderPreviewFn func(string, int) (string, error)
	fetchTimeout    time.Duration
	previewEnabled  bool
	autoFetch       bool

	width  int
	height int
	fact   string

	startInput textinput.Model
	endInput   textinput.Model
	focus      focusArea
	inputErr   string

	display   displayState
	cards     []gallery.Card
	fetchSeq  int
	lastRange apod.Range
	cursor    int
	top       int

	detail detailViewer

	status string
	err    error
}

func NewModel(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	r := opts.Range
	if r.Start.IsZero() || r.End.IsZero() {
		r = apod.DefaultRange(now(), apod.DefaultRangeDays)
	}
	fact := opts.Fact
	if fact == "" {
		fact = gallery.RandomFact(nil)
	}

	m := Model{
		service:        opts.Service,
		logger:         logger,
		theme:          tuitheme.Default(),
		keys:           defaultKeyMap(),
		nowFn:          now,
		openURLFn:      platform.OpenURLInBrowser,
		copyURLFn:      platform.CopyURLToClipboard,
		fetchTimeout:   opts.FetchTimeout,
		previewEnabled: opts.InlineImagePreview,
		fact:           fact,
		startInput:     newDateInput(r.Start),
		endInput:       newDateInput(r.End),
		focus:          focusGallery,
		detail:         newDetailViewer(),
	}
	client := opts.PreviewClient
	m.renderPreviewFn = func(imageURL string, width int) (string, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return view.RenderImagePreview(ctx, client, imageURL, width)
	}
	if opts.AutoFetch && m.service != nil {
		m.autoFetch = true
		m.beginFetch(r)
	}
	m.resizeDetail()
	return m
}

func newDateInput(day time.Time) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = dateLayoutLen
	ti.Width = dateLayoutLen
	ti.SetValue(day.Format(time.DateOnly))
	return ti
}

func (m Model) Init() tea.Cmd {
	if !m.autoFetch {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, actions.FetchCmd(m.service, m.lastRange, m.fetchSeq, m.fetchTimeout))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeDetail()
		m.ensureCursorVisible()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case actions.FetchSuccessMsg:
		if msg.Seq != m.fetchSeq {
			m.logger.Debug("discarding stale fetch result",
				slog.Int("seq", msg.Seq),
				slog.Int("latest", m.fetchSeq),
				slog.String("range", msg.Range.String()))
			return m, nil
		}
		m.display = displayCards
		m.cards = msg.Cards
		m.cursor = 0
		m.top = 0
		m.err = nil
		m.status = fmt.Sprintf("Loaded %d space images in %s", len(msg.Cards), msg.Duration.Round(time.Millisecond))
		return m, nil
	case actions.FetchErrorMsg:
		if msg.Seq != m.fetchSeq {
			m.logger.Debug("discarding stale fetch error",
				slog.Int("seq", msg.Seq),
				slog.Int("latest", m.fetchSeq),
				slog.Any("error", msg.Err))
			return m, nil
		}
		m.display = displayFailed
		m.cards = nil
		m.cursor = 0
		m.top = 0
		m.err = msg.Err
		m.status = ""
		return m, nil
	case actions.PreviewSuccessMsg:
		if m.detail.previewDone(msg.Body, msg.Raw, nil) {
			m.detail.refresh(m.theme)
		}
		return m, nil
	case actions.PreviewErrorMsg:
		if m.detail.previewDone(msg.Body, "", msg.Err) {
			m.logger.Debug("image preview failed", slog.Any("error", msg.Err))
			m.detail.refresh(m.theme)
		}
		return m, nil
	case actions.OpenURLSuccessMsg:
		m.status = msg.Status
		m.err = nil
		return m, nil
	case actions.OpenURLErrorMsg:
		m.logger.Warn("open URL failed", slog.Any("error", msg.Err))
		m.err = msg.Err
		m.status = ""
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.detail.open {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		return m, m.setFocus(focusArea(state.CycleIndex(int(m.focus), 1, int(focusCount))))
	case key.Matches(msg, m.keys.ShiftTab):
		return m, m.setFocus(focusArea(state.CycleIndex(int(m.focus), -1, int(focusCount))))
	}

	if m.focus != focusGallery {
		if key.Matches(msg, m.keys.Open) {
			return m.triggerFetch()
		}
		return m.updateFocusedInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.cards))
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.cards))
	case key.Matches(msg, m.keys.Open):
		return m.activate(m.cursor)
	case key.Matches(msg, m.keys.Fetch):
		return m.triggerFetch()
	case key.Matches(msg, m.keys.Browser):
		if card, ok := m.currentCard(); ok {
			return m.openExternal(card.BrowserURL())
		}
	case key.Matches(msg, m.keys.Copy):
		if card, ok := m.currentCard(); ok {
			return m.copyExternal(card.BrowserURL())
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeDetail("escape")
		return m, nil
	case key.Matches(msg, m.keys.Browser):
		return m.openExternal(m.detail.card.BrowserURL())
	case key.Matches(msg, m.keys.Copy):
		return m.copyExternal(m.detail.card.BrowserURL())
	}
	var cmd tea.Cmd
	m.detail.viewport, cmd = m.detail.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	wheel := msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown
	if m.detail.open {
		if wheel {
			var cmd tea.Cmd
			m.detail.viewport, cmd = m.detail.viewport.Update(msg)
			return m, cmd
		}
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case m.closeButtonRect().contains(msg.X, msg.Y):
			m.closeDetail("close button")
		case !m.modalRect().contains(msg.X, msg.Y):
			m.closeDetail("backdrop")
		}
		return m, nil
	}

	if wheel {
		if msg.Button == tea.MouseButtonWheelUp {
			m.moveCursor(-1)
		} else {
			m.moveCursor(1)
		}
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y == controlsRow {
		switch m.controlAt(msg.X) {
		case controlStart:
			return m, m.setFocus(focusStart)
		case controlEnd:
			return m, m.setFocus(focusEnd)
		case controlFetch:
			return m.triggerFetch()
		}
		return m, nil
	}
	if idx := m.cardAt(msg.Y); idx >= 0 {
		cmd := m.setFocus(focusGallery)
		m.cursor = idx
		next, openCmd := m.activate(idx)
		return next, tea.Batch(cmd, openCmd)
	}
	return m, nil
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusStart:
		m.startInput, cmd = m.startInput.Update(msg)
	case focusEnd:
		m.endInput, cmd = m.endInput.Update(msg)
	default:
		return m, nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		m.inputErr = m.checkInputs()
	}
	return m, cmd
}

// checkInputs flags complete dates that fall outside the archive. Partial
// input is left alone until the fetch is triggered.
func (m Model) checkInputs() string {
	for _, in := range []struct {
		label string
		value string
	}{
		{label: "start date", value: m.startInput.Value()},
		{label: "end date", value: m.endInput.Value()},
	} {
		if len(strings.TrimSpace(in.value)) < dateLayoutLen {
			continue
		}
		day, err := apod.ParseDay(in.value)
		if err == nil {
			err = apod.CheckDay(day, m.nowFn())
		}
		if err != nil {
			return in.label + ": " + err.Error()
		}
	}
	return ""
}

func (m *Model) setFocus(next focusArea) tea.Cmd {
	m.focus = next
	m.startInput.Blur()
	m.endInput.Blur()
	switch next {
	case focusStart:
		return m.startInput.Focus()
	case focusEnd:
		return m.endInput.Focus()
	}
	m.ensureCursorVisible()
	return nil
}

func (m *Model) moveCursor(delta int) {
	if len(m.cards) == 0 {
		return
	}
	m.cursor = state.ClampCursor(m.cursor+delta, len(m.cards))
	m.ensureCursorVisible()
}

func (m Model) currentCard() (gallery.Card, bool) {
	if m.display != displayCards || len(m.cards) == 0 {
		return gallery.Card{}, false
	}
	return m.cards[state.ClampCursor(m.cursor, len(m.cards))], true
}

func (m Model) triggerFetch() (tea.Model, tea.Cmd) {
	r, err := apod.ParseRange(m.startInput.Value(), m.endInput.Value(), m.nowFn())
	if err != nil {
		m.inputErr = err.Error()
		return m, nil
	}
	m.inputErr = ""
	return m, m.beginFetch(r)
}

// beginFetch clears the display area, shows the loading message and starts
// a fetch tagged with a fresh sequence number.
func (m *Model) beginFetch(r apod.Range) tea.Cmd {
	m.fetchSeq++
	m.display = displayLoading
	m.cards = nil
	m.cursor = 0
	m.top = 0
	m.err = nil
	m.status = ""
	m.lastRange = r
	m.logger.Debug("fetch triggered", slog.Int("seq", m.fetchSeq), slog.String("range", r.String()))
	if m.service == nil {
		return nil
	}
	return actions.FetchCmd(m.service, r, m.fetchSeq, m.fetchTimeout)
}

func (m Model) activate(idx int) (tea.Model, tea.Cmd) {
	if m.display != displayCards || idx < 0 || idx >= len(m.cards) {
		return m, nil
	}
	card := m.cards[idx]
	if !card.Opens() {
		return m.openExternal(card.ContentURL())
	}
	return m, m.openDetail(card)
}

// openDetail shows card in the viewer, replacing any body already there.
func (m *Model) openDetail(card gallery.Card) tea.Cmd {
	if !m.detail.show(card, m.previewEnabled && m.renderPreviewFn != nil) {
		return nil
	}
	m.resizeDetail()
	m.logger.Debug("detail opened",
		slog.String("date", card.Entry.Date),
		slog.String("variant", card.Variant.String()),
		slog.Int("body", m.detail.body))
	if !m.detail.preview.Loading {
		return nil
	}
	return actions.PreviewCmd(m.detail.body, card.ContentURL(), m.detail.viewport.Width, m.renderPreviewFn)
}

func (m *Model) closeDetail(via string) {
	if m.detail.hide() {
		m.logger.Debug("detail closed", slog.String("via", via))
	}
}

func (m Model) openExternal(raw string) (tea.Model, tea.Cmd) {
	url, err := platform.ValidateURL(raw)
	if err != nil {
		m.err = err
		m.status = ""
		return m, nil
	}
	return m, actions.OpenURLCmd(url, m.openURLFn, m.copyURLFn)
}

func (m Model) copyExternal(raw string) (tea.Model, tea.Cmd) {
	url, err := platform.ValidateURL(raw)
	if err != nil {
		m.err = err
		m.status = ""
		return m, nil
	}
	return m, actions.CopyURLCmd(url, m.copyURLFn)
}

func (m Model) View() string {
	screen := m.galleryView()
	if !m.detail.open {
		return screen
	}
	return m.detailView(screen)
}

func (m Model) galleryView() string {
	w, _ := m.screenSize()
	th := m.theme

	lines := make([]string, 0, headerHeight+m.areaHeight()+footerHeight)
	lines = append(lines,
		th.Title.Render(appTitle)+"  "+th.MetaLabel.Render("Astronomy Picture of the Day"),
		th.Fact.Render(view.Truncate(m.fact, w)),
		"",
	)
	var controls strings.Builder
	for _, seg := range m.controlSegments() {
		controls.WriteString(seg.text)
	}
	lines = append(lines, controls.String())
	if m.inputErr != "" {
		lines = append(lines, th.InputErr.Render(view.Truncate(m.inputErr, w)))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, th.Separator.Render(strings.Repeat("─", w)))

	area := m.displayLines()
	for len(area) < m.areaHeight() {
		area = append(area, "")
	}
	lines = append(lines, area...)

	rangeLabel := "-"
	if !m.lastRange.Start.IsZero() {
		rangeLabel = m.lastRange.String()
	}
	warning := ""
	if m.err != nil {
		warning = m.err.Error()
	}
	lines = append(lines,
		view.Footer(rangeLabel, len(m.cards), th),
		view.Message(m.display == displayLoading, m.err != nil, m.status, view.Truncate(warning, w), th),
		th.Label.Render(view.Truncate(view.Toolbar(m.focus != focusGallery, m.detail.open), w)),
	)
	return strings.Join(lines, "\n")
}

func (m Model) displayLines() []string {
	th := m.theme
	switch m.display {
	case displayLoading:
		return []string{th.Loading.Render(gallery.LoadingMessage)}
	case displayFailed:
		return []string{th.Failure.Render(gallery.FailureMessage)}
	case displayCards:
		if len(m.cards) == 0 {
			return []string{th.Message.Render(gallery.EmptyMessage)}
		}
		lines, _ := m.cardRows()
		return lines
	default:
		return []string{th.Message.Render(idleMessage)}
	}
}

func (m Model) detailView(background string) string {
	w, h := m.screenSize()
	th := m.theme
	box := m.modalRect()

	inner := view.CloseRow(box.w-4, th) + "\n" + m.detail.viewport.View()
	rendered := th.ModalBox.Width(box.w - 2).Render(inner)

	lines := view.Dim(view.Screen(background, w, h), th.Backdrop)
	lines = view.OverlayAt(lines, rendered, w, box.x, box.y)
	return strings.Join(lines, "\n")
}
