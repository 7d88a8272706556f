package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/destboard/internal/board"
	"github.com/akyairhashvil/destboard/internal/models"
	"github.com/akyairhashvil/destboard/internal/util"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

// ViewState tracks the cursor.
type ViewState struct {
	cursor models.Coord
}

// clamp keeps the cursor on a real cell after the board changed shape.
func (v *ViewState) clamp(b models.Board) {
	if b.Columns() == 0 {
		v.cursor = models.Coord{}
		return
	}
	v.cursor.Col = util.Clamp(v.cursor.Col, 0, b.Columns()-1)
	v.cursor.Row = util.Clamp(v.cursor.Row, 0, len(b[v.cursor.Col])-1)
}

// RequestState tracks outstanding update requests and user notices.
type RequestState struct {
	inFlight int
	alert    string
	notice   string
}

// InFlight reports whether any update request is still outstanding.
func (r RequestState) InFlight() bool {
	return r.inFlight > 0
}

func (r *RequestState) begin() {
	r.inFlight++
}

func (r *RequestState) settle() {
	if r.inFlight > 0 {
		r.inFlight--
	}
}

// Options configures a BoardModel.
type Options struct {
	Refresh   time.Duration
	Theme     string
	ExportDir string
	Logger    log.FieldLogger
	Now       func() time.Time
}

// BoardModel is the bubbletea model for the destination board.
type BoardModel struct {
	ctx       context.Context
	svc       board.Service
	log       log.FieldLogger
	now       func() time.Time
	keys      *HandlerRegistry
	theme     Theme
	refresh   time.Duration
	exportDir string

	board     models.Board
	loaded    bool
	failed    bool // last fetch failed
	refreshed time.Time
	editor    board.Editor
	view      ViewState
	req       RequestState
	input     textinput.Model
	spinner   spinner.Model
	showHelp  bool

	width, height int
}

func NewBoardModel(ctx context.Context, svc board.Service, opts Options) BoardModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = log.StandardLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	ti := textinput.New()
	ti.Placeholder = "Destination..."
	ti.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	theme := ThemeByName(opts.Theme)
	sp.Style = theme.Busy

	return BoardModel{
		ctx:       ctx,
		svc:       svc,
		log:       opts.Logger,
		now:       opts.Now,
		keys:      defaultRegistry(),
		theme:     theme,
		refresh:   opts.Refresh,
		exportDir: opts.ExportDir,
		input:     ti,
		spinner:   sp,
	}
}

func (m BoardModel) Init() tea.Cmd {
	fetch := fetchCmd(m.ctx, m.svc, m.now)
	if m.refresh <= 0 {
		return fetch
	}
	return tea.Batch(fetch, refreshTickCmd(m.refresh))
}

func (m BoardModel) mode() int {
	switch {
	case m.req.alert != "":
		return modeAlert
	case m.editor.Editing():
		return modeEditing
	default:
		return modeViewing
	}
}

// Board returns the board as last loaded.
func (m BoardModel) Board() models.Board {
	return m.board
}

// Cursor returns the selected cell position.
func (m BoardModel) Cursor() models.Coord {
	return m.view.cursor
}

// InFlight reports whether an update request is outstanding.
func (m BoardModel) InFlight() bool {
	return m.req.InFlight()
}

// Alert returns the blocking notice shown to the user, if any.
func (m BoardModel) Alert() string {
	return m.req.alert
}

// Editing returns the open status edit, if any.
func (m BoardModel) Editing() (board.EditState, bool) {
	return m.editor.Current()
}

// Refreshed returns the time of the last successful load.
func (m BoardModel) Refreshed() time.Time {
	return m.refreshed
}
