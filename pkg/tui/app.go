package tui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/ableditor/ableditor/pkg/buffer"
	"github.com/ableditor/ableditor/pkg/dnd"
	"github.com/ableditor/ableditor/pkg/document"
	"github.com/ableditor/ableditor/pkg/files"
	"github.com/ableditor/ableditor/pkg/models"
)

// AppName is shown in the title bar
const AppName = "AblEditor"

// Options configures the terminal editor
type Options struct {
	Fs         afero.Fs
	Path       string // file to load at startup, already validated
	Settings   *models.Settings
	Log        logrus.FieldLogger
	Clipboard  Clipboard
	Recent     *RecentFilesTracker
	RecentPath string // where Recent is persisted; empty disables persistence
	Watcher    *files.Watcher
}

// App is the Bubble Tea model of the editor. It owns the text widget and runs
// the effects the document controller asks for.
type App struct {
	fs         afero.Fs
	log        logrus.FieldLogger
	buffer     *buffer.Buffer
	controller *document.Controller
	drops      dnd.Session
	keys       KeyMap

	editor     textarea.Model
	widgetText string // editor value the buffer was last synced from

	confirm *ConfirmationModel
	open    *OpenDialog
	save    *SaveDialog
	status  *StatusManager

	clipboard  Clipboard
	recent     *RecentFilesTracker
	recentPath string
	watcher    *files.Watcher

	lastSaved   time.Time
	stats       DocumentStats // status bar figures, refreshed when the buffer changes
	title       string
	width       int
	height      int
	terminating bool
	fatal       error
}

// NewApp loads the startup file (if any) and builds the model
func NewApp(opts Options) (*App, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Settings == nil {
		opts.Settings = models.DefaultSettings()
	}
	if opts.Log == nil {
		opts.Log = discardLogger()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard{}
	}
	if opts.Recent == nil {
		opts.Recent = NewRecentFilesTracker()
	}

	buf := buffer.New(opts.Fs)
	if opts.Path != "" {
		if err := buf.Load(opts.Path); err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", opts.Path, err)
		}
	}

	a := &App{
		fs:         opts.Fs,
		log:        opts.Log,
		buffer:     buf,
		controller: document.NewController(opts.Path, opts.Log),
		keys:       DefaultKeyMap(),
		editor:     newEditor(opts.Settings.Editor),
		confirm:    NewConfirmation(),
		open:       NewOpenDialog(opts.Recent),
		status:     NewStatusManager(),
		clipboard:  opts.Clipboard,
		recent:     opts.Recent,
		recentPath: opts.RecentPath,
		watcher:    opts.Watcher,
	}
	a.save = NewSaveDialog(a.Exists, func(path string) bool {
		ok, err := afero.IsDir(a.fs, path)
		return err == nil && ok
	})

	a.syncEditorFromBuffer()
	if opts.Path != "" {
		a.recent.AddFile(opts.Path)
		a.persistRecent()
		a.watch(opts.Path)
	}
	a.title = a.windowTitle()

	return a, nil
}

func newEditor(settings models.EditorSettings) textarea.Model {
	ta := textarea.New()
	ta.ShowLineNumbers = settings.LineNumbers
	ta.Prompt = " "
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = ""
	ta.FocusedStyle.Base = EditorTextStyle
	ta.FocusedStyle.Text = EditorTextStyle
	ta.FocusedStyle.CursorLine = EditorTextStyle
	ta.BlurredStyle.Base = EditorTextStyle
	ta.BlurredStyle.Text = EditorTextStyle
	ta.SetWidth(80)
	ta.SetHeight(20)
	ta.Focus()
	return ta
}

// BufferEmpty implements document.Env
func (a *App) BufferEmpty() bool {
	return a.buffer.Empty()
}

// Exists implements document.Env
func (a *App) Exists(path string) bool {
	return files.Exists(a.fs, path)
}

// State exposes the document state
func (a *App) State() document.State {
	return a.controller.State()
}

// Text returns the buffer content
func (a *App) Text() string {
	return a.buffer.Text()
}

// Terminated reports whether the editor asked the program to exit
func (a *App) Terminated() bool {
	return a.terminating
}

// Err returns the fatal error that ended the session, if any
func (a *App) Err() error {
	return a.fatal
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, tea.SetWindowTitle(a.title)}
	if a.watcher != nil {
		cmds = append(cmds, waitForChange(a.watcher.Changes()))
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.setSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		cmds = append(cmds, a.handleKey(msg))

	case tea.BlurMsg:
		// Terminals report no drag events; losing focus ends any gesture
		a.drops.Dispatch(dnd.Leave)

	case closeRequestMsg:
		if a.fatal != nil {
			a.terminating = true
			cmds = append(cmds, tea.Quit)
		} else if !a.controller.Busy() {
			cmds = append(cmds, a.dispatch(document.CommandQuit))
		}

	case externalChangeMsg:
		a.handleExternalChange(files.Change(msg))
		if a.watcher != nil {
			cmds = append(cmds, waitForChange(a.watcher.Changes()))
		}

	case ClearStatusMsg:
		// Redraw only; expired messages are dropped by the status manager

	default:
		// Directory listings for the picker and cursor blinks for the inputs
		if a.open.Active() {
			result, cmd := a.open.Update(msg)
			cmds = append(cmds, cmd, a.finishOpen(result))
		}
		if a.save.Active() {
			_, cmd := a.save.Update(msg)
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		cmds = append(cmds, cmd)
	}

	if title := a.windowTitle(); title != a.title {
		a.title = title
		cmds = append(cmds, tea.SetWindowTitle(title))
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.terminating {
		return nil
	}

	switch {
	case a.confirm.Active():
		return a.confirm.Update(msg)

	case a.open.Active():
		result, cmd := a.open.Update(msg)
		return tea.Batch(cmd, a.finishOpen(result))

	case a.save.Active():
		result, cmd := a.save.Update(msg)
		if result.done {
			return tea.Batch(cmd, a.dispatch(document.PathChosen{Path: result.path}))
		}
		return cmd
	}

	if command, ok := a.keys.CommandFor(msg); ok {
		return a.dispatch(command)
	}

	if msg.Paste && dnd.LooksLikePath(string(msg.Runes)) {
		return a.handleDrop(string(msg.Runes))
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return tea.Batch(cmd, a.syncBufferFromEditor())
}

func (a *App) finishOpen(result dialogResult) tea.Cmd {
	if !result.done {
		return nil
	}
	return a.dispatch(document.PathChosen{Path: result.path})
}

// handleDrop treats a path-shaped bracketed paste as a completed drop: the
// terminal delivers a dragged file as its path, with no separate gesture
// events.
func (a *App) handleDrop(payload string) tea.Cmd {
	a.drops.Dispatch(dnd.Enter)
	a.drops.Dispatch(dnd.Release)
	return a.resolvePaste(payload)
}

// resolvePaste asks the drop session what a paste means and acts on it
func (a *App) resolvePaste(payload string) tea.Cmd {
	outcome := a.drops.Paste(payload, func(path string) bool {
		return files.IsRegularFile(a.fs, path)
	})

	switch outcome.Action {
	case dnd.Load:
		a.log.WithField("path", outcome.Path).Info("file dropped")
		return a.dispatch(document.Dropped{Path: outcome.Path})
	case dnd.Swallow:
		a.log.WithField("payload", payload).Debug("ignored drop of a missing file")
		return nil
	}

	a.editor.InsertString(payload)
	return a.syncBufferFromEditor()
}

// syncBufferFromEditor copies a widget edit into the buffer and reports it
func (a *App) syncBufferFromEditor() tea.Cmd {
	value := a.editor.Value()
	if value == a.widgetText {
		return nil
	}
	a.buffer.Edit(a.widgetText, value)
	a.widgetText = value
	a.refreshStats()
	return a.dispatch(document.CommandChanged)
}

// syncEditorFromBuffer shows the buffer after a load or clear. The editor
// expands tabs; the buffer keeps the file bytes of every line left untouched.
func (a *App) syncEditorFromBuffer() {
	a.editor.Reset()
	a.editor.SetValue(a.buffer.Display())
	a.widgetText = a.editor.Value()
	a.refreshStats()
}

func (a *App) refreshStats() {
	a.stats = ComputeStats(a.buffer.Text(), a.lastSaved)
}

func (a *App) handleExternalChange(change files.Change) {
	if change.Path != filepath.Clean(a.controller.State().Path) {
		return
	}
	name := filepath.Base(change.Path)
	switch change.Kind {
	case files.ChangeRemoved:
		a.status.SetPersistentMessage(fmt.Sprintf("%s was removed on disk", name), StatusTypeWarning)
	default:
		a.status.SetPersistentMessage(fmt.Sprintf("%s was changed by another program", name), StatusTypeWarning)
	}
}

func (a *App) setSize(width, height int) {
	a.width = width
	a.height = height

	// title, menu, editor border, status bar
	a.editor.SetWidth(max(width-2, 10))
	a.editor.SetHeight(max(height-5, 3))
	a.open.SetSize(width, height)
	a.save.SetSize(width)
}

func (a *App) windowTitle() string {
	state := a.controller.State()
	title := AppName
	if state.HasTarget() {
		title = fmt.Sprintf("%s - %s", AppName, filepath.Base(state.Path))
	}
	if state.Unsaved {
		title += " *"
	}
	return title
}

func (a *App) View() string {
	if a.terminating {
		return ""
	}

	width := a.width
	if width == 0 {
		width = 80
	}

	header := a.renderHeader(width)
	menuBar := renderMenuBar(a.keys, width)

	var body string
	switch {
	case a.open.Active():
		body = a.open.View()
	case a.save.Active():
		body = a.save.View()
	case a.confirm.Active():
		body = lipgloss.Place(width, max(a.height-3, 10), lipgloss.Center, lipgloss.Center, a.confirm.View())
	default:
		body = InactiveBorderStyle.Render(a.editor.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, menuBar, body, a.renderStatusBar(width))
}

func (a *App) renderHeader(width int) string {
	heading := strings.ToUpper(a.title)
	colonLen := width - lipgloss.Width(heading) - 4
	if colonLen < 3 {
		colonLen = 3
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(
		GetActiveHeaderStyle(true).Render(heading) + " " +
			GetActiveColonStyle(true).Render(strings.Repeat(":", colonLen)))
}

func (a *App) renderStatusBar(width int) string {
	right := DescriptionStyle.Render(a.stats.Summary())

	left := ""
	if msg, typ, ok := a.status.GetStatus(); ok {
		left = statusStyle(typ).Render(msg)
	} else if path := a.controller.State().Path; path != "" {
		left = DescriptionStyle.Render(path)
	} else {
		left = DescriptionStyle.Render("new file")
	}

	avail := width - lipgloss.Width(right) - 3
	if avail < 0 {
		avail = 0
	}
	left = truncate.StringWithTail(left, uint(avail), "…")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return " " + left + strings.Repeat(" ", gap) + right
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
