package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylearn/internal/auth"
	"github.com/julianstephens/daylearn/internal/catalog"
	"github.com/julianstephens/daylearn/internal/constants"
	"github.com/julianstephens/daylearn/internal/models"
	"github.com/julianstephens/daylearn/internal/notifier"
	"github.com/julianstephens/daylearn/internal/session"
)

type AuthFormModel struct {
	SignUp   bool
	Email    string
	Password string
	FullName string
	Username string
}

type Model struct {
	auth     auth.Provider
	progress session.ProgressStore
	machine  *session.Machine
	notify   notifier.Notifier

	state    constants.SessionState
	user     *models.User
	learner  *session.Session
	saves    *saveRecorder
	cursor   int
	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	loading  string
	form     *huh.Form
	authForm *AuthFormModel
	toasts   *notifier.Recorder

	writing      bool
	pendingWrite *writeOp

	quitting bool
	width    int
	height   int
}

// NewModel builds the app model. sink receives a copy of every toast (for example the
// desktop tray); it may be nil.
func NewModel(authProvider auth.Provider, progress session.ProgressStore, c *catalog.Catalog, sink notifier.Notifier) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	machine := session.NewMachine(c)
	saves := &saveRecorder{}
	return Model{
		auth:     authProvider,
		progress: progress,
		machine:  machine,
		notify:   sink,
		state:    constants.StateLoading,
		learner:  session.New(machine, saves, ""),
		saves:    saves,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinner:  sp,
		loading:  "Checking session...",
		toasts:   &notifier.Recorder{},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, checkSessionCmd(m.auth))
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateAuth:
		return []key.Binding{m.keys.SwitchAuth}
	case constants.StateBrowsing:
		s := m.learner.State()
		keys := []key.Binding{}
		if m.machine.CanStartQuiz(s) {
			keys = append(keys, m.keys.StartQuiz)
		}
		if m.machine.CanSkip(s) {
			keys = append(keys, m.keys.Skip)
		}
		return append(keys, m.keys.Reset, m.keys.Quit, m.keys.Help)
	case constants.StateQuizzing:
		s := m.learner.State()
		option := m.keys.Option
		option.SetEnabled(m.machine.CanSelect(s, 0))
		enter := m.keys.Enter
		switch {
		case s.Revealed && s.IsLastQuestion():
			enter.SetHelp("enter", "finish quiz")
		case s.Revealed:
			enter.SetHelp("enter", "next question")
		case !m.machine.CanSubmit(s):
			enter.SetEnabled(false)
		}
		return []key.Binding{option, enter, m.keys.Back}
	case constants.StateComplete:
		keys := []key.Binding{m.keys.Continue}
		if m.machine.CanStartQuiz(m.learner.State()) {
			keys = append(keys, m.keys.Retake)
		}
		return append(keys, m.keys.Quit)
	case constants.StateConfirmReset:
		return []key.Binding{m.keys.Confirm, m.keys.Cancel}
	}
	return []key.Binding{}
}

func (m Model) FullHelp() [][]key.Binding {
	if m.state != constants.StateBrowsing {
		return [][]key.Binding{m.ShortHelp()}
	}
	return [][]key.Binding{m.ShortHelp(), {m.keys.Logout}}
}

// User returns the signed-in user, nil while signed out.
func (m Model) User() *models.User {
	return m.user
}

// Session returns the current learner state.
func (m Model) Session() session.State {
	return m.learner.State()
}

func (m Model) State() constants.SessionState {
	return m.state
}

// Toast returns the most recent notification.
func (m Model) Toast() (notifier.Notification, bool) {
	return m.toasts.Latest()
}

// screenFor maps the session phase to the screen that shows it.
func screenFor(p session.Phase) constants.SessionState {
	switch p {
	case session.PhaseQuizzing:
		return constants.StateQuizzing
	case session.PhaseComplete:
		return constants.StateComplete
	default:
		return constants.StateBrowsing
	}
}
