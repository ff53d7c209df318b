package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylearn/internal/constants"
	"github.com/julianstephens/daylearn/internal/logger"
	"github.com/julianstephens/daylearn/internal/notifier"
	"github.com/julianstephens/daylearn/internal/session"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.state != constants.StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionCheckedMsg:
		return m.handleSessionChecked(msg)

	case authResultMsg:
		return m.handleAuthResult(msg)

	case progressLoadedMsg:
		return m.handleProgressLoaded(msg)

	case writeDoneMsg:
		return m.handleWriteDone(msg)

	case signedOutMsg:
		return m.handleSignedOut(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.state {
	case constants.StateAuth:
		return m.updateAuth(msg)
	case constants.StateLoading:
		// Input is ignored until the outstanding request resolves.
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.state {
	case constants.StateBrowsing:
		return m.updateBrowsing(keyMsg)
	case constants.StateQuizzing:
		return m.updateQuizzing(keyMsg)
	case constants.StateComplete:
		return m.updateComplete(keyMsg)
	case constants.StateConfirmReset:
		return m.updateConfirmReset(keyMsg)
	}
	return m, nil
}

func (m *Model) enterLoading(label string) tea.Cmd {
	m.state = constants.StateLoading
	m.loading = label
	return m.spinner.Tick
}

func (m *Model) enterAuth(signUp bool, email string) tea.Cmd {
	m.authForm = &AuthFormModel{SignUp: signUp, Email: email}
	m.form = newAuthForm(m.authForm)
	m.state = constants.StateAuth
	return m.form.Init()
}

// toast records a notification for display and forwards it to the external sink.
func (m *Model) toast(title, description string, severity notifier.Severity) tea.Cmd {
	_ = m.toasts.Notify(title, description, severity)
	if m.notify == nil {
		return nil
	}
	sink := m.notify
	return func() tea.Msg {
		if err := sink.Notify(title, description, severity); err != nil {
			logger.Debug("Notification not delivered", "error", err)
		}
		return nil
	}
}

// queueWrite starts a persistence write, or parks it behind the one in flight. A parked
// write replaces any older parked write.
func (m *Model) queueWrite(op writeOp) tea.Cmd {
	if op.userID == "" {
		return nil
	}
	if m.writing {
		m.pendingWrite = &op
		return nil
	}
	m.writing = true
	return writeCmd(m.progress, op)
}

// flushSave queues whatever the last session transition asked to persist.
func (m *Model) flushSave() tea.Cmd {
	op, ok := m.saves.take()
	if !ok {
		return nil
	}
	return m.queueWrite(op)
}

func (m Model) handleSessionChecked(msg sessionCheckedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logger.Warn("Failed to read session", "error", msg.err)
		toast := m.toast("Could not restore session", msg.err.Error(), notifier.Warning)
		return m, tea.Batch(toast, m.enterAuth(false, ""))
	}
	if msg.user == nil {
		return m, m.enterAuth(false, "")
	}
	m.user = msg.user
	return m, tea.Batch(m.enterLoading("Loading progress..."), loadProgressCmd(m.progress, msg.user.ID))
}

func (m Model) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.SwitchAuth) {
		return m, m.enterAuth(!m.authForm.SignUp, m.authForm.Email)
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		data := *m.authForm
		label := "Signing in..."
		if data.SignUp {
			label = "Creating account..."
		}
		return m, tea.Batch(m.enterLoading(label), authCmd(m.auth, data))
	case huh.StateAborted:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	email := ""
	if m.authForm != nil {
		email = m.authForm.Email
	}
	if msg.err != nil {
		title := "Error signing in"
		if msg.signUp {
			title = "Error signing up"
		}
		logger.Info("Authentication failed", "signup", msg.signUp, "error", msg.err)
		toast := m.toast(title, msg.err.Error(), notifier.Error)
		return m, tea.Batch(toast, m.enterAuth(msg.signUp, email))
	}

	m.user = msg.user
	m.authForm = nil
	m.form = nil
	var toast tea.Cmd
	if msg.signUp {
		toast = m.toast("Account created!", "Your progress will be saved as you learn.", notifier.Success)
	} else {
		toast = m.toast("Welcome back!", "You have successfully signed in.", notifier.Success)
	}
	return m, tea.Batch(toast, m.enterLoading("Loading progress..."), loadProgressCmd(m.progress, msg.user.ID))
}

func (m Model) handleProgressLoaded(msg progressLoadedMsg) (tea.Model, tea.Cmd) {
	if m.user == nil || m.user.ID != msg.userID {
		// Signed out while loading.
		return m, nil
	}
	m.learner = session.New(m.machine, m.saves, msg.userID)
	m.learner.Resume(msg.snap)
	m.state = constants.StateBrowsing
	logger.Debug("Progress loaded", "user", msg.userID, "day", msg.snap.DayIndex)

	if msg.err != nil {
		return m, m.toast("Could not load saved progress", "Starting from your defaults; new progress will still be saved.", notifier.Warning)
	}
	return m, nil
}

func (m Model) handleWriteDone(msg writeDoneMsg) (tea.Model, tea.Cmd) {
	m.writing = false
	var cmds []tea.Cmd
	if msg.err != nil {
		logger.Error("Failed to persist progress", "error", msg.err)
		cmds = append(cmds, m.toast("Progress not saved", msg.err.Error(), notifier.Error))
	}
	if m.pendingWrite != nil {
		op := *m.pendingWrite
		m.pendingWrite = nil
		cmds = append(cmds, m.queueWrite(op))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleSignedOut(msg signedOutMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logger.Error("Failed to sign out", "error", msg.err)
		m.state = screenFor(m.learner.State().Phase)
		return m, m.toast("Error signing out", msg.err.Error(), notifier.Error)
	}
	// A parked write carries its own user id and still goes out when the running one ends.
	m.user = nil
	m.learner = session.New(m.machine, m.saves, "")
	toast := m.toast("Signed out", "See you tomorrow.", notifier.Info)
	return m, tea.Batch(toast, m.enterAuth(false, ""))
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.StartQuiz):
		return m.startQuiz()
	case key.Matches(msg, m.keys.Skip):
		if !m.machine.CanSkip(m.learner.State()) {
			return m, nil
		}
		return m.advanceDay()
	case key.Matches(msg, m.keys.Reset):
		m.state = constants.StateConfirmReset
	case key.Matches(msg, m.keys.Logout):
		return m, tea.Batch(m.enterLoading("Signing out..."), signOutCmd(m.auth))
	}
	return m, nil
}

func (m Model) startQuiz() (tea.Model, tea.Cmd) {
	if err := m.learner.StartQuiz(); err != nil {
		logger.Debug("Quiz not started", "error", err)
		return m, nil
	}
	m.cursor = 0
	m.state = constants.StateQuizzing
	return m, nil
}

func (m Model) advanceDay() (tea.Model, tea.Cmd) {
	if err := m.learner.AdvanceDay(); err != nil {
		logger.Debug("Day not advanced", "error", err)
		return m, nil
	}
	m.state = constants.StateBrowsing
	return m, m.flushSave()
}

func (m Model) updateQuizzing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		if err := m.learner.Abandon(); err == nil {
			m.state = constants.StateBrowsing
		}
	case key.Matches(msg, m.keys.Option):
		m.selectAnswer(int(msg.Runes[0] - '1'))
	case key.Matches(msg, m.keys.Up):
		m.selectAnswer((m.cursor + constants.OptionsPerQuestion - 1) % constants.OptionsPerQuestion)
	case key.Matches(msg, m.keys.Down):
		m.selectAnswer((m.cursor + 1) % constants.OptionsPerQuestion)
	case key.Matches(msg, m.keys.Enter):
		return m.enter()
	}
	return m, nil
}

func (m *Model) selectAnswer(i int) {
	if !m.machine.CanSelect(m.learner.State(), i) {
		return
	}
	if err := m.learner.SelectAnswer(i); err != nil {
		return
	}
	m.cursor = i
}

// enter submits the selected answer, or moves past a revealed one.
func (m Model) enter() (tea.Model, tea.Cmd) {
	s := m.learner.State()
	if m.machine.CanSubmit(s) {
		correct, err := m.learner.SubmitAnswer()
		if err != nil {
			return m, nil
		}
		logger.Debug("Answer submitted", "question", s.QuestionIndex, "correct", correct)
		return m, m.flushSave()
	}
	if m.machine.CanNext(s) {
		if err := m.learner.NextQuestion(); err != nil {
			return m, nil
		}
		m.cursor = 0
		m.state = screenFor(m.learner.State().Phase)
	}
	return m, nil
}

func (m Model) updateComplete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Continue):
		return m.advanceDay()
	case key.Matches(msg, m.keys.Retake):
		return m.startQuiz()
	}
	return m, nil
}

func (m Model) updateConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		_ = m.learner.Reset()
		m.state = constants.StateBrowsing
		toast := m.toast("Progress reset", "Starting again from day 1.", notifier.Info)
		return m, tea.Batch(toast, m.flushSave())
	case key.Matches(msg, m.keys.Cancel):
		m.state = screenFor(m.learner.State().Phase)
	}
	return m, nil
}
