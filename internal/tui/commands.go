package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daylearn/internal/auth"
	"github.com/julianstephens/daylearn/internal/models"
	"github.com/julianstephens/daylearn/internal/session"
)

type sessionCheckedMsg struct {
	user *models.User
	err  error
}

type authResultMsg struct {
	user   *models.User
	signUp bool
	err    error
}

type progressLoadedMsg struct {
	userID string
	snap   session.Snapshot
	err    error
}

type writeDoneMsg struct {
	clear bool
	err   error
}

type signedOutMsg struct {
	err error
}

func checkSessionCmd(p auth.Provider) tea.Cmd {
	return func() tea.Msg {
		user, err := p.CurrentUser()
		return sessionCheckedMsg{user: user, err: err}
	}
}

func authCmd(p auth.Provider, form AuthFormModel) tea.Cmd {
	return func() tea.Msg {
		if form.SignUp {
			user, err := p.SignUp(form.Email, form.Password, models.Profile{
				FullName: form.FullName,
				Username: form.Username,
			})
			return authResultMsg{user: user, signUp: true, err: err}
		}
		user, err := p.SignIn(form.Email, form.Password)
		return authResultMsg{user: user, err: err}
	}
}

func loadProgressCmd(store session.ProgressStore, userID string) tea.Cmd {
	return func() tea.Msg {
		snap, err := store.Load(userID)
		return progressLoadedMsg{userID: userID, snap: snap, err: err}
	}
}

func writeCmd(store session.ProgressStore, op writeOp) tea.Cmd {
	return func() tea.Msg {
		if op.clear {
			return writeDoneMsg{clear: true, err: store.Clear(op.userID)}
		}
		return writeDoneMsg{err: store.Save(op.userID, op.snap)}
	}
}

func signOutCmd(p auth.Provider) tea.Cmd {
	return func() tea.Msg {
		return signedOutMsg{err: p.SignOut()}
	}
}
