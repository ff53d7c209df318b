package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/daylearn/internal/auth"
	"github.com/julianstephens/daylearn/internal/backup"
	"github.com/julianstephens/daylearn/internal/catalog"
	"github.com/julianstephens/daylearn/internal/errors"
	"github.com/julianstephens/daylearn/internal/keyring"
	"github.com/julianstephens/daylearn/internal/logger"
	"github.com/julianstephens/daylearn/internal/models"
	"github.com/julianstephens/daylearn/internal/notifier"
	"github.com/julianstephens/daylearn/internal/session"
	"github.com/julianstephens/daylearn/internal/storage"
)

type Context struct {
	Store    storage.Provider
	Catalog  *catalog.Catalog
	Auth     auth.Provider
	Progress *session.Progress
	// Console prints notifications for one-shot commands.
	Console notifier.Notifier
	// Tray forwards TUI toasts to the desktop companion when it is running.
	Tray *notifier.Tray
	Out  io.Writer
}

// NewContext wires the default collaborators around an already selected store. An
// in-memory store keeps its session token in memory too, so it never signs out the
// keyring session of the persistent store.
func NewContext(store storage.Provider) *Context {
	var tokens auth.TokenStore = keyring.TokenStore{}
	if _, ephemeral := store.(*storage.MemoryStore); ephemeral {
		tokens = &auth.MemoryTokens{}
	}
	return NewContextWith(store, auth.NewLocalProvider(store, tokens), os.Stdout)
}

// NewContextWith is NewContext with the auth provider and output supplied by the caller.
func NewContextWith(store storage.Provider, authProvider auth.Provider, out io.Writer) *Context {
	c := catalog.Default()
	return &Context{
		Store:    store,
		Catalog:  c,
		Auth:     authProvider,
		Progress: session.NewProgress(store, c.Len()),
		Console:  notifier.NewConsole(out),
		Tray:     notifier.NewTray(),
		Out:      out,
	}
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Out, args...)
}

// Notify prints a notification and forwards it to the tray companion. Delivery failures
// are only logged.
func (c *Context) Notify(title, description string, severity notifier.Severity) {
	sinks := notifier.Multi{c.Console}
	if c.Tray != nil {
		sinks = append(sinks, c.Tray)
	}
	if err := sinks.Notify(title, description, severity); err != nil {
		logger.Debug("Notification not delivered", "error", err)
	}
}

// RequireUser returns the signed-in user or an error telling the caller how to sign in.
func (c *Context) RequireUser() (*models.User, error) {
	user, err := c.Auth.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: not signed in, run 'daylearn login' first", errors.ErrAuthFailure)
	}
	return user, nil
}

// LoadSession restores the signed-in user's progress into a live session.
func (c *Context) LoadSession() (*session.Session, error) {
	user, err := c.RequireUser()
	if err != nil {
		return nil, err
	}
	s := session.New(session.NewMachine(c.Catalog), c.Progress, user.ID)
	if err := s.Restore(); err != nil {
		logger.Warn("Using default progress", "user", user.ID, "error", err)
		c.Notify("Could not load saved progress", "Starting from your defaults.", notifier.Warning)
	}
	return s, nil
}

// BackupManager returns the snapshot manager for file-backed SQLite stores, nil otherwise.
func (c *Context) BackupManager() *backup.Manager {
	if _, ok := c.Store.(*storage.SQLiteStore); !ok {
		return nil
	}
	return backup.NewManager(c.Store.GetConfigPath())
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := c.BackupManager()
	if mgr == nil {
		return
	}
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
