package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/daylearn/internal/logger"
)

// Error taxonomy shared by the core packages. Callers wrap these with fmt.Errorf("...: %w")
// and inspect them with errors.Is.
var (
	// ErrAuthFailure is returned when signing in, signing up or reading the session fails
	ErrAuthFailure = stderrors.New("authentication failed")
	// ErrPersistenceRead is returned when saved progress cannot be read; callers fall back to defaults
	ErrPersistenceRead = stderrors.New("failed to read saved progress")
	// ErrPersistenceWrite is returned when progress cannot be written; in-memory state stays authoritative
	ErrPersistenceWrite = stderrors.New("failed to save progress")
	// ErrInvalidTransition is returned when a session action is not allowed in the current state
	ErrInvalidTransition = stderrors.New("action not available")
)

// IsRecoverable reports whether err belongs to the non-fatal part of the taxonomy:
// the session may continue (possibly unpersisted) after any of these.
func IsRecoverable(err error) bool {
	return stderrors.Is(err, ErrAuthFailure) ||
		stderrors.Is(err, ErrPersistenceRead) ||
		stderrors.Is(err, ErrPersistenceWrite) ||
		stderrors.Is(err, ErrInvalidTransition)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
