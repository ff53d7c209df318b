package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/daylearn/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// ErrTrayNotRunning is returned when no tray companion is listening.
var ErrTrayNotRunning = errors.New(constants.TrayExecutablePrefix + " is not running")

// Tray posts notifications to the desktop tray companion's local webhook. The companion
// advertises itself through a lockfile holding "port|pid|secret".
type Tray struct {
	client *http.Client
}

type WebhookPayload struct {
	Title      string   `json:"title"`
	Text       string   `json:"text"`
	Severity   Severity `json:"severity"`
	DurationMs uint32   `json:"duration_ms"`
}

type trayEndpoint struct {
	port   int
	pid    int
	secret string
}

func (e trayEndpoint) url() string {
	return fmt.Sprintf("http://127.0.0.1:%d", e.port)
}

func NewTray() *Tray {
	return &Tray{client: &http.Client{Timeout: 2 * time.Second}}
}

func (t *Tray) Notify(title, description string, severity Severity) error {
	dir, err := TrayConfigDir()
	if err != nil {
		return err
	}

	endpoint, err := findTray(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}

	return t.send(endpoint, WebhookPayload{
		Title:      title,
		Text:       description,
		Severity:   severity,
		DurationMs: constants.NotificationDurationMs,
	})
}

// Available reports whether a tray companion is currently reachable through its lockfile.
func (t *Tray) Available() bool {
	dir, err := TrayConfigDir()
	if err != nil {
		return false
	}
	_, err = findTray(filepath.Join(dir, constants.NotifierLockfileName))
	return err == nil
}

// TrayConfigDir returns the directory holding the tray companion's lockfile. The companion
// may relocate it through "lockfile_dir" in its settings.json.
func TrayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	trayDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(trayDir, "settings.json"))
	if err != nil {
		return trayDir, nil
	}
	var store struct {
		Settings struct {
			LockfileDir *string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(data, &store); err == nil &&
		store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
		return *store.Settings.LockfileDir, nil
	}
	return trayDir, nil
}

func parseLockfile(content string) (trayEndpoint, error) {
	parts := strings.Split(strings.TrimSpace(content), "|")
	if len(parts) != 3 {
		return trayEndpoint{}, errors.New("lockfile is malformed")
	}

	port, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return trayEndpoint{}, errors.New("invalid port number in lockfile")
	}
	if port < 1 || port > 65535 {
		return trayEndpoint{}, fmt.Errorf("port number %d is outside valid range (1-65535)", port)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return trayEndpoint{}, errors.New("invalid process ID in lockfile")
	}

	secret := strings.TrimSpace(parts[2])
	if secret == "" {
		return trayEndpoint{}, errors.New("secret in lockfile is empty")
	}
	return trayEndpoint{port: port, pid: pid, secret: secret}, nil
}

func findTray(lockfilePath string) (trayEndpoint, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return trayEndpoint{}, ErrTrayNotRunning
	}
	endpoint, err := parseLockfile(string(content))
	if err != nil {
		return trayEndpoint{}, err
	}

	// A stale lockfile can point at a recycled pid.
	process, err := findProcessFunc(endpoint.pid)
	if err != nil || process == nil {
		return trayEndpoint{}, ErrTrayNotRunning
	}
	if !strings.HasPrefix(process.Executable(), constants.TrayExecutablePrefix) {
		return trayEndpoint{}, fmt.Errorf("process with PID %d is not %s (is %s)",
			endpoint.pid, constants.TrayExecutablePrefix, process.Executable())
	}
	return endpoint, nil
}

func (t *Tray) send(endpoint trayEndpoint, payload WebhookPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, endpoint.url(), bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.TraySecretHeader, endpoint.secret)

	res, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
