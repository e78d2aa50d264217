// Package venmo opens the payment app via its URL scheme. The launch is
// fire-and-forget: no data comes back, and a failed deep link falls back to
// the web page.
package venmo

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog"
)

// Launcher opens URLs with the platform opener. The run hook is replaced in
// tests.
type Launcher struct {
	logger zerolog.Logger
	run    func(name string, args ...string) error
}

// NewLauncher creates a launcher using the real platform opener.
func NewLauncher(logger zerolog.Logger) *Launcher {
	return &Launcher{
		logger: logger,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// PayURL appends the recipient to the deep link when a username is set.
func PayURL(appURL, username string) string {
	if username == "" {
		return appURL
	}
	return fmt.Sprintf("%s&recipients=%s", appURL, url.QueryEscape(username))
}

// Open tries the app deep link first and falls back to the store URL. The
// returned error is informational; callers never block a user action on it.
func (l *Launcher) Open(appURL, storeURL string) error {
	if err := l.open(appURL); err != nil {
		l.logger.Debug().Err(err).Str("url", appURL).Msg("deep link failed, falling back")
		if err := l.open(storeURL); err != nil {
			return fmt.Errorf("venmo: open %s: %w", storeURL, err)
		}
	}
	return nil
}

func (l *Launcher) open(target string) error {
	switch runtime.GOOS {
	case "darwin":
		return l.run("open", target)
	case "windows":
		return l.run("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return l.run("xdg-open", target)
	}
}
