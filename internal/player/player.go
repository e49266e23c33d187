// ABOUTME: Launches the external video player for a lesson's video URL
// ABOUTME: Uses the configured command or falls back to the OS URL opener

package player

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/lectern/lectern/internal/log"
)

// Launcher starts an external player process for video URLs. Playback is
// fully delegated: no control protocol beyond handing over the URL.
type Launcher struct {
	command string
}

// New creates a Launcher. An empty command selects the OS URL opener.
func New(command string) *Launcher {
	return &Launcher{command: command}
}

// Open starts the player for the given URL without waiting for it to exit.
func (l *Launcher) Open(url string) error {
	if url == "" {
		return fmt.Errorf("no video reference")
	}

	argv := l.argv(url)
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting player %s: %w", argv[0], err)
	}
	log.Debug("player: started %s (pid %d)", argv[0], cmd.Process.Pid)

	// Reap the process so it never lingers as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

// argv builds the player command line. A configured command may carry its
// own flags ("mpv --fullscreen"); the URL is always the last argument.
func (l *Launcher) argv(url string) []string {
	if l.command != "" {
		return append(strings.Fields(l.command), url)
	}
	switch runtime.GOOS {
	case "darwin":
		return []string{"open", url}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", url}
	default:
		return []string{"xdg-open", url}
	}
}
