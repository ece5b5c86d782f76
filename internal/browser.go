package internal

import (
	"os/exec"
	"runtime"
)

// OpenBrowser opens the rendered artifact with the platform's default
// browser. Best-effort: callers treat a failure as non-fatal.
func OpenBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
