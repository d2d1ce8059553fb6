package browser

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Open opens the specified URL in the user's browser. $BROWSER wins when
// set, which is also the escape hatch on headless boxes.
func Open(url string) error {
	if cmd := os.Getenv("BROWSER"); cmd != "" {
		return exec.Command(cmd, url).Start()
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
