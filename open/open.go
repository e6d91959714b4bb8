// Package open hands URLs to the system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/kollel-app/kollel/constant"
)

// Command returns the launcher invocation for target on goos.
func Command(goos, target string) ([]string, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return []string{rundll, "url.dll,FileProtocolHandler", target}, nil
	case constant.Darwin:
		return []string{"open", target}, nil
	case constant.Linux:
		return []string{"xdg-open", target}, nil
	case constant.Android:
		return []string{"termux-open", target}, nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}

// Start opens target without waiting for the handler to exit.
func Start(target string) error {
	argv, err := Command(runtime.GOOS, target)
	if err != nil {
		return err
	}
	return exec.Command(argv[0], argv[1:]...).Start()
}
