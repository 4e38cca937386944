package stages

import (
	"fmt"
	"os"

	"github.com/prakshal-jain/vaultsetup/internal/provisioning"
)

// Screenshot captures the computer's display and writes it to a local
// PNG file on the invoking machine.
type Screenshot struct{}

// NewScreenshot creates the screenshot stage.
func NewScreenshot() *Screenshot {
	return &Screenshot{}
}

// Name implements the provisioning.Stage interface.
func (s *Screenshot) Name() string {
	return "screenshot"
}

// Run implements the provisioning.Stage interface.
func (s *Screenshot) Run(ctx *provisioning.Context) error {
	if ctx.Screen == nil {
		return provisioning.Skip("no screenshot capability on this session")
	}

	png, err := ctx.Screen.Screenshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}

	path := ctx.Config.Screenshot
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	ctx.State.ScreenshotPath = path
	ctx.State.ScreenshotPNG = png
	ctx.Observer.Printf("Screenshot saved to %s", path)
	return nil
}
