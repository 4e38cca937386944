package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Screenshot handles the screenshot command: a one-off capture of an
// existing computer's display written to a local PNG file.
func Screenshot(ctx context.Context, computerID, outputPath string) error {
	creds, err := loadCredentials()
	if err != nil {
		return err
	}

	manager, err := newComputerManager(creds)
	if err != nil {
		return err
	}

	png, err := manager.Screenshot(ctx, computerID)
	if err != nil {
		return fmt.Errorf("failed to capture screenshot of %s: %w", computerID, err)
	}

	if err := os.WriteFile(outputPath, png, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	log.Printf("Screenshot saved to %s", outputPath)
	return nil
}
