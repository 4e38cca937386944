package handlers

import (
	"context"
	"log"

	"github.com/prakshal-jain/vaultsetup/internal/config"
)

// Destroy handles the destroy command. Destroying an already-deleted
// computer succeeds.
func Destroy(ctx context.Context, computerID string) error {
	creds, err := loadCredentials()
	if err != nil {
		return err
	}

	manager, err := newComputerManager(creds)
	if err != nil {
		return err
	}

	timeouts := config.LoadTimeouts()
	destroyCtx, cancel := context.WithTimeout(ctx, timeouts.Destroy)
	defer cancel()

	log.Printf("Destroying computer %s...", computerID)
	if err := manager.DestroyComputer(destroyCtx, computerID); err != nil {
		return err
	}

	log.Printf("Computer %s destroyed", computerID)
	return nil
}
