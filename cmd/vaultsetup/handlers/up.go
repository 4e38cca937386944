package handlers

import (
	"context"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/prakshal-jain/vaultsetup/internal/config"
	"github.com/prakshal-jain/vaultsetup/internal/platform/orgo"
	"github.com/prakshal-jain/vaultsetup/internal/provisioning"
	"github.com/prakshal-jain/vaultsetup/internal/provisioning/stages"
	"github.com/prakshal-jain/vaultsetup/internal/remote"
	"github.com/prakshal-jain/vaultsetup/internal/ui"
)

// Factory function variables for up - can be replaced in tests.
var (
	// setupStages returns the ordered stage list.
	setupStages = stages.ForConfig

	// printSummary writes the end-of-run summary.
	printSummary = func(s string) { fmt.Println(s) }
)

// readyPollInterval is how often the computer status is checked after
// creation. A variable so tests can shrink it.
var readyPollInterval = 5 * time.Second

// Up handles the up command: create a computer, wait for it to boot,
// and run the setup sequence against it.
//
// Missing credentials and VM creation failure are fatal. A stage
// failure degrades the run; the summary reports it but the process
// exits normally, matching the rest of the stages-already-ran reality.
// The computer is always left running.
func Up(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// Fail fast before any API client is constructed.
	creds, err := loadCredentials()
	if err != nil {
		return err
	}

	manager, err := newComputerManager(creds)
	if err != nil {
		return err
	}

	timeouts := config.LoadTimeouts()

	log.Printf("Creating computer %s in project %s...", cfg.Name, cfg.Project)
	createCtx, cancel := context.WithTimeout(ctx, timeouts.Create)
	defer cancel()

	computer, err := manager.CreateComputer(createCtx, orgo.CreateOpts{
		Project: cfg.Project,
		Name:    cfg.Name,
		RAM:     cfg.RAM,
		CPU:     cfg.CPU,
		OS:      cfg.OS,
	})
	if err != nil {
		return fmt.Errorf("computer creation failed: %w", err)
	}
	log.Printf("Computer created: %s", computer.ID)
	if computer.URL != "" {
		log.Printf("   View at: %s", computer.URL)
	}

	session := orgo.NewSession(manager, computer)

	log.Printf("Waiting for the computer to be ready...")
	if err := session.WaitReady(ctx, readyPollInterval, timeouts.Ready); err != nil {
		return err
	}

	// Commands go through the Orgo exec endpoint unless the config
	// selects direct SSH. Screenshots always use the API.
	var executor remote.Executor = session
	if cfg.SSH != nil {
		executor, err = newSSHExecutor(cfg.SSH)
		if err != nil {
			return err
		}
		log.Printf("Using SSH transport via %s@%s", cfg.SSH.User, cfg.SSH.Host)
	}

	pCtx := provisioning.NewContext(ctx, cfg, creds, executor, session)
	pCtx.Timeouts = timeouts
	pCtx.State.ComputerID = computer.ID
	pCtx.State.ComputerURL = computer.URL

	report := provisioning.RunStages(pCtx, setupStages())

	printSummary(ui.RenderSummary(summaryInfo(cfg, pCtx.State), report))
	return nil
}

// summaryInfo assembles the summary from config and run state.
func summaryInfo(cfg *config.Config, state *provisioning.State) ui.SummaryInfo {
	info := ui.SummaryInfo{
		ComputerID:   state.ComputerID,
		ComputerURL:  state.ComputerURL,
		Screenshot:   state.ScreenshotPath,
		SSHPublicKey: state.SSHPublicKey,
	}
	if state.RepoCloned {
		info.RepoDest = cfg.Repo.Dest
	}
	if state.BrowserUseReady {
		info.Venv = cfg.BrowserUse.Venv
	}
	if cfg.Artifact != nil && state.ScreenshotPath != "" {
		info.ArtifactURL = cfg.Artifact.Bucket + "/" + path.Join(cfg.Artifact.Prefix, path.Base(state.ScreenshotPath))
	}
	return info
}
