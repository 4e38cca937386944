package stages

import (
	"fmt"
	"strings"

	"github.com/prakshal-jain/vaultsetup/internal/provisioning"
)

// CloneRepo clones the configured repository onto the computer. A clone
// failure does not stop the run, but it marks the repository as absent
// so the dependency stage skips itself.
type CloneRepo struct{}

// NewCloneRepo creates the repository clone stage.
func NewCloneRepo() *CloneRepo {
	return &CloneRepo{}
}

// Name implements the provisioning.Stage interface.
func (s *CloneRepo) Name() string {
	return "clone-repo"
}

// Run implements the provisioning.Stage interface.
func (s *CloneRepo) Run(ctx *provisioning.Context) error {
	dest := ctx.Config.Repo.Dest

	// A leftover directory from a previous run would make the clone fail.
	if _, err := run(ctx, "rm -rf "+dest); err != nil {
		return err
	}

	result, err := run(ctx, fmt.Sprintf("git clone %s %s", ctx.Config.Repo.URL, dest))
	if err != nil {
		return err
	}
	if !result.Ok() {
		ctx.Observer.Printf("Clone failed: %s", result.Output)
		ctx.Observer.Printf("Tips:")
		if strings.HasPrefix(ctx.Config.Repo.URL, "git@") {
			ctx.Observer.Printf("   - For SSH URLs, enable ssh_key and register the printed public key with GitHub")
		} else {
			ctx.Observer.Printf("   - For HTTPS URLs, make sure the repo is public or embed a personal access token")
		}
		return fmt.Errorf("git clone exited with status %d", result.ExitCode)
	}

	ctx.State.RepoCloned = true
	ctx.Observer.Printf("Repository cloned to %s", dest)
	return nil
}
