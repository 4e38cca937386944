package stages

import (
	"fmt"
	"strings"

	"github.com/prakshal-jain/vaultsetup/internal/provisioning"
)

// RepoDeps installs the repository's declared Python dependencies when a
// requirements.txt manifest is present. It only runs after a successful
// clone.
type RepoDeps struct{}

// NewRepoDeps creates the repository dependency stage.
func NewRepoDeps() *RepoDeps {
	return &RepoDeps{}
}

// Name implements the provisioning.Stage interface.
func (s *RepoDeps) Name() string {
	return "repo-deps"
}

// Run implements the provisioning.Stage interface.
func (s *RepoDeps) Run(ctx *provisioning.Context) error {
	if !ctx.State.RepoCloned {
		return provisioning.Skip("repository was not cloned")
	}

	dest := ctx.Config.Repo.Dest
	check, err := run(ctx, fmt.Sprintf("test -f %s/requirements.txt && echo 'EXISTS' || echo 'NOT_FOUND'", dest))
	if err != nil {
		return err
	}
	if !strings.Contains(check.Output, "EXISTS") {
		return provisioning.Skip("no requirements.txt in repository")
	}

	install, err := run(ctx, fmt.Sprintf("cd %s && pip3 install -r requirements.txt --break-system-packages", dest))
	if err != nil {
		return err
	}
	if !install.Ok() {
		ctx.Observer.Printf("   output: %s", install.Output)
		return fmt.Errorf("pip3 install exited with status %d", install.ExitCode)
	}

	return nil
}
