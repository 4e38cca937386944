package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// machineSize pairs RAM and CPU for the wizard's size selector.
type machineSize struct {
	RAM int
	CPU int
}

// WizardResult holds the user's choices from the wizard.
type WizardResult struct {
	Project    string
	Name       string
	Size       machineSize
	RepoURL    string
	GitName    string
	GitEmail   string
	BrowserUse bool
}

// RunWizard runs the interactive configuration wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		Size:       machineSize{RAM: 4, CPU: 2},
		GitName:    "Samantha AI",
		GitEmail:   "samantha@example.com",
		BrowserUse: true,
	}

	form := huh.NewForm(
		// Computer identity
		huh.NewGroup(
			huh.NewInput().
				Title("Project").
				Description("Orgo project the computer is created in").
				Placeholder("samantha-vault").
				Value(&result.Project).
				Validate(validateIdentifier("project")),

			huh.NewInput().
				Title("Computer name").
				Description("A unique name for the VM").
				Placeholder("vault-vm").
				Value(&result.Name).
				Validate(validateIdentifier("name")),
		),

		// Machine size
		huh.NewGroup(
			huh.NewSelect[machineSize]().
				Title("Machine size").
				Description("RAM and vCPU for the computer").
				Options(
					huh.NewOption("2 GB RAM, 1 vCPU", machineSize{RAM: 2, CPU: 1}),
					huh.NewOption("4 GB RAM, 2 vCPU", machineSize{RAM: 4, CPU: 2}),
					huh.NewOption("8 GB RAM, 4 vCPU", machineSize{RAM: 8, CPU: 4}),
					huh.NewOption("16 GB RAM, 8 vCPU", machineSize{RAM: 16, CPU: 8}),
				).
				Value(&result.Size),
		),

		// Repository
		huh.NewGroup(
			huh.NewInput().
				Title("Repository URL").
				Description("The vault repository cloned onto the computer").
				Placeholder("https://github.com/you/your-vault.git").
				Value(&result.RepoURL).
				Validate(validateRepoURL),
		),

		// Git identity
		huh.NewGroup(
			huh.NewInput().
				Title("Git author name").
				Value(&result.GitName),

			huh.NewInput().
				Title("Git author email").
				Value(&result.GitEmail).
				Validate(validateEmail),
		),

		// Browser automation
		huh.NewGroup(
			huh.NewConfirm().
				Title("Install browser-use + Chromium?").
				Description("Headless browser automation stack (takes 5-10 minutes on the VM)").
				Value(&result.BrowserUse),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard result to a Config with defaults applied.
func (r *WizardResult) ToConfig() *Config {
	enabled := r.BrowserUse
	cfg := &Config{
		Project: r.Project,
		Name:    r.Name,
		RAM:     r.Size.RAM,
		CPU:     r.Size.CPU,
		Repo: RepoConfig{
			URL: r.RepoURL,
		},
		Git: GitConfig{
			Name:  r.GitName,
			Email: r.GitEmail,
		},
		BrowserUse: BrowserUseConfig{
			Enabled: &enabled,
		},
	}
	cfg.applyDefaults()
	return cfg
}

// validateIdentifier validates a required, space-free identifier field.
func validateIdentifier(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		if strings.ContainsAny(s, " \t") {
			return fmt.Errorf("%s cannot contain whitespace", field)
		}
		return nil
	}
}

// validateRepoURL validates the repository clone URL.
func validateRepoURL(s string) error {
	if s == "" {
		return fmt.Errorf("repository URL is required")
	}
	if !strings.HasPrefix(s, "https://") && !strings.HasPrefix(s, "git@") {
		return fmt.Errorf("expected an https:// or git@ URL")
	}
	return nil
}

// validateEmail performs basic email validation.
func validateEmail(s string) error {
	if s == "" {
		return nil // Falls back to the default identity
	}
	if !strings.Contains(s, "@") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
