package e2e

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/prakshal-jain/vaultsetup/internal/config"
	"github.com/prakshal-jain/vaultsetup/internal/platform/orgo"
	"github.com/prakshal-jain/vaultsetup/internal/provisioning"
	"github.com/prakshal-jain/vaultsetup/internal/provisioning/stages"
	"github.com/prakshal-jain/vaultsetup/internal/remote"
)

// scriptedManager wraps MockManager with command recording and
// per-substring canned results, plus a sentinel that appears after a
// given number of log polls.
type scriptedManager struct {
	*orgo.MockManager
	commands      []string
	sentinelAfter int
	polls         int
	rules         []remote.Rule
}

func newScriptedManager(sentinelAfter int, rules ...remote.Rule) *scriptedManager {
	m := &scriptedManager{sentinelAfter: sentinelAfter, rules: rules}
	m.MockManager = &orgo.MockManager{
		ExecFunc: func(_ context.Context, _ string, command string) (*remote.ExecResult, error) {
			m.commands = append(m.commands, command)

			if strings.Contains(command, "grep -q") {
				m.polls++
				if m.sentinelAfter > 0 && m.polls >= m.sentinelAfter {
					return &remote.ExecResult{Output: "DONE\n"}, nil
				}
				return &remote.ExecResult{Output: "PENDING\n"}, nil
			}

			for _, r := range m.rules {
				if strings.Contains(command, r.Contains) {
					return r.Result, r.Err
				}
			}
			return &remote.ExecResult{ExitCode: 0}, nil
		},
	}
	return m
}

func (m *scriptedManager) saw(substr string) bool {
	for _, c := range m.commands {
		if strings.Contains(c, substr) {
			return true
		}
	}
	return false
}

// runSetup provisions a computer on the manager and runs the full stage
// sequence, returning the report and the run state.
func runSetup(manager *scriptedManager, cfg *config.Config) (*provisioning.Report, *provisioning.State) {
	ctx := context.Background()

	computer, err := manager.CreateComputer(ctx, orgo.CreateOpts{
		Project: cfg.Project, Name: cfg.Name, RAM: cfg.RAM, CPU: cfg.CPU, OS: cfg.OS,
	})
	Expect(err).NotTo(HaveOccurred())

	session := orgo.NewSession(manager, computer)
	Expect(session.WaitReady(ctx, time.Millisecond, 100*time.Millisecond)).To(Succeed())

	pCtx := provisioning.NewContext(ctx, cfg, &config.Credentials{APIKey: "sk_test", AnthropicKey: "ak_test"}, session, session)
	pCtx.Timeouts = &config.Timeouts{
		PollInterval:      time.Millisecond,
		PollMaxAttempts:   5,
		PollProgressEvery: 6,
	}
	pCtx.State.ComputerID = computer.ID

	return provisioning.RunStages(pCtx, stages.ForConfig()), pCtx.State
}

func testConfig(dir string) *config.Config {
	return &config.Config{
		Project: "samantha-vault",
		Name:    "vault-vm",
		RAM:     4, CPU: 2, OS: "linux",
		Repo:          config.RepoConfig{URL: "https://github.com/you/example-vault.git", Dest: "~/vault"},
		Git:           config.GitConfig{Name: "Samantha AI", Email: "samantha@example.com"},
		BrowserUse:    config.BrowserUseConfig{Venv: "~/browser-use-env"},
		ExampleScript: config.ExampleScriptConfig{Path: "/root/browser-use-example.py"},
		Screenshot:    filepath.Join(dir, "vault-setup.png"),
	}
}

var _ = Describe("Setup sequence", func() {
	Describe("missing credential", func() {
		It("fails before any computer is created", func() {
			GinkgoT().Setenv(config.EnvAPIKey, "")

			_, err := config.LoadCredentials()
			Expect(err).To(MatchError(ContainSubstring(config.EnvAPIKey)))
		})
	})

	Describe("all commands succeed and the sentinel appears on the second poll", func() {
		It("completes the full sequence with example script and screenshot", func() {
			dir := GinkgoT().TempDir()
			manager := newScriptedManager(2)

			report, state := runSetup(manager, testConfig(dir))

			Expect(report.Degraded()).To(BeFalse())
			Expect(state.BrowserUseReady).To(BeTrue())
			Expect(manager.polls).To(Equal(2))

			By("writing the example script on the computer")
			Expect(manager.saw("cat > /root/browser-use-example.py")).To(BeTrue())

			By("producing a local screenshot file")
			Expect(state.ScreenshotPath).NotTo(BeEmpty())
			_, statErr := os.Stat(state.ScreenshotPath)
			Expect(statErr).NotTo(HaveOccurred())
		})
	})

	Describe("repository clone fails", func() {
		It("skips the dependency stage but still runs later stages", func() {
			dir := GinkgoT().TempDir()
			manager := newScriptedManager(1, remote.Rule{
				Contains: "git clone",
				Result:   &remote.ExecResult{ExitCode: 128, Output: "fatal: repository not found"},
			})

			report, state := runSetup(manager, testConfig(dir))

			Expect(state.RepoCloned).To(BeFalse())

			byName := map[string]provisioning.StageResult{}
			for _, s := range report.Stages {
				byName[s.Name] = s
			}

			Expect(byName["clone-repo"].Status).To(Equal(provisioning.StatusFailed))
			Expect(byName["repo-deps"].Status).To(Equal(provisioning.StatusSkipped))

			By("still attempting the browser-use install")
			Expect(byName["browser-use"].Status).To(Equal(provisioning.StatusOK))
			Expect(manager.saw("nohup /tmp/install-browser-use.sh")).To(BeTrue())

			By("still capturing the screenshot")
			Expect(byName["screenshot"].Status).To(Equal(provisioning.StatusOK))
		})
	})

	Describe("sentinel never appears", func() {
		It("fails the install within the attempt budget and skips the example script", func() {
			dir := GinkgoT().TempDir()
			manager := newScriptedManager(0)

			report, state := runSetup(manager, testConfig(dir))

			byName := map[string]provisioning.StageResult{}
			for _, s := range report.Stages {
				byName[s.Name] = s
			}

			Expect(byName["browser-use"].Status).To(Equal(provisioning.StatusFailed))
			Expect(byName["example-script"].Status).To(Equal(provisioning.StatusSkipped))
			Expect(state.BrowserUseReady).To(BeFalse())
			Expect(manager.polls).To(Equal(5))
			Expect(manager.saw("tail -20 /tmp/browser-use-install.log")).To(BeTrue())
		})
	})
})
