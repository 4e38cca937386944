package provisioning

// State holds the shared results of setup stages.
// It is progressively populated as each stage completes and is read
// by subsequent stages that depend on earlier results.
type State struct {
	// Computer identity (populated before the first stage runs)
	ComputerID  string
	ComputerURL string

	// Repository results (populated by the clone stage)
	RepoCloned bool

	// SSH key results (populated by the SSH key stage)
	SSHPublicKey string

	// Browser automation results (populated by the browser-use stage)
	BrowserUseReady bool
	InstallLogPath  string

	// Screenshot results (populated by the screenshot stage)
	ScreenshotPath string
	ScreenshotPNG  []byte
}

// NewState creates an empty setup state.
func NewState() *State {
	return &State{}
}
