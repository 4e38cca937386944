package stages

import (
	"fmt"
	"os"

	"github.com/prakshal-jain/vaultsetup/internal/provisioning"
	"github.com/prakshal-jain/vaultsetup/internal/util/keygen"
)

// privateKeyFile is where the generated private key is written on the
// invoking machine.
const privateKeyFile = "vaultsetup_id_rsa"

// SSHKey generates an RSA key pair locally, saves the private key next
// to the invoker, and installs the public key on the computer. The
// public key is surfaced so the operator can register it with GitHub.
type SSHKey struct {
	// Bits is the RSA key size. Defaults to 4096.
	Bits int
}

// NewSSHKey creates the SSH key stage.
func NewSSHKey() *SSHKey {
	return &SSHKey{Bits: 4096}
}

// Name implements the provisioning.Stage interface.
func (s *SSHKey) Name() string {
	return "ssh-key"
}

// Run implements the provisioning.Stage interface.
func (s *SSHKey) Run(ctx *provisioning.Context) error {
	if !ctx.Config.SSHKey.Enabled {
		return provisioning.Skip("ssh_key.enabled is false")
	}

	bits := s.Bits
	if bits == 0 {
		bits = 4096
	}
	pair, err := keygen.GenerateRSAKeyPair(bits)
	if err != nil {
		return fmt.Errorf("failed to generate key pair: %w", err)
	}

	if err := os.WriteFile(privateKeyFile, pair.PrivateKey, 0o600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}

	install := fmt.Sprintf(
		"mkdir -p ~/.ssh && chmod 700 ~/.ssh && cat >> ~/.ssh/authorized_keys << 'KEY_EOF'\n%sKEY_EOF\nchmod 600 ~/.ssh/authorized_keys",
		pair.PublicKey,
	)
	result, err := run(ctx, install)
	if err != nil {
		return err
	}
	if !result.Ok() {
		return fmt.Errorf("failed to install public key: exit status %d: %s", result.ExitCode, result.Output)
	}

	ctx.State.SSHPublicKey = string(pair.PublicKey)
	ctx.Observer.Printf("Public SSH key (add this to GitHub):\n%s", pair.PublicKey)
	ctx.Observer.Printf("Private key saved to %s", privateKeyFile)
	return nil
}
