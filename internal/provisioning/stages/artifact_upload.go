package stages

import (
	"context"
	"fmt"
	"path"

	"github.com/prakshal-jain/vaultsetup/internal/platform/s3"
	"github.com/prakshal-jain/vaultsetup/internal/provisioning"
)

// Uploader is the object storage surface the artifact stage needs.
// Satisfied by s3.Client.
type Uploader interface {
	EnsureBucket(ctx context.Context, bucket string) error
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

// ArtifactUpload pushes the captured screenshot to S3-compatible object
// storage. It only runs when an artifact target is configured and a
// screenshot was actually captured.
type ArtifactUpload struct {
	// Uploader overrides the storage client, used by tests. When nil a
	// real S3 client is built from config and credentials.
	Uploader Uploader
}

// NewArtifactUpload creates the artifact upload stage.
func NewArtifactUpload() *ArtifactUpload {
	return &ArtifactUpload{}
}

// Name implements the provisioning.Stage interface.
func (s *ArtifactUpload) Name() string {
	return "artifact-upload"
}

// Run implements the provisioning.Stage interface.
func (s *ArtifactUpload) Run(ctx *provisioning.Context) error {
	artifact := ctx.Config.Artifact
	if artifact == nil {
		return provisioning.Skip("no artifact target configured")
	}
	if len(ctx.State.ScreenshotPNG) == 0 {
		return provisioning.Skip("no screenshot captured")
	}

	uploader := s.Uploader
	if uploader == nil {
		if ctx.Creds == nil || ctx.Creds.ArtifactAccessKey == "" || ctx.Creds.ArtifactSecretKey == "" {
			return fmt.Errorf("artifact credentials are not set")
		}
		client, err := s3.NewClient(artifact.Endpoint, artifact.Region,
			ctx.Creds.ArtifactAccessKey, ctx.Creds.ArtifactSecretKey)
		if err != nil {
			return fmt.Errorf("failed to build storage client: %w", err)
		}
		uploader = client
	}

	if err := uploader.EnsureBucket(ctx, artifact.Bucket); err != nil {
		return err
	}

	key := path.Join(artifact.Prefix, path.Base(ctx.State.ScreenshotPath))
	if err := uploader.Upload(ctx, artifact.Bucket, key, ctx.State.ScreenshotPNG, "image/png"); err != nil {
		return err
	}

	ctx.Observer.Printf("Screenshot uploaded to %s/%s", artifact.Bucket, key)
	return nil
}
