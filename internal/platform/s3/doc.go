// Package s3 provides a client for S3-compatible object storage, used to
// upload setup artifacts (screenshots) when an artifact target is
// configured. Works against AWS S3 and S3-compatible providers via a
// custom endpoint.
package s3
