// Package keygen generates RSA key pairs for SSH authentication.
//
// Keys are produced in PEM format (private) and OpenSSH authorized_keys
// format (public), suitable for installing on a provisioned VM so the
// machine can authenticate against git hosts.
package keygen
