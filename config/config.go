// Package config resolves where trusted-setup material lives on disk.
// Grounded on vocdoni-davinci-node/config/kzg_setup.go's role as the
// dedicated "where do we find SRS data" package, but deliberately does not
// embed ceremony bytes the way that file does: no real EIP-4844 ceremony
// output ships in this module, since fabricating one here would read as an
// authentic artifact it is not.
package config

import "os"

// TrustedSetupPathEnv is the environment variable used to locate the
// textual trusted-setup file for the process-wide default settings.
const TrustedSetupPathEnv = "KZG_TRUSTED_SETUP_PATH"

// DefaultTrustedSetupPath is used when TrustedSetupPathEnv is unset. It has
// no file at this path by default; callers running verification must either
// set the environment variable or supply a Setup explicitly.
const DefaultTrustedSetupPath = "./trusted_setup.txt"

// TrustedSetupPath resolves the path to the default trusted-setup file,
// preferring TrustedSetupPathEnv and falling back to DefaultTrustedSetupPath.
func TrustedSetupPath() (string, error) {
	if p := os.Getenv(TrustedSetupPathEnv); p != "" {
		return p, nil
	}
	return DefaultTrustedSetupPath, nil
}
