package config

import (
	"os"
	"path/filepath"
)

const (
	sessionFileVar       = "LEGALSUITE_SESSION_FILE"
	sessionPassphraseVar = "LEGALSUITE_SESSION_PASSPHRASE"
)

type SessionVars struct{}

var _ SessionConfig = SessionVars{}

// GetSessionFile returns the path of the on-disk session store. The
// default lives under the user's config directory so a session
// survives across CLI invocations, the way a browser session survives
// page reloads.
func (SessionVars) GetSessionFile() string {
	if path := os.Getenv(sessionFileVar); path != "" {
		return path
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".legalsuite-session.json"
	}
	return filepath.Join(configDir, "legalsuite", "session.json")
}

// GetSessionPassphrase returns the passphrase used to encrypt the
// session file. Empty means the file is stored in plaintext.
func (SessionVars) GetSessionPassphrase() string {
	return os.Getenv(sessionPassphraseVar)
}
