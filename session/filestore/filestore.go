// Package filestore persists the resident session to a single file
// under the user's config directory. It is the CLI analogue of the
// browser's origin-scoped local storage: four flat values surviving
// restarts, overwritten wholesale on every login and removed on
// logout. With a passphrase configured the file is sealed with a
// scrypt-derived key and NaCl secretbox; without one it is plaintext
// JSON with 0600 permissions.
package filestore

import (
	"crypto/rand"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"

	apperrors "github.com/legalsuite/go-legalsuite/internal/errors"
	"github.com/legalsuite/go-legalsuite/session"
)

const (
	fileVersion = 1

	cipherNone      = "none"
	cipherSecretbox = "secretbox"

	scryptN     = 32768
	scryptR     = 8
	scryptP     = 1
	keyLength   = 32
	saltLength  = 16
	nonceLength = 24
	filePerm    = 0o600
	fileDirPerm = 0o700
	tmpSuffix   = ".tmp"
)

// envelope is the on-disk format. Payload holds the session JSON,
// either raw (cipher "none") or sealed (cipher "secretbox").
type envelope struct {
	Version int    `json:"version"`
	Cipher  string `json:"cipher"`
	Salt    []byte `json:"salt,omitempty"`
	Nonce   []byte `json:"nonce,omitempty"`
	Payload []byte `json:"payload"`
}

var _ session.Store = (*Store)(nil)

// Store is a file-backed session.Store.
type Store struct {
	path       string
	passphrase string
}

// Option modifies a Store.
type Option func(*Store)

// WithPassphrase enables encryption of the session file.
func WithPassphrase(passphrase string) Option {
	return func(s *Store) {
		s.passphrase = passphrase
	}
}

// New creates a file store rooted at path.
func New(path string, options ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.New("[filestore.New] path is required")
	}
	store := &Store{path: path}
	for _, opt := range options {
		opt(store)
	}
	return store, nil
}

// Save writes the session, replacing any resident one. The write is
// atomic: a temp file in the same directory is renamed over the
// target so a crash mid-write never leaves a truncated session.
func (s *Store) Save(sess *session.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "[filestore.Save] marshal session")
	}

	env := envelope{Version: fileVersion, Cipher: cipherNone, Payload: raw}
	if s.passphrase != "" {
		sealed, salt, nonce, err := seal(raw, s.passphrase)
		if err != nil {
			return errors.Wrap(err, "[filestore.Save] seal session")
		}
		env = envelope{
			Version: fileVersion,
			Cipher:  cipherSecretbox,
			Salt:    salt,
			Nonce:   nonce,
			Payload: sealed,
		}
	}

	data, err := json.Marshal(env)
	if err != nil {
		return errors.Wrap(err, "[filestore.Save] marshal envelope")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), fileDirPerm); err != nil {
		return errors.Wrap(err, "[filestore.Save] create session dir")
	}
	tmp := s.path + tmpSuffix
	if err := os.WriteFile(tmp, data, filePerm); err != nil {
		return errors.Wrap(err, "[filestore.Save] write temp file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "[filestore.Save] rename temp file")
	}
	return nil
}

// Current returns the resident session, or nil when no session file
// exists.
func (s *Store) Current() (*session.Session, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[filestore.Current] read session file")
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrSessionFileCorrupt, "[filestore.Current] %s", s.path)
	}

	raw := env.Payload
	switch env.Cipher {
	case cipherNone:
	case cipherSecretbox:
		if s.passphrase == "" {
			return nil, apperrors.ErrPassphraseRequired
		}
		raw, err = open(env, s.passphrase)
		if err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.Wrapf(apperrors.ErrSessionFileCorrupt, "[filestore.Current] unknown cipher %q", env.Cipher)
	}

	var sess session.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrSessionFileCorrupt, "[filestore.Current] %s", s.path)
	}
	return &sess, nil
}

// Clear removes the session file. Clearing when no session exists is
// a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[filestore.Clear] remove session file")
	}
	return nil
}

func seal(plaintext []byte, passphrase string) (sealed, salt, nonce []byte, err error) {
	salt = make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, nil, errors.Wrap(err, "generate salt")
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, nil, nil, err
	}

	nonce = make([]byte, nonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, nil, errors.Wrap(err, "generate nonce")
	}

	var nonceArr [nonceLength]byte
	copy(nonceArr[:], nonce)
	sealed = secretbox.Seal(nil, plaintext, &nonceArr, key)
	return sealed, salt, nonce, nil
}

func open(env envelope, passphrase string) ([]byte, error) {
	if len(env.Salt) != saltLength || len(env.Nonce) != nonceLength {
		return nil, apperrors.ErrSessionFileCorrupt
	}
	key, err := deriveKey(passphrase, env.Salt)
	if err != nil {
		return nil, err
	}

	var nonceArr [nonceLength]byte
	copy(nonceArr[:], env.Nonce)
	plaintext, ok := secretbox.Open(nil, env.Payload, &nonceArr, key)
	if !ok {
		return nil, apperrors.ErrWrongPassphrase
	}
	return plaintext, nil
}

func deriveKey(passphrase string, salt []byte) (*[keyLength]byte, error) {
	derived, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, errors.Wrap(err, "derive key")
	}
	var key [keyLength]byte
	copy(key[:], derived)
	return &key, nil
}
