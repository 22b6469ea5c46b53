package filestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/legalsuite/go-legalsuite/internal/errors"
	"github.com/legalsuite/go-legalsuite/session"
	"github.com/legalsuite/go-legalsuite/session/filestore"
)

func testSession() *session.Session {
	return &session.Session{
		AccessToken:  "tokA",
		RefreshToken: "tokB",
		Role:         session.RoleAdvocate,
		DisplayName:  "A. Smith",
	}
}

func TestSaveAndCurrentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := filestore.New(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(testSession()))

	current, err := store.Current()
	require.NoError(t, err)
	require.Equal(t, testSession(), current)
}

func TestCurrentWithoutFileReturnsNil(t *testing.T) {
	store, err := filestore.New(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	current, err := store.Current()
	require.NoError(t, err)
	require.Nil(t, current)
}

func TestSaveOverwritesResidentSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := filestore.New(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(testSession()))
	require.NoError(t, store.Save(&session.Session{AccessToken: "tokC", Role: session.RoleClient}))

	current, err := store.Current()
	require.NoError(t, err)
	require.Equal(t, "tokC", current.AccessToken)
	require.Equal(t, session.RoleClient, current.Role)
	require.Empty(t, current.RefreshToken)
}

func TestClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := filestore.New(path)
	require.NoError(t, err)

	require.NoError(t, store.Clear())

	require.NoError(t, store.Save(testSession()))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	current, err := store.Current()
	require.NoError(t, err)
	require.Nil(t, current)
}

func TestEncryptedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := filestore.New(path, filestore.WithPassphrase("correct horse"))
	require.NoError(t, err)

	require.NoError(t, store.Save(testSession()))

	// The raw file must not contain the access token.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "tokA")

	current, err := store.Current()
	require.NoError(t, err)
	require.Equal(t, testSession(), current)
}

func TestEncryptedFileNeedsPassphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	sealed, err := filestore.New(path, filestore.WithPassphrase("correct horse"))
	require.NoError(t, err)
	require.NoError(t, sealed.Save(testSession()))

	plain, err := filestore.New(path)
	require.NoError(t, err)
	_, err = plain.Current()
	require.ErrorIs(t, err, apperrors.ErrPassphraseRequired)

	wrong, err := filestore.New(path, filestore.WithPassphrase("battery staple"))
	require.NoError(t, err)
	_, err = wrong.Current()
	require.ErrorIs(t, err, apperrors.ErrWrongPassphrase)
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	store, err := filestore.New(path)
	require.NoError(t, err)
	_, err = store.Current()
	require.ErrorIs(t, err, apperrors.ErrSessionFileCorrupt)
}
