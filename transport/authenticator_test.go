package transport_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/legalsuite/go-legalsuite/session"
	"github.com/legalsuite/go-legalsuite/session/storefakes"
	"github.com/legalsuite/go-legalsuite/transport"
)

type fakeRefresher struct {
	calls       int
	newAccess   string
	err         error
	seenRefresh string
}

func (fr *fakeRefresher) Refresh(_ context.Context, refreshToken string) (string, error) {
	fr.calls++
	fr.seenRefresh = refreshToken
	if fr.err != nil {
		return "", fr.err
	}
	return fr.newAccess, nil
}

func newClient(t *testing.T, store session.Store, options ...transport.Option) *http.Client {
	t.Helper()
	authenticator, err := transport.NewAuthenticator(store, options...)
	require.NoError(t, err)
	return &http.Client{Transport: authenticator}
}

func TestAttachesBearerHeaderWhenSessionResident(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := storefakes.NewFakeStore()
	require.NoError(t, store.Save(&session.Session{AccessToken: "tokA", Role: session.RoleAdvocate}))

	client := newClient(t, store)
	resp, err := client.Get(server.URL + "/client/cases/")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Header must match the stored token exactly.
	require.Equal(t, []string{"Bearer tokA"}, seen)
}

func TestNoHeaderWithoutSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Authorization"]
		require.False(t, present)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newClient(t, storefakes.NewFakeStore())
	resp, err := client.Get(server.URL + "/client/cases/")
	require.NoError(t, err)
	defer resp.Body.Close()

	// The 401 surfaces to the caller; the server decides, not us.
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStoreReadOnEveryCall(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := storefakes.NewFakeStore()
	client := newClient(t, store)

	require.NoError(t, store.Save(&session.Session{AccessToken: "tokA"}))
	resp, err := client.Get(server.URL + "/a")
	require.NoError(t, err)
	resp.Body.Close()

	// Logout between calls is observed by the next call.
	require.NoError(t, store.Clear())
	resp, err = client.Get(server.URL + "/b")
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, []string{"Bearer tokA", ""}, seen)
}

func TestRefreshAndRetryOn401(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		seen = append(seen, auth)
		if auth != "Bearer tokNew" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer server.Close()

	store := storefakes.NewFakeStore()
	require.NoError(t, store.Save(&session.Session{AccessToken: "tokStale", RefreshToken: "tokB"}))

	refresher := &fakeRefresher{newAccess: "tokNew"}
	client := newClient(t, store, transport.WithRefresher(refresher))

	resp, err := client.Get(server.URL + "/client/cases/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []string{"Bearer tokStale", "Bearer tokNew"}, seen)
	require.Equal(t, 1, refresher.calls)
	require.Equal(t, "tokB", refresher.seenRefresh)

	// The rotated access token is persisted; the refresh token stays.
	current, err := store.Current()
	require.NoError(t, err)
	require.Equal(t, "tokNew", current.AccessToken)
	require.Equal(t, "tokB", current.RefreshToken)
}

func TestFailedRefreshSurfacesOriginal401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := storefakes.NewFakeStore()
	require.NoError(t, store.Save(&session.Session{AccessToken: "tokStale", RefreshToken: "tokB"}))

	refresher := &fakeRefresher{err: errors.New("refresh rejected")}
	client := newClient(t, store, transport.WithRefresher(refresher))

	resp, err := client.Get(server.URL + "/client/cases/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 1, refresher.calls)
}

func TestNoRetryWithoutRefreshToken(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := storefakes.NewFakeStore()
	// OTP sessions carry no refresh token.
	require.NoError(t, store.Save(&session.Session{AccessToken: "tokA", Role: session.RoleClient}))

	refresher := &fakeRefresher{newAccess: "tokNew"}
	client := newClient(t, store, transport.WithRefresher(refresher))

	resp, err := client.Get(server.URL + "/client/cases/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 1, requests)
	require.Equal(t, 0, refresher.calls)
}

func TestRetryReplaysRequestBody(t *testing.T) {
	var bodies []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(body))
		if r.Header.Get("Authorization") != "Bearer tokNew" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	store := storefakes.NewFakeStore()
	require.NoError(t, store.Save(&session.Session{AccessToken: "tokStale", RefreshToken: "tokB"}))

	client := newClient(t, store, transport.WithRefresher(&fakeRefresher{newAccess: "tokNew"}))
	resp, err := client.Post(server.URL+"/appointments/book/", "application/json", strings.NewReader(`{"a":1}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, []string{`{"a":1}`, `{"a":1}`}, bodies)
}
