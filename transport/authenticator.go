// Package transport attaches session credentials to every outgoing
// API request. Call sites never set the Authorization header
// themselves; the Authenticator reads the session store on each call
// (no caching of the header value), so a logout or re-login between
// calls is observed by the next call, never by in-flight ones.
package transport

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/legalsuite/go-legalsuite/session"
	"github.com/legalsuite/go-legalsuite/token"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
	requestIDHeader     = "X-Request-ID"

	// Bodies of rejected responses are buffered before a refresh
	// retry; anything past this limit is discarded.
	maxBufferedBody = 1 << 20
)

// Refresher exchanges a refresh token for a new access token. The
// legalapi client implements this against the backend's
// token/refresh/ endpoint.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (newAccessToken string, err error)
}

var _ http.RoundTripper = (*Authenticator)(nil)

// Authenticator is an http.RoundTripper that bearer-authenticates
// requests from the resident session. When a refresher is configured
// it performs exactly one silent refresh-and-retry on a 401 (and
// refreshes proactively when the access token's expiry claim has
// passed); without one, a 401 surfaces to the caller untouched, which
// is also the terminal behaviour when the refresh itself fails.
type Authenticator struct {
	store     session.Store
	base      http.RoundTripper
	refresher Refresher
	logger    zerolog.Logger

	refreshLock sync.Mutex
}

// Option modifies an Authenticator.
type Option func(*Authenticator)

// WithBase sets the underlying round tripper (default http.DefaultTransport).
func WithBase(base http.RoundTripper) Option {
	return func(a *Authenticator) {
		a.base = base
	}
}

// WithRefresher enables silent refresh-and-retry on 401.
func WithRefresher(r Refresher) Option {
	return func(a *Authenticator) {
		a.refresher = r
	}
}

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Authenticator) {
		a.logger = logger
	}
}

// NewAuthenticator creates an Authenticator reading from the given
// session store.
func NewAuthenticator(store session.Store, options ...Option) (*Authenticator, error) {
	if store == nil {
		return nil, errors.New("[NewAuthenticator] session store is required")
	}

	authenticator := &Authenticator{
		store:  store,
		base:   http.DefaultTransport,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(authenticator)
	}
	return authenticator, nil
}

// RoundTrip implements http.RoundTripper. Errors from the store or
// the underlying transport propagate unchanged; this layer never
// swallows them.
func (a *Authenticator) RoundTrip(req *http.Request) (*http.Response, error) {
	sess, err := a.store.Current()
	if err != nil {
		return nil, errors.Wrap(err, "[Authenticator.RoundTrip] reading session store")
	}

	requestID := uuid.New().String()

	if sess.LoggedIn() && a.refresher != nil && token.PeekClaims(sess.AccessToken).Expired() && sess.HasRefreshToken() {
		// Expiry claim already passed; refresh up front rather than
		// burning a round trip on a guaranteed 401.
		if refreshed, err := a.refresh(req.Context(), sess); err == nil {
			sess = refreshed
		} else {
			a.logger.Warn().Err(err).Str("request_id", requestID).Msg("proactive token refresh failed")
		}
	}

	resp, err := a.send(req, sess, requestID)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized || a.refresher == nil || !sess.HasRefreshToken() {
		return resp, nil
	}
	if req.Body != nil && req.GetBody == nil {
		// The request body cannot be replayed, so a retry is unsafe.
		return resp, nil
	}

	a.logger.Info().
		Str("request_id", requestID).
		Str("url", req.URL.Path).
		Msg("401 received, attempting token refresh")

	refreshed, refreshErr := a.refresh(req.Context(), sess)
	if refreshErr != nil {
		a.logger.Warn().Err(refreshErr).Str("request_id", requestID).Msg("token refresh failed")
		return resp, nil // surface the original 401
	}
	rejected := resp
	defer drain(rejected)

	retry, err := a.send(req, refreshed, requestID)
	if err != nil {
		return nil, err
	}
	return retry, nil
}

// send issues one attempt on a clone of req so retries and header
// writes never mutate the caller's request.
func (a *Authenticator) send(req *http.Request, sess *session.Session, requestID string) (*http.Response, error) {
	attempt := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, errors.Wrap(err, "[Authenticator.send] rewinding request body")
		}
		attempt.Body = body
	}

	attempt.Header.Set(requestIDHeader, requestID)
	if sess.LoggedIn() {
		attempt.Header.Set(authorizationHeader, bearerPrefix+sess.AccessToken)
	}

	a.logger.Debug().
		Str("method", attempt.Method).
		Str("url", attempt.URL.Path).
		Str("request_id", requestID).
		Bool("authenticated", sess.LoggedIn()).
		Msg("api request")

	return a.base.RoundTrip(attempt)
}

// refresh exchanges the session's refresh token for a new access
// token and persists the rotated session. Serialised so concurrent
// 401s trigger a single refresh.
func (a *Authenticator) refresh(ctx context.Context, sess *session.Session) (*session.Session, error) {
	a.refreshLock.Lock()
	defer a.refreshLock.Unlock()

	// Another caller may have refreshed while we waited on the lock.
	current, err := a.store.Current()
	if err != nil {
		return nil, errors.Wrap(err, "[Authenticator.refresh] reading session store")
	}
	if current.LoggedIn() && current.AccessToken != sess.AccessToken {
		return current, nil
	}

	newAccess, err := a.refresher.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "[Authenticator.refresh] refresher")
	}

	rotated := *sess
	rotated.AccessToken = newAccess
	if err := a.store.Save(&rotated); err != nil {
		return nil, errors.Wrap(err, "[Authenticator.refresh] saving rotated session")
	}
	return &rotated, nil
}

func drain(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBufferedBody))
	_ = resp.Body.Close()
}
