package main

import (
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/legalsuite/go-legalsuite/authflow"
	"github.com/legalsuite/go-legalsuite/internal/config"
	"github.com/legalsuite/go-legalsuite/legalapi"
	"github.com/legalsuite/go-legalsuite/session"
	"github.com/legalsuite/go-legalsuite/session/filestore"
	"github.com/legalsuite/go-legalsuite/transport"
)

// app wires the session store, the authenticating transport and the
// API client together for the CLI commands. The store is explicitly
// injected everywhere rather than reached for as a global.
type app struct {
	cfg    config.Config
	logger zerolog.Logger
	store  session.Store
	api    *legalapi.Client
	flows  *authflow.Service
}

func newApp(verbose bool) (*app, error) {
	cfg := config.New()

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	var storeOptions []filestore.Option
	if passphrase := cfg.GetSessionPassphrase(); passphrase != "" {
		storeOptions = append(storeOptions, filestore.WithPassphrase(passphrase))
	}
	store, err := filestore.New(cfg.GetSessionFile(), storeOptions...)
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] creating session store")
	}

	timeout, err := time.ParseDuration(cfg.GetHTTPTimeout())
	if err != nil {
		return nil, errors.Wrapf(err, "[newApp] invalid timeout %q", cfg.GetHTTPTimeout())
	}

	// The refresher uses its own unauthenticated client: a refresh
	// call must never recurse through the authenticator.
	refresher, err := legalapi.New(cfg.GetBaseURL(),
		legalapi.WithHTTPClient(&http.Client{Timeout: timeout}),
		legalapi.WithLogger(logger),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] creating refresh client")
	}

	authenticator, err := transport.NewAuthenticator(store,
		transport.WithRefresher(refresher),
		transport.WithLogger(logger),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] creating authenticator")
	}

	api, err := legalapi.New(cfg.GetBaseURL(),
		legalapi.WithHTTPClient(&http.Client{Transport: authenticator, Timeout: timeout}),
		legalapi.WithLogger(logger),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] creating api client")
	}

	flows, err := authflow.NewService(api, store, authflow.WithLogger(logger))
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] creating auth flows")
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  store,
		api:    api,
		flows:  flows,
	}, nil
}

// currentSession returns the resident session or nil.
func (a *app) currentSession() (*session.Session, error) {
	return a.store.Current()
}
