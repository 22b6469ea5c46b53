// Package authflow orchestrates the three credential flows of the
// Legal Suite client: password login for advocates and staff,
// advocate/client self-registration, and the two-step OTP login for
// clients. Each flow is a linear sequence of one or two API calls
// followed by a session store write; flows share no state with each
// other, and every step returns the same Outcome result type.
package authflow

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/legalsuite/go-legalsuite/legalapi"
	"github.com/legalsuite/go-legalsuite/session"
)

// API is the slice of the legalapi client the flows need. Narrowed to
// an interface so tests can substitute a fake collaborator.
type API interface {
	Login(ctx context.Context, creds legalapi.Credentials) (*legalapi.TokenResponse, error)
	RegisterAdvocate(ctx context.Context, registration legalapi.AdvocateRegistration) error
	RegisterClient(ctx context.Context, registration legalapi.ClientRegistration) error
	RequestOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) (*legalapi.TokenResponse, error)
}

var _ API = (*legalapi.Client)(nil)

// Service runs the auth flows against one API collaborator and one
// session store.
type Service struct {
	api      API
	store    session.Store
	validate *validator.Validate
	logger   zerolog.Logger
}

// ServiceOption modifies a Service.
type ServiceOption func(*Service)

// WithLogger sets the flow logger.
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates the auth flow service.
func NewService(api API, store session.Store, options ...ServiceOption) (*Service, error) {
	if api == nil {
		return nil, errors.New("[NewService] api is required")
	}
	if store == nil {
		return nil, errors.New("[NewService] session store is required")
	}

	service := &Service{
		api:      api,
		store:    store,
		validate: validator.New(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		opt(service)
	}
	return service, nil
}

// PasswordLogin runs the advocate/staff login flow: one POST, then a
// session write, then role dispatch. A CLIENT role claim routes to
// the client portal; every other role value routes to the advocate
// workspace.
func (s *Service) PasswordLogin(ctx context.Context, username, password string) Outcome {
	tokens, err := s.api.Login(ctx, legalapi.Credentials{Username: username, Password: password})
	if err != nil {
		s.logger.Debug().Err(err).Str("username", username).Msg("password login rejected")
		return failure(classifyAuthFailure(err), apiDetail(err))
	}

	sess := sessionFromTokens(tokens)
	if err := s.store.Save(sess); err != nil {
		return failure(FailureSessionStore, err.Error())
	}

	s.logger.Info().Str("role", string(sess.Role)).Msg("login succeeded")
	return success(sess.Role.DashboardRoute())
}

// RegisterAdvocate runs the advocate self-registration flow. Payloads
// are validated locally before any network call; the backend's
// field-keyed validation errors are classified so a taken username
// gets its own message. No session is issued; on success the caller
// returns to the login view.
func (s *Service) RegisterAdvocate(ctx context.Context, registration legalapi.AdvocateRegistration) Outcome {
	if err := s.validate.Struct(registration); err != nil {
		return failure(FailureValidation, err.Error())
	}

	if err := s.api.RegisterAdvocate(ctx, registration); err != nil {
		return failure(classifyRegistrationFailure(err), apiDetail(err))
	}
	return success(session.LoginRoute)
}

// RegisterClient runs the passwordless client registration flow.
func (s *Service) RegisterClient(ctx context.Context, registration legalapi.ClientRegistration) Outcome {
	if err := s.validate.Struct(registration); err != nil {
		return failure(FailureValidation, err.Error())
	}

	if err := s.api.RegisterClient(ctx, registration); err != nil {
		return failure(classifyRegistrationFailure(err), apiDetail(err))
	}
	return success(session.LoginRoute)
}

// Logout clears the resident session. Logging out with no session is
// a no-op, not an error.
func (s *Service) Logout() error {
	if err := s.store.Clear(); err != nil {
		return errors.Wrap(err, "[Service.Logout] clearing session store")
	}
	return nil
}

func sessionFromTokens(tokens *legalapi.TokenResponse) *session.Session {
	return &session.Session{
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
		Role:         session.ParseRole(tokens.Role),
		DisplayName:  tokens.FullName,
	}
}

func classifyAuthFailure(err error) FailureKind {
	var apiErr *legalapi.APIError
	if !errors.As(err, &apiErr) {
		return FailureNetwork
	}
	return FailureInvalidCredentials
}

func classifyRegistrationFailure(err error) FailureKind {
	var apiErr *legalapi.APIError
	if !errors.As(err, &apiErr) {
		return FailureNetwork
	}
	if apiErr.FieldError("username") != "" {
		return FailureUsernameTaken
	}
	return FailureRegistration
}

func apiDetail(err error) string {
	var apiErr *legalapi.APIError
	if !errors.As(err, &apiErr) {
		return ""
	}
	if apiErr.Detail != "" {
		return apiErr.Detail
	}
	for _, messages := range apiErr.FieldErrors {
		if len(messages) > 0 {
			return messages[0]
		}
	}
	return ""
}
