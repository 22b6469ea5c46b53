package legalapi

import (
	"context"

	"github.com/pkg/errors"
)

// Endpoint paths, relative to the /api/ base.
const (
	loginPath            = "login/"
	tokenRefreshPath     = "token/refresh/"
	registerAdvocatePath = "register/advocate/"
	registerClientPath   = "register/client/"
	otpRequestPath       = "auth/otp/request/"
	otpVerifyPath        = "auth/otp/verify/"
)

// Credentials is the password login payload. It is transient: built
// for one call and never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the body of a successful login or OTP
// verification. Refresh is empty in the OTP flow when the backend
// withholds it.
type TokenResponse struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh,omitempty"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

// AdvocateRegistration is the advocate self-registration payload.
type AdvocateRegistration struct {
	Username      string `json:"username" validate:"required,min=3"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	FullName      string `json:"full_name" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"omitempty,min=7,max=15"`
}

// ClientRegistration is the passwordless client registration payload.
type ClientRegistration struct {
	Username      string `json:"username" validate:"required,min=3"`
	Email         string `json:"email" validate:"required,email"`
	FullName      string `json:"full_name" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"omitempty,min=7,max=15"`
	Address       string `json:"address,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// Login exchanges username/password credentials for a token pair.
func (c *Client) Login(ctx context.Context, creds Credentials) (*TokenResponse, error) {
	var tokens TokenResponse
	if err := c.postJSON(ctx, loginPath, creds, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Refresh exchanges a refresh token for a new access token. It
// implements transport.Refresher.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	body := struct {
		Refresh string `json:"refresh"`
	}{Refresh: refreshToken}

	var resp struct {
		Access string `json:"access"`
	}
	if err := c.postJSON(ctx, tokenRefreshPath, body, &resp); err != nil {
		return "", err
	}
	if resp.Access == "" {
		return "", errors.New("[legalapi.Refresh] empty access token in response")
	}
	return resp.Access, nil
}

// RegisterAdvocate creates an advocate account. No session is issued;
// the caller logs in afterwards.
func (c *Client) RegisterAdvocate(ctx context.Context, registration AdvocateRegistration) error {
	return c.postJSON(ctx, registerAdvocatePath, registration, nil)
}

// RegisterClient creates a client record for the OTP login flow.
func (c *Client) RegisterClient(ctx context.Context, registration ClientRegistration) error {
	return c.postJSON(ctx, registerClientPath, registration, nil)
}

// RequestOTP asks the backend to email a one-time passcode to a
// registered client.
func (c *Client) RequestOTP(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.postJSON(ctx, otpRequestPath, body, nil)
}

// VerifyOTP exchanges an emailed passcode for tokens.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*TokenResponse, error) {
	body := struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}{Email: email, OTP: otp}

	var tokens TokenResponse
	if err := c.postJSON(ctx, otpVerifyPath, body, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}
