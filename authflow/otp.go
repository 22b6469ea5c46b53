package authflow

import (
	"context"

	apperrors "github.com/legalsuite/go-legalsuite/internal/errors"
)

// OTPState is the state of one OTP login attempt.
type OTPState string

const (
	AwaitingEmail OTPState = "AWAITING_EMAIL"
	AwaitingOTP   OTPState = "AWAITING_OTP"
	Authenticated OTPState = "AUTHENTICATED"
)

// OTPLogin is the two-step passwordless client login:
//
//	AWAITING_EMAIL --RequestCode ok--> AWAITING_OTP --Verify ok--> AUTHENTICATED
//	AWAITING_OTP --Back--> AWAITING_EMAIL (email retained)
//
// The value lives in memory only; like a page reload mid-flow, a new
// OTPLogin always restarts at AWAITING_EMAIL. AUTHENTICATED is
// terminal.
type OTPLogin struct {
	service *Service
	state   OTPState
	email   string
}

// NewOTPLogin starts a fresh OTP login attempt.
func (s *Service) NewOTPLogin() *OTPLogin {
	return &OTPLogin{service: s, state: AwaitingEmail}
}

// State returns the current flow state.
func (o *OTPLogin) State() OTPState {
	return o.state
}

// Email returns the address the code was requested for. Retained
// across Back so a corrected address can be resubmitted.
func (o *OTPLogin) Email() string {
	return o.email
}

// RequestCode submits the email for step A. On success the flow moves
// to AWAITING_OTP and holds the email for the verify step.
func (o *OTPLogin) RequestCode(ctx context.Context, email string) Outcome {
	if o.state != AwaitingEmail {
		return failure(FailureOutOfSequence, apperrors.ErrOutOfSequence.Error())
	}

	if err := o.service.api.RequestOTP(ctx, email); err != nil {
		kind := FailureOTPDelivery
		if apperrors.Is(err, apperrors.ErrNotFound) {
			kind = FailureClientNotFound
		}
		o.service.logger.Debug().Err(err).Msg("otp request rejected")
		return failure(kind, apiDetail(err))
	}

	o.email = email
	o.state = AwaitingOTP
	return Outcome{OK: true}
}

// Verify submits the emailed code for step B. Running it before a
// successful RequestCode is rejected locally and no call is issued.
// On success the session is written and the flow terminates at
// AUTHENTICATED with the client dashboard as the navigation target; a
// rejected code leaves the flow at AWAITING_OTP with nothing written.
func (o *OTPLogin) Verify(ctx context.Context, otp string) Outcome {
	if o.state != AwaitingOTP {
		return failure(FailureOutOfSequence, apperrors.ErrOutOfSequence.Error())
	}

	tokens, err := o.service.api.VerifyOTP(ctx, o.email, otp)
	if err != nil {
		o.service.logger.Debug().Err(err).Msg("otp verify rejected")
		return failure(classifyOTPFailure(err), apiDetail(err))
	}

	sess := sessionFromTokens(tokens)
	if err := o.service.store.Save(sess); err != nil {
		return failure(FailureSessionStore, err.Error())
	}

	o.state = Authenticated
	o.service.logger.Info().Msg("otp login succeeded")
	return success(sess.Role.DashboardRoute())
}

// Back returns from the code entry step to the email step without
// clearing the email, so a corrected address only needs a resubmit.
func (o *OTPLogin) Back() {
	if o.state == AwaitingOTP {
		o.state = AwaitingEmail
	}
}

func classifyOTPFailure(err error) FailureKind {
	if classifyAuthFailure(err) == FailureNetwork {
		return FailureNetwork
	}
	return FailureInvalidOTP
}
