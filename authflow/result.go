package authflow

// FailureKind classifies why a flow step failed. The UI renders
// messages from the single table below instead of bespoke strings per
// flow, so wording stays consistent across login, registration and
// the OTP steps.
type FailureKind string

const (
	FailureNone               FailureKind = ""
	FailureNetwork            FailureKind = "network"
	FailureInvalidCredentials FailureKind = "invalid_credentials"
	FailureValidation         FailureKind = "validation"
	FailureUsernameTaken      FailureKind = "username_taken"
	FailureRegistration       FailureKind = "registration"
	FailureClientNotFound     FailureKind = "client_not_found"
	FailureOTPDelivery        FailureKind = "otp_delivery"
	FailureInvalidOTP         FailureKind = "invalid_otp"
	FailureOutOfSequence      FailureKind = "out_of_sequence"
	FailureSessionStore       FailureKind = "session_store"
)

var failureMessages = map[FailureKind]string{
	FailureNetwork:            "Unable to reach the server. Please try again.",
	FailureInvalidCredentials: "Invalid username or password.",
	FailureValidation:         "Please correct the highlighted fields.",
	FailureUsernameTaken:      "That username is already taken.",
	FailureRegistration:       "Registration failed. Email or username might be taken.",
	FailureClientNotFound:     "No client record found with this email. Please contact your advocate.",
	FailureOTPDelivery:        "Error sending OTP. Please try again later.",
	FailureInvalidOTP:         "Invalid OTP.",
	FailureOutOfSequence:      "Please request a code first.",
	FailureSessionStore:       "Could not save your session.",
}

// Message returns the user-facing string for the failure kind.
func (k FailureKind) Message() string {
	return failureMessages[k]
}

// Outcome is the shared result of every auth flow step: either a
// success carrying the route to navigate to, or a failure carrying a
// kind plus optional backend detail.
type Outcome struct {
	OK     bool
	Route  string      // navigation target on success
	Kind   FailureKind // set on failure
	Detail string      // backend-supplied detail, may be empty
}

// Message returns the string the UI should show for this outcome;
// empty on success.
func (o Outcome) Message() string {
	if o.OK {
		return ""
	}
	return o.Kind.Message()
}

func success(route string) Outcome {
	return Outcome{OK: true, Route: route}
}

func failure(kind FailureKind, detail string) Outcome {
	return Outcome{Kind: kind, Detail: detail}
}
