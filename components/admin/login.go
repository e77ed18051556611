package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/certifurb/go-storefront/pkg/telemetry"
)

// ConnectionErrorMessage is shown when login fails at the transport level
// rather than being rejected by the backend.
const ConnectionErrorMessage = "Connection error. Please try again."

// ErrLoginInFlight is returned when Submit is called while a previous
// submission has not finished yet.
var ErrLoginInFlight = errors.New("admin: login already in progress")

// LoginFlow drives the console sign-in form. It serializes submissions and
// persists the session before reporting success, so a redirect issued on the
// returned token always finds the session in place.
type LoginFlow struct {
	auth      Authenticator
	sessions  SessionStore
	telemetry telemetry.Telemetry

	mu         sync.Mutex
	submitting bool
	errMessage string
}

func NewLoginFlow(auth Authenticator, sessions SessionStore, t telemetry.Telemetry) (*LoginFlow, error) {
	if auth == nil {
		return nil, fmt.Errorf("admin: login flow requires an authenticator")
	}
	if sessions == nil {
		return nil, fmt.Errorf("admin: login flow requires a session store")
	}
	return &LoginFlow{
		auth:      auth,
		sessions:  sessions,
		telemetry: telemetry.Normalize(t),
	}, nil
}

// Submit exchanges credentials for a session token. While a submission is in
// flight further submissions are rejected with ErrLoginInFlight.
func (f *LoginFlow) Submit(ctx context.Context, email, password string) (string, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return "", ErrLoginInFlight
	}
	f.submitting = true
	f.errMessage = ""
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	session, err := f.auth.Login(ctx, email, password)
	if err != nil {
		f.recordFailure(ctx, email, err)
		return "", err
	}

	token, err := f.sessions.Create(session)
	if err != nil {
		f.recordFailure(ctx, email, err)
		return "", fmt.Errorf("admin: persisting session: %w", err)
	}

	f.telemetry.Record(ctx, "admin.login.ok", map[string]any{
		"email": email,
		"role":  session.Role,
	})
	return token, nil
}

func (f *LoginFlow) recordFailure(ctx context.Context, email string, err error) {
	msg := FailureMessage(err)
	f.mu.Lock()
	f.errMessage = msg
	f.mu.Unlock()
	f.telemetry.Record(ctx, "admin.login.failed", map[string]any{
		"email": email,
		"error": err.Error(),
	})
}

// Submitting reports whether a submission is currently in flight.
func (f *LoginFlow) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// ErrorMessage returns the user-facing message from the last failed
// submission, or empty once a submission succeeds.
func (f *LoginFlow) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMessage
}

// FailureMessage maps a login error onto the message shown in the form:
// the backend's own message for application rejections, a generic
// connection message for everything else.
func FailureMessage(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	return ConnectionErrorMessage
}
