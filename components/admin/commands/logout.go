package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	admin "github.com/certifurb/go-storefront/components/admin"
)

// LogoutInput revokes one console session by token.
type LogoutInput struct {
	Token string
}

// LogoutCommand removes the session from the store so the cookie it backs
// stops resolving.
type LogoutCommand struct {
	sessions  admin.SessionStore
	telemetry Telemetry
}

// NewLogoutCommand creates the command.
func NewLogoutCommand(sessions admin.SessionStore, telemetry Telemetry) *LogoutCommand {
	return &LogoutCommand{sessions: sessions, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[LogoutInput] = (*LogoutCommand)(nil)

// Execute drops the session. Revoking an unknown token is a no-op.
func (c *LogoutCommand) Execute(ctx context.Context, msg LogoutInput) error {
	if c.sessions == nil {
		return errors.New("logout command requires session store")
	}
	if msg.Token == "" {
		return errors.New("logout command requires token")
	}
	_, known := c.sessions.Get(msg.Token)
	c.sessions.Delete(msg.Token)
	c.telemetry.Record(ctx, "admin.session.logout", map[string]any{
		"known": known,
	})
	return nil
}
