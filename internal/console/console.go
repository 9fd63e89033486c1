package console

import (
	"context"

	"recs-admin/internal/form"
	"recs-admin/internal/transport"

	"go.uber.org/zap"
)

// Invoker sends one request and resolves its outcome.
type Invoker interface {
	Invoke(ctx context.Context, req transport.Request) transport.Outcome
}

type Console struct {
	invoker Invoker
	logger  *zap.Logger
}

func New(invoker Invoker, logger *zap.Logger) *Console {
	return &Console{
		invoker: invoker,
		logger:  logger,
	}
}

// Run executes cmd against a snapshot of the form and returns the resulting
// update. It does not touch any shared state.
func (c *Console) Run(ctx context.Context, cmd Command, state form.State) Update {
	req, ok := BuildRequest(cmd, state)
	if !ok {
		return Render(cmd, transport.Outcome{OK: true})
	}

	out := c.invoker.Invoke(ctx, req)
	if out.OK {
		c.logger.Info("Command succeeded",
			zap.String("command", string(cmd)),
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Int("status", out.StatusCode),
		)
	} else {
		c.logger.Warn("Command failed",
			zap.String("command", string(cmd)),
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Int("status", out.StatusCode),
			zap.String("message", out.Message),
		)
	}
	return Render(cmd, out)
}

// Execute runs cmd for a session. When submitted is non-nil it replaces the
// session form first. The message area is emptied before the request goes
// out and the update is applied whenever the response arrives, so with
// overlapping commands the last response wins.
func (c *Console) Execute(ctx context.Context, s *Session, cmd Command, submitted *form.State) View {
	state := s.begin(submitted)
	u := c.Run(ctx, cmd, state)
	return s.apply(u)
}
