package handlers

import (
	"bytes"
	"errors"
	"html/template"

	"recs-admin/internal/console"
	"recs-admin/internal/dto"
	"recs-admin/internal/form"
	"recs-admin/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ConsoleHandler struct {
	console  *console.Console
	sessions *console.Sessions
	page     *template.Template
	logger   *zap.Logger
}

func NewConsoleHandler(c *console.Console, sessions *console.Sessions, page *template.Template, logger *zap.Logger) *ConsoleHandler {
	return &ConsoleHandler{
		console:  c,
		sessions: sessions,
		page:     page,
		logger:   logger,
	}
}

type pageData struct {
	View     dto.ConsoleView
	Commands []console.Command
}

// Index renders the operator form for the caller's session.
func (h *ConsoleHandler) Index(c *fiber.Ctx) error {
	s := h.sessions.Get(middleware.SessionID(c))

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, pageData{View: s.View().DTO(), Commands: console.Commands}); err != nil {
		h.logger.Error("Failed to render console page", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// Submit handles a button press from the HTML form: the submitted fields
// replace the session form, the command runs, and the browser is sent back
// to the page.
func (h *ConsoleHandler) Submit(c *fiber.Ctx) error {
	cmd, err := console.ParseCommand(c.Params("command"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var fields dto.FormFields
	if err := c.BodyParser(&fields); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}

	state := form.FromFields(fields)
	h.console.Execute(c.Context(), h.sessions.Get(middleware.SessionID(c)), cmd, &state)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// GetView returns the session view as JSON.
func (h *ConsoleHandler) GetView(c *fiber.Ctx) error {
	return c.JSON(h.sessions.Get(middleware.SessionID(c)).View().DTO())
}

// RunCommand runs a command for the session. A JSON form in the body
// replaces the session form first; an empty body reuses it.
func (h *ConsoleHandler) RunCommand(c *fiber.Ctx) error {
	cmd, err := console.ParseCommand(c.Params("command"))
	if errors.Is(err, console.ErrUnknownCommand) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	var submitted *form.State
	if len(c.Body()) > 0 {
		var fields dto.FormFields
		if err := c.BodyParser(&fields); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
		}
		state := form.FromFields(fields)
		submitted = &state
	}

	view := h.console.Execute(c.Context(), h.sessions.Get(middleware.SessionID(c)), cmd, submitted)
	return c.JSON(view.DTO())
}
