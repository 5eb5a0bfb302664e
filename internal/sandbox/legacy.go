package sandbox

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	coverageRoutable = "OK: This prefix is currently supported. Messages sent to this prefix will be routed. Charge: %g"
	coverageBlocked  = "ERR: This prefix is not currently supported. Messages sent to this prefix will fail."
)

func (h *Handler) legacyAuthorized(c *fiber.Ctx) bool {
	ok := c.Query("user") == h.account.Username &&
		c.Query("password") == h.account.Password &&
		c.Query("api_id") == h.account.APIID
	if !ok {
		h.logger.Warn("rejected legacy credentials", zap.String("path", c.Path()))
	}
	return ok
}

func (h *Handler) LegacySend(c *fiber.Ctx) error {
	if !h.legacyAuthorized(c) {
		return c.SendString(legacyError(codeAuthFailed))
	}

	text := c.Query("text")
	to := strings.Split(c.Query("to"), ",")
	if text == "" || to[0] == "" {
		return c.SendString(legacyError(codeMissingParams))
	}
	for _, dest := range to {
		if dest == "" {
			return c.SendString(legacyError(codeMissingParams))
		}
	}

	lines := make([]string, 0, len(to))
	for _, dest := range to {
		m, ok := h.store.Accept(dest, text)
		if !ok {
			return c.SendString(legacyError(codeNoCredit))
		}
		if len(to) == 1 {
			lines = append(lines, "ID: "+m.ID)
		} else {
			lines = append(lines, fmt.Sprintf("ID: %s To: %s", m.ID, m.To))
		}
	}

	h.logger.Info("accepted message",
		zap.String("api", "http"),
		zap.Int("destinations", len(to)))

	return c.SendString(strings.Join(lines, "\n"))
}

func (h *Handler) LegacyStatus(c *fiber.Ctx) error {
	if !h.legacyAuthorized(c) {
		return c.SendString(legacyError(codeAuthFailed))
	}

	id := c.Query("apimsgid")
	if id == "" {
		return c.SendString(legacyError(codeMissingParams))
	}
	m, ok := h.store.Get(id)
	if !ok {
		return c.SendString(legacyError(codeMessageNotFound))
	}
	return c.SendString(fmt.Sprintf("ID: %s Status: %s", m.ID, m.Status))
}

func (h *Handler) LegacyBalance(c *fiber.Ctx) error {
	if !h.legacyAuthorized(c) {
		return c.SendString(legacyError(codeAuthFailed))
	}
	return c.SendString(fmt.Sprintf("Credit: %.3f", h.store.Balance()))
}

func (h *Handler) LegacyCharge(c *fiber.Ctx) error {
	if !h.legacyAuthorized(c) {
		return c.SendString(legacyError(codeAuthFailed))
	}

	id := c.Query("apimsgid")
	if id == "" {
		return c.SendString(legacyError(codeMissingParams))
	}
	m, ok := h.store.Get(id)
	if !ok {
		return c.SendString(legacyError(codeMessageNotFound))
	}
	return c.SendString(fmt.Sprintf("apiMsgId: %s charge: %g status: %s", m.ID, m.Charge, m.Status))
}

func (h *Handler) LegacyCoverage(c *fiber.Ctx) error {
	if !h.legacyAuthorized(c) {
		return c.SendString(legacyError(codeAuthFailed))
	}

	msisdn := c.Query("msisdn")
	if msisdn == "" {
		return c.SendString(legacyError(codeMissingParams))
	}
	if !Routable(msisdn) {
		return c.SendString(coverageBlocked)
	}
	return c.SendString(fmt.Sprintf(coverageRoutable, messageCharge))
}

func (h *Handler) LegacyStop(c *fiber.Ctx) error {
	if !h.legacyAuthorized(c) {
		return c.SendString(legacyError(codeAuthFailed))
	}

	id := c.Query("apimsgid")
	if id == "" {
		return c.SendString(legacyError(codeMissingParams))
	}
	m, ok := h.store.Stop(id)
	if !ok {
		return c.SendString(legacyError(codeMessageNotFound))
	}
	return c.SendString(fmt.Sprintf("ID: %s Status: %s", m.ID, m.Status))
}
