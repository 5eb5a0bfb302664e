package sandbox

import (
	"github.com/Behyna/sms-services/clickatell/internal/config"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves both faces of the emulated gateway against a single
// configured account.
type Handler struct {
	logger  *zap.Logger
	account config.Sandbox
	store   *Store
}

func NewHandler(account config.Sandbox, store *Store, logger *zap.Logger) *Handler {
	return &Handler{logger: logger, account: account, store: store}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}
