package sandbox

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type restSendEntry struct {
	Accepted     bool   `json:"accepted"`
	To           string `json:"to"`
	APIMessageID string `json:"apiMessageId"`
}

type restStatusEntry struct {
	APIMessageID  string  `json:"apiMessageId"`
	To            string  `json:"to"`
	MessageStatus string  `json:"messageStatus"`
	Charge        float64 `json:"charge"`
}

func restError(c *fiber.Ctx, code string) error {
	return c.Status(restStatus(code)).JSON(fiber.Map{
		"error": fiber.Map{"code": code, "description": errorDescription(code)},
	})
}

func (h *Handler) restAuthorized(c *fiber.Ctx) bool {
	ok := c.Get("Authorization") == "Bearer "+h.account.APIKey && c.Get("X-Version") == "1"
	if !ok {
		h.logger.Warn("rejected bearer credentials", zap.String("path", c.Path()))
	}
	return ok
}

func (h *Handler) RestSend(c *fiber.Ctx) error {
	if !h.restAuthorized(c) {
		return restError(c, codeAuthFailed)
	}

	var request struct {
		Text string   `json:"text"`
		To   []string `json:"to"`
	}
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return restError(c, codeMissingParams)
	}
	if request.Text == "" || len(request.To) == 0 {
		return restError(c, codeMissingParams)
	}
	for _, dest := range request.To {
		if dest == "" {
			return restError(c, codeMissingParams)
		}
	}

	entries := make([]restSendEntry, 0, len(request.To))
	for _, dest := range request.To {
		m, ok := h.store.Accept(dest, request.Text)
		if !ok {
			return restError(c, codeNoCredit)
		}
		entries = append(entries, restSendEntry{Accepted: true, To: m.To, APIMessageID: m.ID})
	}

	h.logger.Info("accepted message",
		zap.String("api", "rest"),
		zap.Int("destinations", len(entries)))

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"data": fiber.Map{"message": entries}})
}

func (h *Handler) RestStatus(c *fiber.Ctx) error {
	if !h.restAuthorized(c) {
		return restError(c, codeAuthFailed)
	}

	m, ok := h.store.Get(c.Params("id"))
	if !ok {
		return restError(c, codeMessageNotFound)
	}
	entry := restStatusEntry{APIMessageID: m.ID, To: m.To, MessageStatus: m.Status, Charge: m.Charge}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": []restStatusEntry{entry}}})
}

func (h *Handler) RestBalance(c *fiber.Ctx) error {
	if !h.restAuthorized(c) {
		return restError(c, codeAuthFailed)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"balance": h.store.Balance()}})
}

func (h *Handler) RestCoverage(c *fiber.Ctx) error {
	if !h.restAuthorized(c) {
		return restError(c, codeAuthFailed)
	}

	msisdn := c.Params("msisdn")
	return c.JSON(fiber.Map{"data": fiber.Map{
		"routable":      Routable(msisdn),
		"destination":   msisdn,
		"minimumCharge": messageCharge,
	}})
}

func (h *Handler) RestStop(c *fiber.Ctx) error {
	if !h.restAuthorized(c) {
		return restError(c, codeAuthFailed)
	}

	m, ok := h.store.Stop(c.Params("id"))
	if !ok {
		return restError(c, codeMessageNotFound)
	}
	entry := restStatusEntry{APIMessageID: m.ID, To: m.To, MessageStatus: m.Status, Charge: m.Charge}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": []restStatusEntry{entry}}})
}
