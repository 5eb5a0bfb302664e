package sandbox

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, handler *Handler) {
	app.Get("/ping", handler.Pong)

	app.Get("/http/sendmsg.php", handler.LegacySend)
	app.Get("/http/querymsg.php", handler.LegacyStatus)
	app.Get("/http/getbalance.php", handler.LegacyBalance)
	app.Get("/http/getmsgcharge.php", handler.LegacyCharge)
	app.Get("/utils/routecoverage.php", handler.LegacyCoverage)
	app.Get("/http/delmsg.php", handler.LegacyStop)

	app.Post("/rest/message", handler.RestSend)
	app.Get("/rest/message/:id", handler.RestStatus)
	app.Get("/rest/account/balance", handler.RestBalance)
	app.Get("/rest/coverage/:msisdn", handler.RestCoverage)
	app.Delete("/rest/message/:id", handler.RestStop)
}
