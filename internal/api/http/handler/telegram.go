package handler

import (
	"encoding/json"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v3"

	"github.com/bystrodel/backend/internal/bot"
)

// TelegramHandler receives webhook updates from the Telegram Bot API.
// The bot is nil when Telegram is disabled in config.
type TelegramHandler struct {
	bot *bot.Bot
}

func NewTelegramHandler(b *bot.Bot) *TelegramHandler {
	return &TelegramHandler{bot: b}
}

// POST /telegram/webhook
func (h *TelegramHandler) Webhook(c fiber.Ctx) error {
	if h.bot == nil {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	var update tgbotapi.Update
	if err := json.Unmarshal(c.Body(), &update); err != nil {
		return badRequest(c, "invalid update payload")
	}

	// Telegram retries on non-2xx, so the update is acknowledged
	// regardless of what the command handling did with it.
	h.bot.HandleUpdate(c.Context(), update)
	return noContent(c)
}

// GET /telegram/webhook — registers the configured webhook URL with the
// Telegram Bot API.
func (h *TelegramHandler) Register(c fiber.Ctx) error {
	if h.bot == nil {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	if err := h.bot.RegisterWebhook(); err != nil {
		return internalError(c)
	}
	return ok(c, fiber.Map{"registered": true})
}
