package api

import (
	"kucukaslan/nodeapp/domain"

	"github.com/gofiber/fiber/v2"
)

var _ HelloHandler = &helloHandler{}

type helloHandler struct{}

// Hello returns the fixed greeting
// @Summary Greeting
// @Description Returns a static JSON greeting. Headers, query and body are ignored.
// @Tags Root
// @Produce json
// @Success 200 {object} domain.MessageResponse "Greeting"
// @Router / [get]
func (h helloHandler) Hello(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(domain.NewHelloResponse())
}

func NewHelloHandler() HelloHandler {
	return &helloHandler{}
}
