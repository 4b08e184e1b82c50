package emulator

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// errorBody is the error document of the settings API.
type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func asFiberError(err error) (*fiber.Error, bool) {
	var fe *fiber.Error
	if err != nil && errors.As(err, &fe) {
		return fe, true
	}

	return nil, false
}

// errorHandler answers every failed request with an errorBody.
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	if fe, ok := asFiberError(err); ok {
		code = fe.Code
		message = fe.Message
	} else {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	return c.Status(code).JSON(errorBody{Status: code, Message: message})
}
