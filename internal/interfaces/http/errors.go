package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/stock-tiendas-api/internal/application/dto"
)

// internalError loguea el error real y responde 500 con un mensaje opaco:
// los detalles del storage no se filtran al cliente.
func internalError(c *fiber.Ctx, err error, op string) error {
	log.Error().Err(err).Str("op", op).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}
