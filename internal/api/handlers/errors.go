package handlers

import (
	"errors"

	"github.com/leanttro/feiras-de-rua/internal/repository"
	"github.com/leanttro/feiras-de-rua/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// writeError maps service and repository errors to a JSON response. Internal
// details are logged, never sent to the client.
func writeError(c *fiber.Ctx, logger *zap.Logger, op string, err error) error {
	var validationErr *service.ValidationError
	var schemaErr *repository.SchemaError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Campos obrigatórios ausentes ou inválidos",
			"fields": validationErr.Fields,
		})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Registro não encontrado",
		})
	case errors.As(err, &schemaErr):
		logger.Error(op+": missing schema object", zap.String("object", schemaErr.Object), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Tabela ou coluna não encontrada: " + schemaErr.Object,
		})
	default:
		logger.Error(op+" failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erro interno no servidor",
		})
	}
}
