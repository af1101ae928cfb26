package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/InventoryPro-api/internal/application/dto"
	"github.com/jhoicas/InventoryPro-api/pkg/jwt"
)

// AuthMiddleware valida el token JWT y guarda el usuario y su bodega en el contexto.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_TOKEN",
				Message: "token de autorización requerido",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "formato de token inválido",
			})
		}

		user, warehouse, err := jwt.Parse(secret, parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "token inválido o expirado",
			})
		}

		c.Locals("user", user)
		c.Locals("warehouse", warehouse)

		return c.Next()
	}
}

// GetUser retorna el usuario autenticado desde el contexto.
func GetUser(c *fiber.Ctx) string {
	user, _ := c.Locals("user").(string)
	return user
}

// GetWarehouse retorna la bodega del usuario autenticado.
func GetWarehouse(c *fiber.Ctx) string {
	warehouse, _ := c.Locals("warehouse").(string)
	return warehouse
}
