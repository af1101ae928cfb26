// Package auth implementa el login del dashboard. Es un stub heredado del
// sistema original: no hay backend de identidad, cualquier credencial no
// vacía es aceptada y el token solo transporta el punto de vista elegido
// (usuario y bodega actual).
package auth

import (
	"fmt"

	"github.com/jhoicas/InventoryPro-api/internal/application/dto"
	"github.com/jhoicas/InventoryPro-api/internal/domain"
	"github.com/jhoicas/InventoryPro-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de login (stub sin verificación de identidad).
type AuthUseCase struct {
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{jwtCfg: jwtCfg}
}

// Login acepta cualquier usuario no vacío y emite un token con la bodega
// elegida como punto de vista. La contraseña se ignora deliberadamente.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.User == "" || in.Warehouse == "" {
		return nil, fmt.Errorf("%w: user y warehouse son requeridos", domain.ErrInvalidInput)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.User, in.Warehouse, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		User:      in.User,
		Warehouse: in.Warehouse,
	}, nil
}
