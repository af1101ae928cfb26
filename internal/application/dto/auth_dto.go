package dto

// LoginRequest credenciales más la bodega desde la que se quiere operar. El
// backend no verifica identidad (stub heredado del dashboard): cualquier
// usuario no vacío es aceptado.
type LoginRequest struct {
	User      string `json:"user" validate:"required"`
	Password  string `json:"password"`
	Warehouse string `json:"warehouse" validate:"required"`
}

// LoginResponse token de sesión con el punto de vista elegido.
type LoginResponse struct {
	Token     string `json:"token"`
	User      string `json:"user"`
	Warehouse string `json:"warehouse"`
}
