package dto

// SettingsResponse contenido de un bucket de settings (organization, csv,
// profile). Los valores son opacos para el backend; solo el bucket csv se
// interpreta como defaults de exportación.
type SettingsResponse struct {
	Bucket string         `json:"bucket"`
	Values map[string]any `json:"values"`
}

// SaveSettingsRequest escritura explícita de un bucket completo.
type SaveSettingsRequest struct {
	Values map[string]any `json:"values" validate:"required"`
}
