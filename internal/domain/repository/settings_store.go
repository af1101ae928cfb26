package repository

// SettingsStore almacén clave-valor por bucket de configuración (organization,
// csv, profile). Se lee al arranque y se escribe en guardados explícitos;
// queda fuera del núcleo, que solo consume sus valores como defaults.
type SettingsStore interface {
	Get(bucket string) (map[string]any, error)
	Put(bucket string, values map[string]any) error
}
