package usecase

import (
	"fmt"

	"github.com/jhoicas/InventoryPro-api/internal/application/dto"
	"github.com/jhoicas/InventoryPro-api/internal/domain"
	"github.com/jhoicas/InventoryPro-api/internal/domain/repository"
	"github.com/jhoicas/InventoryPro-api/pkg/config"
	"github.com/jhoicas/InventoryPro-api/pkg/csvkit"
)

// Buckets de settings reconocidos.
var settingsBuckets = []string{"organization", "csv", "profile"}

// SettingsUseCase lectura y guardado explícito de los buckets de settings.
// El almacén es un colaborador externo al núcleo; aquí solo se interpreta el
// bucket csv como fuente de defaults de exportación.
type SettingsUseCase struct {
	store       repository.SettingsStore
	csvDefaults config.CSVConfig
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store repository.SettingsStore, csvDefaults config.CSVConfig) *SettingsUseCase {
	return &SettingsUseCase{store: store, csvDefaults: csvDefaults}
}

// Get devuelve el contenido de un bucket (vacío si nunca se guardó).
func (uc *SettingsUseCase) Get(bucket string) (*dto.SettingsResponse, error) {
	if !validBucket(bucket) {
		return nil, fmt.Errorf("%w: bucket desconocido %q", domain.ErrInvalidInput, bucket)
	}
	values, err := uc.store.Get(bucket)
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = map[string]any{}
	}
	return &dto.SettingsResponse{Bucket: bucket, Values: values}, nil
}

// Save sobreescribe un bucket completo (guardado explícito del usuario).
func (uc *SettingsUseCase) Save(bucket string, in dto.SaveSettingsRequest) (*dto.SettingsResponse, error) {
	if !validBucket(bucket) {
		return nil, fmt.Errorf("%w: bucket desconocido %q", domain.ErrInvalidInput, bucket)
	}
	if err := uc.store.Put(bucket, in.Values); err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{Bucket: bucket, Values: in.Values}, nil
}

// CSVDefaults combina la configuración de la aplicación con las preferencias
// guardadas en el bucket csv; estas últimas tienen prioridad.
func (uc *SettingsUseCase) CSVDefaults() config.CSVConfig {
	out := uc.csvDefaults
	saved, err := uc.store.Get("csv")
	if err != nil || saved == nil {
		return out
	}
	if d, ok := saved["delimiter"].(string); ok && csvkit.ValidDelimiter(d) {
		out.Delimiter = d
	}
	if f, ok := saved["dateFormat"].(string); ok && csvkit.DateFormat(f).Valid() {
		out.DateFormat = f
	}
	if h, ok := saved["includeHeaders"].(bool); ok {
		out.IncludeHeaders = h
	}
	return out
}

func validBucket(bucket string) bool {
	for _, b := range settingsBuckets {
		if b == bucket {
			return true
		}
	}
	return false
}
