package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/InventoryPro-api/internal/application/dto"
	"github.com/jhoicas/InventoryPro-api/internal/application/usecase"
	"github.com/jhoicas/InventoryPro-api/internal/domain"
	infrasettings "github.com/jhoicas/InventoryPro-api/internal/infrastructure/settings"
	"github.com/jhoicas/InventoryPro-api/pkg/config"
	"github.com/jhoicas/InventoryPro-api/pkg/csvkit"
)

func appCSVDefaults() config.CSVConfig {
	return config.CSVConfig{
		Delimiter:      csvkit.DelimiterComma,
		DateFormat:     string(csvkit.DateFormatISO),
		IncludeHeaders: true,
	}
}

func newSettingsUC(t *testing.T) *usecase.SettingsUseCase {
	t.Helper()
	store, err := infrasettings.NewFileStore(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	return usecase.NewSettingsUseCase(store, appCSVDefaults())
}

func TestSettings_BucketNuncaGuardadoVieneVacio(t *testing.T) {
	uc := newSettingsUC(t)

	out, err := uc.Get("organization")
	require.NoError(t, err)
	assert.Equal(t, "organization", out.Bucket)
	assert.Empty(t, out.Values)
}

// El bucket vuelve tal cual se guardó: las claves del cliente conservan su
// forma exacta.
func TestSettings_GuardarYLeer(t *testing.T) {
	uc := newSettingsUC(t)

	saved := map[string]any{
		"companyName": "InventoryPro Solutions",
		"timezone":    "America/Bogota",
	}
	_, err := uc.Save("organization", dto.SaveSettingsRequest{Values: saved})
	require.NoError(t, err)

	out, err := uc.Get("organization")
	require.NoError(t, err)
	assert.Equal(t, saved, out.Values)
	assert.Equal(t, "InventoryPro Solutions", out.Values["companyName"])
}

func TestSettings_BucketDesconocido(t *testing.T) {
	uc := newSettingsUC(t)

	_, err := uc.Get("secrets")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Save("secrets", dto.SaveSettingsRequest{Values: map[string]any{}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Las preferencias CSV guardadas tienen prioridad sobre la configuración de
// la aplicación; los valores no soportados se ignoran.
func TestSettings_CSVDefaultsCombinados(t *testing.T) {
	uc := newSettingsUC(t)

	assert.Equal(t, appCSVDefaults(), uc.CSVDefaults(), "sin nada guardado rigen los de la aplicación")

	_, err := uc.Save("csv", dto.SaveSettingsRequest{Values: map[string]any{
		"delimiter":      ";",
		"dateFormat":     "MM/DD/YYYY",
		"includeHeaders": false,
	}})
	require.NoError(t, err)

	got := uc.CSVDefaults()
	assert.Equal(t, ";", got.Delimiter)
	assert.Equal(t, "MM/DD/YYYY", got.DateFormat)
	assert.False(t, got.IncludeHeaders)
}

func TestSettings_CSVDefaultsIgnoraValoresInvalidos(t *testing.T) {
	uc := newSettingsUC(t)

	_, err := uc.Save("csv", dto.SaveSettingsRequest{Values: map[string]any{
		"delimiter":  "::",
		"dateFormat": "AAAA",
	}})
	require.NoError(t, err)

	got := uc.CSVDefaults()
	assert.Equal(t, csvkit.DelimiterComma, got.Delimiter)
	assert.Equal(t, string(csvkit.DateFormatISO), got.DateFormat)
}

// Un segundo almacén sobre el mismo archivo ve lo guardado por el primero.
func TestSettings_PersistenciaEntreAperturas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	first, err := infrasettings.NewFileStore(path)
	require.NoError(t, err)
	uc := usecase.NewSettingsUseCase(first, appCSVDefaults())
	_, err = uc.Save("profile", dto.SaveSettingsRequest{Values: map[string]any{"displayName": "Sofía"}})
	require.NoError(t, err)

	second, err := infrasettings.NewFileStore(path)
	require.NoError(t, err)
	reopened := usecase.NewSettingsUseCase(second, appCSVDefaults())
	out, err := reopened.Get("profile")
	require.NoError(t, err)
	assert.Equal(t, "Sofía", out.Values["displayName"])
}
