package importer

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/InventoryPro-api/internal/domain"
	"github.com/jhoicas/InventoryPro-api/internal/domain/entity"
	"github.com/jhoicas/InventoryPro-api/internal/domain/repository"
	"github.com/jhoicas/InventoryPro-api/pkg/csvkit"
	"github.com/jhoicas/InventoryPro-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Session estado efímero de una importación dirigida por el usuario: filas
// crudas, encabezados y el mapeo editable. Se crea al parsear el archivo, se
// muta mientras el usuario ajusta el mapeo y se destruye al confirmar o
// reiniciar. Nunca se persiste.
type Session struct {
	ID        string
	FileName  string
	Headers   []string
	Rows      []map[string]string
	Mapping   map[string]string
	CreatedAt time.Time
}

// UseCase orquesta la importación CSV: parseo, sesiones, validación y entrega
// de las filas aceptadas al repositorio de ítems.
type UseCase struct {
	items repository.ItemRepository
	log   *logger.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewUseCase construye el caso de uso de importación.
func NewUseCase(items repository.ItemRepository, log *logger.Logger) *UseCase {
	return &UseCase{
		items:    items,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// Start parsea el contenido CSV y abre una sesión con el mapeo sugerido.
// Propaga csvkit.ErrFormat cuando el archivo no tiene encabezado más al menos
// una fila de datos.
func (uc *UseCase) Start(fileName, content, delimiter string) (*Session, error) {
	headers, rows, err := csvkit.Decode(content, delimiter)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:        uuid.New().String(),
		FileName:  fileName,
		Headers:   headers,
		Rows:      rows,
		Mapping:   SuggestMapping(headers),
		CreatedAt: time.Now(),
	}

	uc.mu.Lock()
	uc.sessions[s.ID] = s
	uc.mu.Unlock()

	uc.log.Info().
		Str("session", s.ID).
		Str("file", fileName).
		Int("rows", len(rows)).
		Msg("sesión de importación iniciada")
	return s, nil
}

// Get devuelve la sesión indicada.
func (uc *UseCase) Get(sessionID string) (*Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s, ok := uc.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// UpdateMapping sobreescribe el mapeo sugerido con las decisiones del usuario.
// Solo acepta claves de campo conocidas; cadena vacía desasigna el encabezado.
func (uc *UseCase) UpdateMapping(sessionID string, mapping map[string]string) (*Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s, ok := uc.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for header, field := range mapping {
		if field != "" && !ValidFieldKey(field) {
			return nil, fmt.Errorf("%w: campo desconocido %q", domain.ErrInvalidInput, field)
		}
		s.Mapping[header] = field
	}
	return s, nil
}

// Commit valida las filas de la sesión con el mapeo vigente y entrega las
// aceptadas al repositorio (política de éxito parcial: las filas con errores
// se excluyen sin bloquear al resto; un error de mapeo bloquea todo). La
// sesión se destruye al confirmar, haya o no filas aceptadas.
func (uc *UseCase) Commit(sessionID string) (Result, error) {
	uc.mu.Lock()
	s, ok := uc.sessions[sessionID]
	if ok {
		delete(uc.sessions, sessionID)
	}
	uc.mu.Unlock()
	if !ok {
		return Result{}, domain.ErrNotFound
	}

	result := Validate(s.Rows, s.Mapping, RequiredFieldKeys)
	if len(result.Data) > 0 {
		now := time.Now()
		items := make([]*entity.Item, 0, len(result.Data))
		for _, record := range result.Data {
			items = append(items, uc.toItem(record, now))
		}
		if err := uc.items.CreateBatch(items); err != nil {
			return Result{}, err
		}
	}

	uc.log.Info().
		Str("session", sessionID).
		Int("total", result.TotalRows).
		Int("accepted", result.SuccessfulImports).
		Int("rejected", result.FailedImports).
		Msg("importación confirmada")
	return result, nil
}

// Discard destruye la sesión sin importar nada (reinicio explícito).
func (uc *UseCase) Discard(sessionID string) {
	uc.mu.Lock()
	delete(uc.sessions, sessionID)
	uc.mu.Unlock()
}

// toItem convierte un registro mapeado en un ítem. El ID es opcional: en
// blanco se asigna el siguiente secuencial del repositorio.
func (uc *UseCase) toItem(record map[string]any, now time.Time) *entity.Item {
	item := &entity.Item{
		ID:            str(record[FieldID]),
		Name:          str(record[FieldName]),
		Category:      str(record[FieldCategory]),
		StockLevel:    num(record[FieldStockLevel]),
		MinStockLevel: num(record[FieldMinStockLevel]),
		Warehouse:     str(record[FieldWarehouse]),
		SKU:           str(record[FieldSKU]),
		Description:   str(record[FieldDescription]),
		LastUpdated:   now,
	}
	if item.ID == "" {
		item.ID = uc.items.NextID()
	}
	if p, ok := record[FieldPrice].(float64); ok {
		item.Price = decimal.NewFromFloat(p)
	}
	item.Status = entity.DeriveStockStatus(item.StockLevel, item.MinStockLevel)
	return item
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func num(v any) int {
	f, _ := v.(float64)
	return int(math.Round(f))
}
