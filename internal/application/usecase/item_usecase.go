package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/InventoryPro-api/internal/application/dto"
	"github.com/jhoicas/InventoryPro-api/internal/domain"
	"github.com/jhoicas/InventoryPro-api/internal/domain/entity"
	"github.com/jhoicas/InventoryPro-api/internal/domain/repository"
	"github.com/jhoicas/InventoryPro-api/pkg/tabular"
	"github.com/shopspring/decimal"
)

// ItemUseCase casos de uso CRUD y de consulta para ítems de inventario.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un nuevo ítem. ID en blanco recibe el siguiente secuencial; el
// estado de stock se deriva del nivel frente al mínimo.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	item := &entity.Item{
		ID:            in.ID,
		Name:          in.Name,
		Category:      in.Category,
		StockLevel:    in.StockLevel,
		MinStockLevel: in.MinStockLevel,
		Warehouse:     in.Warehouse,
		Price:         price,
		SKU:           in.SKU,
		Description:   in.Description,
		LastUpdated:   time.Now(),
	}
	if item.ID == "" {
		item.ID = uc.repo.NextID()
	}
	item.Status = entity.DeriveStockStatus(item.StockLevel, item.MinStockLevel)
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un ítem por ID.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// Update actualiza un ítem; restampa LastUpdated y recalcula el estado.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.StockLevel != nil {
		item.StockLevel = *in.StockLevel
	}
	if in.MinStockLevel != nil {
		item.MinStockLevel = *in.MinStockLevel
	}
	if in.Warehouse != nil {
		item.Warehouse = *in.Warehouse
	}
	if in.Price != nil {
		price, err := parsePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		item.Price = price
	}
	if in.SKU != nil {
		item.SKU = *in.SKU
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	item.Status = entity.DeriveStockStatus(item.StockLevel, item.MinStockLevel)
	item.LastUpdated = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un ítem por ID.
func (uc *ItemUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List aplica búsqueda (name e id), filtros discretos y ordenamiento sobre la
// colección en memoria y devuelve el resultado en el orden final.
func (uc *ItemUseCase) List(q dto.ListQuery) (*dto.ItemListResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Item, len(items))
	rows := make([]tabular.Row, 0, len(items))
	for _, it := range items {
		byID[it.ID] = it
		rows = append(rows, itemRow(it))
	}

	filtered := tabular.Apply(rows, ItemSchema(), tabular.Query{
		Search:     q.Search,
		SearchKeys: []string{"name", "id"},
		Filters: map[string]string{
			"category":  q.Category,
			"warehouse": q.Warehouse,
			"status":    q.Status,
		},
		SortKey:       q.SortBy,
		SortDirection: tabular.SortDirection(q.SortDirection),
	})

	out := make([]dto.ItemResponse, 0, len(filtered))
	for _, row := range filtered {
		if it, ok := byID[row["id"].(string)]; ok {
			out = append(out, *toItemResponse(it))
		}
	}
	return &dto.ItemListResponse{Items: out, Total: len(out)}, nil
}

// Rows proyecta la colección completa como filas para la exportación.
func (uc *ItemUseCase) Rows() ([]tabular.Row, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	rows := make([]tabular.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, itemRow(it))
	}
	return rows, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	price, err := decimal.NewFromString(s)
	if err != nil || price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: price debe ser un número no negativo", domain.ErrInvalidInput)
	}
	return price, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:            i.ID,
		Name:          i.Name,
		Category:      i.Category,
		StockLevel:    i.StockLevel,
		MinStockLevel: i.MinStockLevel,
		Warehouse:     i.Warehouse,
		Price:         i.Price.String(),
		SKU:           i.SKU,
		Description:   i.Description,
		Status:        i.Status,
		LastUpdated:   i.LastUpdated,
	}
}
