package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/InventoryPro-api/internal/application/dto"
	"github.com/jhoicas/InventoryPro-api/internal/application/exporter"
	"github.com/jhoicas/InventoryPro-api/internal/application/usecase"
	"github.com/jhoicas/InventoryPro-api/internal/domain"
	"github.com/jhoicas/InventoryPro-api/pkg/csvkit"
)

// ExportHandler sirve las descargas CSV (protegido). Los defaults de formato
// vienen de las preferencias CSV guardadas; la query los sobreescribe.
type ExportHandler struct {
	items    *usecase.ItemUseCase
	reports  *usecase.ReportUseCase
	settings *usecase.SettingsUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(items *usecase.ItemUseCase, reports *usecase.ReportUseCase, settings *usecase.SettingsUseCase) *ExportHandler {
	return &ExportHandler{items: items, reports: reports, settings: settings}
}

// Items exporta la grilla de inventario como CSV.
func (h *ExportHandler) Items(c *fiber.Ctx) error {
	cfg, err := h.exportConfig(c, "inventory")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	cfg.ExtraDateKeys = []string{"lastUpdated"}

	rows, err := h.items.Rows()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendArtifact(c, exporter.Export(rows, usecase.ItemSchema(), cfg))
}

// Report exporta un reporte como CSV.
func (h *ExportHandler) Report(c *fiber.Ctx) error {
	reportType := c.Params("type")
	cfg, err := h.exportConfig(c, reportType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	schema, rows, err := h.reports.Schema(reportType)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de reporte desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendArtifact(c, exporter.Export(rows, schema, cfg))
}

// exportConfig arma la configuración de la exportación: defaults guardados,
// sobreescritos por la query.
func (h *ExportHandler) exportConfig(c *fiber.Ctx, basename string) (exporter.Config, error) {
	defaults := h.settings.CSVDefaults()

	var q dto.ExportQuery
	if err := c.QueryParser(&q); err != nil {
		return exporter.Config{}, errors.New("parámetros inválidos")
	}

	delimiter := defaults.Delimiter
	if q.Delimiter != "" {
		delimiter = q.Delimiter
	}
	if !csvkit.ValidDelimiter(delimiter) {
		return exporter.Config{}, errors.New("delimiter no soportado")
	}

	dateFormat := csvkit.DateFormat(defaults.DateFormat)
	if q.DateFormat != "" {
		dateFormat = csvkit.DateFormat(q.DateFormat)
	}
	if !dateFormat.Valid() {
		return exporter.Config{}, errors.New("date_format no soportado")
	}

	includeHeaders := defaults.IncludeHeaders
	if q.IncludeHeaders != nil {
		includeHeaders = *q.IncludeHeaders
	}

	var columns []string
	if raw := c.Query("columns"); raw != "" {
		for _, col := range strings.Split(raw, ",") {
			if col = strings.TrimSpace(col); col != "" {
				columns = append(columns, col)
			}
		}
	}

	if name := c.Query("filename"); name != "" {
		basename = name
	}

	filters := map[string]string{}
	if q.Category != "" {
		filters["category"] = q.Category
	}
	if q.Warehouse != "" {
		filters["warehouse"] = q.Warehouse
	}
	if q.Status != "" {
		filters["status"] = q.Status
	}

	return exporter.Config{
		Basename:        basename,
		IncludeHeaders:  includeHeaders,
		Delimiter:       delimiter,
		DateFormat:      dateFormat,
		SelectedColumns: columns,
		Filters:         filters,
	}, nil
}

// sendArtifact escribe el CSV como descarga adjunta con los metadatos en
// cabeceras propias.
func sendArtifact(c *fiber.Ctx, a exporter.Artifact) error {
	c.Set(fiber.HeaderContentType, a.MIMEType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+a.Filename+`"`)
	c.Set("X-Row-Count", strconv.Itoa(a.RowCount))
	c.Set("X-Column-Count", strconv.Itoa(a.ColumnCount))
	return c.SendString(a.Content)
}
