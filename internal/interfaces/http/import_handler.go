package http

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/InventoryPro-api/internal/application/dto"
	"github.com/jhoicas/InventoryPro-api/internal/application/importer"
	"github.com/jhoicas/InventoryPro-api/internal/domain"
	"github.com/jhoicas/InventoryPro-api/pkg/csvkit"
)

// previewRows filas de muestra incluidas en la respuesta de sesión.
const previewRows = 5

// ImportHandler maneja el flujo de importación CSV (protegido): subida,
// ajuste del mapeo y confirmación o descarte de la sesión.
type ImportHandler struct {
	uc *importer.UseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Upload recibe el archivo CSV y abre una sesión con el mapeo sugerido.
// Solo acepta archivos .csv; cualquier otra extensión se rechaza antes de
// intentar el parseo.
func (h *ImportHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo requerido en el campo file"})
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".csv") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "Please select a CSV file"})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	session, err := h.uc.Start(file.Filename, string(content), c.FormValue("delimiter"))
	if err != nil {
		if errors.Is(err, csvkit.ErrFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "CSV file must contain headers and at least one data row"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(sessionResponse(session))
}

// Get retorna el estado vigente de la sesión.
func (h *ImportHandler) Get(c *fiber.Ctx) error {
	session, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión de importación no encontrada"})
	}
	return c.JSON(sessionResponse(session))
}

// UpdateMapping reemplaza las entradas del mapeo ajustadas por el usuario.
func (h *ImportHandler) UpdateMapping(c *fiber.Ctx) error {
	var in dto.UpdateMappingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	session, err := h.uc.UpdateMapping(c.Params("id"), in.Mapping)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión de importación no encontrada"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(sessionResponse(session))
}

// Commit valida las filas y entrega las aceptadas al inventario. La respuesta
// particiona el resultado; 200 aunque haya filas fallidas, siempre que la
// importación como tal haya corrido.
func (h *ImportHandler) Commit(c *fiber.Ctx) error {
	result, err := h.uc.Commit(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión de importación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := dto.ImportResultResponse{
		TotalRows:         result.TotalRows,
		SuccessfulImports: result.SuccessfulImports,
		FailedImports:     result.FailedImports,
	}
	for _, e := range result.Errors {
		out.Errors = append(out.Errors, e.String())
	}
	return c.JSON(out)
}

// Discard descarta la sesión sin importar nada.
func (h *ImportHandler) Discard(c *fiber.Ctx) error {
	h.uc.Discard(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func sessionResponse(s *importer.Session) dto.ImportSessionResponse {
	preview := s.Rows
	if len(preview) > previewRows {
		preview = preview[:previewRows]
	}
	return dto.ImportSessionResponse{
		SessionID: s.ID,
		FileName:  s.FileName,
		Headers:   s.Headers,
		Mapping:   s.Mapping,
		RowCount:  len(s.Rows),
		Preview:   preview,
	}
}
