package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/InventoryPro-api/internal/application/importer"
)

// mapeo identidad para los encabezados típicos de inventario.
func inventoryMapping() map[string]string {
	return map[string]string{
		"Name":        importer.FieldName,
		"Category":    importer.FieldCategory,
		"Stock Level": importer.FieldStockLevel,
		"Warehouse":   importer.FieldWarehouse,
		"Price":       importer.FieldPrice,
	}
}

func TestValidate_FilasValidas(t *testing.T) {
	rows := []map[string]string{
		{"Name": "Laptop", "Category": "Electronics", "Stock Level": "45", "Warehouse": "Central", "Price": "1299.99"},
		{"Name": "Mouse", "Category": "Accessories", "Stock Level": "3", "Warehouse": "Norte", "Price": "25"},
	}

	result := importer.Validate(rows, inventoryMapping(), importer.RequiredFieldKeys)

	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.SuccessfulImports)
	assert.Equal(t, 0, result.FailedImports)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "Laptop", result.Data[0][importer.FieldName])
	assert.Equal(t, 45.0, result.Data[0][importer.FieldStockLevel], "los campos numéricos se tipan")
}

// Una fila con error se excluye; las demás se aceptan igual. El resultado se
// particiona: ninguna fila de Data aparece también en Errors.
func TestValidate_ExitoParcial(t *testing.T) {
	rows := []map[string]string{
		{"Name": "Laptop", "Category": "Electronics", "Stock Level": "45", "Warehouse": "Central"},
		{"Name": "", "Category": "Accessories", "Stock Level": "3", "Warehouse": "Norte"},
		{"Name": "Monitor", "Category": "Electronics", "Stock Level": "abc", "Warehouse": "Central"},
		{"Name": "Teclado", "Category": "Accessories", "Stock Level": "12", "Warehouse": "Norte"},
	}

	result := importer.Validate(rows, inventoryMapping(), importer.RequiredFieldKeys)

	assert.Equal(t, 4, result.TotalRows)
	assert.Equal(t, 2, result.SuccessfulImports)
	assert.Equal(t, 2, result.FailedImports)
	assert.Equal(t, result.TotalRows, result.SuccessfulImports+result.FailedImports,
		"la partición debe ser exacta")
	require.Len(t, result.Data, 2)
	assert.Equal(t, "Laptop", result.Data[0][importer.FieldName])
	assert.Equal(t, "Teclado", result.Data[1][importer.FieldName])
}

// El número de fila reportado es el del archivo original: el encabezado es la
// línea 1, la primera fila de datos la 2.
func TestValidate_NumeroDeLineaDelArchivo(t *testing.T) {
	rows := []map[string]string{
		{"Name": "Laptop", "Category": "Electronics", "Stock Level": "45", "Warehouse": "Central"},
		{"Name": "", "Category": "Accessories", "Stock Level": "3", "Warehouse": "Norte"},
	}

	result := importer.Validate(rows, inventoryMapping(), importer.RequiredFieldKeys)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, "Row 3: name is required", result.Errors[0].String())
}

func TestValidate_NumericoInvalido(t *testing.T) {
	rows := []map[string]string{
		{"Name": "Laptop", "Category": "Electronics", "Stock Level": "-5", "Warehouse": "Central"},
		{"Name": "Mouse", "Category": "Accessories", "Stock Level": "3", "Warehouse": "Norte", "Price": "gratis"},
	}

	result := importer.Validate(rows, inventoryMapping(), importer.RequiredFieldKeys)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, "Row 2: stockLevel must be a valid positive number", result.Errors[0].String())
	assert.Equal(t, "Row 3: price must be a valid positive number", result.Errors[1].String())
}

// Cero es válido como nivel de stock: así se comporta el sistema original.
func TestValidate_CeroEsValido(t *testing.T) {
	rows := []map[string]string{
		{"Name": "Laptop", "Category": "Electronics", "Stock Level": "0", "Warehouse": "Central"},
	}

	result := importer.Validate(rows, inventoryMapping(), importer.RequiredFieldKeys)

	assert.Empty(t, result.Errors)
	require.Len(t, result.Data, 1)
	assert.Equal(t, 0.0, result.Data[0][importer.FieldStockLevel])
}

// Si ningún encabezado mapea a un campo obligatorio, el error es de mapeo
// (Row 0), se reporta una vez y bloquea toda la importación.
func TestValidate_ColumnasObligatoriasSinMapear(t *testing.T) {
	mapping := map[string]string{"Name": importer.FieldName, "Price": importer.FieldPrice}
	rows := []map[string]string{
		{"Name": "Laptop", "Price": "1299.99"},
		{"Name": "Mouse", "Price": "25"},
	}

	result := importer.Validate(rows, mapping, importer.RequiredFieldKeys)

	assert.Equal(t, 0, result.SuccessfulImports, "ninguna fila se acepta con el mapeo incompleto")
	assert.Equal(t, 2, result.FailedImports)
	assert.Empty(t, result.Data)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 0, result.Errors[0].Row)
	assert.Equal(t, "Missing required columns: category, stockLevel, warehouse", result.Errors[0].String())
}

// Validar dos veces la misma entrada produce el mismo resultado y no muta las
// filas recibidas.
func TestValidate_Idempotente(t *testing.T) {
	rows := []map[string]string{
		{"Name": "Laptop", "Category": "Electronics", "Stock Level": "45", "Warehouse": "Central"},
		{"Name": "", "Category": "Accessories", "Stock Level": "x", "Warehouse": "Norte"},
	}

	first := importer.Validate(rows, inventoryMapping(), importer.RequiredFieldKeys)
	second := importer.Validate(rows, inventoryMapping(), importer.RequiredFieldKeys)

	assert.Equal(t, first, second)
	assert.Equal(t, "Laptop", rows[0]["Name"], "las filas de entrada no deben mutarse")
}

// Un encabezado sin asignar (cadena vacía) simplemente se ignora.
func TestValidate_EncabezadoSinAsignarSeIgnora(t *testing.T) {
	mapping := inventoryMapping()
	mapping["Notas"] = ""
	rows := []map[string]string{
		{"Name": "Laptop", "Category": "Electronics", "Stock Level": "45", "Warehouse": "Central", "Notas": "x"},
	}

	result := importer.Validate(rows, mapping, importer.RequiredFieldKeys)

	require.Len(t, result.Data, 1)
	_, ok := result.Data[0]["Notas"]
	assert.False(t, ok)
}
