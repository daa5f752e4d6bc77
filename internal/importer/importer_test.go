package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "name,width,depth,height\nbed,2.0,1.6,0.8\n", ','},
		{"semicolon", "name;width;depth;height\nbed;2.0;1.6;0.8\n", ';'},
		{"tab", "name\twidth\tdepth\theight\nbed\t2.0\t1.6\t0.8\n", '\t'},
		{"pipe", "name|width|depth|height\nbed|2.0|1.6|0.8\n", '|'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCSVDelimiter([]byte(tt.data)))
		})
	}
}

func TestDetectColumns_Header(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"Name", "Width", "Depth", "Height", "Qty"})

	assert.True(t, hasHeader)
	assert.Equal(t, 0, mapping.Name)
	assert.Equal(t, 1, mapping.Width)
	assert.Equal(t, 2, mapping.Depth)
	assert.Equal(t, 3, mapping.Height)
	assert.Equal(t, 4, mapping.Quantity)
}

func TestDetectColumns_Aliases(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"item", "w", "length", "h", "pcs"})

	assert.True(t, hasHeader)
	assert.Equal(t, 0, mapping.Name)
	assert.Equal(t, 1, mapping.Width)
	assert.Equal(t, 2, mapping.Depth)
	assert.Equal(t, 3, mapping.Height)
	assert.Equal(t, 4, mapping.Quantity)
}

func TestDetectColumns_NoHeaderFallsBackToPositional(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"bed", "2.0", "1.6", "0.8"})

	assert.False(t, hasHeader)
	assert.Equal(t, 0, mapping.Name)
	assert.Equal(t, 1, mapping.Width)
}

func TestImportCSVFromReader_WithDimensions(t *testing.T) {
	csv := "name,width,depth,height,qty\nbed,2.0,1.6,0.8,1\nchair,0.5,0.5,0.9,2\n"

	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	require.Empty(t, result.Errors)
	require.Len(t, result.Objects, 3)
	assert.Equal(t, "bed", result.Objects[0].Name)
	assert.Equal(t, 2.0, result.Objects[0].Footprint.Width)
	assert.Equal(t, "chair", result.Objects[1].Name)
	assert.Equal(t, "chair", result.Objects[2].Name)
	assert.NotEqual(t, result.Objects[1].ID, result.Objects[2].ID)
}

func TestImportCSVFromReader_CatalogFallback(t *testing.T) {
	csv := "name,width,depth,height\nbed,,,\ndesk,,,\n"

	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	require.Empty(t, result.Errors)
	require.Len(t, result.Objects, 2)
	assert.Equal(t, 2.0, result.Objects[0].Footprint.Width)   // catalog bed
	assert.Equal(t, 0.75, result.Objects[1].Footprint.Height) // catalog desk

	foundFallback := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "catalog footprint") {
			foundFallback = true
		}
	}
	assert.True(t, foundFallback)
}

func TestImportCSVFromReader_UnknownObjectWithoutDimensions(t *testing.T) {
	csv := "name,width,depth,height\nhovercraft,,,\n"

	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	assert.Empty(t, result.Objects)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "hovercraft")
}

func TestImportCSVFromReader_PartialDimensions(t *testing.T) {
	csv := "name,width,depth,height\nbed,2.0,,\n"

	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	assert.Empty(t, result.Objects)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "all of width, depth and height")
}

func TestImportCSVFromReader_InvalidRows(t *testing.T) {
	csv := "name,width,depth,height,qty\n" +
		",1,1,1,1\n" + // missing name
		"bed,abc,1.6,0.8,1\n" + // bad width
		"bed,2.0,1.6,0.8,0\n" + // zero quantity
		"bed,-2.0,1.6,0.8,1\n" // negative width

	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	assert.Empty(t, result.Objects)
	assert.Len(t, result.Errors, 4)
}

func TestImportCSVFromReader_SkipsEmptyRows(t *testing.T) {
	csv := "name,width,depth,height\nbed,2.0,1.6,0.8\n,,,\n\nchair,0.5,0.5,0.9\n"

	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	require.Empty(t, result.Errors)
	assert.Len(t, result.Objects, 2)
}

func TestImportCSVFromReader_Empty(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')
	assert.NotEmpty(t, result.Errors)
}

func TestImportCSV_MissingFile(t *testing.T) {
	result := ImportCSV("/nonexistent/objects.csv")
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Cannot open file")
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel("/nonexistent/objects.xlsx")
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Cannot open Excel file")
}
