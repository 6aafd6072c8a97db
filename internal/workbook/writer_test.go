package workbook

import (
	"os"
	"path/filepath"
	"testing"
	"umc/internal/models"
	"umc/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func usersTable(rows int) *models.Table {
	table := models.NewTable("Users", []string{"User Login", "Day", "LOC Added"})
	for i := 0; i < rows; i++ {
		table.Append(models.Row{
			"User Login": "alice",
			"Day":        "2025-06-01",
			"LOC Added":  i + 1,
		})
	}
	return table
}

func TestWriter_Write_CreatesWorkbook(t *testing.T) {
	logger := &testutil.MockLogger{}
	w := NewWriter(logger)
	path := filepath.Join(t.TempDir(), "out.xlsx")

	tables := []*models.Table{
		usersTable(2),
		models.NewTable("Empty", []string{"A"}),
	}
	require.NoError(t, w.Write(path, tables))

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"Users"}, file.GetSheetList())

	rows, err := file.GetRows("Users")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"User Login", "Day", "LOC Added"}, rows[0])
	assert.Equal(t, []string{"alice", "2025-06-01", "1"}, rows[1])
	assert.Equal(t, []string{"alice", "2025-06-01", "2"}, rows[2])

	// Empty tab warned about, not written
	warnings := logger.Messages("warn")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "'Empty' is empty")

	// Temp file should not exist
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriter_Write_MultipleSheetsKeepOrder(t *testing.T) {
	w := NewWriter(&testutil.MockLogger{})
	path := filepath.Join(t.TempDir(), "out.xlsx")

	first := models.NewTable("First", []string{"A"})
	first.Append(models.Row{"A": 1})
	second := models.NewTable("Second", []string{"B"})
	second.Append(models.Row{"B": 2})

	require.NoError(t, w.Write(path, []*models.Table{first, second}))

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()
	assert.Equal(t, []string{"First", "Second"}, file.GetSheetList())
}

func TestWriter_Write_BoolAndMissingCells(t *testing.T) {
	w := NewWriter(&testutil.MockLogger{})
	path := filepath.Join(t.TempDir(), "out.xlsx")

	table := models.NewTable("Flags", []string{"User Login", "Used Agent", "Used Chat"})
	table.Append(models.Row{"User Login": "alice", "Used Agent": true, "Used Chat": false})

	require.NoError(t, w.Write(path, []*models.Table{table}))

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Flags")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"alice", "TRUE", "FALSE"}, rows[1])
}

func TestWriter_Write_AllEmpty(t *testing.T) {
	w := NewWriter(&testutil.MockLogger{})
	path := filepath.Join(t.TempDir(), "out.xlsx")

	err := w.Write(path, []*models.Table{
		models.NewTable("A", []string{"X"}),
		models.NewTable("B", []string{"Y"}),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all sheets are empty")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriter_Write_BadDirectory(t *testing.T) {
	w := NewWriter(&testutil.MockLogger{})
	err := w.Write("/nonexistent/dir/out.xlsx", []*models.Table{usersTable(1)})
	assert.Error(t, err)
}
