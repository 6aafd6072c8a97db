package workbook

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"umc/internal/models"
	"umc/internal/providers"
)

type WriterInterface interface {
	Write(path string, tables []*models.Table) error
}

type XlsxWriter struct {
	logger providers.Logger
}

func NewWriter(logger providers.Logger) WriterInterface {
	return &XlsxWriter{logger: logger}
}

// Write renders the non-empty tables into an XLSX workbook and commits it
// atomically. Empty tables are skipped with a warning; an entirely empty
// set is an error so a dataless workbook never reaches disk.
func (w *XlsxWriter) Write(path string, tables []*models.Table) error {
	file := excelize.NewFile()
	defer file.Close()

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	written := 0
	for _, table := range tables {
		if table.Empty() {
			w.logger.Warnf(providers.TypeWriter, "Sheet '%s' is empty, skipping", table.Name)
			continue
		}

		if written == 0 {
			// New workbooks come seeded with "Sheet1"; rename it for the
			// first tab instead of leaving a stray default sheet behind.
			err = file.SetSheetName("Sheet1", table.Name)
		} else {
			_, err = file.NewSheet(table.Name)
		}
		if err != nil {
			return fmt.Errorf("creating sheet %s: %w", table.Name, err)
		}

		if err = w.writeSheet(file, table, headerStyle); err != nil {
			return fmt.Errorf("filling sheet %s: %w", table.Name, err)
		}
		w.logger.Infof(providers.TypeWriter, "Created sheet '%s' with %d rows", table.Name, table.RowCount())
		written++
	}

	if written == 0 {
		return errors.New("all sheets are empty, nothing to write")
	}

	return w.commit(file, path)
}

func (w *XlsxWriter) writeSheet(file *excelize.File, table *models.Table, headerStyle int) error {
	header := make([]any, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col
	}
	if err := file.SetSheetRow(table.Name, "A1", &header); err != nil {
		return err
	}

	lastHeaderCell, err := excelize.CoordinatesToCellName(len(table.Columns), 1)
	if err != nil {
		return err
	}
	if err := file.SetCellStyle(table.Name, "A1", lastHeaderCell, headerStyle); err != nil {
		return err
	}

	for i := 0; i < table.RowCount(); i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := table.RowValues(i)
		if err := file.SetSheetRow(table.Name, cell, &values); err != nil {
			return err
		}
	}

	return nil
}

func (w *XlsxWriter) commit(file *excelize.File, path string) error {
	data, err := file.WriteToBuffer()
	if err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	out, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = out.Write(data.Bytes())
	if err != nil {
		out.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = out.Sync(); err != nil {
		out.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = out.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, path)
}
