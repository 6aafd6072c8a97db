package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"umc/internal/loader/interfaces"
	"umc/internal/models"
	"umc/internal/providers"
	"umc/internal/sheets"
	"umc/internal/structures"
	"umc/internal/workbook"
)

// ErrNoRecords reports an input that yielded nothing to convert.
var ErrNoRecords = errors.New("no records loaded")

const (
	outputSuffix    = "_converted_"
	timestampLayout = "20060102_150405"
)

// Compression extensions stripped in addition to the data extension when
// deriving the output name.
var stripExts = map[string]bool{".gz": true, ".zst": true}

type ConverterServiceInterface interface {
	Convert(inputPath, outputPath string) (*models.Summary, error)
	Close()
}

type ConverterService struct {
	conf    *structures.Config
	loader  interfaces.LoaderInterface
	writer  workbook.WriterInterface
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewConverterService(conf *structures.Config, loader interfaces.LoaderInterface, writer workbook.WriterInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) ConverterServiceInterface {
	return &ConverterService{
		conf:    conf,
		loader:  loader,
		writer:  writer,
		logger:  logger,
		metrics: metrics,
	}
}

// Convert runs the pipeline end to end: load records, build the six tabs,
// write the workbook, derive the summary. An empty outputPath gets a
// timestamped name next to the input, or under output.dir when configured.
func (cs *ConverterService) Convert(inputPath, outputPath string) (*models.Summary, error) {
	start := time.Now()

	records := cs.loader.Load(inputPath)
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	if outputPath == "" {
		outputPath = cs.deriveOutputPath(inputPath, start)
	}

	cs.logger.Infof(providers.TypeSheets, "Creating sheets...")
	tables := sheets.BuildAll(records)
	for _, table := range tables {
		cs.metrics.SetSheetRows(table.Name, table.RowCount())
	}

	if err := cs.writer.Write(outputPath, tables); err != nil {
		return nil, fmt.Errorf("writing workbook %s: %w", outputPath, err)
	}

	summary := sheets.Summarize(tables[0])
	summary.OutputPath = outputPath
	cs.report(summary)

	cs.metrics.ObserveRunDuration(time.Since(start))
	if err := cs.metrics.Flush(); err != nil {
		cs.logger.Warnf(providers.TypeApp, "Failed to write metrics textfile: %s", err)
	}

	return summary, nil
}

func (cs *ConverterService) Close() {
	cs.loader.Close()
}

// deriveOutputPath strips the input's extension (plus any compression
// extension under it) and appends the run timestamp.
func (cs *ConverterService) deriveOutputPath(inputPath string, now time.Time) string {
	base := filepath.Base(inputPath)
	for {
		ext := filepath.Ext(base)
		if ext == "" {
			break
		}
		base = strings.TrimSuffix(base, ext)
		if !stripExts[ext] {
			break
		}
	}

	dir := cs.conf.Output.Dir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}

	return filepath.Join(dir, base+outputSuffix+now.Format(timestampLayout)+".xlsx")
}

func (cs *ConverterService) report(summary *models.Summary) {
	cs.logger.Infof(providers.TypeApp, "Successfully converted JSON to XLSX: %s", summary.OutputPath)
	cs.logger.Infof(providers.TypeApp, "Total records processed: %d", summary.Records)
	cs.logger.Infof(providers.TypeApp, "--- Summary Statistics ---")
	cs.logger.Infof(providers.TypeApp, "Unique users: %d", summary.UniqueUsers)
	cs.logger.Infof(providers.TypeApp, "Date range: %s to %s", summary.FirstDay, summary.LastDay)
	cs.logger.Infof(providers.TypeApp, "Total interactions: %d", summary.TotalInteractions)
	cs.logger.Infof(providers.TypeApp, "Total code generations: %d", summary.TotalGenerations)
	cs.logger.Infof(providers.TypeApp, "Total LOC added: %d", summary.TotalLOCAdded)
}
