package loader

import (
	"bytes"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"umc/internal/loader/interfaces"
	"umc/internal/models"
	"umc/internal/providers"
)

const linePreviewLen = 100

type Loader struct {
	decompressor interfaces.DecompressorInterface
	logger       providers.Logger
	metrics      providers.MetricsProviderInterface
}

func NewLoader(decompressor interfaces.DecompressorInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) interfaces.LoaderInterface {
	return &Loader{
		decompressor: decompressor,
		logger:       logger,
		metrics:      metrics,
	}
}

// Load reads a usage report and returns the records it could parse. The
// whole document is tried as JSON first (object or array), then line by
// line as NDJSON. Bad lines and elements are skipped with a warning.
func (l *Loader) Load(path string) []models.Record {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Errorf(providers.TypeLoader, "File %s not found", path)
		} else {
			l.logger.Errorf(providers.TypeLoader, "Error reading %s: %s", path, err)
		}
		return nil
	}

	data, err = l.decompressor.Decompress(data)
	if err != nil {
		l.logger.Errorf(providers.TypeLoader, "Error decompressing %s: %s", path, err)
		return nil
	}

	records := l.parse(data)
	l.logger.Infof(providers.TypeLoader, "Loaded %d records from %s", len(records), path)
	if len(records) == 0 {
		return nil
	}
	l.metrics.AddRecordsLoaded(len(records))

	return records
}

func (l *Loader) Close() {
	l.decompressor.Close()
}

func (l *Loader) parse(data []byte) []models.Record {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	var doc any
	if err := json.Unmarshal(trimmed, &doc); err == nil {
		return l.fromDocument(doc)
	}

	return l.fromLines(trimmed)
}

func (l *Loader) fromDocument(doc any) []models.Record {
	switch v := doc.(type) {
	case map[string]any:
		return []models.Record{models.Record(v)}
	case []any:
		records := make([]models.Record, 0, len(v))
		for i, el := range v {
			obj, ok := el.(map[string]any)
			if !ok {
				l.logger.Warnf(providers.TypeLoader, "Skipping element %d: not a JSON object", i)
				l.metrics.IncSkippedInputs()
				continue
			}
			records = append(records, models.Record(obj))
		}
		return records
	default:
		l.logger.Warnf(providers.TypeLoader, "Input is valid JSON but not an object or array, nothing to convert")
		return nil
	}
}

func (l *Loader) fromLines(data []byte) []models.Record {
	var records []models.Record
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var doc any
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			l.logger.Warnf(providers.TypeLoader, "Error parsing line %d: %s - %s", i+1, err, preview(line))
			l.metrics.IncSkippedInputs()
			continue
		}
		obj, ok := doc.(map[string]any)
		if !ok {
			l.logger.Warnf(providers.TypeLoader, "Skipping line %d: not a JSON object", i+1)
			l.metrics.IncSkippedInputs()
			continue
		}
		records = append(records, models.Record(obj))
	}

	return records
}

func preview(line string) string {
	if len(line) > linePreviewLen {
		return line[:linePreviewLen] + "..."
	}
	return line
}
