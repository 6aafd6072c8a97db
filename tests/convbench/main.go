package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"umc/internal/loader"
	"umc/internal/providers"
	"umc/internal/services"
	"umc/internal/structures"
	"umc/internal/workbook"
)

const (
	numRecords = 20000
	numUsers   = 500
	numDays    = 30
	seed       = 42
)

var (
	ides       = []string{"vscode", "jetbrains", "neovim", "visual_studio", "xcode"}
	features   = []string{"chat", "completion", "agent", "code_review"}
	languages  = []string{"go", "python", "typescript", "java", "rust"}
	modelNames = []string{"default", "gpt-4o", "gpt-4.1", "o3-mini", "gemini-2.0-flash"}
)

type benchResult struct {
	input    string
	records  int
	users    int
	duration time.Duration
	size     int64
}

func main() {
	fmt.Println("=== UMC Conversion Bench ===")
	fmt.Printf("Records: %d | Users: %d | Days: %d\n\n", numRecords, numUsers, numDays)

	workDir, err := os.MkdirTemp("", "convbench")
	if err != nil {
		fmt.Println("FAILED:", err)
		os.Exit(1)
	}
	defer os.RemoveAll(workDir)

	fmt.Println("--- Phase 1: Generating inputs ---")
	inputs, err := generateInputs(workDir)
	if err != nil {
		fmt.Println("FAILED:", err)
		os.Exit(1)
	}
	for _, input := range inputs {
		info, _ := os.Stat(input)
		fmt.Printf("  %-22s %s\n", filepath.Base(input), fmtSize(info.Size()))
	}

	fmt.Println("\n--- Phase 2: Converting ---")
	results := make([]benchResult, 0, len(inputs))
	for _, input := range inputs {
		r, err := runConversion(input, workDir)
		if err != nil {
			fmt.Printf("  %-22s FAILED: %s\n", filepath.Base(input), err)
			continue
		}
		results = append(results, r)
	}

	printResults(results)
}

func generateInputs(dir string) ([]string, error) {
	rng := rand.New(rand.NewSource(seed))
	records := make([]map[string]any, numRecords)
	for i := range records {
		user := fmt.Sprintf("user-%03d", rng.Intn(numUsers))
		day := fmt.Sprintf("2025-06-%02d", rng.Intn(numDays)+1)
		records[i] = genRecord(rng, user, day)
	}

	arrayData, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}

	var lines bytes.Buffer
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		lines.Write(line)
		lines.WriteByte('\n')
	}

	plain := filepath.Join(dir, "usage.json")
	if err := os.WriteFile(plain, arrayData, 0644); err != nil {
		return nil, err
	}

	var gz bytes.Buffer
	gzw := gzip.NewWriter(&gz)
	if _, err := gzw.Write(arrayData); err != nil {
		return nil, err
	}
	if err := gzw.Close(); err != nil {
		return nil, err
	}
	gzipped := filepath.Join(dir, "usage.json.gz")
	if err := os.WriteFile(gzipped, gz.Bytes(), 0644); err != nil {
		return nil, err
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer encoder.Close()
	zstded := filepath.Join(dir, "usage.ndjson.zst")
	if err := os.WriteFile(zstded, encoder.EncodeAll(lines.Bytes(), nil), 0644); err != nil {
		return nil, err
	}

	return []string{plain, gzipped, zstded}, nil
}

func genRecord(rng *rand.Rand, user, day string) map[string]any {
	rec := map[string]any{
		"report_start_day":                 "2025-06-01",
		"report_end_day":                   "2025-06-30",
		"day":                              day,
		"enterprise_id":                    "ent-bench",
		"user_id":                          rng.Intn(90000) + 10000,
		"user_login":                       user,
		"user_initiated_interaction_count": rng.Intn(80),
		"code_generation_activity_count":   rng.Intn(50),
		"code_acceptance_activity_count":   rng.Intn(30),
		"loc_suggested_to_add_sum":         rng.Intn(400),
		"loc_suggested_to_delete_sum":      rng.Intn(100),
		"loc_added_sum":                    rng.Intn(300),
		"loc_deleted_sum":                  rng.Intn(80),
		"used_agent":                       rng.Intn(2) == 0,
		"used_chat":                        rng.Intn(2) == 0,
	}

	ideEntries := make([]map[string]any, rng.Intn(3)+1)
	for i := range ideEntries {
		ideEntries[i] = activityEntry(rng)
		ideEntries[i]["ide"] = pick(rng, ides)
		ideEntries[i]["user_initiated_interaction_count"] = rng.Intn(80)
		ideEntries[i]["last_known_plugin_version"] = map[string]any{"plugin_version": "1.2.3"}
		ideEntries[i]["last_known_ide_version"] = map[string]any{"ide_version": "1.90.0"}
	}
	rec["totals_by_ide"] = ideEntries

	featureEntries := make([]map[string]any, rng.Intn(4)+1)
	for i := range featureEntries {
		featureEntries[i] = activityEntry(rng)
		featureEntries[i]["feature"] = pick(rng, features)
		featureEntries[i]["user_initiated_interaction_count"] = rng.Intn(80)
	}
	rec["totals_by_feature"] = featureEntries

	lfEntries := make([]map[string]any, rng.Intn(5)+1)
	for i := range lfEntries {
		lfEntries[i] = activityEntry(rng)
		lfEntries[i]["language"] = pick(rng, languages)
		lfEntries[i]["feature"] = pick(rng, features)
	}
	rec["totals_by_language_feature"] = lfEntries

	lmEntries := make([]map[string]any, rng.Intn(5)+1)
	for i := range lmEntries {
		lmEntries[i] = activityEntry(rng)
		lmEntries[i]["language"] = pick(rng, languages)
		lmEntries[i]["model"] = pick(rng, modelNames)
	}
	rec["totals_by_language_model"] = lmEntries

	mfEntries := make([]map[string]any, rng.Intn(4)+1)
	for i := range mfEntries {
		mfEntries[i] = activityEntry(rng)
		mfEntries[i]["model"] = pick(rng, modelNames)
		mfEntries[i]["feature"] = pick(rng, features)
		mfEntries[i]["user_initiated_interaction_count"] = rng.Intn(80)
	}
	rec["totals_by_model_feature"] = mfEntries

	return rec
}

func activityEntry(rng *rand.Rand) map[string]any {
	return map[string]any{
		"code_generation_activity_count": rng.Intn(50),
		"code_acceptance_activity_count": rng.Intn(30),
		"loc_suggested_to_add_sum":       rng.Intn(400),
		"loc_suggested_to_delete_sum":    rng.Intn(100),
		"loc_added_sum":                  rng.Intn(300),
		"loc_deleted_sum":                rng.Intn(80),
	}
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func runConversion(input, outDir string) (benchResult, error) {
	conf := &structures.Config{
		AppName: "convbench",
		Input:   structures.InputConfig{DefaultPath: "json_file.json"},
		Output:  structures.OutputConfig{Dir: outDir},
		Logger:  structures.LoggerConfig{Level: "warn"},
	}

	logger, err := providers.NewLogProvider(conf)
	if err != nil {
		return benchResult{}, err
	}
	defer logger.Close()

	metrics := providers.NewMetricsProvider(conf, logger)
	dec, err := loader.NewDecompressor()
	if err != nil {
		return benchResult{}, err
	}
	svc := services.NewConverterService(conf, loader.NewLoader(dec, logger, metrics), workbook.NewWriter(logger), logger, metrics)
	defer svc.Close()

	start := time.Now()
	summary, err := svc.Convert(input, "")
	if err != nil {
		return benchResult{}, err
	}

	info, err := os.Stat(summary.OutputPath)
	if err != nil {
		return benchResult{}, err
	}

	return benchResult{
		input:    filepath.Base(input),
		records:  summary.Records,
		users:    summary.UniqueUsers,
		duration: time.Since(start),
		size:     info.Size(),
	}, nil
}

func printResults(results []benchResult) {
	fmt.Printf("\n  %-22s %8s %6s %10s %12s\n", "Input", "Records", "Users", "Duration", "Output size")
	fmt.Println("  " + repeat("-", 64))
	for _, r := range results {
		fmt.Printf("  %-22s %8d %6d %10s %12s\n",
			r.input, r.records, r.users, fmtDur(r.duration), fmtSize(r.size))
	}
}

func fmtDur(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func fmtSize(n int64) string {
	if n < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
