package internal

import (
	"fmt"
	"os"

	"umc/internal/models"
	"umc/internal/providers"
	"umc/internal/services"
	"umc/internal/structures"
)

// App carries the result of the one-shot run. Construction runs the whole
// conversion; by the time NewApp returns the workbook is on disk (or the
// failure has been reported).
type App struct {
	Summary *models.Summary
}

func NewApp(converter services.ConverterServiceInterface, conf *structures.Config, logger providers.Logger) (*App, error) {
	defer converter.Close()

	app := &App{}
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	inputPath := conf.Input.Path
	if inputPath == "" {
		inputPath = conf.Input.DefaultPath
	}

	if _, err := os.Stat(inputPath); err != nil {
		logger.Errorf(providers.TypeApp, "File %s does not exist", inputPath)
		printUsage(conf.Input.DefaultPath)
		return app, nil
	}

	logger.Infof(providers.TypeApp, "Converting %s to XLSX...", inputPath)
	summary, err := converter.Convert(inputPath, conf.Output.Path)
	if err != nil {
		logger.Errorf(providers.TypeApp, "Conversion aborted: %s", err)
		return app, nil
	}
	app.Summary = summary

	return app, nil
}

func printUsage(defaultInput string) {
	fmt.Println("Usage:")
	fmt.Println("  umc [input_json_file] [output_xlsx_file]")
	fmt.Printf("  With no arguments the default input (%s) is used\n", defaultInput)
}
