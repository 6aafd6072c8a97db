package providers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"umc/internal/structures"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.SetDefault("input.defaultPath", "json_file.json")
	viper.SetDefault("output.dir", "")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.dir", "")
	viper.SetDefault("metrics.enabled", false)
	viper.SetDefault("metrics.textfile", "")

	viper.BindEnv("logger.level", "UMC_LOG_LEVEL")
	viper.BindEnv("input.defaultPath", "UMC_INPUT_DEFAULT_PATH")
	viper.BindEnv("output.dir", "UMC_OUTPUT_DIR")
	viper.BindEnv("metrics.enabled", "UMC_METRICS_ENABLED")
	viper.BindEnv("metrics.textfile", "UMC_METRICS_TEXTFILE")

	err := viper.ReadInConfig()
	if err != nil {
		// The converter is expected to run with defaults alone, so a
		// missing config file is not an error.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "UsageMetricsConverter"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode
	conf.Input.Path = flags.InputPath
	conf.Output.Path = flags.OutputPath

	return &conf, nil
}
