package main

import (
	"flag"
	"fmt"
	"os"

	"umc/internal/di"
	"umc/internal/structures"
)

func parseFlags() *structures.CliFlags {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "force debug log level")
	flag.Parse()

	args := flag.Args()
	if len(args) > 0 {
		flags.InputPath = args[0]
	}
	if len(args) > 1 {
		flags.OutputPath = args[1]
	}

	return flags
}

func main() {
	if _, err := di.InitApp(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
