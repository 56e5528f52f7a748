package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"reef-datagen/controller"
	"reef-datagen/models"
	"reef-datagen/utils"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// ── Environment defaults (.env is optional) ──────────────────────
	env, err := utils.LoadEnvDefaults(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	// ── CLI flags ────────────────────────────────────────────────────
	fs := flag.NewFlagSet("reef-datagen", flag.ContinueOnError)
	numBuoys := fs.Int("num_buoys", controller.DefaultNumBuoys, "number of buoys to generate")
	readings := fs.Int("readings_per_buoy", controller.DefaultReadingsPerBuoy, "number of readings per buoy")
	dtype := fs.String("dataset_type", string(controller.DefaultDatasetType),
		"dataset type, one of: "+models.DatasetTypeChoices())
	outputFile := fs.String("output_file", "", "output file path (required); parent directories are created")
	format := fs.String("format", "json", "output format: json, csv or line")
	seed := fs.Int64("seed", env.Seed, "random seed; 0 derives one from the clock")
	configPath := fs.String("config", env.ConfigPath, "optional generator profile (YAML)")
	logFile := fs.String("log", "", "optional log file path (stderr is always included)")
	logLevel := fs.String("log_level", env.LogLevel, "minimum log level: DEBUG, INFO, WARN, ERROR")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	// ── Logger ───────────────────────────────────────────────────────
	lvl, err := utils.ParseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	logger := utils.InitLogger(lvl, *logFile)
	defer logger.Close()

	// ── Parameters & profile ─────────────────────────────────────────
	params, err := controller.ResolveParams(controller.RawParams{
		NumBuoys:        *numBuoys,
		ReadingsPerBuoy: *readings,
		DatasetType:     *dtype,
		OutputFile:      *outputFile,
		Format:          *format,
		Seed:            *seed,
	})
	if err != nil {
		return fail(err)
	}
	profile, err := utils.LoadGeneratorProfile(*configPath)
	if err != nil {
		return fail(err)
	}

	// ── Generate & write ─────────────────────────────────────────────
	sum, err := controller.NewGenerationController(params, profile).Run(context.Background())
	if err != nil {
		return fail(err)
	}
	if err := sum.Print(os.Stdout); err != nil {
		return fail(err)
	}
	return 0
}

// fail reports err on stderr through the logger and returns the exit code.
func fail(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		utils.L().Error("rejected: %v", err)
	case errors.Is(err, models.ErrIO):
		utils.L().Error("output failed: %v", err)
	default:
		utils.L().Error("%v", err)
	}
	return 1
}
