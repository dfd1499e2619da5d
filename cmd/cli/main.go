package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/amirasaad/oilfield/infra/initializer"
	"github.com/amirasaad/oilfield/pkg/app"
	"github.com/amirasaad/oilfield/pkg/config"
)

func main() {
	jsonOut := flag.Bool("json", false, "print deposits as JSON")
	envFile := flag.String("env", "", "environment file to load before the process environment")
	flag.Parse()

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}
	if *jsonOut {
		cfg.Report.JSON = true
	}

	deps, err := initializer.InitializeDependencies(cfg, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize:", err)
		os.Exit(1)
	}

	if err := app.New(deps, cfg).Run(app.DefaultSeeds); err != nil {
		deps.Logger.Error("Run failed", "error", err)
		os.Exit(1)
	}
}
