package initializer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/oilfield/pkg/app"
	"github.com/amirasaad/oilfield/pkg/config"
	"github.com/amirasaad/oilfield/pkg/registry"
	"github.com/amirasaad/oilfield/pkg/report"
	"golang.org/x/term"
)

// InitializeDependencies builds the logger, registry and printer for cfg.
// Logs go to logOut and reports to out.
func InitializeDependencies(cfg *config.App, out, logOut io.Writer) (
	deps *app.Deps,
	err error,
) {
	if cfg == nil || cfg.Log == nil || cfg.Report == nil {
		return nil, errors.New("incomplete configuration")
	}
	logger := SetupLogger(cfg.Log, logOut)

	colored, err := useColor(cfg.Report.Color, out)
	if err != nil {
		return nil, err
	}
	logger.Debug("Report output configured", "color", colored, "json", cfg.Report.JSON)

	deps = &app.Deps{
		Logger:   logger,
		Registry: registry.New(logger),
		Printer:  report.NewPrinter(out, colored),
	}
	return deps, nil
}

func useColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case config.ColorAlways:
		return true, nil
	case config.ColorNever:
		return false, nil
	case config.ColorAuto:
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode %q", mode)
	}
}
