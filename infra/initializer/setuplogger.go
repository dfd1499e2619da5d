package initializer

import (
	"io"
	"log/slog"

	"github.com/amirasaad/oilfield/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// SetupLogger builds a styled charmbracelet logger writing to w, wraps it in
// slog and installs it as the default logger.
func SetupLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	levels := map[log.Level]struct {
		symbol string
		color  lipgloss.AdaptiveColor
	}{
		log.ErrorLevel: {"ERR", errorTxtColor},
		log.WarnLevel:  {"WRN", warnTxtColor},
		log.InfoLevel:  {"INF", infoTxtColor},
		log.DebugLevel: {"DBG", debugTxtColor},
	}
	for level, s := range levels {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(s.symbol).
			Bold(true).
			Padding(0, 1).
			Foreground(s.color)
	}

	styles.Keys["error"] = lipgloss.NewStyle().Foreground(errorTxtColor)
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["errors"] = lipgloss.NewStyle().Foreground(errorTxtColor)
	styles.Values["errors"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["number"] = lipgloss.NewStyle().Foreground(infoTxtColor)
	styles.Keys["name"] = lipgloss.NewStyle().Foreground(infoTxtColor)
	styles.Values["name"] = lipgloss.NewStyle().Bold(true)

	formattersMap := map[string]log.Formatter{
		"json":   log.JSONFormatter,
		"text":   log.TextFormatter,
		"logfmt": log.LogfmtFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}
