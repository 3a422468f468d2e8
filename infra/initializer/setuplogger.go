package initializer

import (
	"io"
	"log/slog"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// setupLogger builds the process logger writing to w. The menu owns stdout,
// so callers pass stderr.
func setupLogger(w io.Writer, cfg *config.Log) *slog.Logger {
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	levelStyle := func(icon string, color lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(icon).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
	}
	styles.Levels[log.ErrorLevel] = levelStyle("❌", errorTxtColor)
	styles.Levels[log.InfoLevel] = levelStyle("ℹ️", infoTxtColor)
	styles.Levels[log.WarnLevel] = levelStyle("⚠️", warnTxtColor)
	styles.Levels[log.DebugLevel] = levelStyle("🐛", debugTxtColor)

	keyColors := map[string]lipgloss.AdaptiveColor{
		"error":   errorTxtColor,
		"reason":  warnTxtColor,
		"account": infoTxtColor,
		"balance": infoTxtColor,
		"prefix":  debugTxtColor,
		"caller":  debugTxtColor,
		"time":    debugTxtColor,
	}
	for key, color := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formattersMap := map[string]log.Formatter{
		"json": log.JSONFormatter,
		"text": log.TextFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Level <= int(log.DebugLevel),
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
