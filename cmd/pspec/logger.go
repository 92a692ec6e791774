package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// newLogger returns the diagnostics logger. Report lines never go through it.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "pspec", Level: level})

	styles := log.DefaultStyles()
	styles.Levels = map[log.Level]lipgloss.Style{
		log.DebugLevel: levelStyle("DEBUG", "#3F51B5"),
		log.InfoLevel:  levelStyle("INFO", "#4CAF50"),
		log.WarnLevel:  levelStyle("WARN", "#FF9800"),
		log.ErrorLevel: levelStyle("ERROR", "#F44336"),
		log.FatalLevel: levelStyle("FATAL", "#F44336").Foreground(lipgloss.Color("#FFFFFF")),
	}
	styles.Key = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Bold(true)
	styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	logger.SetStyles(styles)
	return logger
}

func levelStyle(label, background string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color("#000000")).
		Padding(0, 1)
}
