package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/railwayapp/driverpack/core/logger"
)

var (
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			MarginTop(1).
			Padding(0, 1)

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Width(10).
				MarginLeft(1).
				MarginTop(1).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("238")).
				BorderBottom(true)

	labelStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Width(10).
			Foreground(lipgloss.Color("13"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Margin(0, 2)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

type PrintOptions struct {
	Version string
}

func FormatReport(report *Report, options ...PrintOptions) string {
	var opts PrintOptions
	if len(options) > 0 {
		opts = options[0]
	}
	var output strings.Builder

	header := "Driverpack"
	if opts.Version != "" {
		header = fmt.Sprintf("Driverpack %s", opts.Version)
	}
	output.WriteString(headerStyle.Render(header))
	output.WriteString("\n")

	separator := separatorStyle.Render("│")
	row := func(label, value string) {
		output.WriteString(fmt.Sprintf("%s%s%s\n", labelStyle.Render(label), separator, valueStyle.Render(value)))
	}

	output.WriteString(sectionHeaderStyle.Render("Platform"))
	output.WriteString("\n")
	row("os", string(report.Platform.OS))
	row("arch", report.Platform.Arch)
	if report.Platform.AppleSilicon {
		row("silicon", "apple")
	}

	if report.Result.RequestedVersion != "" {
		output.WriteString(sectionHeaderStyle.Render("Driver"))
		output.WriteString("\n")
		row("requested", report.Result.RequestedVersion)

		download := "-"
		if report.Result.Found() {
			download = report.Result.DownloadPath
		}
		row("download", download)
	}

	if len(report.Versions) > 0 {
		output.WriteString(sectionHeaderStyle.Render("Versions"))
		output.WriteString("\n")
		for _, v := range report.Versions {
			output.WriteString(fmt.Sprintf(" %s\n", valueStyle.Render(v)))
		}
	}

	if len(report.Logs) > 0 {
		output.WriteString("\n")
		for _, msg := range report.Logs {
			output.WriteString(formatLog(msg))
			output.WriteString("\n")
		}
	}

	output.WriteString("\n")
	return output.String()
}

func formatLog(msg logger.Msg) string {
	switch msg.Level {
	case logger.Warn:
		return warnStyle.Render("⚠ " + msg.Msg)
	case logger.Error:
		return errorStyle.Render("✖ " + msg.Msg)
	default:
		return "✓ " + msg.Msg
	}
}
