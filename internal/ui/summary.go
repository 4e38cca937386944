package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/prakshal-jain/vaultsetup/internal/provisioning"
)

// RenderReport renders the per-stage outcome table for a finished run.
func RenderReport(report *provisioning.Report) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Stages"))
	b.WriteString("\n")

	for _, stage := range report.Stages {
		var mark, detail string
		switch stage.Status {
		case provisioning.StatusOK:
			mark = okStyle.Render(checkMark)
			detail = dimStyle.Render(stage.Duration.Round(time.Millisecond).String())
		case provisioning.StatusFailed:
			mark = failedStyle.Render(crossMark)
			detail = failedStyle.Render(stage.Err.Error())
		case provisioning.StatusSkipped:
			mark = skippedStyle.Render(skipMark)
			detail = dimStyle.Render("skipped")
		}
		b.WriteString(fmt.Sprintf("  %s %-16s %s\n", mark, stage.Name, detail))
	}

	return b.String()
}

// SummaryInfo holds everything the completion summary shows.
type SummaryInfo struct {
	ComputerID   string
	ComputerURL  string
	RepoDest     string
	Venv         string
	Screenshot   string
	ArtifactURL  string
	SSHPublicKey string
}

// RenderSummary renders the end-of-run summary with next steps.
func RenderSummary(info SummaryInfo, report *provisioning.Report) string {
	var b strings.Builder

	if report.Degraded() {
		b.WriteString(titleStyle.Render("Setup finished with failures"))
	} else {
		b.WriteString(titleStyle.Render("Setup complete"))
	}
	b.WriteString("\n")

	b.WriteString(RenderReport(report))

	b.WriteString(sectionStyle.Render("Summary"))
	b.WriteString("\n")
	writeRow(&b, "Computer ID", info.ComputerID)
	writeRow(&b, "Computer URL", info.ComputerURL)
	writeRow(&b, "Repository", info.RepoDest)
	writeRow(&b, "Virtualenv", info.Venv)
	writeRow(&b, "Screenshot", info.Screenshot)
	writeRow(&b, "Artifact", info.ArtifactURL)

	if info.SSHPublicKey != "" {
		b.WriteString(sectionStyle.Render("SSH public key (register with GitHub)"))
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(info.SSHPublicKey))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Next steps"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  - The computer is left running; destroy it when done:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("      vaultsetup destroy --id %s\n", info.ComputerID))
	if info.Venv != "" {
		b.WriteString(dimStyle.Render("  - Run the browser-use example on the computer:"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("      %s/bin/python /root/browser-use-example.py\n", info.Venv))
	}

	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(fmt.Sprintf("  %-14s %s\n", label+":", value))
}
