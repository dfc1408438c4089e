package tui

import (
	"strings"

	"github.com/MKhiriev/go-portfolio-panel/internal/app"
	"github.com/MKhiriev/go-portfolio-panel/internal/view"
	"github.com/MKhiriev/go-portfolio-panel/models"
)

// outputBlock is one rendered outcome in the output region.
type outputBlock struct {
	lines   []string
	warning bool
}

func (b outputBlock) render() string {
	if !b.warning {
		return strings.Join(b.lines, "\n")
	}
	styled := make([]string, len(b.lines))
	for i, l := range b.lines {
		styled[i] = warningStyle.Render(l)
	}
	return strings.Join(styled, "\n")
}

func resultBlock(r models.OptimizationResult) outputBlock {
	lines := []string{
		titleStyle.Render("Optimized Portfolio"),
		labelStyle.Render("Selected Assets:") + " " + view.JoinSelected(r.Selected),
		labelStyle.Render("Expected Return:") + " " + view.FormatFixed6(r.ExpectedReturn),
		labelStyle.Render("Risk:") + " " + view.FormatFixed6(r.Risk),
		labelStyle.Render("Method Used:") + " " + r.Method,
		labelStyle.Render("Job ID:") + " " + r.JobID,
		"",
		labelStyle.Render("Encrypted Ciphertext:"),
	}
	lines = append(lines, wrapHex(r.CiphertextHex)...)
	lines = append(lines, "", labelStyle.Render("Nonce (for AES-GCM):"))
	lines = append(lines, wrapHex(r.NonceHex)...)

	return outputBlock{lines: lines}
}

func submitErrorBlock(err error) outputBlock {
	return outputBlock{lines: []string{view.SubmitErrorMessage(err)}, warning: true}
}

func decryptingBlock(jobID string) outputBlock {
	return outputBlock{lines: []string{statusStyle.Render(view.DecryptingMessage(jobID))}}
}

func decryptedBlock(r models.DecryptionResult) outputBlock {
	lines := []string{labelStyle.Render(app.MsgDecryptedTitle + ":")}
	lines = append(lines, strings.Split(view.IndentPlaintext(r.Plaintext), "\n")...)
	return outputBlock{lines: lines}
}

func decryptErrorBlock(err error) outputBlock {
	return outputBlock{lines: []string{view.DecryptErrorMessage(err)}, warning: true}
}
