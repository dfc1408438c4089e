package tui

import (
	"github.com/MKhiriev/go-portfolio-panel/models"
)

type submitDoneMsg struct {
	result models.OptimizationResult
	err    error
}

type decryptDoneMsg struct {
	jobID  string
	result models.DecryptionResult
	err    error
}

type clearStatusMsg struct {
	seq int
}
