package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-portfolio-panel/internal/service"
	"github.com/MKhiriev/go-portfolio-panel/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// panelModel is the single screen of the terminal panel: a ticker input
// above an output region that mirrors the web panel's result area.
type panelModel struct {
	ctx       context.Context
	services  *service.Services
	buildInfo models.AppBuildInfo

	input   textinput.Model
	spinner spinner.Model

	loading       bool
	output        []outputBlock
	latest        *models.OptimizationResult
	status        string
	statusSeq     int
	showBuildInfo bool
}

func newPanelModel(ctx context.Context, services *service.Services, buildInfo models.AppBuildInfo) panelModel {
	in := textinput.New()
	in.Placeholder = "AAPL, MSFT, GOOG"
	in.Prompt = "Tickers: "
	in.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return panelModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		input:     in,
		spinner:   s,
	}
}

func (m panelModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		return m.onSubmitDone(msg)
	case decryptDoneMsg:
		return m.onDecryptDone(msg)
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.onKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m panelModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.submit):
		return m.submit()
	case key.Matches(msg, keys.focus):
		if m.input.Focused() {
			m.input.Blur()
			return m, nil
		}
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, keys.esc) && m.input.Focused():
		m.input.Blur()
		return m, nil
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.decrypt):
		return m.decrypt()
	case key.Matches(msg, keys.copyJobID):
		return m.copy(func(r *models.OptimizationResult) string { return r.JobID }, "Job ID copied")
	case key.Matches(msg, keys.copyCipher):
		return m.copy(func(r *models.OptimizationResult) string { return r.CiphertextHex }, "Ciphertext copied")
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}
	return m, nil
}

// submit clears the output region and starts a new submission. A running
// submission is superseded by the service and its outcome dropped.
func (m panelModel) submit() (tea.Model, tea.Cmd) {
	m.input.Blur()
	m.loading = true
	m.output = nil
	m.latest = nil

	req := models.OptimizationRequest{Tickers: m.input.Value()}
	return m, tea.Batch(m.spinner.Tick, m.cmdSubmit(req))
}

func (m panelModel) cmdSubmit(req models.OptimizationRequest) tea.Cmd {
	ctx, svc := m.ctx, m.services.SubmissionService
	return func() tea.Msg {
		result, err := svc.Submit(ctx, terminalSession, req)
		return submitDoneMsg{result: result, err: err}
	}
}

func (m panelModel) onSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, service.ErrSuperseded) {
		return m, nil
	}

	m.loading = false
	if msg.err != nil {
		m.output = []outputBlock{submitErrorBlock(msg.err)}
		return m, nil
	}

	result := msg.result
	m.latest = &result
	m.output = []outputBlock{resultBlock(result)}
	return m, nil
}

// decrypt appends to the output region; it never clears it.
func (m panelModel) decrypt() (tea.Model, tea.Cmd) {
	if m.latest == nil {
		return m.setStatus(errNoJobToDecrypt.Error())
	}

	jobID := m.latest.JobID
	m.output = append(m.output, decryptingBlock(jobID))

	ctx, svc := m.ctx, m.services.DecryptionService
	return m, func() tea.Msg {
		result, err := svc.Decrypt(ctx, jobID)
		return decryptDoneMsg{jobID: jobID, result: result, err: err}
	}
}

func (m panelModel) onDecryptDone(msg decryptDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.output = append(m.output, decryptErrorBlock(msg.err))
		return m, nil
	}
	m.output = append(m.output, decryptedBlock(msg.result))
	return m, nil
}

func (m panelModel) copy(field func(*models.OptimizationResult) string, done string) (tea.Model, tea.Cmd) {
	if m.latest == nil || field(m.latest) == "" {
		return m.setStatus(errNothingToCopy.Error())
	}
	if err := writeClipboard(field(m.latest)); err != nil {
		return m.setStatus("Copy failed: " + err.Error())
	}
	return m.setStatus(done)
}

func (m panelModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = status
	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m panelModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Optimizing...\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	for _, block := range m.output {
		b.WriteString("\n")
		b.WriteString(block.render())
		b.WriteString("\n")
	}

	return renderPage("PORTFOLIO OPTIMIZER", b.String(), m.hotKeys())
}

func (m panelModel) hotKeys() string {
	if m.input.Focused() {
		return "enter: optimize • tab/esc: leave input"
	}
	return "enter: optimize • tab: edit tickers • d: decrypt • c: copy job id • x: copy ciphertext • v: build info"
}
