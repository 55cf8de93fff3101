package ui

import tea "github.com/charmbracelet/bubbletea"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// alert is the single dismissible message shown above the form.
type alert struct {
	id       int
	message  string
	severity Severity
	visible  bool
}

// showAlert replaces any visible alert and schedules its expiry.
//
// Each alert gets a fresh id, so the expiry of an earlier alert never removes a later one.
func (m *Model) showAlert(message string, severity Severity) tea.Cmd {
	m.alertSeq++
	m.alert = alert{id: m.alertSeq, message: message, severity: severity, visible: true}

	switch severity {
	case SeverityDanger:
		m.logger.Error("alert", "message", message)
	case SeverityWarning:
		m.logger.Warn("alert", "message", message)
	default:
		m.logger.Info("alert", "message", message)
	}
	return m.after(m.opts.AlertTimeout, alertExpiredMsg{id: m.alert.id})
}

func (m *Model) dismissAlert() {
	m.alert.visible = false
}

func (m *Model) expireAlert(msg alertExpiredMsg) {
	if m.alert.visible && m.alert.id == msg.id {
		m.alert.visible = false
	}
}

// Alert returns the visible alert message and severity, or empty strings when no alert is shown.
func (m *Model) Alert() (string, Severity) {
	if !m.alert.visible {
		return "", ""
	}
	return m.alert.message, m.alert.severity
}
