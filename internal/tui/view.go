package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-dag-signer/internal/service"
	"github.com/MKhiriev/go-dag-signer/models"
)

const formHotKeys = "tab/shift+tab: move • ctrl+n: add field • ctrl+d: remove field • ctrl+p: predefined names\n" +
	"ctrl+w: connect • ctrl+x: disconnect • enter/ctrl+s: sign • ctrl+y: copy result • f1: build info"

func (m model) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	snap := m.services.Snapshot()

	var b strings.Builder
	b.WriteString(m.renderWallet(snap))
	b.WriteString("\n\n")
	b.WriteString(m.renderFields())
	b.WriteString("\n")
	if m.dropdown.open {
		b.WriteString(m.renderDropdown())
		b.WriteString("\n")
	}
	b.WriteString(m.renderSubmit(snap))

	if toast := renderToast(snap.Notification); toast != "" {
		b.WriteString("\n\n")
		b.WriteString(toast)
	}
	if result := renderResult(snap.Result); result != "" {
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render("Signed result"))
		b.WriteString("\n")
		b.WriteString(result)
	}

	return appStyle.Render(renderPage(titleStyle.Render("DAG SIGNER"), b.String(), formHotKeys))
}

func (m model) renderWallet(snap service.Snapshot) string {
	label := walletLabel(snap.Wallet)
	style := buttonStyle
	if !m.canConnect() && !m.canDisconnect() {
		style = style.Inherit(disabledStyle)
	}
	line := style.Render(label)
	if snap.Wallet.Status == models.StatusConnecting {
		return lipgloss.JoinHorizontal(lipgloss.Center, line, " ", m.spinner.View())
	}
	return line
}

func (m model) renderFields() string {
	if len(m.inputs) == 0 {
		return helpStyle.Render("no fields, press ctrl+n to add one")
	}

	var b strings.Builder
	for i, in := range m.inputs {
		marker := "  "
		if m.focusedRow() == i {
			marker = focusStyle.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(in.name.View())
		b.WriteString(" : ")
		b.WriteString(in.value.View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) renderDropdown() string {
	var b strings.Builder
	for i, item := range m.dropdown.items {
		if i == m.dropdown.idx {
			b.WriteString(focusStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		if i < len(m.dropdown.items)-1 {
			b.WriteString("\n")
		}
	}
	return overlayBoxStyle.Render(b.String())
}

func (m model) renderSubmit(snap service.Snapshot) string {
	style := buttonStyle
	if !m.canSubmit() {
		style = style.Inherit(disabledStyle)
	}
	line := style.Render(submitLabel(snap.Loading))
	if snap.Loading && snap.Wallet.Status != models.StatusConnecting {
		return lipgloss.JoinHorizontal(lipgloss.Center, line, " ", m.spinner.View())
	}
	return line
}
