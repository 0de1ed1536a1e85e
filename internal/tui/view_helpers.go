package tui

import (
	"encoding/json"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/MKhiriev/go-dag-signer/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// walletLabel is the caption of the connect control for state.
func walletLabel(state models.WalletAccountState) string {
	switch state.Status {
	case models.StatusConnecting:
		return "Connecting..."
	case models.StatusConnected:
		return "Connected: " + models.ShortAddress(state.Address)
	default:
		return "Connect Wallet"
	}
}

func submitLabel(loading bool) string {
	if loading {
		return "Signing..."
	}
	return "Sign Data"
}

func renderToast(n *models.Notification) string {
	if n == nil {
		return ""
	}
	style := successToastStyle
	if n.Kind == models.NotificationError {
		style = errorToastStyle
	}
	return style.Render(titleStyle.Render(n.Title) + "\n" + n.Body)
}

// renderResult formats the signed document and a QR code of its proof.
func renderResult(r *models.SigningResult) string {
	if r == nil {
		return ""
	}
	text, err := r.FormatJSON()
	if err != nil {
		return "unable to render result: " + err.Error()
	}
	if qr := proofQR(r.Proof); qr != "" {
		text += "\n\n" + qr
	}
	return text
}

// proofQR renders the proof as a terminal QR code, two modules per line.
func proofQR(proof models.Proof) string {
	data, err := json.Marshal(proof)
	if err != nil {
		return ""
	}
	q, err := qrcode.New(string(data), qrcode.Low)
	if err != nil {
		return ""
	}
	return halfBlocks(q.Bitmap())
}

func halfBlocks(bitmap [][]bool) string {
	var b strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		for x := range bitmap[y] {
			top := bitmap[y][x]
			bottom := y+1 < len(bitmap) && bitmap[y+1][x]
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if y+2 < len(bitmap) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
