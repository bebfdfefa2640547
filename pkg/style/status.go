package style

import (
	"github.com/arthur-debert/cgrc/pkg/confstore"
	"github.com/arthur-debert/cgrc/pkg/installer"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// StatusStyle returns the pterm style for an install status
func StatusStyle(status installer.Status) *pterm.Style {
	switch status {
	case installer.StatusWritten:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case installer.StatusFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case installer.StatusPlanned:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case installer.StatusSkipped:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusIndicator returns the symbol shown next to an install status
func StatusIndicator(status installer.Status) string {
	switch status {
	case installer.StatusWritten:
		return SuccessIndicator
	case installer.StatusFailed:
		return ErrorIndicator
	case installer.StatusSkipped:
		return WarningIndicator
	default:
		return InfoIndicator
	}
}

// LocationStyle returns the lipgloss style for a rule file location
func LocationStyle(loc confstore.Location) lipgloss.Style {
	switch loc {
	case confstore.LocationEmbedded:
		return EmbeddedStyle
	case confstore.LocationUser:
		return UserStyle
	case confstore.LocationExtra:
		return ExtraStyle
	case confstore.LocationSystem:
		return SystemStyle
	default:
		return PathStyle
	}
}
