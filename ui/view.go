package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hostel-desk/models"
	"hostel-desk/utils"
)

// Column widths for the room table.
const (
	colRoom   = 8
	colAC     = 5
	colBed    = 8
	colStatus = 11
	colGuest  = 18
	colPeriod = 26
)

func (m Model) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.HeaderForeground)
	b.WriteString(titleStyle.Render(truncate("Hostel Desk | "+m.viewTitle, m.width)))
	b.WriteString("\n\n")

	b.WriteString(m.renderTable())
	b.WriteString("\n")

	switch m.mode {
	case modeFilter:
		b.WriteString(m.renderFilter())
	case modeBook:
		b.WriteString(m.renderBookingForm())
	case modeCheckout:
		b.WriteString(m.renderCheckoutPrompt())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderTable() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.HeaderForeground)
	normalStyle := lipgloss.NewStyle().Foreground(m.theme.NormalText)
	occupiedStyle := lipgloss.NewStyle().Foreground(m.theme.StatusOccupied)
	selectedStyle := lipgloss.NewStyle().
		Foreground(m.theme.SelectedForeground).
		Background(m.theme.SelectedBackground)
	faintStyle := lipgloss.NewStyle().Foreground(m.theme.FaintText)

	var b strings.Builder
	b.WriteString(headerStyle.Render(truncate(tableRow("Room", "AC", "Bed", "Status", "Guest", "Period"), m.width)))
	b.WriteString("\n")

	if len(m.view) == 0 {
		b.WriteString(faintStyle.Render("  no rooms match"))
		b.WriteString("\n")
		return b.String()
	}

	start, end := m.tableWindow()
	if start > 0 {
		b.WriteString(faintStyle.Render(fmt.Sprintf("  … %d more above", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		room := m.view[i]
		row := tableRow(
			room.Number,
			yesNo(room.AC),
			string(room.BedType),
			statusLabel(room),
			guestLabel(room),
			periodLabel(room),
		)
		style := normalStyle
		if room.Occupied() {
			style = occupiedStyle
		}
		if i == m.cursor {
			style = selectedStyle
		}
		b.WriteString(style.Render(truncate(row, m.width)))
		b.WriteString("\n")
	}
	if end < len(m.view) {
		b.WriteString(faintStyle.Render(fmt.Sprintf("  … %d more below", len(m.view)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

// tableChrome is the line count View spends outside table rows: title,
// header, spacing, status, and help, plus the two overflow markers.
const tableChrome = 9

// tableWindow returns the row range to render so the table fits the
// window height and the cursor row stays visible.
func (m Model) tableWindow() (int, int) {
	max := m.height - tableChrome
	if max < 3 {
		max = 3
	}
	if len(m.view) <= max {
		return 0, len(m.view)
	}
	start := m.cursor - max/2
	if start > len(m.view)-max {
		start = len(m.view) - max
	}
	if start < 0 {
		start = 0
	}
	return start, start + max
}

// truncate cuts s to the given display width. Rows are plain ASCII at
// this point; styling is applied after.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

func (m Model) renderFilter() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 1)

	body := fmt.Sprintf("Filter available rooms\n\nAC room:  %s\nBed type: %s",
		m.filter.ac, m.filter.bed)
	return boxStyle.Render(body)
}

func (m Model) renderBookingForm() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 1)
	focusStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.HeaderForeground)

	var b strings.Builder
	fmt.Fprintf(&b, "Book room %s\n\n", m.form.roomNumber)
	for i := 0; i < fieldCount; i++ {
		line := fmt.Sprintf("%-11s %s", fieldLabels[i]+":", m.form.values[i])
		if i == m.form.focus {
			line = focusStyle.Render("> " + line + "▏")
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\ndates: YYYY-MM-DD or DD/MM/YYYY")
	return boxStyle.Render(b.String())
}

func (m Model) renderCheckoutPrompt() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 1)

	room, ok := m.selectedRoom()
	if !ok || room.Stay == nil {
		return ""
	}
	return boxStyle.Render(fmt.Sprintf("Check out room %s?\n\nGuest: %s\nStay:  %s to %s",
		room.Number, room.Stay.GuestName,
		utils.FormatDate(room.Stay.CheckIn), utils.FormatDate(room.Stay.CheckOut)))
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(m.theme.NoticeText)
	if m.statusErr {
		style = lipgloss.NewStyle().Foreground(m.theme.ErrorText)
	}
	return style.Render(truncate(m.status, m.width))
}

func (m Model) renderHelp() string {
	helpStyle := lipgloss.NewStyle().Foreground(m.theme.HelpText)
	var text string
	switch m.mode {
	case modeFilter:
		text = "a cycle AC · b cycle bed · enter apply · esc cancel"
	case modeBook:
		text = "type to edit · tab next field · enter submit · esc cancel"
	case modeCheckout:
		text = "y confirm · esc cancel"
	default:
		text = "j/k move · a all rooms · f find available · b book · c check out · q quit"
	}
	return helpStyle.Render(truncate(text, m.width))
}

func tableRow(room, ac, bed, status, guest, period string) string {
	return fmt.Sprintf("  %-*s %-*s %-*s %-*s %-*s %-*s",
		colRoom, room, colAC, ac, colBed, bed, colStatus, status, colGuest, guest, colPeriod, period)
}

func statusLabel(room models.Room) string {
	if room.Occupied() {
		return "Occupied"
	}
	return "Available"
}

func guestLabel(room models.Room) string {
	if room.Stay == nil {
		return ""
	}
	return room.Stay.GuestName
}

func periodLabel(room models.Room) string {
	if room.Stay == nil {
		return ""
	}
	return utils.FormatDate(room.Stay.CheckIn) + " to " + utils.FormatDate(room.Stay.CheckOut)
}
