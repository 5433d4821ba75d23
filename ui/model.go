package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"hostel-desk/models"
	"hostel-desk/services"
	"hostel-desk/utils"
)

// mode identifies which interaction state owns keyboard input.
type mode int

const (
	// modeTable means navigation keys move the room table cursor.
	modeTable mode = iota
	// modeFilter means the availability filter criteria are being edited.
	modeFilter
	// modeBook means keystrokes go to the booking form fields.
	modeBook
	// modeCheckout means a check-out confirmation prompt is active.
	modeCheckout
)

// Model is the desk TUI. It owns the services and runs synchronously:
// every operation completes before the next render.
type Model struct {
	rooms   *services.RoomService
	booking *services.BookingService

	keys  KeyMap
	theme Theme

	mode      mode
	view      []models.Room
	viewTitle string
	cursor    int

	filter filterState
	form   bookingForm

	status    string
	statusErr bool

	width  int
	height int
}

// New builds the initial model showing every room.
func New(rooms *services.RoomService, booking *services.BookingService) Model {
	m := Model{
		rooms:   rooms,
		booking: booking,
		keys:    DefaultKeyMap,
		theme:   DefaultTheme(),
		width:   100,
		height:  30,
	}
	m.showAll()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeFilter:
			return m.updateFilter(msg)
		case modeBook:
			return m.updateBook(msg)
		case modeCheckout:
			return m.updateCheckout(msg)
		}
		return m.updateTable(msg)
	}
	return m, nil
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		if len(m.view) > 0 {
			m.cursor = len(m.view) - 1
		}
	case key.Matches(msg, m.keys.AllRooms):
		m.showAll()
	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		m.setNotice("pick criteria, enter to apply")
	case key.Matches(msg, m.keys.Book):
		room, ok := m.selectedRoom()
		if !ok {
			break
		}
		if room.Occupied() {
			m.setError(fmt.Sprintf("room %s is already occupied by %s", room.Number, room.Stay.GuestName))
			break
		}
		m.form = newBookingForm(room.Number)
		m.mode = modeBook
		m.setNotice(fmt.Sprintf("booking room %s", room.Number))
	case key.Matches(msg, m.keys.Checkout):
		room, ok := m.selectedRoom()
		if !ok {
			break
		}
		if !room.Occupied() {
			m.setError(fmt.Sprintf("room %s is not occupied", room.Number))
			break
		}
		m.mode = modeCheckout
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeTable
		m.setNotice("filter cancelled")
	case key.Matches(msg, m.keys.CycleAC):
		m.filter.ac = m.filter.ac.next()
	case key.Matches(msg, m.keys.CycleBed):
		m.filter.bed = m.filter.bed.next()
	case key.Matches(msg, m.keys.Submit):
		m.applyFilter()
		m.mode = modeTable
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateBook(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeTable
		m.setNotice("booking cancelled")
	case key.Matches(msg, m.keys.Submit):
		if !m.form.onLastField() {
			m.form.nextField()
			break
		}
		err := m.booking.Book(m.form.roomNumber, m.form.values[fieldGuest],
			m.form.values[fieldCheckIn], m.form.values[fieldCheckOut])
		if err != nil {
			utils.Logger.Warn().Err(err).Str("room", m.form.roomNumber).Msg("booking rejected")
			m.setError(userMessage(err))
			break
		}
		utils.Logger.Info().Str("room", m.form.roomNumber).Msg("room booked")
		m.mode = modeTable
		m.showAll()
		m.setNotice(fmt.Sprintf("room %s booked for %s", m.form.roomNumber,
			strings.TrimSpace(m.form.values[fieldGuest])))
	case key.Matches(msg, m.keys.NextField):
		m.form.nextField()
	case key.Matches(msg, m.keys.PrevField):
		m.form.prevField()
	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.form.insert(string(msg.Runes))
		case tea.KeySpace:
			m.form.insert(" ")
		case tea.KeyBackspace:
			m.form.backspace()
		}
	}
	return m, nil
}

func (m Model) updateCheckout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		room, ok := m.selectedRoom()
		if !ok {
			m.mode = modeTable
			break
		}
		summary, err := m.booking.Checkout(room.Number)
		m.mode = modeTable
		if err != nil {
			utils.Logger.Warn().Err(err).Str("room", room.Number).Msg("checkout rejected")
			m.setError(userMessage(err))
			break
		}
		utils.Logger.Info().Str("room", summary.RoomNumber).Str("guest", summary.GuestName).
			Int("nights", summary.Nights).Msg("room checked out")
		m.showAll()
		m.setNotice(fmt.Sprintf("room %s checked out: %s, %s (%d nights, %s bed, AC %s)",
			summary.RoomNumber, summary.GuestName, summary.Period(),
			summary.Nights, summary.BedType, yesNo(summary.AC)))
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeTable
		m.setNotice("check-out cancelled")
	}
	return m, nil
}

func (m *Model) showAll() {
	m.view = m.rooms.List()
	m.viewTitle = "All rooms"
	m.clampCursor()
	m.setNotice(fmt.Sprintf("displaying all %d rooms", len(m.view)))
}

func (m *Model) applyFilter() {
	m.view = m.rooms.FindAvailable(m.filter.filter())
	m.viewTitle = fmt.Sprintf("Available rooms (AC: %s, bed: %s)", m.filter.ac, m.filter.bed)
	m.clampCursor()
	m.setNotice(fmt.Sprintf("found %d available rooms matching your criteria", len(m.view)))
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.view) {
		m.cursor = len(m.view) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selectedRoom() (models.Room, bool) {
	if len(m.view) == 0 || m.cursor >= len(m.view) {
		return models.Room{}, false
	}
	return m.view[m.cursor], true
}

func (m *Model) setNotice(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

// userMessage maps core errors to operator-facing text. Unknown errors
// pass through verbatim.
func userMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrRoomNotFound):
		return "no such room"
	case errors.Is(err, models.ErrRoomOccupied):
		return "booking failed: room is already occupied"
	case errors.Is(err, models.ErrRoomNotOccupied):
		return "check-out failed: room is not occupied"
	case errors.Is(err, models.ErrInvalidInput):
		return err.Error()
	}
	return err.Error()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
