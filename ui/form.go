package ui

import (
	"hostel-desk/models"
)

// triState cycles a filter criterion through any → yes → no.
type triState int

const (
	triAny triState = iota
	triYes
	triNo
)

func (t triState) String() string {
	switch t {
	case triYes:
		return "yes"
	case triNo:
		return "no"
	}
	return "any"
}

func (t triState) next() triState {
	return (t + 1) % 3
}

func (t triState) value() *bool {
	switch t {
	case triYes:
		b := true
		return &b
	case triNo:
		b := false
		return &b
	}
	return nil
}

// bedChoice cycles the bed-type criterion through any → single → double.
type bedChoice int

const (
	bedAny bedChoice = iota
	bedSingleOnly
	bedDoubleOnly
)

func (b bedChoice) String() string {
	switch b {
	case bedSingleOnly:
		return "single"
	case bedDoubleOnly:
		return "double"
	}
	return "any"
}

func (b bedChoice) next() bedChoice {
	return (b + 1) % 3
}

func (b bedChoice) value() *models.BedType {
	switch b {
	case bedSingleOnly:
		t := models.BedSingle
		return &t
	case bedDoubleOnly:
		t := models.BedDouble
		return &t
	}
	return nil
}

// filterState holds the availability-filter criteria being edited.
type filterState struct {
	ac  triState
	bed bedChoice
}

func (f filterState) filter() models.Filter {
	return models.Filter{AC: f.ac.value(), BedType: f.bed.value()}
}

// Booking form fields, in tab order.
const (
	fieldGuest = iota
	fieldCheckIn
	fieldCheckOut
	fieldCount
)

var fieldLabels = [fieldCount]string{"Guest name", "Check-in", "Check-out"}

// bookingForm is the plain text buffer set for the booking dialog. Input
// is unvalidated here; the booking service rejects bad values and the
// form stays open for correction.
type bookingForm struct {
	roomNumber string
	values     [fieldCount]string
	focus      int
}

func newBookingForm(roomNumber string) bookingForm {
	return bookingForm{roomNumber: roomNumber}
}

func (f *bookingForm) insert(s string) {
	f.values[f.focus] += s
}

func (f *bookingForm) backspace() {
	current := f.values[f.focus]
	if len(current) == 0 {
		return
	}
	runes := []rune(current)
	f.values[f.focus] = string(runes[:len(runes)-1])
}

func (f *bookingForm) nextField() {
	f.focus = (f.focus + 1) % fieldCount
}

func (f *bookingForm) prevField() {
	f.focus = (f.focus + fieldCount - 1) % fieldCount
}

func (f *bookingForm) onLastField() bool {
	return f.focus == fieldCount-1
}
