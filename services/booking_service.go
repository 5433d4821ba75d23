package services

import (
	"fmt"
	"strings"

	"hostel-desk/models"
	"hostel-desk/utils"
)

// BookingService validates operator input and drives the booking and
// check-out operations on the room table.
type BookingService struct {
	rooms *RoomService
}

func NewBookingService(rooms *RoomService) *BookingService {
	return &BookingService{rooms: rooms}
}

// Book validates the guest details and books the room. Dates are accepted
// in YYYY-MM-DD or DD/MM/YYYY form; check-out must fall after check-in.
func (s *BookingService) Book(number, guestName, checkIn, checkOut string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return fmt.Errorf("%w: room number is required", models.ErrInvalidInput)
	}
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return fmt.Errorf("%w: guest name is required", models.ErrInvalidInput)
	}

	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return fmt.Errorf("check-in: %w", err)
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return fmt.Errorf("check-out: %w", err)
	}
	if !out.After(in) {
		return fmt.Errorf("%w: check-out must be after check-in", models.ErrInvalidInput)
	}

	return s.rooms.Book(number, models.Stay{GuestName: guestName, CheckIn: in, CheckOut: out})
}

// Checkout ends the stay on the given room and returns its summary.
func (s *BookingService) Checkout(number string) (models.StaySummary, error) {
	return s.rooms.Checkout(strings.TrimSpace(number))
}
