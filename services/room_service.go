package services

import (
	"fmt"
	"sort"

	"hostel-desk/models"
	"hostel-desk/storage"
)

// RoomService owns the in-memory room table and the store behind it. It is
// constructed once and handed to the presentation layer; every mutation
// persists the full table before returning.
type RoomService struct {
	store     storage.Store
	seedCount int
	rooms     []models.Room
}

func NewRoomService(store storage.Store, seedCount int) *RoomService {
	return &RoomService{store: store, seedCount: seedCount}
}

// Load reads the room table from the store. An empty store is seeded with
// the default room block and saved immediately. Malformed data surfaces as
// an error wrapping models.ErrMalformedData; the caller can recover with
// ResetToDefaults.
func (s *RoomService) Load() error {
	rooms, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load rooms: %w", err)
	}
	if len(rooms) == 0 {
		return s.ResetToDefaults()
	}

	seen := make(map[string]bool, len(rooms))
	for _, room := range rooms {
		if seen[room.Number] {
			return fmt.Errorf("%w: duplicate room number %s", models.ErrMalformedData, room.Number)
		}
		seen[room.Number] = true
	}

	sortRooms(rooms)
	s.rooms = rooms
	return nil
}

// ResetToDefaults replaces the table with the seeded default block and
// persists it. Used on first run and when the stored table is unreadable.
func (s *RoomService) ResetToDefaults() error {
	s.rooms = SeedRooms(s.seedCount)
	if err := s.Save(); err != nil {
		return fmt.Errorf("persist seeded rooms: %w", err)
	}
	return nil
}

// Save writes the full current table, overwriting prior contents.
func (s *RoomService) Save() error {
	return s.store.Save(s.rooms)
}

// List returns all rooms ordered by room number.
func (s *RoomService) List() []models.Room {
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Get returns the room with the given number.
func (s *RoomService) Get(number string) (models.Room, error) {
	i := s.index(number)
	if i < 0 {
		return models.Room{}, fmt.Errorf("%w: %s", models.ErrRoomNotFound, number)
	}
	return s.rooms[i], nil
}

// FindAvailable returns the available rooms matching every set criterion,
// in room-number order. An empty filter returns all available rooms.
func (s *RoomService) FindAvailable(filter models.Filter) []models.Room {
	var out []models.Room
	for _, room := range s.rooms {
		if filter.Matches(room) {
			out = append(out, room)
		}
	}
	return out
}

// Book attaches the stay to the room and persists. On a failed save the
// room is rolled back so memory and store stay consistent.
func (s *RoomService) Book(number string, stay models.Stay) error {
	i := s.index(number)
	if i < 0 {
		return fmt.Errorf("%w: %s", models.ErrRoomNotFound, number)
	}
	if s.rooms[i].Occupied() {
		return fmt.Errorf("%w: %s", models.ErrRoomOccupied, number)
	}

	s.rooms[i].Stay = &stay
	if err := s.Save(); err != nil {
		s.rooms[i].Stay = nil
		return fmt.Errorf("persist booking: %w", err)
	}
	return nil
}

// Checkout ends the room's stay, persists, and returns the stay summary.
// On a failed save the stay is restored.
func (s *RoomService) Checkout(number string) (models.StaySummary, error) {
	i := s.index(number)
	if i < 0 {
		return models.StaySummary{}, fmt.Errorf("%w: %s", models.ErrRoomNotFound, number)
	}
	room := &s.rooms[i]
	if !room.Occupied() {
		return models.StaySummary{}, fmt.Errorf("%w: %s", models.ErrRoomNotOccupied, number)
	}

	stay := room.Stay
	summary := models.StaySummary{
		RoomNumber: room.Number,
		BedType:    room.BedType,
		AC:         room.AC,
		GuestName:  stay.GuestName,
		CheckIn:    stay.CheckIn,
		CheckOut:   stay.CheckOut,
		Nights:     stay.Nights(),
	}

	room.Stay = nil
	if err := s.Save(); err != nil {
		room.Stay = stay
		return models.StaySummary{}, fmt.Errorf("persist checkout: %w", err)
	}
	return summary, nil
}

func (s *RoomService) index(number string) int {
	for i := range s.rooms {
		if s.rooms[i].Number == number {
			return i
		}
	}
	return -1
}

func sortRooms(rooms []models.Room) {
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].Number < rooms[j].Number
	})
}
