package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"hostel-desk/models"
)

// memStore is an in-memory Store for service tests. failSaves makes every
// Save fail so rollback behavior can be exercised.
type memStore struct {
	rooms     []models.Room
	loadErr   error
	failSaves bool
	saves     int
}

func (m *memStore) Load() ([]models.Room, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]models.Room, len(m.rooms))
	copy(out, m.rooms)
	return out, nil
}

func (m *memStore) Save(rooms []models.Room) error {
	if m.failSaves {
		return errors.New("disk full")
	}
	m.saves++
	m.rooms = make([]models.Room, len(rooms))
	copy(m.rooms, rooms)
	return nil
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixedRooms() []models.Room {
	return []models.Room{
		{Number: "101", BedType: models.BedSingle, AC: false},
		{Number: "102", BedType: models.BedDouble, AC: true},
		{Number: "103", BedType: models.BedSingle, AC: true},
	}
}

func newLoadedService(t *testing.T, store *memStore) *RoomService {
	t.Helper()
	svc := NewRoomService(store, 45)
	if err := svc.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return svc
}

func TestLoadSeedsEmptyStore(t *testing.T) {
	store := &memStore{}
	svc := newLoadedService(t, store)

	rooms := svc.List()
	if len(rooms) != 45 {
		t.Fatalf("seeded %d rooms, want 45", len(rooms))
	}
	if rooms[0].Number != "101" || rooms[len(rooms)-1].Number != "145" {
		t.Errorf("seeded range %s..%s, want 101..145", rooms[0].Number, rooms[len(rooms)-1].Number)
	}
	for _, room := range rooms {
		if room.Occupied() {
			t.Errorf("seeded room %s should be available", room.Number)
		}
	}
	if store.saves != 1 {
		t.Errorf("seeding should persist once, saved %d times", store.saves)
	}
}

func TestLoadSortsAndKeepsExistingRooms(t *testing.T) {
	store := &memStore{rooms: []models.Room{
		{Number: "103", BedType: models.BedSingle},
		{Number: "101", BedType: models.BedDouble},
	}}
	svc := newLoadedService(t, store)

	rooms := svc.List()
	if len(rooms) != 2 || rooms[0].Number != "101" || rooms[1].Number != "103" {
		t.Errorf("List() = %+v, want rooms ordered 101, 103", rooms)
	}
	if store.saves != 0 {
		t.Errorf("loading an existing table should not save, saved %d times", store.saves)
	}
}

func TestLoadRejectsDuplicateRoomNumbers(t *testing.T) {
	store := &memStore{rooms: []models.Room{{Number: "101"}, {Number: "101"}}}
	svc := NewRoomService(store, 45)
	if err := svc.Load(); !errors.Is(err, models.ErrMalformedData) {
		t.Errorf("Load = %v, want ErrMalformedData", err)
	}
}

func TestResetToDefaultsRecoversMalformedStore(t *testing.T) {
	store := &memStore{loadErr: models.ErrMalformedData}
	svc := NewRoomService(store, 10)
	if err := svc.Load(); !errors.Is(err, models.ErrMalformedData) {
		t.Fatalf("Load = %v, want ErrMalformedData", err)
	}
	if err := svc.ResetToDefaults(); err != nil {
		t.Fatalf("ResetToDefaults: %v", err)
	}
	if got := len(svc.List()); got != 10 {
		t.Errorf("rooms after reset = %d, want 10", got)
	}
}

func TestFindAvailable(t *testing.T) {
	store := &memStore{rooms: []models.Room{
		{Number: "101", BedType: models.BedSingle, AC: false},
		{Number: "102", BedType: models.BedDouble, AC: true},
		{Number: "103", BedType: models.BedSingle, AC: true},
		{Number: "104", BedType: models.BedDouble, AC: true,
			Stay: &models.Stay{GuestName: "Bob", CheckIn: date("2024-03-01"), CheckOut: date("2024-03-04")}},
	}}
	svc := newLoadedService(t, store)

	yes := true
	double := models.BedDouble

	tests := []struct {
		name   string
		filter models.Filter
		want   []string
	}{
		{"no criteria returns all available", models.Filter{}, []string{"101", "102", "103"}},
		{"ac only", models.Filter{AC: &yes}, []string{"102", "103"}},
		{"bed type only", models.Filter{BedType: &double}, []string{"102"}},
		{"combined", models.Filter{AC: &yes, BedType: &double}, []string{"102"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, room := range svc.FindAvailable(tt.filter) {
				got = append(got, room.Number)
				if room.Occupied() {
					t.Errorf("FindAvailable returned occupied room %s", room.Number)
				}
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindAvailable = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBookAndCheckoutRoundTrip(t *testing.T) {
	store := &memStore{rooms: fixedRooms()}
	svc := newLoadedService(t, store)

	before, err := svc.Get("102")
	if err != nil {
		t.Fatal(err)
	}

	stay := models.Stay{GuestName: "Alice", CheckIn: date("2024-01-01"), CheckOut: date("2024-01-03")}
	if err := svc.Book("102", stay); err != nil {
		t.Fatalf("Book: %v", err)
	}

	booked, _ := svc.Get("102")
	if !booked.Occupied() || booked.Stay.GuestName != "Alice" {
		t.Fatalf("room after booking = %+v", booked)
	}

	summary, err := svc.Checkout("102")
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if summary.GuestName != "Alice" || summary.Nights != 2 {
		t.Errorf("summary = %+v, want Alice/2 nights", summary)
	}
	if summary.BedType != before.BedType || summary.AC != before.AC {
		t.Errorf("summary attributes = %v/%v, want room's own %v/%v",
			summary.BedType, summary.AC, before.BedType, before.AC)
	}

	after, _ := svc.Get("102")
	if !reflect.DeepEqual(after, before) {
		t.Errorf("room after round trip = %+v, want original %+v", after, before)
	}
}

func TestBookErrors(t *testing.T) {
	store := &memStore{rooms: fixedRooms()}
	svc := newLoadedService(t, store)
	stay := models.Stay{GuestName: "Alice", CheckIn: date("2024-01-01"), CheckOut: date("2024-01-03")}

	if err := svc.Book("999", stay); !errors.Is(err, models.ErrRoomNotFound) {
		t.Errorf("booking unknown room = %v, want ErrRoomNotFound", err)
	}

	if err := svc.Book("101", stay); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	snapshot := svc.List()
	if err := svc.Book("101", models.Stay{GuestName: "Eve", CheckIn: date("2024-01-02"), CheckOut: date("2024-01-04")}); !errors.Is(err, models.ErrRoomOccupied) {
		t.Errorf("double booking = %v, want ErrRoomOccupied", err)
	}
	if !reflect.DeepEqual(svc.List(), snapshot) {
		t.Error("failed double booking must leave state unchanged")
	}
}

func TestCheckoutErrors(t *testing.T) {
	store := &memStore{rooms: fixedRooms()}
	svc := newLoadedService(t, store)

	if _, err := svc.Checkout("999"); !errors.Is(err, models.ErrRoomNotFound) {
		t.Errorf("checkout of unknown room = %v, want ErrRoomNotFound", err)
	}

	snapshot := svc.List()
	if _, err := svc.Checkout("101"); !errors.Is(err, models.ErrRoomNotOccupied) {
		t.Errorf("checkout of available room = %v, want ErrRoomNotOccupied", err)
	}
	if !reflect.DeepEqual(svc.List(), snapshot) {
		t.Error("failed checkout must leave state unchanged")
	}
}

func TestFailedSaveRollsBack(t *testing.T) {
	store := &memStore{rooms: fixedRooms()}
	svc := newLoadedService(t, store)
	stay := models.Stay{GuestName: "Alice", CheckIn: date("2024-01-01"), CheckOut: date("2024-01-03")}

	store.failSaves = true
	if err := svc.Book("101", stay); err == nil {
		t.Fatal("booking with a failing store should error")
	}
	room, _ := svc.Get("101")
	if room.Occupied() {
		t.Error("failed booking save must roll the room back to available")
	}

	store.failSaves = false
	if err := svc.Book("101", stay); err != nil {
		t.Fatalf("Book: %v", err)
	}
	store.failSaves = true
	if _, err := svc.Checkout("101"); err == nil {
		t.Fatal("checkout with a failing store should error")
	}
	room, _ = svc.Get("101")
	if !room.Occupied() || room.Stay.GuestName != "Alice" {
		t.Error("failed checkout save must restore the stay")
	}
}
