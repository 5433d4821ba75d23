package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hostel-desk/models"
	"hostel-desk/utils"
)

// csvHeader matches the layout of the original room sheets, bools as 0/1
// and guest columns empty while the room is vacant.
var csvHeader = []string{
	"RoomNumber", "AC", "DoubleBed", "Booked",
	"CustomerName", "CheckInDate", "CheckOutDate",
}

// CSVStore persists the room table as a single flat CSV file.
type CSVStore struct {
	Path string
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{Path: path}
}

// Load reads the whole table. A missing file is not an error: it returns
// (nil, nil) so the caller can fall back to seeded defaults. Any malformed
// row fails the load with ErrMalformedData.
func (s *CSVStore) Load() ([]models.Room, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrMalformedData, s.Path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	rooms := make([]models.Room, 0, len(records)-1)
	for i, record := range records[1:] {
		room, err := roomFromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: %v", models.ErrMalformedData, s.Path, i+2, err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// Save writes the full table, replacing prior contents. The write goes to
// a temp file in the same directory followed by a rename, so an interrupted
// save never leaves a truncated table behind.
func (s *CSVStore) Save(rooms []models.Room) error {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.Write(csvHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, room := range rooms {
		if err := writer.Write(recordFromRoom(room)); err != nil {
			tmp.Close()
			return fmt.Errorf("write room %s: %w", room.Number, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replace %s: %w", s.Path, err)
	}
	return nil
}

func recordFromRoom(room models.Room) []string {
	record := []string{
		room.Number,
		boolField(room.AC),
		boolField(room.BedType == models.BedDouble),
		boolField(room.Occupied()),
		"", "", "",
	}
	if room.Stay != nil {
		record[4] = room.Stay.GuestName
		record[5] = utils.FormatDate(room.Stay.CheckIn)
		record[6] = utils.FormatDate(room.Stay.CheckOut)
	}
	return record
}

func roomFromRecord(record []string) (models.Room, error) {
	if len(record) != len(csvHeader) {
		return models.Room{}, fmt.Errorf("want %d columns, got %d", len(csvHeader), len(record))
	}

	number := strings.TrimSpace(record[0])
	if number == "" {
		return models.Room{}, fmt.Errorf("empty room number")
	}
	ac, err := parseBoolField(record[1])
	if err != nil {
		return models.Room{}, fmt.Errorf("AC column: %v", err)
	}
	double, err := parseBoolField(record[2])
	if err != nil {
		return models.Room{}, fmt.Errorf("DoubleBed column: %v", err)
	}
	booked, err := parseBoolField(record[3])
	if err != nil {
		return models.Room{}, fmt.Errorf("Booked column: %v", err)
	}

	room := models.Room{Number: number, AC: ac, BedType: models.BedSingle}
	if double {
		room.BedType = models.BedDouble
	}
	if !booked {
		return room, nil
	}

	guest := strings.TrimSpace(record[4])
	if guest == "" {
		return models.Room{}, fmt.Errorf("booked room without a guest name")
	}
	checkIn, err := utils.ParseDate(record[5])
	if err != nil {
		return models.Room{}, fmt.Errorf("CheckInDate column: %v", err)
	}
	checkOut, err := utils.ParseDate(record[6])
	if err != nil {
		return models.Room{}, fmt.Errorf("CheckOutDate column: %v", err)
	}
	room.Stay = &models.Stay{GuestName: guest, CheckIn: checkIn, CheckOut: checkOut}
	return room, nil
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseBoolField(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("want 0 or 1, got %q", s)
}
