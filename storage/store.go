package storage

import (
	"fmt"

	"hostel-desk/models"
)

// Store persists the full room table. Every Save overwrites the previous
// contents; there is no incremental update. Load returning (nil, nil)
// means the backend holds no data yet and the caller should seed defaults.
type Store interface {
	Load() ([]models.Room, error)
	Save(rooms []models.Room) error
}

// Open constructs the store named by driver: "csv" (default) backed by the
// flat file at path, or "mysql" backed by the database the environment
// points at.
func Open(driver, path string) (Store, error) {
	switch driver {
	case "", "csv":
		return NewCSVStore(path), nil
	case "mysql":
		return OpenMySQL()
	}
	return nil, fmt.Errorf("unknown storage driver %q", driver)
}
