package storage

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-desk/models"
)

// roomRecord is the persisted shape of a room. Guest columns are NULL
// while the room is vacant, mirroring the empty CSV columns.
type roomRecord struct {
	RoomNumber string     `gorm:"column:room_number;primaryKey;type:varchar(50)"`
	AC         bool       `gorm:"column:ac"`
	BedType    string     `gorm:"column:bed_type;type:varchar(16)"`
	Booked     bool       `gorm:"column:booked"`
	GuestName  string     `gorm:"column:guest_name;type:varchar(255)"`
	CheckIn    *time.Time `gorm:"column:check_in"`
	CheckOut   *time.Time `gorm:"column:check_out"`
}

func (roomRecord) TableName() string { return "rooms" }

func dbRecordFromRoom(room models.Room) roomRecord {
	record := roomRecord{
		RoomNumber: room.Number,
		AC:         room.AC,
		BedType:    string(room.BedType),
		Booked:     room.Occupied(),
	}
	if room.Stay != nil {
		checkIn, checkOut := room.Stay.CheckIn, room.Stay.CheckOut
		record.GuestName = room.Stay.GuestName
		record.CheckIn = &checkIn
		record.CheckOut = &checkOut
	}
	return record
}

func roomFromDBRecord(record roomRecord) (models.Room, error) {
	bedType, err := models.ParseBedType(record.BedType)
	if err != nil {
		return models.Room{}, fmt.Errorf("%w: room %s: %v",
			models.ErrMalformedData, record.RoomNumber, err)
	}
	room := models.Room{Number: record.RoomNumber, AC: record.AC, BedType: bedType}
	if !record.Booked {
		return room, nil
	}
	if record.GuestName == "" || record.CheckIn == nil || record.CheckOut == nil {
		return models.Room{}, fmt.Errorf("%w: room %s booked without guest columns",
			models.ErrMalformedData, record.RoomNumber)
	}
	room.Stay = &models.Stay{
		GuestName: record.GuestName,
		CheckIn:   *record.CheckIn,
		CheckOut:  *record.CheckOut,
	}
	return room, nil
}

// MySQLStore persists the room table in MySQL through gorm. Save keeps the
// same last-write-wins semantics as the flat file: the whole table is
// replaced in one transaction.
type MySQLStore struct {
	db *gorm.DB
}

// OpenMySQL connects using the DSN resolved from the environment and
// migrates the room table.
func OpenMySQL() (*MySQLStore, error) {
	dsn, _, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	if err := db.AutoMigrate(&roomRecord{}); err != nil {
		return nil, fmt.Errorf("migrate rooms table: %w", err)
	}
	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Load() ([]models.Room, error) {
	var records []roomRecord
	if err := s.db.Order("room_number").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	rooms := make([]models.Room, 0, len(records))
	for _, record := range records {
		room, err := roomFromDBRecord(record)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (s *MySQLStore) Save(rooms []models.Room) error {
	records := make([]roomRecord, 0, len(rooms))
	for _, room := range rooms {
		records = append(records, dbRecordFromRoom(room))
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&roomRecord{}).Error; err != nil {
			return fmt.Errorf("clear rooms table: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("insert rooms: %w", err)
		}
		return nil
	})
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, dbName, nil
}

func resolveMySQLDSN() (string, string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, strings.TrimSpace(os.Getenv("DB_NAME")), nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hostel_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, dbName, nil
}
