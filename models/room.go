package models

import (
	"fmt"
	"strings"
	"time"
)

// BedType is the fixed bed configuration of a room.
type BedType string

const (
	BedSingle BedType = "single"
	BedDouble BedType = "double"
)

// ParseBedType normalizes user/file input into a BedType.
func ParseBedType(s string) (BedType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return BedSingle, nil
	case "double":
		return BedDouble, nil
	}
	return "", fmt.Errorf("%w: unknown bed type %q", ErrInvalidInput, s)
}

// Stay is the guest and date range attached to an occupied room.
type Stay struct {
	GuestName string
	CheckIn   time.Time
	CheckOut  time.Time
}

// Nights is the whole-day difference between check-in and check-out.
func (s Stay) Nights() int {
	return int(s.CheckOut.Sub(s.CheckIn).Hours() / 24)
}

// Room is a bookable unit. Fixed attributes (Number, BedType, AC) are set
// once at seeding; Stay is non-nil exactly while the room is occupied.
type Room struct {
	Number  string
	BedType BedType
	AC      bool
	Stay    *Stay
}

func (r Room) Occupied() bool {
	return r.Stay != nil
}

// StaySummary is returned by checkout: the completed stay plus the
// attributes of the room it occupied.
type StaySummary struct {
	RoomNumber string
	BedType    BedType
	AC         bool
	GuestName  string
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
}

// Period renders the stay range for display, e.g. "2024-01-01 to 2024-01-03".
func (s StaySummary) Period() string {
	return s.CheckIn.Format("2006-01-02") + " to " + s.CheckOut.Format("2006-01-02")
}

// Filter narrows available-room queries. Nil fields mean "any".
type Filter struct {
	AC      *bool
	BedType *BedType
}

// Matches reports whether an available room satisfies every set criterion.
// Occupied rooms never match.
func (f Filter) Matches(r Room) bool {
	if r.Occupied() {
		return false
	}
	if f.AC != nil && r.AC != *f.AC {
		return false
	}
	if f.BedType != nil && r.BedType != *f.BedType {
		return false
	}
	return true
}
