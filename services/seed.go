package services

import (
	"math/rand"
	"strconv"

	"hostel-desk/models"
)

// firstRoomNumber starts the default block on the first floor.
const firstRoomNumber = 101

// SeedRooms builds the default room block used when the store is empty:
// count rooms numbered from 101 with randomized AC and bed attributes,
// the same shape the application has always seeded on first run.
func SeedRooms(count int) []models.Room {
	rooms := make([]models.Room, 0, count)
	for i := 0; i < count; i++ {
		room := models.Room{
			Number:  strconv.Itoa(firstRoomNumber + i),
			BedType: models.BedSingle,
			AC:      rand.Intn(2) == 1,
		}
		if rand.Intn(2) == 1 {
			room.BedType = models.BedDouble
		}
		rooms = append(rooms, room)
	}
	return rooms
}
