package models

import "errors"

// Sentinel errors for the room lifecycle. Callers classify with errors.Is;
// wrapped variants carry the offending value.
var (
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrRoomOccupied    = errors.New("room_already_occupied")
	ErrRoomNotOccupied = errors.New("room_not_occupied")
	ErrInvalidInput    = errors.New("invalid_input")
	ErrMalformedData   = errors.New("malformed_room_data")
)
