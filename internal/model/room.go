package model

// Room occupancy invariant: a room is occupied iff exactly one
// non-discharged patient references it. Admission toggles occupancy on;
// reclaiming occupancy after discharge is handled out of band.
type Room struct {
	Base
	RoomNumber string `db:"room_number" json:"room_number"`
	RoomType   string `db:"room_type" json:"room_type"`
	Floor      int    `db:"floor" json:"floor"`
	IsOccupied bool   `db:"is_occupied" json:"is_occupied"`
}
