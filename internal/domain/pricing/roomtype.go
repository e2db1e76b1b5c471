package pricing

import (
	"sort"

	"github.com/google/uuid"
)

type RoomType struct {
	ID                     uuid.UUID
	Code                   string
	Name                   string
	MaxPersons             int
	MinAdults              int
	MinOccupancy           int
	SingleSurchargePercent *float64
}

// SelectRoomType picks the room for a quote. An explicit id must match one
// of the package's rooms. Without one, the smallest room that fits the whole
// party is chosen, falling back to the largest room on offer.
func SelectRoomType(roomTypes []RoomType, roomTypeID *uuid.UUID, partySize int) (RoomType, bool) {
	if roomTypeID != nil {
		for _, rt := range roomTypes {
			if rt.ID == *roomTypeID {
				return rt, true
			}
		}
		return RoomType{}, false
	}
	return bestFitRoomType(roomTypes, partySize)
}

func bestFitRoomType(roomTypes []RoomType, partySize int) (RoomType, bool) {
	if len(roomTypes) == 0 {
		return RoomType{}, false
	}

	sorted := make([]RoomType, len(roomTypes))
	copy(sorted, roomTypes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MaxPersons < sorted[j].MaxPersons
	})

	for _, rt := range sorted {
		if rt.MaxPersons >= partySize {
			return rt, true
		}
	}
	return sorted[len(sorted)-1], true
}
