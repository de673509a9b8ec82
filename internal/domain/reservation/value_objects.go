package reservation

import "strings"

const MaxSeatsPerReservation = 10

type SeatCount struct {
	value int32
}

func NewSeatCount(v int32) (SeatCount, error) {
	if v < 1 || v > MaxSeatsPerReservation {
		return SeatCount{}, ErrInvalidSeatCount
	}
	return SeatCount{value: v}, nil
}

func (s SeatCount) Value() int32 { return s.value }

type PartnerID struct {
	value string
}

func NewPartnerID(v string) (PartnerID, error) {
	t := strings.TrimSpace(v)
	if t == "" {
		return PartnerID{}, ErrEmptyPartnerID
	}
	return PartnerID{value: t}, nil
}

func (p PartnerID) String() string { return p.value }
