// services/availability_service.go
package services

import (
	"sort"
	"time"

	"hotel-booking-backend/models"

	"gorm.io/gorm"
)

// CheckoutBuffer keeps a room blocked after checkout for turnover/service.
// A booking's effective interval is [checkInTime, checkOutTime + buffer).
const CheckoutBuffer = 2 * time.Hour

type AvailabilityService struct {
	DB *gorm.DB

	// Buffer overrides CheckoutBuffer when set from configuration.
	Buffer time.Duration
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db, Buffer: CheckoutBuffer}
}

// reservedRoomIDs returns the ids of rooms held by Reserved bookings whose
// effective interval overlaps the requested window. Two intervals overlap iff
//
//	existing.checkIn < requested.checkOut + buffer
//	existing.checkOut + buffer > requested.checkIn
//
// The second condition is expressed as checkOut > checkIn - buffer so the
// comparison stays inside the query parameters.
func (s *AvailabilityService) reservedRoomIDs(tx *gorm.DB, checkIn, checkOut time.Time, excludeBookingID uint) (map[uint]bool, error) {
	effectiveEnd := checkOut.Add(s.Buffer)
	bufferedStart := checkIn.Add(-s.Buffer)

	q := tx.Table("booking_rooms").
		Select("booking_rooms.room_id").
		Joins("JOIN bookings ON bookings.id = booking_rooms.booking_id").
		Where("bookings.deleted_at IS NULL AND booking_rooms.deleted_at IS NULL").
		Where("bookings.current_status = ?", models.BookingReserved).
		Where("bookings.check_in_time < ?", effectiveEnd).
		Where("bookings.check_out_time > ?", bufferedStart)
	if excludeBookingID != 0 {
		q = q.Where("bookings.id <> ?", excludeBookingID)
	}

	var ids []uint
	if err := q.Scan(&ids).Error; err != nil {
		return nil, err
	}
	booked := make(map[uint]bool, len(ids))
	for _, id := range ids {
		booked[id] = true
	}
	return booked, nil
}

// FindConflicts reports which of the given rooms are already held by another
// Reserved booking in the window. excludeBookingID skips the booking that is
// being updated.
func (s *AvailabilityService) FindConflicts(tx *gorm.DB, roomIDs []uint, checkIn, checkOut time.Time, excludeBookingID uint) ([]uint, error) {
	booked, err := s.reservedRoomIDs(tx, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return nil, err
	}
	var conflicts []uint
	for _, id := range roomIDs {
		if booked[id] {
			conflicts = append(conflicts, id)
		}
	}
	return conflicts, nil
}

// FindAvailableRooms returns the free active rooms of one type in the window,
// in ascending id order so identical requests select identical rooms.
func (s *AvailabilityService) FindAvailableRooms(tx *gorm.DB, typeID uint, checkIn, checkOut time.Time) ([]models.Room, error) {
	booked, err := s.reservedRoomIDs(tx, checkIn, checkOut, 0)
	if err != nil {
		return nil, err
	}

	var rooms []models.Room
	if err := tx.
		Where("room_type_id = ? AND active = ?", typeID, true).
		Order("id ASC").
		Find(&rooms).Error; err != nil {
		return nil, err
	}

	available := rooms[:0]
	for _, r := range rooms {
		if !booked[r.ID] {
			available = append(available, r)
		}
	}
	sort.Slice(available, func(i, j int) bool { return available[i].ID < available[j].ID })
	return available, nil
}

// ValidateStayWindow: strict ordering plus no check-ins in the past.
func ValidateStayWindow(checkIn, checkOut, now time.Time) error {
	if !checkIn.Before(checkOut) || checkIn.Before(now) {
		return ErrInvalidStayWindow
	}
	return nil
}
