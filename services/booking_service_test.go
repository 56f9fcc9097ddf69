package services

import (
	"testing"
	"time"

	"hotel-booking-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBookingService(db *gorm.DB) *BookingService {
	return NewBookingService(db, NewAvailabilityService(db), NewVoucherService(db))
}

func asStaff() Actor { return Actor{UserID: 999, Role: models.RoleStaff} }

func createReq(user *models.User, rt *models.RoomType, rooms int, checkIn, checkOut time.Time) *CreateBookingRequest {
	return &CreateBookingRequest{
		UserID:         user.ID,
		TypeRooms:      []TypeRoomRequest{{TypeID: rt.ID, NumberOfRooms: rooms}},
		CheckInTime:    checkIn,
		CheckOutTime:   checkOut,
		NumberOfGuests: 2,
		PaidAmount:     10000000,
		PaymentMethod:  "cash",
	}
}

func TestCreateBooking(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)

	user := seedCustomer(t, db, "guest@example.com", 0)
	rt := seedRoomType(t, db, "Standard", 2, 50000, 1000000)
	seedRoom(t, db, rt, "101")
	seedRoom(t, db, rt, "102")

	checkIn, checkOut := stayIn(3, 28*time.Hour)
	req := createReq(user, rt, 2, checkIn, checkOut)
	req.NumberOfGuests = 4

	booking, err := svc.Create(Actor{UserID: user.ID, Role: models.RoleCustomer}, req)
	require.NoError(t, err)

	assert.Equal(t, models.BookingReserved, booking.CurrentStatus)
	assert.NotEmpty(t, booking.ReferenceCode)
	assert.Len(t, booking.Rooms, 2)
	// 28h = 1 day + 4h: (1000000 + 4*50000) per room, two rooms
	assert.Equal(t, int64(2400000), booking.TotalAmount)
	assert.Equal(t, int64(10000000), booking.PaidAmount)
	require.NotNil(t, booking.LastPaidAt)
}

func TestCreateBookingValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)

	user := seedCustomer(t, db, "guest@example.com", 0)
	rt := seedRoomType(t, db, "Standard", 2, 50000, 1000000)
	seedRoom(t, db, rt, "101")
	checkIn, checkOut := stayIn(3, 24*time.Hour)

	t.Run("duplicate type ids rejected, not deduplicated", func(t *testing.T) {
		req := createReq(user, rt, 1, checkIn, checkOut)
		req.TypeRooms = append(req.TypeRooms, TypeRoomRequest{TypeID: rt.ID, NumberOfRooms: 1})
		_, err := svc.Create(asStaff(), req)
		assert.ErrorIs(t, err, ErrDuplicateRoomType)
	})

	t.Run("check-in in the past", func(t *testing.T) {
		req := createReq(user, rt, 1, time.Now().UTC().Add(-time.Hour), checkOut)
		_, err := svc.Create(asStaff(), req)
		assert.ErrorIs(t, err, ErrInvalidStayWindow)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		req := createReq(user, rt, 1, checkOut, checkIn)
		_, err := svc.Create(asStaff(), req)
		assert.ErrorIs(t, err, ErrInvalidStayWindow)
	})

	t.Run("unknown user", func(t *testing.T) {
		req := createReq(user, rt, 1, checkIn, checkOut)
		req.UserID = 4242
		_, err := svc.Create(asStaff(), req)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("unknown type", func(t *testing.T) {
		req := createReq(user, rt, 1, checkIn, checkOut)
		req.TypeRooms[0].TypeID = 4242
		_, err := svc.Create(asStaff(), req)
		assert.ErrorIs(t, err, ErrTypeNotFound)
	})

	t.Run("customer cannot book for someone else", func(t *testing.T) {
		other := seedCustomer(t, db, "other@example.com", 0)
		req := createReq(other, rt, 1, checkIn, checkOut)
		_, err := svc.Create(Actor{UserID: user.ID, Role: models.RoleCustomer}, req)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestCreateBookingNoDoubleBooking(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)

	user := seedCustomer(t, db, "guest@example.com", 0)
	rt := seedRoomType(t, db, "Standard", 2, 50000, 1000000)
	seedRoom(t, db, rt, "101")

	checkIn, checkOut := stayIn(3, 24*time.Hour)
	_, err := svc.Create(asStaff(), createReq(user, rt, 1, checkIn, checkOut))
	require.NoError(t, err)

	// Overlapping window on the only room.
	_, err = svc.Create(asStaff(), createReq(user, rt, 1, checkIn.Add(2*time.Hour), checkOut.Add(2*time.Hour)))
	assert.ErrorIs(t, err, ErrInsufficientAvailability)

	// Starting inside the 2h buffer still conflicts.
	_, err = svc.Create(asStaff(), createReq(user, rt, 1, checkOut.Add(time.Hour), checkOut.Add(8*time.Hour)))
	assert.ErrorIs(t, err, ErrInsufficientAvailability)

	// After the buffer the room is bookable again.
	_, err = svc.Create(asStaff(), createReq(user, rt, 1, checkOut.Add(2*time.Hour), checkOut.Add(8*time.Hour)))
	assert.NoError(t, err)
}

func TestCreateBookingOverOccupancy(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)

	user := seedCustomer(t, db, "guest@example.com", 0)
	rt := seedRoomType(t, db, "Standard", 2, 50000, 1000000)
	seedRoom(t, db, rt, "101")
	require.NoError(t, db.Create(&models.OverOccupancyCharge{ExcessGuests: 2, ExtraCharge: 100000}).Error)
	require.NoError(t, db.Create(&models.OverOccupancyCharge{ExcessGuests: 5, ExtraCharge: 300000}).Error)

	checkIn, checkOut := stayIn(3, 24*time.Hour)

	// limit 2, guests 5 -> excess 3 -> bracket 5 -> 300000 extra
	req := createReq(user, rt, 1, checkIn, checkOut)
	req.NumberOfGuests = 5
	booking, err := svc.Create(asStaff(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1000000+300000), booking.TotalAmount)

	// excess 6 is beyond every bracket
	req2 := createReq(user, rt, 1, checkOut.Add(3*time.Hour), checkOut.Add(27*time.Hour))
	req2.NumberOfGuests = 8
	_, err = svc.Create(asStaff(), req2)
	assert.ErrorIs(t, err, ErrOverOccupancyExceeded)
}

func TestCreateBookingDepositBoundary(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)

	user := seedCustomer(t, db, "guest@example.com", 0)
	// 24h stay -> exactly one daily rate
	rt := seedRoomType(t, db, "Standard", 2, 0, 1000)
	seedRoom(t, db, rt, "101")
	checkIn, checkOut := stayIn(3, 24*time.Hour)

	req := createReq(user, rt, 1, checkIn, checkOut)
	req.PaidAmount = 199
	_, err := svc.Create(asStaff(), req)
	assert.ErrorIs(t, err, ErrInsufficientDeposit)

	req.PaidAmount = 200
	_, err = svc.Create(asStaff(), req)
	assert.NoError(t, err)
}

func TestCreateBookingPointsAndVoucher(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)

	user := seedCustomer(t, db, "guest@example.com", 500)
	rt := seedRoomType(t, db, "Standard", 2, 50000, 1000000)
	seedRoom(t, db, rt, "101")
	seedVoucher(t, db, "SAVE20", 20, 0, 150000, 5)

	checkIn, checkOut := stayIn(3, 24*time.Hour)
	req := createReq(user, rt, 1, checkIn, checkOut)
	req.VoucherCode = "SAVE20"
	req.RedeemedPoint = 100

	booking, err := svc.Create(asStaff(), req)
	require.NoError(t, err)

	// 1000000 - min(200000, 150000) - 100*1000 = 750000
	assert.Equal(t, int64(750000), booking.TotalAmount)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, int64(400), fresh.Point, "points debited in the same commit")

	var usages int64
	require.NoError(t, db.Model(&models.VoucherUsage{}).Where("user_id = ?", user.ID).Count(&usages).Error)
	assert.Equal(t, int64(1), usages)
}

func TestCreateBookingInsufficientPoints(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)

	user := seedCustomer(t, db, "guest@example.com", 50)
	rt := seedRoomType(t, db, "Standard", 2, 50000, 1000000)
	seedRoom(t, db, rt, "101")

	checkIn, checkOut := stayIn(3, 24*time.Hour)
	req := createReq(user, rt, 1, checkIn, checkOut)
	req.RedeemedPoint = 100

	_, err := svc.Create(asStaff(), req)
	assert.ErrorIs(t, err, ErrInsufficientPoints)
}

func TestCreateBookingRollbackAfterVoucherReservation(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)

	user := seedCustomer(t, db, "guest@example.com", 500)
	rt := seedRoomType(t, db, "Standard", 2, 50000, 1000000)
	seedRoom(t, db, rt, "101")
	seedVoucher(t, db, "SAVE20", 20, 0, 150000, 5)

	checkIn, checkOut := stayIn(3, 24*time.Hour)
	req := createReq(user, rt, 1, checkIn, checkOut)
	req.VoucherCode = "SAVE20"
	req.RedeemedPoint = 100
	// Deposit check runs after the voucher usage was tentatively recorded;
	// failing it must unwind the whole transaction.
	req.PaidAmount = 1

	_, err := svc.Create(asStaff(), req)
	assert.ErrorIs(t, err, ErrInsufficientDeposit)

	var usages int64
	require.NoError(t, db.Model(&models.VoucherUsage{}).Count(&usages).Error)
	assert.Zero(t, usages, "voucher usage must not survive the rollback")

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, int64(500), fresh.Point, "points untouched after rollback")

	var bookings int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&bookings).Error)
	assert.Zero(t, bookings)
}

func TestListBookings(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)

	alice := seedCustomer(t, db, "alice@example.com", 0)
	bob := seedCustomer(t, db, "bob@example.com", 0)
	rt := seedRoomType(t, db, "Standard", 2, 50000, 1000000)
	room := seedRoom(t, db, rt, "101")

	checkIn, checkOut := stayIn(3, 24*time.Hour)
	for i := 0; i < 3; i++ {
		offset := time.Duration(i*30) * 24 * time.Hour
		seedBooking(t, db, alice, models.BookingReserved, checkIn.Add(offset), checkOut.Add(offset), room)
	}
	seedBooking(t, db, bob, models.BookingCancelled, checkIn.Add(90*24*time.Hour), checkOut.Add(90*24*time.Hour), room)

	bookings, totalPages, err := svc.List(BookingFilter{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, 2, totalPages)

	bookings, _, err = svc.List(BookingFilter{Page: 2, Size: 2})
	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	_, _, err = svc.List(BookingFilter{Page: 3, Size: 2})
	assert.ErrorIs(t, err, ErrPageOutOfRange)

	bookings, _, err = svc.List(BookingFilter{Page: 1, Size: 10, UserID: bob.ID})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, bob.ID, bookings[0].UserID)

	bookings, _, err = svc.List(BookingFilter{Page: 1, Size: 10, CurrentStatus: models.BookingCancelled})
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	// size is capped at 10
	bookings, _, err = svc.List(BookingFilter{Page: 1, Size: 50})
	require.NoError(t, err)
	assert.Len(t, bookings, 4)
}

func TestGetBookingByID(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)

	alice := seedCustomer(t, db, "alice@example.com", 0)
	bob := seedCustomer(t, db, "bob@example.com", 0)
	rt := seedRoomType(t, db, "Standard", 2, 50000, 1000000)
	room := seedRoom(t, db, rt, "101")
	checkIn, checkOut := stayIn(3, 24*time.Hour)
	booking := seedBooking(t, db, alice, models.BookingReserved, checkIn, checkOut, room)

	got, err := svc.GetByID(Actor{UserID: alice.ID, Role: models.RoleCustomer}, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)

	_, err = svc.GetByID(Actor{UserID: bob.ID, Role: models.RoleCustomer}, booking.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetByID(asStaff(), 4242)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateBookingRoleGating(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)

	alice := seedCustomer(t, db, "alice@example.com", 0)
	bob := seedCustomer(t, db, "bob@example.com", 0)
	rt := seedRoomType(t, db, "Standard", 2, 50000, 1000000)
	room := seedRoom(t, db, rt, "101")
	checkIn, checkOut := stayIn(3, 24*time.Hour)
	booking := seedBooking(t, db, alice, models.BookingReserved, checkIn, checkOut, room)

	cancelled := models.BookingCancelled
	updated, err := svc.Update(Actor{UserID: alice.ID, Role: models.RoleCustomer}, booking.ID,
		&UpdateBookingRequest{CurrentStatus: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, updated.CurrentStatus)

	// Customer cannot touch anything but the status.
	newGuests := 3
	_, err = svc.Update(Actor{UserID: alice.ID, Role: models.RoleCustomer}, booking.ID,
		&UpdateBookingRequest{NumberOfGuests: &newGuests})
	assert.ErrorIs(t, err, ErrForbidden)

	// Nor someone else's booking.
	_, err = svc.Update(Actor{UserID: bob.ID, Role: models.RoleCustomer}, booking.ID,
		&UpdateBookingRequest{CurrentStatus: &cancelled})
	assert.ErrorIs(t, err, ErrForbidden)

	bad := "Teleported"
	_, err = svc.Update(asStaff(), booking.ID, &UpdateBookingRequest{CurrentStatus: &bad})
	assert.ErrorIs(t, err, ErrInvalidBookingStatus)
}

func TestUpdateBookingReactivationRechecksConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)

	alice := seedCustomer(t, db, "alice@example.com", 0)
	bob := seedCustomer(t, db, "bob@example.com", 0)
	rt := seedRoomType(t, db, "Standard", 2, 50000, 1000000)
	room := seedRoom(t, db, rt, "101")

	checkIn, checkOut := stayIn(3, 24*time.Hour)
	cancelled := seedBooking(t, db, alice, models.BookingCancelled, checkIn, checkOut, room)
	blocking := seedBooking(t, db, bob, models.BookingReserved, checkIn, checkOut, room)

	// Cancelled -> Reserved would recreate an overlapping Reserved pair.
	reserved := models.BookingReserved
	_, err := svc.Update(Actor{UserID: alice.ID, Role: models.RoleCustomer}, cancelled.ID,
		&UpdateBookingRequest{CurrentStatus: &reserved})
	assert.ErrorIs(t, err, ErrInsufficientAvailability)

	var fresh models.Booking
	require.NoError(t, db.First(&fresh, cancelled.ID).Error)
	assert.Equal(t, models.BookingCancelled, fresh.CurrentStatus)

	// With the blocking booking gone the same transition goes through.
	left := models.BookingLeft
	_, err = svc.Update(asStaff(), blocking.ID, &UpdateBookingRequest{CurrentStatus: &left})
	require.NoError(t, err)
	updated, err := svc.Update(Actor{UserID: alice.ID, Role: models.RoleCustomer}, cancelled.ID,
		&UpdateBookingRequest{CurrentStatus: &reserved})
	require.NoError(t, err)
	assert.Equal(t, models.BookingReserved, updated.CurrentStatus)
}

func TestUpdateBookingRevalidatesAvailability(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)

	alice := seedCustomer(t, db, "alice@example.com", 0)
	rt := seedRoomType(t, db, "Standard", 2, 50000, 1000000)
	room1 := seedRoom(t, db, rt, "101")
	room2 := seedRoom(t, db, rt, "102")

	checkIn, checkOut := stayIn(3, 24*time.Hour)
	first := seedBooking(t, db, alice, models.BookingReserved, checkIn, checkOut, room1)

	laterIn, laterOut := stayIn(10, 24*time.Hour)
	second := seedBooking(t, db, alice, models.BookingReserved, laterIn, laterOut, room1)

	// Moving the second booking onto the first one's window must fail.
	_, err := svc.Update(asStaff(), second.ID, &UpdateBookingRequest{
		CheckInTime:  &checkIn,
		CheckOutTime: &checkOut,
	})
	assert.ErrorIs(t, err, ErrInsufficientAvailability)

	// Switching the first booking's room to a free one is fine.
	updated, err := svc.Update(asStaff(), first.ID, &UpdateBookingRequest{RoomIDs: []uint{room2.ID}})
	require.NoError(t, err)
	require.Len(t, updated.Rooms, 1)
	assert.Equal(t, room2.ID, updated.Rooms[0].RoomID)

	// Duplicate room ids are a validation error, not deduplicated.
	_, err = svc.Update(asStaff(), first.ID, &UpdateBookingRequest{RoomIDs: []uint{room2.ID, room2.ID}})
	assert.ErrorIs(t, err, ErrDuplicateRoom)

	// Swapping rooms onto a conflicting reservation fails.
	thirdIn, thirdOut := stayIn(10, 24*time.Hour)
	third := seedBooking(t, db, alice, models.BookingReserved, thirdIn, thirdOut, room2)
	_, err = svc.Update(asStaff(), third.ID, &UpdateBookingRequest{RoomIDs: []uint{room1.ID}})
	assert.ErrorIs(t, err, ErrInsufficientAvailability)

	// paidAmount refresh stamps last_paid_at.
	paid := int64(123456)
	updated, err = svc.Update(asStaff(), first.ID, &UpdateBookingRequest{PaidAmount: &paid})
	require.NoError(t, err)
	assert.Equal(t, paid, updated.PaidAmount)
	assert.NotNil(t, updated.LastPaidAt)
}
