// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"hotel-booking-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxPageSize = 10

// Actor is the authenticated caller, as the auth middleware resolved it.
type Actor struct {
	UserID uint
	Role   string
}

// CanActOn: owner, or elevated role.
func (a Actor) CanActOn(resourceOwnerID uint) bool {
	return a.UserID == resourceOwnerID || models.IsElevatedRole(a.Role)
}

type TypeRoomRequest struct {
	TypeID        uint `json:"typeId" binding:"required"`
	NumberOfRooms int  `json:"numberOfRooms" binding:"required"`
}

type CreateBookingRequest struct {
	UserID         uint              `json:"userId" binding:"required"`
	TypeRooms      []TypeRoomRequest `json:"typeRooms" binding:"required"`
	CheckInTime    time.Time         `json:"checkInTime" binding:"required"`
	CheckOutTime   time.Time         `json:"checkOutTime" binding:"required"`
	NumberOfGuests int               `json:"numberOfGuests" binding:"required"`
	PaidAmount     int64             `json:"paidAmount"`
	RedeemedPoint  int64             `json:"redeemedPoint"`
	VoucherCode    string            `json:"voucherCode"`
	PaymentMethod  string            `json:"paymentMethod" binding:"required"`
}

type UpdateBookingRequest struct {
	UserID         *uint      `json:"userId"`
	RoomIDs        []uint     `json:"roomIds"`
	CheckInTime    *time.Time `json:"checkInTime"`
	CheckOutTime   *time.Time `json:"checkOutTime"`
	NumberOfGuests *int       `json:"numberOfGuests"`
	PaidAmount     *int64     `json:"paidAmount"`
	PaymentMethod  *string    `json:"paymentMethod"`
	CurrentStatus  *string    `json:"currentStatus"`
}

type BookingFilter struct {
	UserID        uint
	RoomID        uint
	CurrentStatus string
	CheckInTime   *time.Time
	CheckOutTime  *time.Time
	Page          int
	Size          int
}

// Mailer sends the post-commit confirmation. Nil disables delivery (tests).
type Mailer interface {
	SendBookingConfirmation(booking *models.Booking) error
}

// BookingService orchestrates availability, pricing, voucher redemption and
// point debit into one atomic commit.
type BookingService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
	Vouchers     *VoucherService
	Mailer       Mailer
}

func NewBookingService(db *gorm.DB, availability *AvailabilityService, vouchers *VoucherService) *BookingService {
	return &BookingService{DB: db, Availability: availability, Vouchers: vouchers}
}

func validateCreateRequest(req *CreateBookingRequest) error {
	if len(req.TypeRooms) == 0 {
		return ErrValidation.WithMessagef("typeRooms must not be empty")
	}
	seen := make(map[uint]bool, len(req.TypeRooms))
	for _, tr := range req.TypeRooms {
		if tr.NumberOfRooms <= 0 {
			return ErrValidation.WithMessagef("numberOfRooms must be greater than 0 for typeId %d", tr.TypeID)
		}
		if seen[tr.TypeID] {
			return ErrDuplicateRoomType
		}
		seen[tr.TypeID] = true
	}
	if req.NumberOfGuests <= 0 {
		return ErrValidation.WithMessagef("numberOfGuests must be a positive integer")
	}
	if req.RedeemedPoint < 0 {
		return ErrValidation.WithMessagef("redeemedPoint must not be negative")
	}
	if req.PaidAmount < 0 {
		return ErrValidation.WithMessagef("paidAmount must not be negative")
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return ErrValidation.WithMessagef("paymentMethod is required")
	}
	return nil
}

// Create runs the whole booking decision and commits booking insert, voucher
// usage and point debit as one unit. Any failure rolls all of them back.
func (s *BookingService) Create(actor Actor, req *CreateBookingRequest) (*models.Booking, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}
	if !actor.CanActOn(req.UserID) {
		return nil, ErrForbidden
	}

	now := time.Now().UTC()
	checkIn := req.CheckInTime.UTC()
	checkOut := req.CheckOutTime.UTC()
	if err := ValidateStayWindow(checkIn, checkOut, now); err != nil {
		return nil, err
	}

	// Fail fast before the transaction opens: target user and point balance.
	var user models.User
	if err := s.DB.
		Where("id = ? AND role IN ?", req.UserID, []string{models.RoleCustomer, models.RoleOnSiteCustomer}).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound.WithMessagef("user with id %d doesn't exist", req.UserID)
		}
		return nil, err
	}
	if req.RedeemedPoint > 0 && user.Point < req.RedeemedPoint {
		return nil, ErrInsufficientPoints
	}

	var bookingID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		types, err := s.loadTypes(tx, req.TypeRooms)
		if err != nil {
			return err
		}

		rooms, err := s.selectRooms(tx, req.TypeRooms, checkIn, checkOut)
		if err != nil {
			return err
		}

		// Occupancy limit and over-occupancy bracket.
		limit := 0
		var basePrice int64
		for _, tr := range req.TypeRooms {
			rt := types[tr.TypeID]
			limit += rt.MaxGuests * tr.NumberOfRooms
			basePrice += BasePriceFor(rt, checkIn, checkOut) * int64(tr.NumberOfRooms)
		}
		excess := req.NumberOfGuests - limit

		var charges []models.OverOccupancyCharge
		if excess > 0 {
			if err := tx.Find(&charges).Error; err != nil {
				return err
			}
		}
		extraCharge, err := ResolveExtraCharge(charges, excess)
		if err != nil {
			return err
		}

		var voucher *models.Voucher
		if req.VoucherCode != "" {
			voucher, err = s.Vouchers.Redeem(tx, req.VoucherCode, req.UserID, basePrice, now)
			if err != nil {
				return err
			}
		}

		quote := BuildQuote(basePrice, extraCharge, voucher, req.RedeemedPoint)
		if err := CheckDeposit(quote.TotalAmount, req.PaidAmount); err != nil {
			return err
		}

		if req.RedeemedPoint > 0 {
			// Conditional debit: a concurrent spend between the fail-fast read
			// and here leaves zero affected rows.
			res := tx.Model(&models.User{}).
				Where("id = ? AND point >= ?", req.UserID, req.RedeemedPoint).
				Update("point", gorm.Expr("point - ?", req.RedeemedPoint))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientPoints
			}
		}

		paidAt := now
		booking := models.Booking{
			UserID:         req.UserID,
			ReferenceCode:  uuid.NewString(),
			CheckInTime:    checkIn,
			CheckOutTime:   checkOut,
			NumberOfGuests: req.NumberOfGuests,
			TotalAmount:    quote.TotalAmount,
			PaidAmount:     req.PaidAmount,
			LastPaidAt:     &paidAt,
			PaymentMethod:  req.PaymentMethod,
			CurrentStatus:  models.BookingReserved,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		for _, room := range rooms {
			br := models.BookingRoom{BookingID: booking.ID, RoomID: room.ID}
			if err := tx.Create(&br).Error; err != nil {
				return fmt.Errorf("failed to create booking_room for room %d: %w", room.ID, err)
			}
		}

		bookingID = booking.ID
		return nil
	})
	if txErr != nil {
		return nil, mapTxError(txErr)
	}

	created, err := s.GetByID(Actor{UserID: req.UserID, Role: models.RoleAdmin}, bookingID)
	if err != nil {
		return nil, err
	}

	if s.Mailer != nil {
		go func(b models.Booking) {
			if err := s.Mailer.SendBookingConfirmation(&b); err != nil {
				log.Printf("warning: booking confirmation email failed for %s: %v", b.ReferenceCode, err)
			}
		}(*created)
	}
	return created, nil
}

// loadTypes fetches every requested room type and fails when one is missing.
func (s *BookingService) loadTypes(tx *gorm.DB, reqs []TypeRoomRequest) (map[uint]*models.RoomType, error) {
	ids := make([]uint, 0, len(reqs))
	for _, tr := range reqs {
		ids = append(ids, tr.TypeID)
	}
	var types []models.RoomType
	if err := tx.Where("id IN ?", ids).Find(&types).Error; err != nil {
		return nil, err
	}
	if len(types) != len(ids) {
		return nil, ErrTypeNotFound.WithMessagef("one or more room type ids provided do not exist")
	}
	byID := make(map[uint]*models.RoomType, len(types))
	for i := range types {
		byID[types[i].ID] = &types[i]
	}
	return byID, nil
}

// selectRooms locks the candidate room rows, re-checks conflicts inside the
// same transaction and picks exactly the requested count per type, ascending
// by id. Two concurrent requests for overlapping windows serialize on the
// locked rows, so both can never observe the same room as free.
func (s *BookingService) selectRooms(tx *gorm.DB, reqs []TypeRoomRequest, checkIn, checkOut time.Time) ([]models.Room, error) {
	if tx.Dialector.Name() == "mysql" {
		// sqlite (tests) has no SELECT ... FOR UPDATE
		typeIDs := make([]uint, 0, len(reqs))
		for _, tr := range reqs {
			typeIDs = append(typeIDs, tr.TypeID)
		}
		var locked []models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_type_id IN ? AND active = ?", typeIDs, true).
			Find(&locked).Error; err != nil {
			return nil, err
		}
	}

	var selected []models.Room
	for _, tr := range reqs {
		available, err := s.Availability.FindAvailableRooms(tx, tr.TypeID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if len(available) < tr.NumberOfRooms {
			return nil, ErrInsufficientAvailability.WithMessagef(
				"there aren't enough rooms for typeId %d: requested %d, available %d",
				tr.TypeID, tr.NumberOfRooms, len(available))
		}
		selected = append(selected, available[:tr.NumberOfRooms]...)
	}
	return selected, nil
}

// GetByID returns one booking with its rooms and user, 404 when absent.
func (s *BookingService) GetByID(actor Actor, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.
		Preload("User").
		Preload("Rooms").
		Preload("Rooms.Room").
		Preload("Rooms.Room.RoomType").
		First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound.WithMessagef("booking with id %d doesn't exist", id)
		}
		return nil, err
	}
	if !actor.CanActOn(booking.UserID) {
		return nil, ErrForbidden
	}
	if booking.Rooms == nil {
		booking.Rooms = []models.BookingRoom{}
	}
	return &booking, nil
}

// List returns one page of bookings plus the total page count.
func (s *BookingService) List(f BookingFilter) ([]models.Booking, int, error) {
	if f.Page < 1 || f.Size < 1 {
		return nil, 0, ErrValidation.WithMessagef("page and size must be at least 1")
	}
	if f.Size > maxPageSize {
		f.Size = maxPageSize
	}

	q := s.DB.Model(&models.Booking{})
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.CurrentStatus != "" {
		q = q.Where("current_status = ?", f.CurrentStatus)
	}
	if f.RoomID != 0 {
		q = q.Where("id IN (?)", s.DB.Model(&models.BookingRoom{}).
			Select("booking_id").Where("room_id = ? AND deleted_at IS NULL", f.RoomID))
	}
	if f.CheckInTime != nil && f.CheckOutTime != nil {
		q = q.Where("check_in_time >= ? AND check_out_time <= ?", f.CheckInTime, f.CheckOutTime)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	totalPages := int(math.Ceil(float64(total) / float64(f.Size)))
	if f.Page > totalPages && totalPages != 0 {
		return nil, 0, ErrPageOutOfRange
	}

	var bookings []models.Booking
	if err := q.
		Preload("User").
		Preload("Rooms").
		Preload("Rooms.Room").
		Limit(f.Size).
		Offset(f.Size * (f.Page - 1)).
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, totalPages, nil
}

// Update applies a partial update. A plain customer may only transition
// currentStatus on their own booking; staff/admin may change any field. Any
// change of dates or rooms, and any transition back into Reserved, re-runs the
// conflict check against all other Reserved bookings before the write is
// accepted.
func (s *BookingService) Update(actor Actor, id uint, req *UpdateBookingRequest) (*models.Booking, error) {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Preload("Rooms").First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound.WithMessagef("booking with id %d doesn't exist", id)
			}
			return err
		}

		updates := map[string]interface{}{}

		if models.IsCustomerRole(actor.Role) {
			if booking.UserID != actor.UserID {
				return ErrForbidden
			}
			if req.UserID != nil || req.RoomIDs != nil || req.CheckInTime != nil ||
				req.CheckOutTime != nil || req.NumberOfGuests != nil ||
				req.PaidAmount != nil || req.PaymentMethod != nil {
				return ErrForbidden
			}
			if req.CurrentStatus == nil {
				return ErrValidation.WithMessagef("currentStatus is required")
			}
		} else if !models.IsElevatedRole(actor.Role) {
			return ErrForbidden
		}

		reactivating := false
		if req.CurrentStatus != nil {
			if !models.IsBookingStatus(*req.CurrentStatus) {
				return ErrInvalidBookingStatus
			}
			reactivating = *req.CurrentStatus == models.BookingReserved &&
				booking.CurrentStatus != models.BookingReserved
			updates["current_status"] = *req.CurrentStatus
		}

		if req.UserID != nil {
			var u models.User
			if err := tx.
				Where("id = ? AND role IN ?", *req.UserID, []string{models.RoleCustomer, models.RoleOnSiteCustomer}).
				First(&u).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUserNotFound.WithMessagef("user with id %d doesn't exist", *req.UserID)
				}
				return err
			}
			updates["user_id"] = *req.UserID
		}

		roomIDs := make([]uint, 0, len(booking.Rooms))
		for _, br := range booking.Rooms {
			roomIDs = append(roomIDs, br.RoomID)
		}
		roomsChanged := false
		if req.RoomIDs != nil {
			if len(req.RoomIDs) == 0 {
				return ErrValidation.WithMessagef("roomIds must not be empty")
			}
			seen := make(map[uint]bool, len(req.RoomIDs))
			for _, rid := range req.RoomIDs {
				if seen[rid] {
					return ErrDuplicateRoom
				}
				seen[rid] = true
			}
			var count int64
			if err := tx.Model(&models.Room{}).Where("id IN ?", req.RoomIDs).Count(&count).Error; err != nil {
				return err
			}
			if count != int64(len(req.RoomIDs)) {
				return ErrRoomNotFound.WithMessagef("one or more room ids do not exist")
			}
			roomIDs = req.RoomIDs
			roomsChanged = true
		}

		checkIn := booking.CheckInTime
		checkOut := booking.CheckOutTime
		datesChanged := false
		if req.CheckInTime != nil {
			checkIn = req.CheckInTime.UTC()
			datesChanged = true
		}
		if req.CheckOutTime != nil {
			checkOut = req.CheckOutTime.UTC()
			datesChanged = true
		}

		// Moving back into Reserved re-enters the conflict domain, so it is
		// re-checked like a date or room change.
		if datesChanged || roomsChanged || reactivating {
			if datesChanged {
				if err := ValidateStayWindow(checkIn, checkOut, time.Now().UTC()); err != nil {
					return err
				}
			}
			conflicts, err := s.Availability.FindConflicts(tx, roomIDs, checkIn, checkOut, booking.ID)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return ErrInsufficientAvailability.WithMessagef(
					"one or more rooms requested are unavailable for the selected booking time")
			}
		}

		if datesChanged {
			updates["check_in_time"] = checkIn
			updates["check_out_time"] = checkOut
		}
		if roomsChanged {
			// hard delete: a soft-deleted row would still hold the
			// (booking_id, room_id) unique index
			if err := tx.Unscoped().Where("booking_id = ?", booking.ID).Delete(&models.BookingRoom{}).Error; err != nil {
				return err
			}
			for _, rid := range roomIDs {
				br := models.BookingRoom{BookingID: booking.ID, RoomID: rid}
				if err := tx.Create(&br).Error; err != nil {
					return err
				}
			}
		}

		if req.NumberOfGuests != nil {
			if *req.NumberOfGuests <= 0 {
				return ErrValidation.WithMessagef("numberOfGuests must be a positive integer")
			}
			updates["number_of_guests"] = *req.NumberOfGuests
		}
		if req.PaidAmount != nil {
			updates["paid_amount"] = *req.PaidAmount
			updates["last_paid_at"] = time.Now().UTC()
		}
		if req.PaymentMethod != nil {
			updates["payment_method"] = *req.PaymentMethod
		}

		if len(updates) > 0 {
			if err := tx.Model(&booking).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, mapTxError(txErr)
	}
	return s.GetByID(Actor{UserID: actor.UserID, Role: models.RoleAdmin}, id)
}

// mapTxError surfaces MySQL aborts caused by concurrent transactions as a
// retryable conflict instead of a 500. 1213 = deadlock, 1205 = lock wait
// timeout.
func mapTxError(err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	msg := err.Error()
	if strings.Contains(msg, "Error 1213") || strings.Contains(msg, "Error 1205") {
		return ErrConcurrentConflict
	}
	return err
}
