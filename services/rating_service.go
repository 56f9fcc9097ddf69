// services/rating_service.go
package services

import (
	"errors"

	"hotel-booking-backend/models"

	"gorm.io/gorm"
)

type RatingService struct {
	DB *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{DB: db}
}

type CreateRatingRequest struct {
	BookingID  uint   `json:"bookingId" binding:"required"`
	RoomTypeID uint   `json:"roomTypeId" binding:"required"`
	Score      int    `json:"score" binding:"required"`
	Feedback   string `json:"feedback"`
}

// Create allows the booking's owner (or staff/admin) to rate a room type that
// was actually part of the stay, once per booking.
func (s *RatingService) Create(actor Actor, req *CreateRatingRequest) (*models.Rating, error) {
	if req.Score < 1 || req.Score > 5 {
		return nil, ErrValidation.WithMessagef("score must be between 1 and 5")
	}

	var booking models.Booking
	if err := s.DB.Preload("Rooms.Room").First(&booking, req.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound.WithMessagef("booking with id %d doesn't exist", req.BookingID)
		}
		return nil, err
	}
	if !actor.CanActOn(booking.UserID) {
		return nil, ErrForbidden
	}

	found := false
	for _, br := range booking.Rooms {
		if br.Room.RoomTypeID == req.RoomTypeID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrRatingTypeNotInStay.WithMessagef(
			"booking with id %d doesn't have room type %d", req.BookingID, req.RoomTypeID)
	}

	rating := models.Rating{
		BookingID:  req.BookingID,
		RoomTypeID: req.RoomTypeID,
		Score:      req.Score,
		Feedback:   req.Feedback,
	}
	if err := s.DB.Create(&rating).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrRatingAlreadyExists
		}
		return nil, err
	}
	return &rating, nil
}

type RatingFilter struct {
	Score      int
	RoomTypeID uint
	BookingID  uint
}

func (s *RatingService) List(f RatingFilter) ([]models.Rating, error) {
	q := s.DB.Model(&models.Rating{})
	if f.Score != 0 {
		q = q.Where("score = ?", f.Score)
	}
	if f.RoomTypeID != 0 {
		q = q.Where("room_type_id = ?", f.RoomTypeID)
	}
	if f.BookingID != 0 {
		q = q.Where("booking_id = ?", f.BookingID)
	}
	var ratings []models.Rating
	if err := q.Preload("Booking").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (s *RatingService) GetByID(id uint) (*models.Rating, error) {
	var rating models.Rating
	if err := s.DB.Preload("Booking").First(&rating, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound.WithMessagef("rating with id %d doesn't exist", id)
		}
		return nil, err
	}
	return &rating, nil
}

// Update lets the owner adjust score/feedback.
func (s *RatingService) Update(actor Actor, id uint, score *int, feedback *string) (*models.Rating, error) {
	rating, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !actor.CanActOn(rating.Booking.UserID) {
		return nil, ErrForbidden
	}
	if score != nil {
		if *score < 1 || *score > 5 {
			return nil, ErrValidation.WithMessagef("score must be between 1 and 5")
		}
		rating.Score = *score
	}
	if feedback != nil {
		rating.Feedback = *feedback
	}
	if err := s.DB.Save(rating).Error; err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *RatingService) Delete(actor Actor, id uint) error {
	rating, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !actor.CanActOn(rating.Booking.UserID) {
		return ErrForbidden
	}
	return s.DB.Delete(&models.Rating{}, id).Error
}
