// services/apperr.go
package services

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries the HTTP status and a machine-readable reason code next to
// the human message. Controllers render it as-is; anything that is not an
// AppError is treated as an internal error.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func newAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// WithMessagef keeps the status/code but swaps in the specific numeric or
// temporal context of this occurrence.
func (e *AppError) WithMessagef(format string, args ...interface{}) *AppError {
	return &AppError{Status: e.Status, Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// Is lets errors.Is match any derived instance back to the sentinel by code.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

var (
	ErrValidation = newAppError(http.StatusBadRequest, "validation_error", "invalid request")
	ErrForbidden  = newAppError(http.StatusForbidden, "forbidden", "you are not allowed to do this action")

	ErrUserNotFound    = newAppError(http.StatusNotFound, "user_not_found", "user doesn't exist")
	ErrRoomNotFound    = newAppError(http.StatusNotFound, "room_not_found", "room doesn't exist")
	ErrTypeNotFound    = newAppError(http.StatusNotFound, "room_type_not_found", "room type doesn't exist")
	ErrBookingNotFound = newAppError(http.StatusNotFound, "booking_not_found", "booking doesn't exist")
	ErrVoucherNotFound = newAppError(http.StatusNotFound, "voucher_not_found", "voucher doesn't exist")
	ErrRatingNotFound  = newAppError(http.StatusNotFound, "rating_not_found", "rating doesn't exist")

	ErrInsufficientAvailability = newAppError(http.StatusBadRequest, "insufficient_availability", "not enough rooms available for the selected time")
	ErrOverOccupancyExceeded    = newAppError(http.StatusBadRequest, "over_occupancy_exceeded", "the number of guests is beyond the permitted excess limit")
	ErrInsufficientDeposit      = newAppError(http.StatusBadRequest, "insufficient_deposit", "the amount paid does not meet the required deposit")
	ErrInsufficientPoints       = newAppError(http.StatusBadRequest, "insufficient_points", "this user's points are not enough to fulfill the request")

	ErrInvalidVoucherCode    = newAppError(http.StatusBadRequest, "invalid_voucher_code", "invalid voucher code")
	ErrVoucherNotActive      = newAppError(http.StatusBadRequest, "voucher_not_active", "voucher has expired or isn't active yet")
	ErrMinimumSpendNotMet    = newAppError(http.StatusBadRequest, "minimum_spend_not_met", "this booking does not meet the minimum amount required to apply this voucher")
	ErrVoucherExhausted      = newAppError(http.StatusBadRequest, "voucher_exhausted", "voucher has reached its maximum number of uses")
	ErrVoucherAlreadyUsed    = newAppError(http.StatusBadRequest, "voucher_already_used", "this user has already used this voucher")
	ErrConcurrentConflict    = newAppError(http.StatusConflict, "concurrent_booking_conflict", "the booking conflicted with a concurrent request, please retry")
	ErrInvalidStayWindow     = newAppError(http.StatusBadRequest, "invalid_stay_window", "checkInTime must be before checkOutTime and be a date in the future")
	ErrPageOutOfRange        = newAppError(http.StatusBadRequest, "page_out_of_range", "excess page limit")
	ErrDuplicateRoomType     = newAppError(http.StatusBadRequest, "duplicate_room_type", "duplicate typeId found in typeRooms")
	ErrDuplicateRoom         = newAppError(http.StatusBadRequest, "duplicate_room", "duplicate room id found in roomIds")
	ErrInvalidBookingStatus  = newAppError(http.StatusBadRequest, "invalid_booking_status", "invalid booking status")
	ErrRatingTypeNotInStay   = newAppError(http.StatusBadRequest, "rating_type_not_in_booking", "this booking doesn't include the given room type")
	ErrRatingAlreadyExists   = newAppError(http.StatusBadRequest, "rating_already_exists", "this room type in this booking has been rated")
	ErrEmailAlreadyRegistered = newAppError(http.StatusBadRequest, "email_already_registered", "email is already registered")
	ErrInvalidCredentials     = newAppError(http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
)
