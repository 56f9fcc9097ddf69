// services/voucher_service.go
package services

import (
	"errors"
	"time"

	"hotel-booking-backend/models"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoucherService struct {
	DB *gorm.DB
}

func NewVoucherService(db *gorm.DB) *VoucherService {
	return &VoucherService{DB: db}
}

// checkVoucher runs every rule without mutating anything.
func checkVoucher(v *models.Voucher, usedCount int64, userID uint, basePrice int64, now time.Time, alreadyUsed bool) error {
	if now.Before(v.StartDate) || now.After(v.EndDate) {
		return ErrVoucherNotActive.WithMessagef(
			"voucher has expired or isn't active yet: valid date range is %s to %s",
			v.StartDate.UTC().Format(time.RFC3339), v.EndDate.UTC().Format(time.RFC3339))
	}
	if basePrice < v.MinSpend {
		return ErrMinimumSpendNotMet.WithMessagef(
			"this booking does not meet the minimum amount required to apply this voucher: current base price %d, required minimum %d",
			basePrice, v.MinSpend)
	}
	if usedCount >= int64(v.LimitUse) {
		return ErrVoucherExhausted
	}
	if alreadyUsed {
		return ErrVoucherAlreadyUsed.WithMessagef(
			"user with id %d has already used voucher with code %s", userID, v.Code)
	}
	return nil
}

// Validate is the read-only check: it never records usage.
func (s *VoucherService) Validate(tx *gorm.DB, code string, userID uint, basePrice int64, now time.Time) (*models.Voucher, error) {
	var v models.Voucher
	if err := tx.Where("code = ?", code).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidVoucherCode
		}
		return nil, err
	}

	var usedCount int64
	if err := tx.Model(&models.VoucherUsage{}).Where("voucher_id = ?", v.ID).Count(&usedCount).Error; err != nil {
		return nil, err
	}
	var mine int64
	if err := tx.Model(&models.VoucherUsage{}).
		Where("voucher_id = ? AND user_id = ?", v.ID, userID).Count(&mine).Error; err != nil {
		return nil, err
	}

	if err := checkVoucher(&v, usedCount, userID, basePrice, now, mine > 0); err != nil {
		return nil, err
	}
	return &v, nil
}

// Redeem validates under a row lock and appends the usage inside the caller's
// transaction, so the booking either commits with the usage or neither lands.
// The unique (voucher_id, user_id) index backstops the one-use-per-user rule
// when two redemptions race past validation.
func (s *VoucherService) Redeem(tx *gorm.DB, code string, userID uint, basePrice int64, now time.Time) (*models.Voucher, error) {
	q := tx.Where("code = ?", code)
	if tx.Dialector.Name() == "mysql" {
		// sqlite (tests) has no SELECT ... FOR UPDATE
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var v models.Voucher
	if err := q.First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidVoucherCode
		}
		return nil, err
	}

	var usedCount int64
	if err := tx.Model(&models.VoucherUsage{}).Where("voucher_id = ?", v.ID).Count(&usedCount).Error; err != nil {
		return nil, err
	}
	var mine int64
	if err := tx.Model(&models.VoucherUsage{}).
		Where("voucher_id = ? AND user_id = ?", v.ID, userID).Count(&mine).Error; err != nil {
		return nil, err
	}
	if err := checkVoucher(&v, usedCount, userID, basePrice, now, mine > 0); err != nil {
		return nil, err
	}

	usage := models.VoucherUsage{VoucherID: v.ID, UserID: userID}
	if err := tx.Create(&usage).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrVoucherAlreadyUsed.WithMessagef(
				"user with id %d has already used voucher with code %s", userID, v.Code)
		}
		return nil, err
	}
	return &v, nil
}

// isDuplicateEntry recognizes a unique-index violation on both the production
// driver (MySQL 1062) and the sqlite driver used in tests.
func isDuplicateEntry(err error) bool {
	var me *mysqldrv.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
