package dao

import (
	"errors"
	"time"

	"github.com/renttrack/renttrack/infra/db/model"

	"github.com/jinzhu/gorm"
)

// ErrCheckExists reports that a rent check for the same (agreement, date) pair
// was inserted first. Callers treat it as "already checked", not a failure.
var ErrCheckExists = errors.New("rent check already exists for agreement and date")

type DaoMethod interface {
	GetLandlordsWithCredential() ([]model.Landlord, error)
	GetLandlordByID(landlordID int64) (model.Landlord, error)
	GetAgreementsByLandlordID(landlordID int64) ([]model.RentalAgreement, error)
	GetRentCheckByAgreementAndDate(agreementID int64, checkDate time.Time) (*model.RentCheck, error)
	GetRentChecksByAgreementID(agreementID int64) ([]model.RentCheck, error)
	CreateRentCheck(check *model.RentCheck) error
	UpdateRentCheckNotificationFlags(check *model.RentCheck) error
	CreateEmailLog(entry *model.EmailLog) error
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
