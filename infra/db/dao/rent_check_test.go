package dao

import (
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" //sqlite
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renttrack/renttrack/infra/db/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.AutoMigrate(&model.RentCheck{}, &model.EmailLog{}).Error)
	return db
}

func testDate() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func TestCreateRentCheck_DuplicateReturnsErrCheckExists(t *testing.T) {
	db := openTestDB(t)
	d := NewDaoMethod(db)

	first := &model.RentCheck{AgreementID: 7, CheckDate: testDate(), RentDueDate: testDate()}
	require.NoError(t, d.CreateRentCheck(first))

	dup := &model.RentCheck{AgreementID: 7, CheckDate: testDate(), RentDueDate: testDate(), PaymentFound: true}
	err := d.CreateRentCheck(dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCheckExists)

	// Same agreement on another date is fine.
	other := &model.RentCheck{AgreementID: 7, CheckDate: testDate().AddDate(0, 1, 0), RentDueDate: testDate().AddDate(0, 1, 0)}
	require.NoError(t, d.CreateRentCheck(other))
}

func TestGetRentCheckByAgreementAndDate_NotFoundIsNil(t *testing.T) {
	db := openTestDB(t)
	d := NewDaoMethod(db)

	check, err := d.GetRentCheckByAgreementAndDate(42, testDate())
	require.NoError(t, err)
	assert.Nil(t, check)
}

func TestGetRentCheckByAgreementAndDate_IgnoresTimeOfDay(t *testing.T) {
	db := openTestDB(t)
	d := NewDaoMethod(db)

	require.NoError(t, d.CreateRentCheck(&model.RentCheck{
		AgreementID: 5,
		CheckDate:   testDate(),
		RentDueDate: testDate(),
	}))

	// Lookup with a wall-clock timestamp on the same day must find the row.
	noon := testDate().Add(12 * time.Hour)
	check, err := d.GetRentCheckByAgreementAndDate(5, noon)
	require.NoError(t, err)
	require.NotNil(t, check)
	assert.Equal(t, int64(5), check.AgreementID)
}

func TestUpdateRentCheckNotificationFlags(t *testing.T) {
	db := openTestDB(t)
	d := NewDaoMethod(db)

	check := &model.RentCheck{AgreementID: 9, CheckDate: testDate(), RentDueDate: testDate()}
	require.NoError(t, d.CreateRentCheck(check))

	check.NotificationSent = true
	check.TenantNotificationSent = true
	require.NoError(t, d.UpdateRentCheckNotificationFlags(check))

	stored, err := d.GetRentCheckByAgreementAndDate(9, testDate())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.NotificationSent)
	assert.True(t, stored.TenantNotificationSent)
}
