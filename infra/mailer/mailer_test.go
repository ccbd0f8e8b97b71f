package mailer

import (
	"errors"
	"strings"
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" //sqlite
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renttrack/renttrack/consts"
	"github.com/renttrack/renttrack/infra/db/dao"
	"github.com/renttrack/renttrack/infra/db/model"
)

type stubSender struct {
	err       error
	recipient string
	subject   string
	body      string
}

func (s *stubSender) Send(recipient, subject, htmlBody string) error {
	s.recipient = recipient
	s.subject = subject
	s.body = htmlBody
	return s.err
}

func newTestMailer(t *testing.T, sendErr error) (*Mailer, *stubSender, *gorm.DB) {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.AutoMigrate(&model.EmailLog{}).Error)

	sender := &stubSender{err: sendErr}
	return NewWithSender(sender, dao.NewDaoMethod(db)), sender, db
}

func loadLogs(t *testing.T, db *gorm.DB) []model.EmailLog {
	var logs []model.EmailLog
	require.NoError(t, db.Find(&logs).Error)
	return logs
}

func TestSendRentReceivedNotification(t *testing.T) {
	m, sender, db := newTestMailer(t, nil)

	ok := m.SendRentReceivedNotification("landlord@example.com", "12 Main St", "Alex Tenant", decimal.RequireFromString("800"), "2025-06-01")
	assert.True(t, ok)

	assert.Equal(t, "landlord@example.com", sender.recipient)
	assert.Equal(t, "Rent Received - 12 Main St", sender.subject)
	assert.Contains(t, sender.body, "$800.00")
	assert.Contains(t, sender.body, "Alex Tenant")
	assert.Contains(t, sender.body, "2025-06-01")

	logs := loadLogs(t, db)
	require.Len(t, logs, 1)
	assert.Equal(t, consts.EmailTypeRentReceived, logs[0].EmailType)
	assert.True(t, logs[0].SentSuccessfully)
	assert.Empty(t, logs[0].ErrorMessage)
}

func TestSendRentAmountMismatchNotification_CarriesBothAmounts(t *testing.T) {
	m, sender, _ := newTestMailer(t, nil)

	ok := m.SendRentAmountMismatchNotification("landlord@example.com", "12 Main St", "Alex Tenant",
		decimal.RequireFromString("800"), decimal.RequireFromString("750"), "2025-06-01")
	assert.True(t, ok)
	assert.Contains(t, sender.body, "$800.00")
	assert.Contains(t, sender.body, "$750.00")
}

func TestSendTenantReminderEmail_SignedByLandlord(t *testing.T) {
	m, sender, db := newTestMailer(t, nil)

	ok := m.SendTenantReminderEmail("tenant@example.com", "Alex Tenant", "12 Main St",
		decimal.RequireFromString("800"), "Jordan Smith")
	assert.True(t, ok)
	assert.Equal(t, "tenant@example.com", sender.recipient)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(sender.subject), "12 Main St"))
	assert.Contains(t, sender.body, "Jordan Smith")

	logs := loadLogs(t, db)
	require.Len(t, logs, 1)
	assert.Equal(t, consts.EmailTypeTenantReminder, logs[0].EmailType)
}

func TestSend_FailureIsLoggedNotPropagated(t *testing.T) {
	m, _, db := newTestMailer(t, errors.New("smtp: connection refused"))

	ok := m.SendRentMissedNotification("landlord@example.com", "12 Main St", "Alex Tenant",
		decimal.RequireFromString("800"), "2025-06-01")
	assert.False(t, ok)

	logs := loadLogs(t, db)
	require.Len(t, logs, 1)
	assert.Equal(t, consts.EmailTypeRentMissed, logs[0].EmailType)
	assert.False(t, logs[0].SentSuccessfully)
	assert.Contains(t, logs[0].ErrorMessage, "connection refused")
}

func TestDevModeRecordsAsSentWithoutDispatch(t *testing.T) {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.AutoMigrate(&model.EmailLog{}).Error)

	m := New(Config{DevMode: true}, dao.NewDaoMethod(db))

	ok := m.SendRentMissedNotification("landlord@example.com", "12 Main St", "Alex Tenant",
		decimal.RequireFromString("800"), "2025-06-01")
	assert.True(t, ok)

	logs := loadLogs(t, db)
	require.Len(t, logs, 1)
	assert.True(t, logs[0].SentSuccessfully)
}
