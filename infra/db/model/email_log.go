package model

import "time"

// EmailLog is the append-only audit trail of every dispatch attempt. Rows are
// written once and never mutated; delivery failures stay visible here even
// though the rent check itself is marked notified after the attempt.
type EmailLog struct {
	ID               int64     `gorm:"primary_key" json:"id"`
	RecipientEmail   string    `gorm:"size:255;not null" json:"recipient_email"`
	Subject          string    `gorm:"size:500;not null" json:"subject"`
	EmailType        string    `gorm:"size:50;not null" json:"email_type"`
	SentSuccessfully bool      `gorm:"default:false" json:"sent_successfully"`
	ErrorMessage     string    `gorm:"type:text" json:"error_message"`
	CreatedAt        time.Time `json:"created_at"`
}

func (EmailLog) TableName() string { return "email_logs" }
