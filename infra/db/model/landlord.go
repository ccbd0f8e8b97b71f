package model

import "time"

type Landlord struct {
	ID        int64     `gorm:"primary_key" json:"id"`
	Email     string    `gorm:"size:255;unique_index;not null" json:"email"`
	FirstName string    `gorm:"size:100" json:"first_name"`
	LastName  string    `gorm:"size:100" json:"last_name"`
	CreatedAt time.Time `json:"created_at"`

	Credential *BankCredential   `gorm:"foreignkey:LandlordID" json:"credential,omitempty"`
	Agreements []RentalAgreement `gorm:"foreignkey:LandlordID" json:"agreements,omitempty"`
}

func (Landlord) TableName() string { return "landlords" }

// FullName is used as the signature on tenant reminder emails.
func (l Landlord) FullName() string {
	return l.FirstName + " " + l.LastName
}

// BankCredential authorizes transaction fetches against the aggregator for
// one landlord. At most one per landlord. Token values must never be logged.
type BankCredential struct {
	ID         int64     `gorm:"primary_key" json:"id"`
	LandlordID int64     `gorm:"not null;unique_index" json:"landlord_id"`
	AppToken   string    `gorm:"type:text;not null" json:"-"`
	UserToken  string    `gorm:"type:text;not null" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (BankCredential) TableName() string { return "bank_credentials" }
