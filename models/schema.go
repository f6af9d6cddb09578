package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a built-in administrator account seeded at startup.
type Admin struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"` // bcrypt hash
}

// User is a portal account managed by an admin.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash
	CreatedAt time.Time `json:"created_at"`
}

// Dealer represents a cement dealer.
// Dob and Anniversary are nullable date columns; an absent date is stored
// as NULL, never as an empty string.
type Dealer struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Address       string    `json:"address"`
	Phone         string    `gorm:"not null;index" json:"phone"`
	Email         string    `json:"email"`
	District      string    `json:"district"`
	SalesPromoter string    `json:"sales_promoter"`
	Dob           *string   `gorm:"type:date" json:"dob"`
	Anniversary   *string   `gorm:"type:date" json:"anniversary"`
	Meta          string    `json:"meta"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubDealer represents a sub-dealer, optionally attached to a dealer.
type SubDealer struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	DealerID  *uuid.UUID `gorm:"type:uuid;index" json:"dealer_id"`
	Area      string     `json:"area"`
	District  string     `json:"district"`
	Potential float64    `json:"potential"`
	Phone     string     `gorm:"not null;index" json:"phone"`
	Email     string     `json:"email"`
	Birthday  *string    `gorm:"type:date" json:"birthday"`
	Meta      string     `json:"meta"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName keeps the table name used by the original schema
// (gorm would otherwise pluralize to "sub_dealers").
func (SubDealer) TableName() string {
	return "subdealers"
}

// Employee represents a field employee.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Area      string    `json:"area"`
	District  string    `json:"district"`
	Phone     string    `gorm:"not null;index" json:"phone"`
	Email     string    `json:"email"`
	Birthday  *string   `gorm:"type:date" json:"birthday"`
	Meta      string    `json:"meta"`
	CreatedAt time.Time `json:"created_at"`
}

// Promoter represents a sales promoter.
type Promoter struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Birthday  *string   `gorm:"type:date" json:"birthday"`
	Meta      string    `json:"meta"`
	CreatedAt time.Time `json:"created_at"`
}
