package domain

import (
	"context"
	"time"
)

type ContactMethod string

const (
	ContactEmail ContactMethod = "Email"
	ContactPhone ContactMethod = "Phone"
	ContactMail  ContactMethod = "Mail"
)

type Customer struct {
	ID               int64         `gorm:"primaryKey;autoIncrement"`
	Name             string        `gorm:"size:140;not null"`
	Birthday         string        `gorm:"size:10;not null"` // ISO date string YYYY-MM-DD
	Email            string        `gorm:"size:140;not null"`
	Phone            string        `gorm:"size:60;not null"`
	Address          string        `gorm:"size:255;not null"`
	PreferredContact ContactMethod `gorm:"size:10;not null;check:chk_customers_preferred_contact,preferred_contact IN ('Email','Phone','Mail')"`
	CreatedAt        time.Time
}

func (Customer) TableName() string { return "customers" }

// FormInput carries the six raw field values exactly as the caller
// collected them, before any validation.
type FormInput struct {
	Name             string
	Birthday         string
	Email            string
	Phone            string
	Address          string
	PreferredContact string
}

type CustomerRepo interface {
	Init(ctx context.Context) error
	Insert(ctx context.Context, c *Customer) (int64, error)
}
