package model

import (
	"time"

	"jumpy/shared/model"
)

const (
	TableName  = "inquiries"
	EntityName = "inquiry"

	FieldID             = "id"
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldCity           = "city"
	FieldStatus         = "status"
	FieldRequestedJumpy = "requested_jumpy"
)

const (
	DefaultSortBy  = "created_at"
	DefaultSortDir = "DESC"
)

const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusBooked    = "booked"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Statuses is the closed set an inquiry can move through.
var Statuses = []string{StatusNew, StatusContacted, StatusBooked, StatusCompleted, StatusCancelled}

func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}

	return false
}

type Inquiry struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	Phone          string    `db:"phone"`
	Email          string    `db:"email"`
	Address        string    `db:"address"`
	Address2       string    `db:"address2"`
	City           string    `db:"city"`
	State          string    `db:"state"`
	Zip            string    `db:"zip"`
	RequestedDate  time.Time `db:"requested_date"`
	RequestedTime  string    `db:"requested_time"`
	RequestedJumpy string    `db:"requested_jumpy"`
	ReferralSource string    `db:"referral_source"`
	EventDetails   string    `db:"event_details"`
	Status         string    `db:"status"`
	Notes          string    `db:"notes"`
	model.Metadata
}

type StatusCount struct {
	Status string `db:"status"`
	Total  int    `db:"total"`
}
