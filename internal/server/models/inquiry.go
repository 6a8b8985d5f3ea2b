package models

import "time"

// InquiryStatus is the lifecycle state of a live inquiry.
type InquiryStatus string

const (
	StatusPending  InquiryStatus = "pending"
	StatusAccepted InquiryStatus = "accepted"
	StatusDeclined InquiryStatus = "declined"
)

// Valid reports whether s is one of the known statuses.
func (s InquiryStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// Inquiry is a rental request from a requester to the owner of an article
// over a date range. The InquiryID is supplied by the caller and unique
// across the live set.
type Inquiry struct {
	InquiryID   string        `json:"inquiry_id"`
	ArticleID   int64         `json:"article_id"`
	RequesterID int64         `json:"requester_id"`
	OwnerID     int64         `json:"owner_id"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	DayCount    int           `json:"day_count"`
	Status      InquiryStatus `json:"status"`
}
