package entity

import "time"

type PrintRequest struct {
	ID          string
	PhoneNumber string
	EventCode   string
	ImageName   string
	CreatedAt   time.Time
}
