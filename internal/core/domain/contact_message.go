package domain

import (
	"errors"
	"time"
)

var ErrMessageNotFound = errors.New("contact message not found")

// ContactMessage is the visitor inbox aggregate. It has no relation to User.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
