package entities

import "time"

// Review is user feedback about a facility. Reported reviews are
// deactivated, not deleted.
type Review struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	FacilityName string    `json:"facility_name" db:"facility_name"`
	Rating       int       `json:"rating" db:"rating"` // 1..5
	Comment      string    `json:"comment,omitempty" db:"comment"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Report flags a review for moderation
type Report struct {
	ID        string    `json:"id" db:"id"`
	ReviewID  string    `json:"review_id" db:"review_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Reason    string    `json:"reason" db:"reason"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
