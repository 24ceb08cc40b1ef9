package entities

import "time"

// BuddyProfile holds the matching preferences a user opts into
type BuddyProfile struct {
	UserID        string    `json:"user_id" db:"user_id"`
	Interests     []string  `json:"interests" db:"interests"`
	PreferredArea string    `json:"preferred_area,omitempty" db:"preferred_area"`
	Bio           string    `json:"bio,omitempty" db:"bio"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// BuddyMatch is a ranked candidate produced by the matcher
type BuddyMatch struct {
	UserID          string   `json:"user_id"`
	Name            string   `json:"name"`
	SharedInterests []string `json:"shared_interests"`
	Score           int      `json:"score"`
}
