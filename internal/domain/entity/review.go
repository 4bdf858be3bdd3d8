package entity

import (
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is embedded in its product's review sequence. Clients may address
// it by position or by ID; the ID survives reordering, the position does not.
type Review struct {
	ID        string     `json:"id" firestore:"id"`
	UserName  string     `json:"userName" firestore:"userName"`
	UserUID   string     `json:"userUid" firestore:"userUid"`
	Email     string     `json:"email" firestore:"email"`
	Rating    int        `json:"rating" firestore:"rating"`
	Comment   string     `json:"comment" firestore:"comment"`
	CreatedAt time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
