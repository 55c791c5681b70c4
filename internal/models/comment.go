package models

import "time"

// Comment is a free-form customer comment left on the store front.
type Comment struct {
	ID        int       `db:"id" json:"id"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
