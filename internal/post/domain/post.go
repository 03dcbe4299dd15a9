package domain

import "time"

type Post struct {
	ID      int64     `json:"id"`
	Content string    `json:"content"`
	Created time.Time `json:"created"`
}

// Fields carries the client-supplied part of a post. Pointers distinguish
// "absent" from "zero" so a partial update only touches what was sent.
type Fields struct {
	Content *string    `json:"content"`
	Created *time.Time `json:"created"`
}
