package domain

import "time"

type File struct {
	Name         string     `db:"name"`
	Market       string     `db:"market"`
	Status       Status     `db:"status"`
	ErrorMessage string     `db:"error_message"`
	ProcessedAt  *time.Time `db:"processed_at"`
}

// Attachment is an asset inventory file delivered for one market.
type Attachment struct {
	Name   string
	Market string
	Path   string
}
