package entity

import (
	"time"
)

// Lecture is a single lecture record. A lecture does not store its owning
// course; the course keeps the ordered list of lecture IDs, and removal
// queries by list membership.
type Lecture struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	LectureTitle  string    `bson:"lecture_title" json:"lecture_title"`
	VideoURL      string    `bson:"video_url" json:"video_url"`
	PublicID      string    `bson:"public_id" json:"public_id"`
	IsPreviewFree bool      `bson:"is_preview_free" json:"is_preview_free"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
