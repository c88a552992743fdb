package entity

import (
	"time"
)

// CourseLevel is the difficulty level advertised on a course.
type CourseLevel string

const (
	CourseLevelBeginner CourseLevel = "Beginner"
	CourseLevelMedium   CourseLevel = "Medium"
	CourseLevelAdvance  CourseLevel = "Advance"
)

// Course represents a course record. Only the title and category are required
// at creation time; the remaining fields are filled in by the creator before
// publishing.
type Course struct {
	ID               string       `bson:"_id,omitempty" json:"id"`
	CourseTitle      string       `bson:"course_title" json:"course_title"`
	Category         string       `bson:"category" json:"category"`
	SubTitle         *string      `bson:"sub_title,omitempty" json:"sub_title,omitempty"`
	Description      *string      `bson:"description,omitempty" json:"description,omitempty"`
	CourseLevel      *CourseLevel `bson:"course_level,omitempty" json:"course_level,omitempty"`
	CoursePrice      *float64     `bson:"course_price,omitempty" json:"course_price,omitempty"`
	CourseThumbnail  *string      `bson:"course_thumbnail,omitempty" json:"course_thumbnail,omitempty"`
	IsPublished      bool         `bson:"is_published" json:"is_published"`
	Creator          string       `bson:"creator" json:"creator"`
	Lectures         []string     `bson:"lectures" json:"lectures"`
	EnrolledStudents []string     `bson:"enrolled_students" json:"enrolled_students"`
	CreatedAt        time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time    `bson:"updated_at" json:"updated_at"`
}

// Price returns the course price, treating an unset price as zero.
func (c *Course) Price() float64 {
	if c.CoursePrice == nil {
		return 0
	}
	return *c.CoursePrice
}
