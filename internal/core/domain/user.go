package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidEmailDomain = errors.New("email must use an institutional domain")

// User models a registered student.
type User struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Email           string    `json:"email" bson:"email"`
	PasswordHash    string    `json:"-" bson:"password_hash"`
	FirstName       string    `json:"first_name" bson:"first_name"`
	LastName        string    `json:"last_name" bson:"last_name"`
	StudentID       string    `json:"student_id" bson:"student_id"`
	ProfilePhoto    string    `json:"profile_photo,omitempty" bson:"profile_photo,omitempty"`
	AcademicProgram string    `json:"academic_program" bson:"academic_program"`
	Department      string    `json:"department" bson:"department"`
	YearLevel       string    `json:"year_level" bson:"year_level"`
	ContactInfo     string    `json:"contact_info,omitempty" bson:"contact_info,omitempty"`
	EnrolledCourses []string  `json:"enrolled_courses" bson:"enrolled_courses"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

// EnrolledIn reports whether the user is enrolled in the given course.
func (u *User) EnrolledIn(courseCode string) bool {
	for _, code := range u.EnrolledCourses {
		if code == courseCode {
			return true
		}
	}
	return false
}
