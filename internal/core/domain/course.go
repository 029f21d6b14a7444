package domain

import "errors"

var ErrCourseNotFound = errors.New("course not found")

// Course is a catalog entry. Courses are seed data: nothing in the portal
// creates or edits them.
type Course struct {
	Code             string   `json:"code" bson:"_id"`
	Name             string   `json:"name" bson:"name"`
	Department       string   `json:"department" bson:"department"`
	Instructor       string   `json:"instructor" bson:"instructor"`
	Semester         string   `json:"semester" bson:"semester"`
	EnrolledStudents []string `json:"enrolled_students" bson:"enrolled_students"`
}
