package domain

import (
	"errors"
	"strings"
	"time"
)

// Visibility is the access tier of a shared file.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityClassOnly Visibility = "class_only"
	VisibilityPrivate   Visibility = "private"
)

// Valid reports whether v is one of the three known tiers.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityClassOnly, VisibilityPrivate:
		return true
	}
	return false
}

// ResourceType categorizes a file's academic purpose.
type ResourceType string

const (
	ResourceLectureNotes    ResourceType = "lecture_notes"
	ResourceAssignment      ResourceType = "assignment"
	ResourceResearch        ResourceType = "research"
	ResourceStudyGuide      ResourceType = "study_guide"
	ResourceProjectTemplate ResourceType = "project_template"
	ResourceOther           ResourceType = "other"
)

// Valid reports whether t is one of the six known categories.
func (t ResourceType) Valid() bool {
	switch t {
	case ResourceLectureNotes, ResourceAssignment, ResourceResearch,
		ResourceStudyGuide, ResourceProjectTemplate, ResourceOther:
		return true
	}
	return false
}

var ErrFileNotFound = errors.New("file not found")
var ErrForbidden = errors.New("access forbidden")
var ErrNotEnrolled = errors.New("uploader not enrolled in course")

// FileItem is a shared-file metadata record. No binary content is modeled;
// the record references the course it belongs to and the user who uploaded it.
type FileItem struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	Name          string       `json:"name" bson:"name"`
	Size          int64        `json:"size" bson:"size"`
	ContentType   string       `json:"content_type" bson:"content_type"`
	UploadedBy    string       `json:"uploaded_by" bson:"uploaded_by"`
	UploadedAt    time.Time    `json:"uploaded_at" bson:"uploaded_at"`
	CourseCode    string       `json:"course_code" bson:"course_code"`
	ResourceType  ResourceType `json:"resource_type" bson:"resource_type"`
	Visibility    Visibility   `json:"visibility" bson:"visibility"`
	DownloadCount int64        `json:"download_count" bson:"download_count"`
	Tags          []string     `json:"tags" bson:"tags"`
	Description   string       `json:"description,omitempty" bson:"description,omitempty"`
}

// VisibleTo decides whether the file may be shown to user. Absence of a match
// yields false, never an error.
func (f *FileItem) VisibleTo(user *User) bool {
	switch f.Visibility {
	case VisibilityPublic:
		return true
	case VisibilityClassOnly:
		return user.EnrolledIn(f.CourseCode)
	case VisibilityPrivate:
		return user.ID == f.UploadedBy
	}
	return false
}

// MatchesSearch reports whether term matches the file name, any tag, or the
// description, case-insensitively. An empty term matches everything.
func (f *FileItem) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(f.Name), term) {
		return true
	}
	for _, tag := range f.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return f.Description != "" && strings.Contains(strings.ToLower(f.Description), term)
}
