package memory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/studyshare/campus-portal/internal/core/domain"
)

// seedPassword is the credential every seeded demo account accepts.
const seedPassword = "password123"

// NewSeededStore returns a store preloaded with the demo catalog: two
// students, four courses, and four shared files. Intended for the memory
// driver and local development.
func NewSeededStore() (*Store, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s := NewStore()

	for _, u := range seedUsers(string(hash)) {
		s.users[u.ID] = u
		s.byEmail[u.Email] = u.ID
	}
	s.courses = seedCourses()
	s.files = seedFiles()

	return s, nil
}

func seedUsers(passwordHash string) []*domain.User {
	return []*domain.User{
		{
			ID:              "1",
			Email:           "john.doe@university.edu",
			PasswordHash:    passwordHash,
			FirstName:       "John",
			LastName:        "Doe",
			StudentID:       "STU001",
			AcademicProgram: "Computer Science",
			Department:      "Engineering",
			YearLevel:       "Junior",
			EnrolledCourses: []string{"CS101", "CS201", "MATH301"},
			CreatedAt:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              "2",
			Email:           "jane.smith@university.edu",
			PasswordHash:    passwordHash,
			FirstName:       "Jane",
			LastName:        "Smith",
			StudentID:       "STU002",
			AcademicProgram: "Biology",
			Department:      "Sciences",
			YearLevel:       "Senior",
			EnrolledCourses: []string{"BIO101", "BIO301", "CHEM201"},
			CreatedAt:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedCourses() []*domain.Course {
	return []*domain.Course{
		{
			Code:             "CS101",
			Name:             "Introduction to Computer Science",
			Department:       "Engineering",
			Instructor:       "Dr. Smith",
			Semester:         "Fall 2024",
			EnrolledStudents: []string{"1", "3", "4"},
		},
		{
			Code:             "CS201",
			Name:             "Data Structures and Algorithms",
			Department:       "Engineering",
			Instructor:       "Prof. Johnson",
			Semester:         "Fall 2024",
			EnrolledStudents: []string{"1", "5"},
		},
		{
			Code:             "BIO101",
			Name:             "General Biology",
			Department:       "Sciences",
			Instructor:       "Dr. Wilson",
			Semester:         "Fall 2024",
			EnrolledStudents: []string{"2", "6"},
		},
		{
			Code:             "MATH301",
			Name:             "Calculus III",
			Department:       "Mathematics",
			Instructor:       "Prof. Davis",
			Semester:         "Fall 2024",
			EnrolledStudents: []string{"1", "7"},
		},
	}
}

func seedFiles() []*domain.FileItem {
	return []*domain.FileItem{
		{
			ID:            "1",
			Name:          "CS101_Lecture_01_Introduction.pdf",
			Size:          2500000,
			ContentType:   "application/pdf",
			UploadedBy:    "1",
			UploadedAt:    time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			CourseCode:    "CS101",
			ResourceType:  domain.ResourceLectureNotes,
			Visibility:    domain.VisibilityClassOnly,
			DownloadCount: 45,
			Tags:          []string{"introduction", "fundamentals", "programming"},
			Description:   "Introduction to programming concepts and computer science fundamentals",
		},
		{
			ID:            "2",
			Name:          "Data_Structures_Cheat_Sheet.docx",
			Size:          850000,
			ContentType:   "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			UploadedBy:    "1",
			UploadedAt:    time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
			CourseCode:    "CS201",
			ResourceType:  domain.ResourceStudyGuide,
			Visibility:    domain.VisibilityPublic,
			DownloadCount: 89,
			Tags:          []string{"data structures", "algorithms", "cheat sheet"},
			Description:   "Comprehensive cheat sheet for common data structures",
		},
		{
			ID:            "3",
			Name:          "Biology_Lab_Report_Template.docx",
			Size:          450000,
			ContentType:   "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			UploadedBy:    "2",
			UploadedAt:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			CourseCode:    "BIO101",
			ResourceType:  domain.ResourceProjectTemplate,
			Visibility:    domain.VisibilityClassOnly,
			DownloadCount: 23,
			Tags:          []string{"biology", "lab report", "template"},
			Description:   "Standard template for biology lab reports",
		},
		{
			ID:            "4",
			Name:          "Calculus_Study_Notes.pdf",
			Size:          1800000,
			ContentType:   "application/pdf",
			UploadedBy:    "1",
			UploadedAt:    time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
			CourseCode:    "MATH301",
			ResourceType:  domain.ResourceStudyGuide,
			Visibility:    domain.VisibilityPublic,
			DownloadCount: 67,
			Tags:          []string{"calculus", "mathematics", "derivatives", "integrals"},
			Description:   "Comprehensive study notes covering derivatives and integrals",
		},
	}
}
