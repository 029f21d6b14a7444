package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type uploadFileRequest struct {
	Name         string   `json:"name"          validate:"required"`
	Size         int64    `json:"size"          validate:"required,gt=0"`
	ContentType  string   `json:"content_type"  validate:"required"`
	CourseCode   string   `json:"course_code"   validate:"required"`
	ResourceType string   `json:"resource_type" validate:"required,oneof=lecture_notes assignment research study_guide project_template other"`
	Visibility   string   `json:"visibility"    validate:"required,oneof=public class_only private"`
	Tags         []string `json:"tags"`
	Description  string   `json:"description"`
}

type fileDescriptorRequest struct {
	Name        string `json:"name"         validate:"required"`
	Size        int64  `json:"size"         validate:"required,gt=0"`
	ContentType string `json:"content_type" validate:"required"`
}

type batchUploadRequest struct {
	Files        []fileDescriptorRequest `json:"files"         validate:"required,min=1,dive"`
	CourseCode   string                  `json:"course_code"   validate:"required"`
	ResourceType string                  `json:"resource_type" validate:"required,oneof=lecture_notes assignment research study_guide project_template other"`
	Visibility   string                  `json:"visibility"    validate:"required,oneof=public class_only private"`
	Tags         []string                `json:"tags"`
	Description  string                  `json:"description"`
}

type fileLinks struct {
	Self     string `json:"self"`
	Download string `json:"download"`
}

type fileResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Size          int64     `json:"size"`
	ContentType   string    `json:"content_type"`
	UploadedBy    string    `json:"uploaded_by"`
	UploadedAt    time.Time `json:"uploaded_at"`
	CourseCode    string    `json:"course_code"`
	ResourceType  string    `json:"resource_type"`
	Visibility    string    `json:"visibility"`
	DownloadCount int64     `json:"download_count"`
	Tags          []string  `json:"tags"`
	Description   string    `json:"description,omitempty"`
	Links         fileLinks `json:"_links"`
}

type browseResponse struct {
	Data  []fileResponse `json:"data"`
	Total int            `json:"total"`
}

type batchUploadResponse struct {
	Data    []fileResponse `json:"data"`
	Skipped int            `json:"skipped"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}
