package handler

import "github.com/studyshare/campus-portal/internal/core/domain"

// toFileResponse maps a domain record to its HTTP representation.
func toFileResponse(f *domain.FileItem) fileResponse {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	return fileResponse{
		ID:            f.ID,
		Name:          f.Name,
		Size:          f.Size,
		ContentType:   f.ContentType,
		UploadedBy:    f.UploadedBy,
		UploadedAt:    f.UploadedAt,
		CourseCode:    f.CourseCode,
		ResourceType:  string(f.ResourceType),
		Visibility:    string(f.Visibility),
		DownloadCount: f.DownloadCount,
		Tags:          tags,
		Description:   f.Description,
		Links: fileLinks{
			Self:     "/v1/files/" + f.ID,
			Download: "/v1/files/" + f.ID + "/download",
		},
	}
}

// toFileResponses maps a result page, never returning a nil slice.
func toFileResponses(files []*domain.FileItem) []fileResponse {
	out := make([]fileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, toFileResponse(f))
	}
	return out
}
