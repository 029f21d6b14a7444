package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studyshare/campus-portal/internal/api/metrics"
	"github.com/studyshare/campus-portal/internal/core/domain"
	"github.com/studyshare/campus-portal/internal/core/ports"
)

// allowedContentTypes lists the document and image formats accepted for
// upload. Anything else is rejected (single upload) or skipped (batch).
var allowedContentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {},
	"application/vnd.ms-powerpoint":                                             {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
	"image/jpeg": {},
	"image/png":  {},
}

// DownloadDispatcher is the interface the handler uses to enqueue download
// commands. The record store's owner applies them asynchronously.
type DownloadDispatcher interface {
	Enqueue(cmd ports.DownloadCommand)
}

// FileHandler handles browsing, lookup, upload, and download recording.
type FileHandler struct {
	service    ports.FileService
	dispatcher DownloadDispatcher
	maxBytes   int64
}

func NewFileHandler(service ports.FileService, dispatcher DownloadDispatcher, maxBytes int64) *FileHandler {
	return &FileHandler{service: service, dispatcher: dispatcher, maxBytes: maxBytes}
}

// Browse handles GET /v1/files — the filtered, sorted file listing.
//
// @Summary      Browse shared files
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        search         query     string  false  "Substring match on name, tags, description"
// @Param        course_code    query     string  false  "Exact course code"
// @Param        resource_type  query     string  false  "Exact resource type"
// @Param        uploaded_by    query     string  false  "Exact uploader id"
// @Param        sort           query     string  false  "Sort key: date (default), downloads, name"
// @Success      200            {object}  browseResponse
// @Failure      400            {object}  errorResponse
// @Failure      401            {object}  errorResponse
// @Router       /v1/files [get]
func (h *FileHandler) Browse(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	sort := ports.SortKey(c.QueryParam("sort"))
	if sort == "" {
		sort = ports.SortByDate
	}
	switch sort {
	case ports.SortByDate, ports.SortByDownloads, ports.SortByName:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "sort must be one of: date, downloads, name")
	}

	start := time.Now()
	files, err := h.service.Browse(c.Request().Context(), ports.BrowseInput{
		UserID:       userID,
		Search:       c.QueryParam("search"),
		CourseCode:   c.QueryParam("course_code"),
		ResourceType: c.QueryParam("resource_type"),
		UploadedBy:   c.QueryParam("uploaded_by"),
		Sort:         sort,
	})
	if err != nil {
		return err
	}

	metrics.BrowseQueriesTotal.WithLabelValues(string(sort)).Inc()
	metrics.BrowseDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, browseResponse{
		Data:  toFileResponses(files),
		Total: len(files),
	})
}

// Get handles GET /v1/files/:id.
//
// @Summary      Get a single file's metadata
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "File id"
// @Success      200  {object}  fileResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/files/{id} [get]
func (h *FileHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	file, err := h.service.Get(c.Request().Context(), ports.GetFileInput{
		FileID: c.Param("id"),
		UserID: userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toFileResponse(file))
}

// Upload handles POST /v1/files — ingests a single file descriptor.
//
// @Summary      Share a file
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      uploadFileRequest  true  "File descriptor and sharing metadata"
// @Success      201   {object}  fileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/files [post]
func (h *FileHandler) Upload(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req uploadFileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if reason, ok := h.checkDescriptor(req.ContentType, req.Size); !ok {
		metrics.FilesSkippedTotal.WithLabelValues(reason).Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, descriptorError(reason))
	}

	file, err := h.service.Upload(c.Request().Context(), uploadInput(userID, req))
	if err != nil {
		return err
	}

	metrics.FilesUploadedTotal.WithLabelValues(string(file.ResourceType)).Inc()
	return c.JSON(http.StatusCreated, toFileResponse(file))
}

// UploadBatch handles POST /v1/files/batch — ingests several descriptors
// sharing one set of metadata. Descriptors with a disallowed content type or
// an oversize payload are dropped without failing the batch.
//
// @Summary      Share several files at once
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      batchUploadRequest  true  "File descriptors and shared metadata"
// @Success      201   {object}  batchUploadResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/files/batch [post]
func (h *FileHandler) UploadBatch(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req batchUploadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created := make([]fileResponse, 0, len(req.Files))
	skipped := 0
	for _, desc := range req.Files {
		if reason, ok := h.checkDescriptor(desc.ContentType, desc.Size); !ok {
			metrics.FilesSkippedTotal.WithLabelValues(reason).Inc()
			skipped++
			continue
		}

		file, err := h.service.Upload(c.Request().Context(), uploadInput(userID, uploadFileRequest{
			Name:         desc.Name,
			Size:         desc.Size,
			ContentType:  desc.ContentType,
			CourseCode:   req.CourseCode,
			ResourceType: req.ResourceType,
			Visibility:   req.Visibility,
			Tags:         req.Tags,
			Description:  req.Description,
		}))
		if err != nil {
			return err
		}

		metrics.FilesUploadedTotal.WithLabelValues(string(file.ResourceType)).Inc()
		created = append(created, toFileResponse(file))
	}

	return c.JSON(http.StatusCreated, batchUploadResponse{
		Data:    created,
		Skipped: skipped,
	})
}

// Download handles POST /v1/files/:id/download — enqueues a download-count
// increment and returns 202. The counter is applied asynchronously by the
// store owner; no visibility re-check happens here.
//
// @Summary      Record a file download
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "File id"
// @Success      202  {object}  acceptedResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/files/{id}/download [post]
func (h *FileHandler) Download(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	h.dispatcher.Enqueue(ports.DownloadCommand{FileID: c.Param("id")})
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "download recorded"})
}

// checkDescriptor applies the content-type allowlist and the size cap.
func (h *FileHandler) checkDescriptor(contentType string, size int64) (reason string, ok bool) {
	if _, allowed := allowedContentTypes[contentType]; !allowed {
		return "content_type", false
	}
	if size > h.maxBytes {
		return "size", false
	}
	return "", true
}

func descriptorError(reason string) string {
	if reason == "size" {
		return "file exceeds the maximum allowed size"
	}
	return "content type is not allowed"
}

// uploadInput maps the HTTP request to the service DTO.
func uploadInput(userID string, req uploadFileRequest) ports.UploadInput {
	return ports.UploadInput{
		Descriptor: ports.UploadDescriptor{
			Name:        req.Name,
			Size:        req.Size,
			ContentType: req.ContentType,
		},
		UploaderID:   userID,
		CourseCode:   req.CourseCode,
		ResourceType: domain.ResourceType(req.ResourceType),
		Visibility:   domain.Visibility(req.Visibility),
		Tags:         req.Tags,
		Description:  req.Description,
	}
}
