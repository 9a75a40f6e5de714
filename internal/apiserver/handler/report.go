package handler

import (
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/luhambo/maintenance/internal/apiserver/database"
	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/luhambo/maintenance/internal/common/config"
	"github.com/luhambo/maintenance/internal/common/dto"
	"github.com/luhambo/maintenance/internal/i18n"
	"github.com/luhambo/maintenance/pkg/metrics"
	"github.com/luhambo/maintenance/pkg/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// UploadURLPrefix is where stored report images are served from
const UploadURLPrefix = "/uploads"

// multipart framing on top of the file itself
const multipartOverhead = 1 << 20

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Report handles report submission, listing, triage and image upload
type Report struct {
	db      database.Database
	logger  *zap.Logger
	metrics *metrics.Metrics
	server  config.ServerConfig
}

func NewReport(db database.Database, logger *zap.Logger, m *metrics.Metrics, server config.ServerConfig) *Report {
	return &Report{
		db:      db,
		logger:  logger.Named("report"),
		metrics: m,
		server:  server,
	}
}

// Submit stores a new report as pending. The location fields are taken
// from the body as sent; the server does not re-read the student profile.
func (h *Report) Submit(c *gin.Context) {
	var req dto.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrInvalidRequest)
		return
	}

	scope := trace.Tracer(cnst.TraceAPIServer).Start(c.Request.Context(), "report.submit").
		WithAttrs(attribute.Int64(cnst.AttrStudentID, int64(req.StudentID)))
	defer scope.End()

	report := &database.Report{
		StudentID:        req.StudentID,
		StudentNo:        req.StudentNo,
		BuildingName:     req.BuildingName,
		RoomNumber:       req.RoomNumber,
		Floor:            req.Floor,
		IssueDescription: req.IssueDescription,
		Category:         req.Category,
		Priority:         req.Priority,
	}
	if err := h.db.CreateReport(scope.Ctx, report); err != nil {
		scope.Fail(err)
		h.logger.Error("failed to submit report", zap.Uint("student_id", req.StudentID), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrSubmitReport)
		return
	}

	scope.WithAttrs(attribute.Int64(cnst.AttrReportID, int64(report.ID)))
	h.metrics.ReportSubmitted(report.Category, report.Priority)
	i18n.Success(i18n.SuccessReportSubmit).With("reportId", report.ID).Send(c)
}

// ListForStudent returns one student's reports, newest first
func (h *Report) ListForStudent(c *gin.Context) {
	studentID, ok := idParam(c, "studentId")
	if !ok {
		return
	}

	reports, err := h.db.ListStudentReports(c.Request.Context(), studentID)
	if err != nil {
		h.logger.Error("failed to list student reports", zap.Uint("student_id", studentID), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrFetchReports)
		return
	}
	i18n.OK().With("reports", reports).Send(c)
}

// List returns every report with the submitter's name. Query filters
// status, building and priority are ANDed; absent ones are ignored.
func (h *Report) List(c *gin.Context) {
	var filter database.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		i18n.RespondWithError(c, i18n.ErrInvalidRequest)
		return
	}

	reports, err := h.db.ListReports(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list reports", zap.Any("filter", filter), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrFetchReports)
		return
	}
	i18n.OK().With("reports", reports).Send(c)
}

// Update overwrites status, priority and admin notes. Values are stored
// as given and a missing id still succeeds.
func (h *Report) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrInvalidRequest)
		return
	}

	scope := trace.Tracer(cnst.TraceAPIServer).Start(c.Request.Context(), "report.update").
		WithAttrs(
			attribute.Int64(cnst.AttrReportID, int64(id)),
			attribute.String("luhambo.status", req.Status),
		)
	defer scope.End()

	if err := h.db.UpdateReport(scope.Ctx, id, req.Status, req.Priority, req.AdminNotes); err != nil {
		scope.Fail(err)
		h.logger.Error("failed to update report", zap.Uint("report_id", id), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrUpdateReport)
		return
	}

	h.metrics.ReportUpdated(req.Status)
	i18n.Success(i18n.SuccessReportUpdate).Send(c)
}

// UploadImage stores the multipart "image" field under the upload dir
// and points the report's imagePath at it.
func (h *Report) UploadImage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	maxSize := h.server.MaxUploadSize
	invalid := i18n.ErrInvalidImage.WithParam("MaxSize", maxSize)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize+multipartOverhead)

	file, err := c.FormFile("image")
	if err != nil {
		i18n.RespondWithError(c, invalid)
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExts[ext] || file.Size > maxSize {
		i18n.RespondWithError(c, invalid)
		return
	}

	if err := os.MkdirAll(h.server.UploadDir, 0o755); err != nil {
		h.logger.Error("failed to create upload dir", zap.String("dir", h.server.UploadDir), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrUploadImage)
		return
	}
	name := uuid.NewString() + ext
	dst := filepath.Join(h.server.UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.logger.Error("failed to save upload", zap.String("dst", dst), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrUploadImage)
		return
	}

	imagePath := path.Join(UploadURLPrefix, name)
	if err := h.db.SetReportImage(c.Request.Context(), id, imagePath); err != nil {
		_ = os.Remove(dst)
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrReportNotFound)
			return
		}
		h.logger.Error("failed to attach image", zap.Uint("report_id", id), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrUploadImage)
		return
	}

	h.logger.Info("report image stored", zap.Uint("report_id", id), zap.String("path", imagePath))
	i18n.Success(i18n.SuccessImageUploaded).With("imagePath", imagePath).Send(c)
}
