package builder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/export"
	"resume-builder/internal/imaging"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
	"resume-builder/resume/mutate"
)

// Image size slider bounds accepted from clients.
const (
	minImageSize = 50
	maxImageSize = 150
)

// multipart framing allowance on top of the image limit
const uploadOverheadBytes = 64 << 10

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = imaging.DefaultMaxBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches builder routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.listTemplates)
	rg.GET("/templates/:templateId/thumbnail", h.thumbnail)
	rg.GET("/thumbnails", h.thumbnails)

	rg.POST("/sessions", h.start)
	rg.GET("/sessions/:sessionId", h.get)
	rg.DELETE("/sessions/:sessionId", h.end)
	rg.POST("/sessions/:sessionId/edits", h.applyEdits)
	rg.PUT("/sessions/:sessionId/template", h.selectTemplate)
	rg.POST("/sessions/:sessionId/image", h.setImage)
	rg.DELETE("/sessions/:sessionId/image", h.clearImage)
	rg.GET("/sessions/:sessionId/preview", h.preview)
	rg.POST("/sessions/:sessionId/snapshot", h.saveSnapshot)
	rg.POST("/sessions/:sessionId/export", h.export)

	rg.GET("/display", h.display)
	rg.GET("/exports", h.listExports)
	rg.GET("/exports/:exportId", h.downloadExport)
}

type sessionResponse struct {
	Session Session `json:"session"`
	HTML    string  `json:"html,omitempty"`
}

func (h *Handler) listTemplates(c *gin.Context) {
	templates, err := h.Svc.Templates()
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"templates": templates})
}

func (h *Handler) thumbnails(c *gin.Context) {
	thumbs, err := h.Svc.Thumbnails()
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"thumbnails": thumbs})
}

func (h *Handler) thumbnail(c *gin.Context) {
	c.Set(middleware.TemplateKey, c.Param("templateId"))
	html, err := h.Svc.Thumbnail(c.Param("templateId"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.HTML(c, http.StatusOK, html)
}

type startRequest struct {
	Template string `json:"template"`
}

func (h *Handler) start(c *gin.Context) {
	var req startRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}
	if req.Template == "" {
		req.Template = c.Query("template")
	}

	session, err := h.Svc.Start(c.Request.Context(), middleware.UserIDFromContext(c), req.Template)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.SessionIDKey, session.ID)
	c.Set(middleware.TemplateKey, string(session.Template))
	respond.JSON(c, http.StatusCreated, sessionResponse{Session: session})
}

func (h *Handler) get(c *gin.Context) {
	session, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), h.sessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.TemplateKey, string(session.Template))
	respond.OK(c, sessionResponse{Session: session})
}

func (h *Handler) end(c *gin.Context) {
	if err := h.Svc.End(c.Request.Context(), middleware.UserIDFromContext(c), h.sessionID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type editsRequest struct {
	Edits []mutate.Edit `json:"edits"`
}

func (h *Handler) applyEdits(c *gin.Context) {
	var req editsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	for i, edit := range req.Edits {
		if err := checkImageSize(edit); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{"index": i})
			return
		}
	}

	out, err := h.Svc.ApplyEdits(c.Request.Context(), middleware.UserIDFromContext(c), h.sessionID(c), req.Edits)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondRendered(c, out)
}

type templateRequest struct {
	Template string `json:"template" binding:"required"`
}

func (h *Handler) selectTemplate(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "template is required", nil)
		return
	}
	out, err := h.Svc.SelectTemplate(c.Request.Context(), middleware.UserIDFromContext(c), h.sessionID(c), req.Template)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondRendered(c, out)
}

func (h *Handler) setImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes+uploadOverheadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "image too large", gin.H{"maxBytes": h.MaxUploadBytes})
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size > h.MaxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "image too large", gin.H{"maxBytes": h.MaxUploadBytes})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	out, err := h.Svc.SetImage(c.Request.Context(), middleware.UserIDFromContext(c), h.sessionID(c), file)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondRendered(c, out)
}

func (h *Handler) clearImage(c *gin.Context) {
	out, err := h.Svc.ClearImage(c.Request.Context(), middleware.UserIDFromContext(c), h.sessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondRendered(c, out)
}

func (h *Handler) preview(c *gin.Context) {
	html, err := h.Svc.Preview(c.Request.Context(), middleware.UserIDFromContext(c), h.sessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.HTML(c, http.StatusOK, html)
}

func (h *Handler) saveSnapshot(c *gin.Context) {
	snap, err := h.Svc.SaveSnapshot(c.Request.Context(), middleware.UserIDFromContext(c), h.sessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"snapshot": snap})
}

// display is reachable by plain navigation, so the guest identity may also
// arrive as a query parameter. Without any identity the page renders empty.
func (h *Handler) display(c *gin.Context) {
	owner := middleware.UserIDFromContext(c)
	if owner == "" {
		if guest := strings.TrimSpace(c.Query("guest")); guest != "" {
			owner = "guest:" + guest
		}
	}
	html, err := h.Svc.Display(c.Request.Context(), owner)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.HTML(c, http.StatusOK, html)
}

func (h *Handler) export(c *gin.Context) {
	opts := export.DefaultOptions()
	if c.Request.ContentLength > 0 {
		if err := json.NewDecoder(c.Request.Body).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid export options", nil)
			return
		}
	}

	res, err := h.Svc.Export(c.Request.Context(), middleware.UserIDFromContext(c), h.sessionID(c), opts)
	if err != nil {
		writeError(c, err)
		return
	}
	if res.Archive != nil {
		c.Header(middleware.ExportIDHeader, res.Archive.ID)
	}
	respond.Attachment(c, res.Artifact.Filename, res.Artifact.ContentType, res.Artifact.Body)
}

func (h *Handler) listExports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if h.Svc.Exports == nil {
		respond.OK(c, gin.H{"exports": []export.Archive{}})
		return
	}
	archives, err := h.Svc.Exports.List(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"exports": archives})
}

func (h *Handler) downloadExport(c *gin.Context) {
	if h.Svc.Exports == nil {
		writeError(c, export.ErrNotFound)
		return
	}
	archive, rc, err := h.Svc.Exports.Open(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("exportId"))
	if err != nil {
		writeError(c, err)
		return
	}
	defer rc.Close()
	respond.AttachmentReader(c, "Resume"+extFor(archive.MimeType), archive.MimeType, archive.SizeBytes, rc)
}

func (h *Handler) sessionID(c *gin.Context) string {
	id := c.Param("sessionId")
	c.Set(middleware.SessionIDKey, id)
	return id
}

func (h *Handler) respondRendered(c *gin.Context, out Rendered) {
	c.Set(middleware.TemplateKey, string(out.Session.Template))
	respond.OK(c, sessionResponse{Session: out.Session, HTML: out.HTML})
}

func checkImageSize(edit mutate.Edit) error {
	if edit.Op != mutate.OpSetImageSetting || edit.Field != mutate.FieldSize {
		return nil
	}
	size, err := strconv.Atoi(strings.TrimSpace(edit.Value))
	if err != nil || size < minImageSize || size > maxImageSize {
		return fmt.Errorf("image size must be between %d and %d", minImageSize, maxImageSize)
	}
	return nil
}

func extFor(mimeType string) string {
	if strings.HasPrefix(mimeType, "application/pdf") {
		return ".pdf"
	}
	return ".html"
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
	case errors.Is(err, export.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "export not found", nil)
	case errors.Is(err, model.ErrUnknownTemplate):
		respond.Error(c, http.StatusBadRequest, "unknown_template", err.Error(), gin.H{"templates": model.Templates()})
	case errors.Is(err, mutate.ErrInvalidEdit), errors.Is(err, ErrInvalidInput), errors.Is(err, export.ErrInvalidOptions):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, imaging.ErrTooLarge):
		respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", err.Error(), nil)
	case errors.Is(err, imaging.ErrNotImage), errors.Is(err, imaging.ErrEmpty):
		respond.Error(c, http.StatusBadRequest, "invalid_image", err.Error(), nil)
	case errors.Is(err, export.ErrEngineUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "export_unavailable", err.Error(), nil)
	default:
		telemetry.Error("builder.unhandled_error", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"error":      err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
