package resumes

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/flash"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/web"
	"resume-builder/resume/contract"
	"resume-builder/resume/render"
)

const (
	maxJSONBody = 1 << 20
	// maxFlashReason keeps the signed flash cookie well under browser cookie limits.
	maxFlashReason = 200
)

// Handler wires HTTP handlers to the résumé service.
type Handler struct {
	Svc   *Service
	Flash *flash.Store
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, store *flash.Store) *Handler {
	return &Handler{Svc: svc, Flash: store}
}

// RegisterRoutes attaches the page and download routes to r and the JSON API to api.
func (h *Handler) RegisterRoutes(r gin.IRoutes, api *gin.RouterGroup) {
	r.GET("/", h.index)
	r.POST("/", h.generateForm)
	r.POST("/resume", h.generateForm)
	r.POST("/download-pdf", h.download(render.FormatPDF))
	r.POST("/download-docx", h.download(render.FormatDOCX))
	api.POST("/resume/generate", h.generateJSON)
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, web.IndexPage, web.IndexData{Messages: h.Flash.Pop(c)})
}

func (h *Handler) generateForm(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBind(&req); err != nil {
		h.rejectToIndex(c, "rejected", "Could not read the submitted form.")
		return
	}

	generated, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		var verr *ValidationError
		var xerr *ExternalServiceError
		switch {
		case errors.As(err, &verr):
			h.rejectToIndex(c, "rejected", verr.Messages()...)
		case errors.As(err, &xerr):
			telemetry.Error("resume.generate_failed", map[string]any{
				"request_id": middleware.RequestIDFromContext(c),
				"error":      xerr.Err.Error(),
			})
			h.rejectToIndex(c, "generator_failed", "Text generation error: "+flashReason(xerr.Err))
		default:
			h.rejectToIndex(c, "failed", "Unexpected error while generating the resume.")
		}
		return
	}

	c.Set(middleware.OutcomeKey, "generated")
	c.HTML(http.StatusOK, web.ResultPage, web.ResultData{
		Name:        generated.Name,
		JobTitle:    generated.JobTitle,
		ResumeText:  generated.ResumeText,
		GeneratedAt: generated.GeneratedAtLabel(),
	})
}

func (h *Handler) rejectToIndex(c *gin.Context, outcome string, messages ...string) {
	c.Set(middleware.OutcomeKey, outcome)
	if err := h.Flash.Set(c, messages...); err != nil {
		telemetry.Error("flash.set_failed", map[string]any{"error": err.Error()})
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) generateJSON(c *gin.Context) {
	var req GenerateRequest
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxJSONBody)
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "request body must be a JSON object", nil)
		return
	}

	generated, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Set(middleware.OutcomeKey, "generated")
	respond.OK(c, generated)
}

func (h *Handler) download(format render.Format) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			doc render.Document
			err error
		)
		if isJSON(c) {
			doc, err = h.downloadStructured(c, format)
		} else {
			var form DownloadForm
			if bindErr := c.ShouldBind(&form); bindErr != nil {
				respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "could not read the submitted form", nil)
				return
			}
			doc, err = h.Svc.ComposeText(form, format)
		}
		if err != nil {
			h.writeError(c, err)
			return
		}

		c.Set(middleware.OutcomeKey, "rendered")
		respond.Attachment(c, doc.FileName, doc.MimeType, doc.Data)
	}
}

func (h *Handler) downloadStructured(c *gin.Context, format render.Format) (render.Document, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxJSONBody))
	if err != nil {
		return render.Document{}, &ValidationError{Fields: []FieldError{{Field: "(root)", Message: "request body is too large or unreadable"}}}
	}
	resume, err := contract.Decode(body)
	if err != nil {
		var shapeErr contract.ShapeError
		if errors.As(err, &shapeErr) {
			verr := &ValidationError{}
			for _, f := range shapeErr.Fields {
				verr.Fields = append(verr.Fields, FieldError{Field: f.Field, Message: f.Message})
			}
			return render.Document{}, verr
		}
		return render.Document{}, &ValidationError{Fields: []FieldError{{Field: "(root)", Message: "request body must be a JSON object"}}}
	}
	return h.Svc.ComposeResume(resume, format)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var verr *ValidationError
	var xerr *ExternalServiceError
	switch {
	case errors.As(err, &verr):
		c.Set(middleware.OutcomeKey, "rejected")
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, strings.Join(verr.Messages(), " "), verr.Fields)
	case errors.As(err, &xerr):
		c.Set(middleware.OutcomeKey, "generator_failed")
		respond.Error(c, http.StatusBadGateway, ErrorCodeExternal, "text generation failed", gin.H{"reason": xerr.Err.Error()})
	default:
		c.Set(middleware.OutcomeKey, "failed")
		telemetry.Error("resume.compose_failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"error":      err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to compose document", nil)
	}
}

func isJSON(c *gin.Context) bool {
	return strings.HasPrefix(strings.ToLower(c.ContentType()), "application/json")
}

func flashReason(err error) string {
	reason := []rune(strings.TrimSpace(err.Error()))
	if len(reason) <= maxFlashReason {
		return string(reason)
	}
	return string(reason[:maxFlashReason]) + "…"
}
