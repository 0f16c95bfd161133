// Code generation HTTP handler.
//
// POST /generate renders an integration scaffold for a catalog entry. The
// request body names the API; when the catalog knows it, the entry's
// metadata (link, auth scheme, HTTPS) fills the scaffold, otherwise the
// caller-supplied fields are used as-is. Outcomes are reported to the
// ledger as code_generation_started / _completed / _error.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mbtq-dev/go-autoapi-backend/internal/domain"
	"github.com/mbtq-dev/go-autoapi-backend/internal/services"
)

// GenerateRequest is the JSON payload for requesting a scaffold.
type GenerateRequest struct {
	// APIName selects the catalog entry to scaffold against.
	APIName string `json:"api_name" binding:"required,min=1,max=255" example:"GitHub Repositories"`
	// Description, Link, Auth and HTTPS override or supply entry metadata
	// for APIs the catalog does not know.
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty" example:"https://api.github.com"`
	Auth        string `json:"auth,omitempty" example:"apiKey"`
	HTTPS       *bool  `json:"https,omitempty"`
}

// GenerateResponse is the JSON payload returned for a rendered scaffold.
type GenerateResponse struct {
	Success     bool   `json:"success" example:"true"`
	APIName     string `json:"api_name" example:"GitHub Repositories"`
	Code        string `json:"code"`
	GeneratedAt string `json:"generated_at" example:"2026-01-02T15:04:05Z"`
}

// Generate godoc
// @ID          generateCode
// @Summary     Generate integration code
// @Description Renders a JavaScript integration scaffold (fetch client, Express router, React hook) for the named API.
// @Tags        Generate
// @Accept      json
// @Produce     json
//
// @Param       X-MBTQ-Token  header  string                    true  "Bearer token"
// @Param       body          body    handlers.GenerateRequest  true  "Generation payload"
//
// @Success     200  {object} handlers.GenerateResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing or invalid api_name"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure     500  {object} handlers.ErrorResponse "Generation failed"
// @Router      /generate [post]
func (h *Handlers) Generate(c *gin.Context) {
	user := userID(c)

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logEvent(c, domain.ActionCodeGenerationError,
			map[string]any{"reason": "missing api_name"}, user)
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "api_name required (1-255 chars)")
		return
	}

	in := services.GenerateInput{
		APIName:     req.APIName,
		Description: req.Description,
		Link:        req.Link,
		Auth:        req.Auth,
		Username:    user,
	}
	if req.HTTPS != nil {
		in.HTTPS = *req.HTTPS
	}
	// Known catalog entries contribute their metadata unless the request
	// already set a field.
	if e := h.cat.Lookup(req.APIName); e != nil {
		in.Category = e.Category
		if in.Description == "" {
			in.Description = e.Description
		}
		if in.Link == "" {
			in.Link = e.Link
		}
		if in.Auth == "" {
			in.Auth = e.Auth
		}
		if req.HTTPS == nil {
			in.HTTPS = e.HTTPS
		}
	}

	h.logEvent(c, domain.ActionCodeGenerationStarted,
		map[string]any{"api_name": req.APIName}, user)

	code, err := h.gen.Generate(in)
	if err != nil {
		h.logEvent(c, domain.ActionCodeGenerationError,
			map[string]any{"api_name": req.APIName, "reason": err.Error()}, user)
		if errors.Is(err, services.ErrEmptyAPIName) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeGenerateFailed, err.Error())
		return
	}

	h.logEvent(c, domain.ActionCodeGenerationCompleted,
		map[string]any{"api_name": req.APIName, "bytes": len(code)}, user)

	ok(c, http.StatusOK, GenerateResponse{
		Success:     true,
		APIName:     req.APIName,
		Code:        code,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
