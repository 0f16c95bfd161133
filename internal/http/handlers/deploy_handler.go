// Deployment HTTP handlers.
//
// Endpoints over the simulated deployment pipeline:
//   - POST   /deploy            (run the scripted pipeline, persist a record)
//   - GET    /deployments       (the caller's deployments, newest first)
//   - GET    /deployments/:id   (one deployment with its step log)
//   - DELETE /deployments/:id   (remove a record)
//
// Outcomes are reported to the ledger as deployment_started / _completed /
// _error. The pipeline honors request-context cancellation: a client that
// disconnects mid-run aborts the remaining steps and no record is written.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbtq-dev/go-autoapi-backend/internal/domain"
	"github.com/mbtq-dev/go-autoapi-backend/internal/services"
	"github.com/mbtq-dev/go-autoapi-backend/internal/utils"
)

// DeployRequest is the JSON payload for starting a deployment.
type DeployRequest struct {
	// APIName names the API being deployed; it drives the slug and URL.
	APIName string `json:"api_name" binding:"required,min=1,max=255" example:"GitHub Repositories"`
	// Code is the generated integration code to "deploy".
	Code string `json:"code" binding:"required,min=1"`
	// Config carries free-form deployment settings, stored verbatim.
	Config map[string]string `json:"config,omitempty"`
}

// DeploymentsResponse is the JSON payload for a deployment listing.
type DeploymentsResponse struct {
	Count       int                          `json:"count" example:"2"`
	Deployments []services.DeploymentSummary `json:"deployments"`
}

// Deploy godoc
// @ID          deployAPI
// @Summary     Deploy generated code
// @Description Runs the scripted deployment pipeline for the given code and returns the persisted record with its step log and public URL.
// @Tags        Deploy
// @Accept      json
// @Produce     json
//
// @Param       X-MBTQ-Token  header  string                  true  "Bearer token"
// @Param       body          body    handlers.DeployRequest  true  "Deployment payload"
//
// @Success     200  {object} domain.Deployment
// @Failure     400  {object} handlers.ErrorResponse "Missing api_name or code"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure     500  {object} handlers.ErrorResponse "Pipeline or storage failure"
// @Router      /deploy [post]
func (h *Handlers) Deploy(c *gin.Context) {
	user := userID(c)

	var req DeployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logEvent(c, domain.ActionDeploymentError,
			map[string]any{"reason": "missing api_name or code"}, user)
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "api_name and code are required")
		return
	}

	h.logEvent(c, domain.ActionDeploymentStarted,
		map[string]any{"api_name": req.APIName}, user)

	dep, err := h.dep.Deploy(c.Request.Context(), req.APIName, req.Code, req.Config, user)
	if err != nil {
		h.logEvent(c, domain.ActionDeploymentError,
			map[string]any{"api_name": req.APIName, "reason": err.Error()}, user)
		switch {
		case errors.Is(err, services.ErrEmptyAPIName), errors.Is(err, services.ErrEmptyCode):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeDeployFailed, err.Error())
		}
		return
	}

	h.logEvent(c, domain.ActionDeploymentCompleted,
		map[string]any{"api_name": dep.APIName, "deployment_id": dep.ID, "url": dep.URL}, user)

	ok(c, http.StatusOK, dep)
}

// Deployments godoc
// @ID          listDeployments
// @Summary     List the caller's deployments
// @Description Returns the authenticated user's deployments, newest first.
// @Tags        Deploy
// @Produce     json
//
// @Param       X-MBTQ-Token  header  string  true   "Bearer token"
// @Param       limit         query   int     false  "Maximum records to return (default 10)"
//
// @Success     200  {object} handlers.DeploymentsResponse
// @Failure     400  {object} handlers.ErrorResponse "Malformed limit"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /deployments [get]
func (h *Handlers) Deployments(c *gin.Context) {
	limit, err := utils.ParseLimit(c.Query("limit"), 0)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}

	deps, err := h.dep.UserDeployments(c.Request.Context(), userID(c), limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, DeploymentsResponse{Count: len(deps), Deployments: deps})
}

// DeploymentStatus godoc
// @ID          getDeployment
// @Summary     Fetch one deployment
// @Description Returns a deployment record by id, including its step log.
// @Tags        Deploy
// @Produce     json
//
// @Param       X-MBTQ-Token  header  string  true  "Bearer token"
// @Param       id            path    string  true  "Deployment id"
//
// @Success     200  {object} services.DeploymentSummary
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure     404  {object} handlers.ErrorResponse "Unknown deployment id"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /deployments/{id} [get]
func (h *Handlers) DeploymentStatus(c *gin.Context) {
	dep, err := h.dep.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrDeploymentNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "deployment not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, dep)
}

// DeleteDeployment godoc
// @ID          deleteDeployment
// @Summary     Delete a deployment record
// @Description Removes a deployment record by id.
// @Tags        Deploy
// @Produce     json
//
// @Param       X-MBTQ-Token  header  string  true  "Bearer token"
// @Param       id            path    string  true  "Deployment id"
//
// @Success     204  {string} string "No Content"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure     404  {object} handlers.ErrorResponse "Unknown deployment id"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /deployments/{id} [delete]
func (h *Handlers) DeleteDeployment(c *gin.Context) {
	deleted, err := h.dep.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	if !deleted {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "deployment not found")
		return
	}
	noContent(c)
}
