// System HTTP handlers: the service banner at / and readiness reporting.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InfoResponse is the JSON payload for the service banner.
type InfoResponse struct {
	Service      string `json:"service" example:"go-autoapi-backend"`
	Version      string `json:"version" example:"1.0.0"`
	CatalogSize  int    `json:"catalog_size" example:"52"`
	Deployments  int64  `json:"deployments" example:"3"`
	Docs         string `json:"docs" example:"/swagger/index.html"`
	HealthStatus string `json:"status" example:"ok"`
}

// ServiceVersion is the reported service version.
const ServiceVersion = "1.0.0"

// Info godoc
// @ID          serviceInfo
// @Summary     Service banner
// @Description Returns service identity, catalog size, and deployment count.
// @Tags        System
// @Produce     json
//
// @Success     200  {object} handlers.InfoResponse
// @Router      / [get]
func (h *Handlers) Info(c *gin.Context) {
	// Deployment count is best effort; the banner must not fail on a
	// storage hiccup.
	var count int64
	if n, err := h.dep.Count(c.Request.Context()); err == nil {
		count = n
	}
	ok(c, http.StatusOK, InfoResponse{
		Service:      "go-autoapi-backend",
		Version:      ServiceVersion,
		CatalogSize:  h.cat.Len(),
		Deployments:  count,
		Docs:         "/swagger/index.html",
		HealthStatus: "ok",
	})
}
