// Reputation HTTP handlers.
//
// Read-side endpoints over the activity ledger:
//   - GET /logs                    (the caller's activity log, newest first)
//   - GET /reputation             (the caller's score, level and counters)
//   - GET /reputation/leaderboard (all known users by descending score)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbtq-dev/go-autoapi-backend/internal/domain"
	"github.com/mbtq-dev/go-autoapi-backend/internal/utils"
)

// defaultLogsLimit bounds /logs responses when the caller does not set one.
const defaultLogsLimit = 50

// LogsResponse is the JSON payload for an activity log listing.
type LogsResponse struct {
	Username string                 `json:"username" example:"alice"`
	Count    int                    `json:"count" example:"4"`
	Logs     []domain.ActivityEntry `json:"logs"`
}

// LeaderboardResponse is the JSON payload for the leaderboard.
type LeaderboardResponse struct {
	Count       int                       `json:"count" example:"3"`
	Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
}

// Logs godoc
// @ID          userLogs
// @Summary     List the caller's activity log
// @Description Returns the authenticated user's activity entries, newest first. limit=0 returns an empty list.
// @Tags        Reputation
// @Produce     json
//
// @Param       X-MBTQ-Token  header  string  true   "Bearer token"
// @Param       limit         query   int     false  "Maximum entries to return (default 50)"
//
// @Success     200  {object} handlers.LogsResponse
// @Failure     400  {object} handlers.ErrorResponse "Malformed or negative limit"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid token"
// @Router      /logs [get]
func (h *Handlers) Logs(c *gin.Context) {
	user := userID(c)

	limit, err := utils.ParseLimit(c.Query("limit"), defaultLogsLimit)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}

	logs, err := h.ledger.UserLogs(user, limit)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	ok(c, http.StatusOK, LogsResponse{Username: user, Count: len(logs), Logs: logs})
}

// Reputation godoc
// @ID          userReputation
// @Summary     Fetch the caller's reputation
// @Description Returns the authenticated user's score, level, action count, last activity, and recent history. Users with no history get a zero-valued view at level Novice.
// @Tags        Reputation
// @Produce     json
//
// @Param       X-MBTQ-Token  header  string  true  "Bearer token"
//
// @Success     200  {object} domain.ReputationView
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid token"
// @Router      /reputation [get]
func (h *Handlers) Reputation(c *gin.Context) {
	ok(c, http.StatusOK, h.ledger.Reputation(userID(c)))
}

// Leaderboard godoc
// @ID          leaderboard
// @Summary     Fetch the reputation leaderboard
// @Description Returns known users ordered by descending score; ties break by ascending username.
// @Tags        Reputation
// @Produce     json
//
// @Param       X-MBTQ-Token  header  string  true   "Bearer token"
// @Param       limit         query   int     false  "Maximum rows to return (default all)"
//
// @Success     200  {object} handlers.LeaderboardResponse
// @Failure     400  {object} handlers.ErrorResponse "Malformed limit"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid token"
// @Router      /reputation/leaderboard [get]
func (h *Handlers) Leaderboard(c *gin.Context) {
	limit, err := utils.ParseLimit(c.Query("limit"), 0)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}

	board := h.ledger.Leaderboard(limit)
	ok(c, http.StatusOK, LeaderboardResponse{Count: len(board), Leaderboard: board})
}
