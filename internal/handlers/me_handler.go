package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/middleware"
)

type MeHandler struct {
	users user.Repository
	trail audit.Reader
}

func NewMeHandler(users user.Repository, trail audit.Reader) *MeHandler {
	return &MeHandler{users: users, trail: trail}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		httperr.Unauthorized(c, "user_not_in_context", "Not authenticated.")
		return
	}

	u, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not load user.")
		return
	}
	if u == nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}

// AuditLogs lists what the caller did, newest first.
func (h *MeHandler) AuditLogs(c *gin.Context) {
	q := audit.Query{
		ActorID: c.GetString(middleware.ContextUserID),
		Action:  c.Query("action"),
		Entity:  c.Query("entity"),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	if from, err := time.Parse(time.DateOnly, c.Query("from")); err == nil {
		q.From = &from
	}
	if to, err := time.Parse(time.DateOnly, c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		q.To = &end
	}
	q = q.Normalize()

	logs, total, err := h.trail.ListAuditLogs(c.Request.Context(), q)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  q.Page,
		"limit": q.Limit,
		"total": total,
		"logs":  logs,
	})
}
