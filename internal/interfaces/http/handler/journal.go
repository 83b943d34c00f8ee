package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smartretail/backend/internal/infrastructure/event"
)

// JournalHandler exposes the mutation journal over HTTP
type JournalHandler struct {
	BaseHandler
	journal *event.Journal
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journal *event.Journal) *JournalHandler {
	return &JournalHandler{journal: journal}
}

// RegisterRoutes registers the journal routes
func (h *JournalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/journal", h.List)
}

// List handles GET /journal?after=<sequence>&limit=<n>
func (h *JournalHandler) List(c *gin.Context) {
	var afterSeq int64
	if after := c.Query("after"); after != "" {
		parsed, err := strconv.ParseInt(after, 10, 64)
		if err != nil {
			h.BadRequest(c, "Invalid after sequence")
			return
		}
		afterSeq = parsed
	}

	limit := 100
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 || parsed > 1000 {
			h.BadRequest(c, "Limit must be between 1 and 1000")
			return
		}
		limit = parsed
	}

	entries, err := h.journal.Entries(c.Request.Context(), afterSeq, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}
