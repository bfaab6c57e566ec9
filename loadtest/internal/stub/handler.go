package stub

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler serves a fake core Tiny Time API for local development and load
// testing of the projection service.
type Handler struct {
	storage *ActivityStorage
}

func NewHandler(storage *ActivityStorage) *Handler {
	return &Handler{storage: storage}
}

func (h *Handler) HandleReset(c *gin.Context) {
	h.storage.Reset()

	slog.Info("reset seeded activity data")

	c.JSON(http.StatusOK, gin.H{"status": "reset complete"})
}

func (h *Handler) HandleSeed(c *gin.Context) {
	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Kid != nil {
		h.storage.SetKid(*req.Kid)
	}

	for _, day := range req.Days {
		dayStart, err := time.ParseInLocation("2006-01-02", day.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + day.Date})
			return
		}
		h.storage.SeedDay(dayStart, day)
	}

	slog.Info("seeded activity data",
		slog.Int("day_count", len(req.Days)),
	)

	c.JSON(http.StatusOK, gin.H{
		"status":    "seed complete",
		"day_count": len(req.Days),
	})
}

func (h *Handler) HandleListFeedings(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}
	items := h.storage.FeedingsInRange(start, end)
	c.JSON(http.StatusOK, ListResponse[FeedingResponse]{Items: items, Count: len(items)})
}

func (h *Handler) HandleListNursingSessions(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}
	items := h.storage.NursingInRange(start, end)
	c.JSON(http.StatusOK, ListResponse[NursingSessionResponse]{Items: items, Count: len(items)})
}

func (h *Handler) HandleListSolidsSessions(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}
	items := h.storage.SolidsInRange(start, end)
	c.JSON(http.StatusOK, ListResponse[SolidsSessionResponse]{Items: items, Count: len(items)})
}

func (h *Handler) HandleListSleepSessions(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}
	items := h.storage.SleepsInRange(start, end)
	c.JSON(http.StatusOK, ListResponse[SleepSessionResponse]{Items: items, Count: len(items)})
}

func (h *Handler) HandleGetKid(c *gin.Context) {
	c.JSON(http.StatusOK, h.storage.Kid())
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseRange(c *gin.Context) (int64, int64, bool) {
	start, err := strconv.ParseInt(c.Query("start"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start, expected epoch milliseconds"})
		return 0, 0, false
	}
	end, err := strconv.ParseInt(c.Query("end"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end, expected epoch milliseconds"})
		return 0, 0, false
	}
	return start, end, true
}
