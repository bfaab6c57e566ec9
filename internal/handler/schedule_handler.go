package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/schedule"
)

// ScheduleHandler serves the persisted daily projection schedule, its
// timeline card rendering, and the rebuild trigger.
type ScheduleHandler struct {
	service *schedule.Service
	loc     *time.Location
}

func NewScheduleHandler(service *schedule.Service, loc *time.Location) *ScheduleHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ScheduleHandler{
		service: service,
		loc:     loc,
	}
}

type scheduleResponse struct {
	DateKey   string                `json:"date_key"`
	Items     []domain.ScheduleItem `json:"items"`
	UpdatedAt *time.Time            `json:"updated_at,omitempty"`
}

type cardsResponse struct {
	DateKey string                  `json:"date_key"`
	Cards   []schedule.TimelineCard `json:"cards"`
}

func (h *ScheduleHandler) HandleGetSchedule(c *gin.Context) {
	date, ok := h.resolveDate(c)
	if !ok {
		return
	}
	dateKey := h.service.DateKey(date)

	// A missing or unreadable schedule renders as an empty day rather
	// than an error.
	sched := h.service.Read(c.Request.Context(), dateKey)
	c.JSON(http.StatusOK, scheduleToResponse(dateKey, sched))
}

func (h *ScheduleHandler) HandleGetCards(c *gin.Context) {
	date, ok := h.resolveDate(c)
	if !ok {
		return
	}
	dateKey := h.service.DateKey(date)

	cards := h.service.TimelineCards(c.Request.Context(), dateKey)
	if cards == nil {
		cards = []schedule.TimelineCard{}
	}
	c.JSON(http.StatusOK, cardsResponse{
		DateKey: string(dateKey),
		Cards:   cards,
	})
}

func (h *ScheduleHandler) HandleRefresh(c *gin.Context) {
	ctx := c.Request.Context()

	date, ok := h.resolveDate(c)
	if !ok {
		return
	}
	dateKey := h.service.DateKey(date)

	slog.InfoContext(ctx, "schedule refresh requested",
		slog.String("date_key", string(dateKey)),
	)

	sched, err := h.service.Refresh(ctx, date)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, scheduleToResponse(dateKey, sched))
}

func (h *ScheduleHandler) resolveDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now(), true
	}
	parsed, err := domain.ParseDayKey(domain.DayKey(dateStr), h.loc)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return parsed, true
}

func scheduleToResponse(dateKey domain.DayKey, sched *domain.DailySchedule) scheduleResponse {
	resp := scheduleResponse{
		DateKey: string(dateKey),
		Items:   []domain.ScheduleItem{},
	}
	if sched != nil {
		resp.DateKey = string(sched.DateKey)
		if sched.Items != nil {
			resp.Items = sched.Items
		}
		updatedAt := sched.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{
		Error:   "request_error",
		Message: message,
	})
}
