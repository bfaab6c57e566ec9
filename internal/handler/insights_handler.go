package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
	"github.com/arlebowski/Tiny-Time-sub003/internal/infra/activitysource"
	"github.com/arlebowski/Tiny-Time-sub003/internal/observability/tracing"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/average"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/bucket"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/history"
)

// InsightsHandler serves the averaged bucket profiles and the matching
// "today so far" running totals the comparison charts are drawn from.
type InsightsHandler struct {
	source activitysource.Source
	loc    *time.Location
}

func NewInsightsHandler(source activitysource.Source, loc *time.Location) *InsightsHandler {
	if loc == nil {
		loc = time.Local
	}
	return &InsightsHandler{
		source: source,
		loc:    loc,
	}
}

type profileResponse struct {
	Metric   string    `json:"metric"`
	DateKey  string    `json:"date_key"`
	Buckets  []float64 `json:"buckets"`
	DaysUsed int       `json:"days_used"`
}

type todayTotalResponse struct {
	Metric  string  `json:"metric"`
	DateKey string  `json:"date_key"`
	Bucket  int     `json:"bucket"`
	Total   float64 `json:"total"`
}

func (h *InsightsHandler) HandleAverageProfile(c *gin.Context) {
	ctx := c.Request.Context()

	metric, ok := domain.ParseActivityKind(c.Param("metric"))
	if !ok {
		respondError(c, http.StatusBadRequest, "unknown metric, expected feed, nursing, solids or sleep")
		return
	}

	now := time.Now()
	dayStart, dateKey, ok := h.resolveDay(c, now)
	if !ok {
		return
	}

	profile, err := h.buildProfile(c, metric, dayStart, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch activity history for profile",
			slog.String("metric", metric.String()),
			slog.String("date_key", string(dateKey)),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		respondError(c, http.StatusNotFound, "no activity history for metric")
		return
	}

	c.JSON(http.StatusOK, profileResponse{
		Metric:   metric.String(),
		DateKey:  string(dateKey),
		Buckets:  profile.Buckets,
		DaysUsed: profile.DaysUsed,
	})
}

func (h *InsightsHandler) HandleTodayTotal(c *gin.Context) {
	ctx := c.Request.Context()

	metric, ok := domain.ParseActivityKind(c.Param("metric"))
	if !ok {
		respondError(c, http.StatusBadRequest, "unknown metric, expected feed, nursing, solids or sleep")
		return
	}

	now := time.Now()
	dayStart, dateKey, ok := h.resolveDay(c, now)
	if !ok {
		return
	}

	targetBucket := bucket.ForTime(now, h.loc)
	if bucketStr := c.Query("bucket"); bucketStr != "" {
		parsed, err := strconv.Atoi(bucketStr)
		if err != nil || parsed < 0 || parsed >= bucket.SlotsPerDay {
			respondError(c, http.StatusBadRequest, "invalid bucket index")
			return
		}
		targetBucket = parsed
	}

	total, err := h.totalAt(c, metric, dayStart, now, targetBucket)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch activity history for today total",
			slog.String("metric", metric.String()),
			slog.String("date_key", string(dateKey)),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, todayTotalResponse{
		Metric:  metric.String(),
		DateKey: string(dateKey),
		Bucket:  targetBucket,
		Total:   total,
	})
}

// resolveDay parses the optional date query parameter into the local day
// start and key, defaulting to the current day. A malformed date writes the
// 400 response and reports false.
func (h *InsightsHandler) resolveDay(c *gin.Context, now time.Time) (time.Time, domain.DayKey, bool) {
	date := now
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := domain.ParseDayKey(domain.DayKey(dateStr), h.loc)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
			return time.Time{}, "", false
		}
		date = parsed
	}
	dayStart := domain.DayStart(date, h.loc)
	return dayStart, domain.DayKeyFor(date, h.loc), true
}

func (h *InsightsHandler) buildProfile(c *gin.Context, metric domain.ActivityKind, dayStart, now time.Time) (*average.Profile, error) {
	ctx, span := tracing.StartProfileSpan(c.Request.Context(), metric.String())
	defer span.End()

	start, end := h.fetchWindow(dayStart, now)

	switch metric {
	case domain.ActivityFeed:
		feedings, err := h.source.ListFeedings(ctx, start, end)
		if err != nil {
			return nil, err
		}
		return average.FeedProfile(feedings, dayStart, h.loc), nil
	case domain.ActivityNursing:
		sessions, err := h.source.ListNursingSessions(ctx, start, end)
		if err != nil {
			return nil, err
		}
		return average.NursingProfile(sessions, dayStart, h.loc), nil
	case domain.ActivitySolids:
		sessions, err := h.source.ListSolidsSessions(ctx, start, end)
		if err != nil {
			return nil, err
		}
		return average.SolidsProfile(sessions, dayStart, h.loc), nil
	default:
		sessions, err := h.source.ListSleepSessions(ctx, start, end)
		if err != nil {
			return nil, err
		}
		return average.SleepProfile(sessions, dayStart, now, h.loc), nil
	}
}

func (h *InsightsHandler) totalAt(c *gin.Context, metric domain.ActivityKind, dayStart, now time.Time, targetBucket int) (float64, error) {
	ctx := c.Request.Context()
	start, end := h.fetchWindow(dayStart, now)

	switch metric {
	case domain.ActivityFeed:
		feedings, err := h.source.ListFeedings(ctx, start, end)
		if err != nil {
			return 0, err
		}
		return average.FeedTotalAt(feedings, dayStart, targetBucket, h.loc), nil
	case domain.ActivityNursing:
		sessions, err := h.source.ListNursingSessions(ctx, start, end)
		if err != nil {
			return 0, err
		}
		return average.NursingTotalAt(sessions, dayStart, targetBucket, h.loc), nil
	case domain.ActivitySolids:
		sessions, err := h.source.ListSolidsSessions(ctx, start, end)
		if err != nil {
			return 0, err
		}
		return average.SolidsTotalAt(sessions, dayStart, targetBucket, h.loc), nil
	default:
		sessions, err := h.source.ListSleepSessions(ctx, start, end)
		if err != nil {
			return 0, err
		}
		return average.SleepTotalAt(sessions, nil, dayStart, now, targetBucket, h.loc), nil
	}
}

// fetchWindow widens the lookback by one day past the averaging window so
// sleep sessions straddling the leading midnight still contribute.
func (h *InsightsHandler) fetchWindow(dayStart, now time.Time) (time.Time, time.Time) {
	start := dayStart.AddDate(0, 0, -(history.AverageWindowDays + 1))
	end := now
	if dayEnd := domain.NextDayStart(dayStart, h.loc); dayEnd.After(end) {
		end = dayEnd
	}
	return start, end
}
