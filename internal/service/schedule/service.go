package schedule

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
	"github.com/arlebowski/Tiny-Time-sub003/internal/infra/activitysource"
	"github.com/arlebowski/Tiny-Time-sub003/internal/infra/taskqueue"
	"github.com/arlebowski/Tiny-Time-sub003/internal/observability/metrics"
	"github.com/arlebowski/Tiny-Time-sub003/internal/observability/tracing"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/average"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/history"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/projection"
)

const DefaultReminderLead = 15 * time.Minute

// Service is the single entry point for daily schedules. Reads are
// best-effort: a failed store lookup yields a nil schedule rather than an
// error, so callers render an empty day instead of failing.
type Service struct {
	repo     domain.ScheduleRepository
	source   activitysource.Source
	builder  *projection.Builder
	queue    taskqueue.TaskQueue
	recorder domain.InsightRecorder
	metrics  *metrics.ScheduleMetrics

	loc          *time.Location
	reminderLead time.Duration

	listenerMu sync.Mutex
	listeners  map[int]func(domain.ScheduleUpdate)
	nextID     int

	refreshMu  sync.Mutex
	refreshing map[domain.DayKey]*sync.Mutex

	taskMu          sync.Mutex
	registeredTasks map[domain.DayKey][]string
}

func NewService(
	repo domain.ScheduleRepository,
	source activitysource.Source,
	builder *projection.Builder,
	queue taskqueue.TaskQueue,
	recorder domain.InsightRecorder,
	scheduleMetrics *metrics.ScheduleMetrics,
	loc *time.Location,
	reminderLead time.Duration,
) *Service {
	if loc == nil {
		loc = time.Local
	}
	if reminderLead <= 0 {
		reminderLead = DefaultReminderLead
	}
	return &Service{
		repo:            repo,
		source:          source,
		builder:         builder,
		queue:           queue,
		recorder:        recorder,
		metrics:         scheduleMetrics,
		loc:             loc,
		reminderLead:    reminderLead,
		listeners:       make(map[int]func(domain.ScheduleUpdate)),
		refreshing:      make(map[domain.DayKey]*sync.Mutex),
		registeredTasks: make(map[domain.DayKey][]string),
	}
}

// DateKey renders a timestamp as the local-day key schedules are stored under.
func (s *Service) DateKey(t time.Time) domain.DayKey {
	return domain.DayKeyFor(t, s.loc)
}

// Read returns the stored schedule for the given day, or nil when the store
// has no entry or cannot be reached.
func (s *Service) Read(ctx context.Context, dateKey domain.DayKey) *domain.DailySchedule {
	schedule, err := s.repo.ReadSchedule(ctx, dateKey)
	if err != nil {
		if !errors.Is(err, domain.ErrScheduleNotFound) {
			slog.WarnContext(ctx, "failed to read schedule",
				slog.String("date_key", string(dateKey)),
				slog.String("error", err.Error()),
			)
		}
		return nil
	}
	return schedule
}

// Write persists the schedule and notifies local subscribers. Persistence
// failures are logged and swallowed so the in-memory update still reaches
// listeners.
func (s *Service) Write(ctx context.Context, schedule *domain.DailySchedule) {
	if schedule == nil {
		return
	}

	if err := s.repo.WriteSchedule(ctx, schedule); err != nil {
		slog.WarnContext(ctx, "failed to persist schedule",
			slog.String("date_key", string(schedule.DateKey)),
			slog.String("error", err.Error()),
		)
	}

	s.notify(domain.ScheduleUpdate{
		DateKey: schedule.DateKey,
		Items:   schedule.Items,
	})
}

// Refresh rebuilds the projected schedule for the given day from activity
// history and persists the result. Concurrent refreshes of the same day are
// serialized; different days proceed in parallel.
func (s *Service) Refresh(ctx context.Context, date time.Time) (*domain.DailySchedule, error) {
	dateKey := domain.DayKeyFor(date, s.loc)

	mu := s.dateLock(dateKey)
	mu.Lock()
	defer mu.Unlock()

	refreshStart := time.Now()
	ctx, span := tracing.StartRefreshSpan(ctx, string(dateKey))
	defer span.End()

	now := time.Now()
	dayStart := domain.DayStart(date, s.loc)

	// One extra day beyond the averaging window absorbs sessions that
	// straddle the window's leading midnight.
	lookbackStart := dayStart.AddDate(0, 0, -(history.AverageWindowDays + 1))

	var (
		feedings []domain.Feeding
		nursing  []domain.NursingSession
		solids   []domain.SolidsSession
		sleeps   []domain.SleepSession
		kid      *domain.KidProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		feedings, err = s.source.ListFeedings(gctx, lookbackStart, now)
		return err
	})
	g.Go(func() error {
		var err error
		nursing, err = s.source.ListNursingSessions(gctx, lookbackStart, now)
		return err
	})
	g.Go(func() error {
		var err error
		solids, err = s.source.ListSolidsSessions(gctx, lookbackStart, now)
		return err
	})
	g.Go(func() error {
		var err error
		sleeps, err = s.source.ListSleepSessions(gctx, lookbackStart, now)
		return err
	})
	g.Go(func() error {
		var err error
		kid, err = s.source.GetKidProfile(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "failed to fetch activity history",
			slog.String("date_key", string(dateKey)),
			slog.String("error", err.Error()),
		)
		tracing.RecordRefreshResult(span, 0, 0, 0, time.Since(refreshStart), err)
		if s.metrics != nil {
			s.metrics.RecordRefresh(ctx, "error", time.Since(refreshStart))
		}
		return nil, err
	}

	feedProfile := average.FeedProfile(feedings, dayStart, s.loc)
	sleepProfile := average.SleepProfile(sleeps, dayStart, now, s.loc)

	items := s.builder.Build(projection.Input{
		DayStart:      dayStart,
		Kid:           kid,
		FeedProfile:   feedProfile,
		SleepProfile:  sleepProfile,
		TodayFeedings: history.TodayEvents(feedings, feedingTime, dayStart, s.loc),
		TodaySleeps:   history.TodayEvents(sleeps, sleepTime, dayStart, s.loc),
	})

	schedule := domain.NewDailySchedule(dateKey, items)

	slog.InfoContext(ctx, "schedule refreshed",
		slog.String("date_key", string(dateKey)),
		slog.Int("item_count", len(items)),
		slog.Int("feed_days_used", daysUsed(feedProfile)),
		slog.Int("sleep_days_used", daysUsed(sleepProfile)),
	)

	tracing.RecordRefreshResult(span, len(items), daysUsed(feedProfile), daysUsed(sleepProfile), time.Since(refreshStart), nil)
	if s.metrics != nil {
		s.metrics.RecordRefresh(ctx, "success", time.Since(refreshStart))
		s.metrics.RecordDaysUsed(ctx, domain.ActivityFeed.String(), daysUsed(feedProfile))
		s.metrics.RecordDaysUsed(ctx, domain.ActivitySleep.String(), daysUsed(sleepProfile))
		for _, item := range items {
			s.metrics.RecordItemsProjected(ctx, item.Type.String(), 1)
		}
	}

	s.Write(ctx, schedule)
	s.cancelReminders(ctx, dateKey)
	s.registerReminders(ctx, schedule, kid, now)
	s.recordDailyTotals(ctx, dateKey, kid, map[domain.ActivityKind]*average.Profile{
		domain.ActivityFeed:    feedProfile,
		domain.ActivityNursing: average.NursingProfile(nursing, dayStart, s.loc),
		domain.ActivitySolids:  average.SolidsProfile(solids, dayStart, s.loc),
		domain.ActivitySleep:   sleepProfile,
	})

	return schedule, nil
}

// Subscribe registers a listener for schedule updates. The returned function
// removes the listener; calling it more than once is safe.
func (s *Service) Subscribe(listener func(domain.ScheduleUpdate)) func() {
	s.listenerMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.listenerMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenerMu.Lock()
			delete(s.listeners, id)
			s.listenerMu.Unlock()
		})
	}
}

// ListenRemote forwards updates published by other processes to local
// subscribers until the context is cancelled.
func (s *Service) ListenRemote(ctx context.Context) error {
	updates, closeSub, err := s.repo.SubscribeUpdates(ctx)
	if err != nil {
		return err
	}

	go func() {
		defer func() {
			if err := closeSub(); err != nil {
				slog.Warn("failed to close schedule subscription",
					slog.String("error", err.Error()),
				)
			}
		}()
		for {
			select {
			case update, ok := <-updates:
				if !ok {
					return
				}
				s.notify(update)
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

func (s *Service) notify(update domain.ScheduleUpdate) {
	s.listenerMu.Lock()
	listeners := make([]func(domain.ScheduleUpdate), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenerMu.Unlock()

	for _, l := range listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("schedule listener panicked",
						slog.Any("panic", r),
					)
				}
			}()
			l(update)
		}()
	}
}

func (s *Service) dateLock(dateKey domain.DayKey) *sync.Mutex {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	mu, ok := s.refreshing[dateKey]
	if !ok {
		mu = &sync.Mutex{}
		s.refreshing[dateKey] = mu
	}
	return mu
}

// cancelReminders deletes the reminder tasks registered by the previous
// refresh of the day. Each rebuild mints fresh item IDs, so without this the
// superseded batch would stay queued and fire alongside the new one.
func (s *Service) cancelReminders(ctx context.Context, dateKey domain.DayKey) {
	if s.queue == nil {
		return
	}

	s.taskMu.Lock()
	taskIDs := s.registeredTasks[dateKey]
	delete(s.registeredTasks, dateKey)
	s.taskMu.Unlock()

	for _, taskID := range taskIDs {
		if err := s.queue.DeleteTask(ctx, taskID); err != nil {
			slog.WarnContext(ctx, "failed to cancel stale feed reminder",
				slog.String("task_id", taskID),
				slog.String("date_key", string(dateKey)),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (s *Service) registerReminders(ctx context.Context, schedule *domain.DailySchedule, kid *domain.KidProfile, now time.Time) {
	if s.queue == nil {
		return
	}

	message := "Upcoming feed"
	if kid != nil && kid.Name != "" {
		message = "Upcoming feed for " + kid.Name
	}

	var registered []string
	for _, item := range schedule.Items {
		if item.Type != domain.ScheduleItemFeed || item.IsCompleted {
			continue
		}
		remindAt := item.Time.Add(-s.reminderLead)
		if !remindAt.After(now) {
			continue
		}

		task := &taskqueue.ReminderTask{
			ItemID:       item.ID,
			DateKey:      string(schedule.DateKey),
			ScheduleAt:   remindAt,
			ItemType:     item.Type.String(),
			TaskID:       item.ID,
			TargetOunces: item.TargetOunces,
			Message:      message,
		}
		if _, err := s.queue.RegisterReminder(ctx, task); err != nil {
			slog.WarnContext(ctx, "failed to register feed reminder",
				slog.String("item_id", item.ID),
				slog.String("date_key", string(schedule.DateKey)),
				slog.String("error", err.Error()),
			)
			if s.metrics != nil {
				s.metrics.RecordReminderRegistered(ctx, "error")
			}
			continue
		}
		if s.metrics != nil {
			s.metrics.RecordReminderRegistered(ctx, "success")
		}
		registered = append(registered, task.TaskID)
	}

	if len(registered) > 0 {
		s.taskMu.Lock()
		s.registeredTasks[schedule.DateKey] = registered
		s.taskMu.Unlock()
	}
}

func (s *Service) recordDailyTotals(ctx context.Context, dateKey domain.DayKey, kid *domain.KidProfile, profiles map[domain.ActivityKind]*average.Profile) {
	if s.recorder == nil {
		return
	}

	kidID := ""
	if kid != nil {
		kidID = kid.ID
	}

	now := time.Now()
	records := make([]domain.DailyTotalRecord, 0, len(profiles))
	for metric, profile := range profiles {
		if profile == nil {
			continue
		}
		records = append(records, domain.DailyTotalRecord{
			KidID:      kidID,
			DateKey:    dateKey,
			Metric:     metric,
			Total:      profile.FinalTotal(),
			DaysUsed:   profile.DaysUsed,
			RecordedAt: now,
		})
	}

	if err := s.recorder.RecordDailyTotals(ctx, records); err != nil {
		slog.WarnContext(ctx, "failed to record daily totals",
			slog.String("date_key", string(dateKey)),
			slog.String("error", err.Error()),
		)
	}
}

func daysUsed(p *average.Profile) int {
	if p == nil {
		return 0
	}
	return p.DaysUsed
}

func feedingTime(f domain.Feeding) time.Time    { return f.Timestamp }
func sleepTime(s domain.SleepSession) time.Time { return s.StartTime }
