package domain

import "context"

//go:generate mockgen -source=schedule_repository.go -destination=schedule_repository_mock.go -package=domain

// ScheduleRepository persists daily projection schedules and fans their
// updates out to other processes. WriteSchedule both persists and publishes;
// SubscribeUpdates delivers the publishes of every process, including this
// one's own writes.
type ScheduleRepository interface {
	ReadSchedule(ctx context.Context, dateKey DayKey) (*DailySchedule, error)
	WriteSchedule(ctx context.Context, schedule *DailySchedule) error
	DeleteSchedule(ctx context.Context, dateKey DayKey) error
	SubscribeUpdates(ctx context.Context) (<-chan ScheduleUpdate, func() error, error)
}
