package repository

import (
	"context"
	"testing"
	"time"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
	"github.com/arlebowski/Tiny-Time-sub003/internal/testutil"
)

func TestWriteAndReadScheduleSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewScheduleRepository(client)

	now := time.Now().UTC().Truncate(time.Millisecond)

	tests := []struct {
		name     string
		schedule *domain.DailySchedule
	}{
		{
			name: "schedule with feed and sleep items",
			schedule: &domain.DailySchedule{
				DateKey: "2024-03-10",
				Items: []domain.ScheduleItem{
					{
						ID:           "item-feed-001",
						Type:         domain.ScheduleItemFeed,
						Time:         now,
						TargetOunces: 4.5,
						IsCompleted:  true,
						Matched:      true,
						ActualOunces: 4.0,
					},
					{
						ID:               "item-sleep-001",
						Type:             domain.ScheduleItemSleep,
						Time:             now.Add(2 * time.Hour),
						AvgDurationHours: 1.25,
					},
				},
				UpdatedAt: now,
			},
		},
		{
			name: "schedule with no items",
			schedule: &domain.DailySchedule{
				DateKey:   "2024-03-11",
				Items:     []domain.ScheduleItem{},
				UpdatedAt: now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.WriteSchedule(ctx, tt.schedule)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			retrieved, err := repo.ReadSchedule(ctx, tt.schedule.DateKey)
			if err != nil {
				t.Fatalf("failed to read schedule: %v", err)
			}

			if retrieved.DateKey != tt.schedule.DateKey {
				t.Errorf("expected DateKey %s, got %s", tt.schedule.DateKey, retrieved.DateKey)
			}
			if len(retrieved.Items) != len(tt.schedule.Items) {
				t.Fatalf("expected %d items, got %d", len(tt.schedule.Items), len(retrieved.Items))
			}
			for i, item := range tt.schedule.Items {
				got := retrieved.Items[i]
				if got.ID != item.ID {
					t.Errorf("expected ID %s, got %s", item.ID, got.ID)
				}
				if got.Type != item.Type {
					t.Errorf("expected Type %s, got %s", item.Type, got.Type)
				}
				if !got.Time.Equal(item.Time) {
					t.Errorf("expected Time %v, got %v", item.Time, got.Time)
				}
				if got.TargetOunces != item.TargetOunces {
					t.Errorf("expected TargetOunces %v, got %v", item.TargetOunces, got.TargetOunces)
				}
				if got.IsCompleted != item.IsCompleted {
					t.Errorf("expected IsCompleted %v, got %v", item.IsCompleted, got.IsCompleted)
				}
			}

			// Verify TTL is set
			ttl, err := client.TTL(ctx, "tt:daily_projection_schedule:v1:"+string(tt.schedule.DateKey)).Result()
			if err != nil {
				t.Fatalf("failed to get TTL: %v", err)
			}
			if ttl <= 0 || ttl > 48*time.Hour {
				t.Errorf("expected TTL around 48 hours, got %v", ttl)
			}
		})
	}
}

func TestWriteScheduleError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewScheduleRepository(client)

	tests := []struct {
		name        string
		schedule    *domain.DailySchedule
		expectedErr error
	}{
		{
			name:        "nil schedule",
			schedule:    nil,
			expectedErr: ErrInvalidScheduleData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.WriteSchedule(ctx, tt.schedule)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err != tt.expectedErr {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestReadScheduleError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewScheduleRepository(client)

	now := time.Now().UTC().Truncate(time.Millisecond)

	// A written schedule must only be readable under its own date key.
	schedule := &domain.DailySchedule{
		DateKey: "2024-03-12",
		Items: []domain.ScheduleItem{
			{ID: "item-001", Type: domain.ScheduleItemFeed, Time: now, TargetOunces: 5},
		},
		UpdatedAt: now,
	}
	if err := repo.WriteSchedule(ctx, schedule); err != nil {
		t.Fatalf("failed to write schedule: %v", err)
	}

	tests := []struct {
		name        string
		dateKey     domain.DayKey
		expectedErr error
	}{
		{
			name:        "non-existing date key",
			dateKey:     "2024-03-13",
			expectedErr: domain.ErrScheduleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.ReadSchedule(ctx, tt.dateKey)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err != tt.expectedErr {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestDeleteScheduleSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewScheduleRepository(client)

	now := time.Now().UTC().Truncate(time.Millisecond)

	schedule := &domain.DailySchedule{
		DateKey: "2024-03-14",
		Items: []domain.ScheduleItem{
			{ID: "item-del-001", Type: domain.ScheduleItemSleep, Time: now, AvgDurationHours: 1},
		},
		UpdatedAt: now,
	}
	if err := repo.WriteSchedule(ctx, schedule); err != nil {
		t.Fatalf("failed to write schedule: %v", err)
	}

	tests := []struct {
		name    string
		dateKey domain.DayKey
	}{
		{
			name:    "delete existing schedule",
			dateKey: "2024-03-14",
		},
		{
			name:    "delete non-existing schedule is no-op",
			dateKey: "2024-03-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.DeleteSchedule(ctx, tt.dateKey); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	if _, err := repo.ReadSchedule(ctx, schedule.DateKey); err != domain.ErrScheduleNotFound {
		t.Errorf("expected ErrScheduleNotFound after delete, got %v", err)
	}
}

func TestSubscribeUpdatesReceivesWrites(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewScheduleRepository(client)

	updates, closeSub, err := repo.SubscribeUpdates(ctx)
	if err != nil {
		t.Fatalf("failed to subscribe: %v", err)
	}
	defer func() {
		if err := closeSub(); err != nil {
			t.Errorf("failed to close subscription: %v", err)
		}
	}()

	now := time.Now().UTC().Truncate(time.Millisecond)

	schedule := &domain.DailySchedule{
		DateKey: "2024-03-16",
		Items: []domain.ScheduleItem{
			{ID: "item-sub-001", Type: domain.ScheduleItemFeed, Time: now, TargetOunces: 4},
		},
		UpdatedAt: now,
	}
	if err := repo.WriteSchedule(ctx, schedule); err != nil {
		t.Fatalf("failed to write schedule: %v", err)
	}

	select {
	case update := <-updates:
		if update.DateKey != schedule.DateKey {
			t.Errorf("expected DateKey %s, got %s", schedule.DateKey, update.DateKey)
		}
		if len(update.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(update.Items))
		}
		if update.Items[0].ID != "item-sub-001" {
			t.Errorf("expected item ID item-sub-001, got %s", update.Items[0].ID)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for schedule update")
	}
}
