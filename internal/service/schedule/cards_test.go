package schedule

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
)

func TestTimelineCardsDropsInvalidItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)
	svc := createTestService(mockRepo, nil)

	now := time.Now()
	stored := domain.NewDailySchedule("2024-03-10", []domain.ScheduleItem{
		{ID: "item-1", Type: domain.ScheduleItemFeed, Time: now, TargetOunces: 4.5},
		{ID: "", Type: domain.ScheduleItemFeed, Time: now, TargetOunces: 4},
		{ID: "item-3", Type: "bath", Time: now},
		{ID: "item-4", Type: domain.ScheduleItemSleep, Time: now.Add(time.Hour), AvgDurationHours: 1.5},
	})

	mockRepo.EXPECT().
		ReadSchedule(gomock.Any(), domain.DayKey("2024-03-10")).
		Return(stored, nil)

	cards := svc.TimelineCards(context.Background(), "2024-03-10")

	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Label != "Feed 4.5 oz" {
		t.Errorf("expected label 'Feed 4.5 oz', got %q", cards[0].Label)
	}
	if cards[1].Label != "Nap 1 hr 30 min" {
		t.Errorf("expected label 'Nap 1 hr 30 min', got %q", cards[1].Label)
	}
}

func TestTimelineCardsEmptyWhenNoSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)
	svc := createTestService(mockRepo, nil)

	mockRepo.EXPECT().
		ReadSchedule(gomock.Any(), domain.DayKey("2024-03-10")).
		Return(nil, domain.ErrScheduleNotFound)

	if cards := svc.TimelineCards(context.Background(), "2024-03-10"); cards != nil {
		t.Errorf("expected nil cards, got %v", cards)
	}
}

func TestCompletedFeedLabelShowsActualOunces(t *testing.T) {
	item := domain.ScheduleItem{
		ID:           "item-1",
		Type:         domain.ScheduleItemFeed,
		Time:         time.Now(),
		TargetOunces: 4,
		IsCompleted:  true,
		ActualOunces: 3.5,
	}
	if got := cardLabel(item); got != "Fed 3.5 oz" {
		t.Errorf("expected 'Fed 3.5 oz', got %q", got)
	}
}
