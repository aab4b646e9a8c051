package workers

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"meet-lab/contract"
	"meet-lab/domain"
	"meet-lab/domain/event"
	"meet-lab/mocks"
)

func TestEventFanout_Publishes_Drained_Events(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPublisher := mocks.NewMockEventPublisher(ctrl)

	outbound := make(chan contract.Publication, 4)
	worker := NewEventFanout(log, mockPublisher, outbound, 10*time.Second)

	done := make(chan struct{})
	// Given a publisher accepting two publications
	count := 0
	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, recipients []domain.UserID, evt event.DomainEvent) {
			count++
			if count == 2 {
				close(done)
			}
		}).Return(nil).
		Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	// When two publications reach the channel
	outbound <- contract.Publication{
		Recipients: []domain.UserID{"u1"},
		Event:      event.ParticipantJoined{Meeting: "m1", User: "u2", SessionID: "s2"},
	}
	outbound <- contract.Publication{
		Recipients: []domain.UserID{"u2"},
		Event:      event.ParticipantLeft{Meeting: "m1", User: "u1", SessionID: "s1"},
	}

	// Then both are published
	select {
	case <-done:
	case <-time.After(1 * time.Second):
		req.Fail("Publications were not drained in time")
	}
}

func TestEventFanout_Publish_Timeout(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPublisher := mocks.NewMockEventPublisher(ctrl)

	publishTimeout := 20 * time.Millisecond
	worker := NewEventFanout(log, mockPublisher, nil, publishTimeout)

	// Given a publisher stuck until its context expires
	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, recipients []domain.UserID, evt event.DomainEvent) error {
			<-ctx.Done()     // Waiting for timeout to trigger cancellation
			return ctx.Err() // Sending back "context deadline exceeded"
		}).
		Times(1)

	// When a publication is fanned out
	worker.Fanout(context.Background(), contract.Publication{
		Recipients: []domain.UserID{"u1"},
		Event:      event.MeetingTeardown{Meeting: "m1", User: "u1"},
	})

	// Then the deadline bounded the call and the error was swallowed
}

func TestEventFanout_Publish_Error_Swallowed(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPublisher := mocks.NewMockEventPublisher(ctrl)

	worker := NewEventFanout(log, mockPublisher, nil, time.Second)

	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("broker unreachable")).
		Times(1)

	// A failed publish must not panic or propagate
	worker.Fanout(context.Background(), contract.Publication{
		Recipients: []domain.UserID{"u1"},
		Event:      event.ParticipantJoined{Meeting: "m1", User: "u2", SessionID: "s2"},
	})
}
