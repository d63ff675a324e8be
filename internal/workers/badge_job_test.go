package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kolpakovda/go-journal-client/internal/logger"
	"github.com/kolpakovda/go-journal-client/internal/mock/service"
)

func TestBadgeJob_RefreshNow_UpdatesCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	friendSvc := mock.NewMockClientFriendService(ctrl)
	job := NewBadgeJob(friendSvc, logger.Nop())

	friendSvc.EXPECT().PendingCount(gomock.Any()).Return(5, nil)

	job.RefreshNow(context.Background())
	assert.Equal(t, 5, job.Count())
}

func TestBadgeJob_RefreshNow_KeepsCountOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	friendSvc := mock.NewMockClientFriendService(ctrl)
	job := NewBadgeJob(friendSvc, logger.Nop())

	friendSvc.EXPECT().PendingCount(gomock.Any()).Return(5, nil)
	job.RefreshNow(context.Background())

	friendSvc.EXPECT().PendingCount(gomock.Any()).Return(0, assert.AnError)
	job.RefreshNow(context.Background())

	assert.Equal(t, 5, job.Count())
}

func TestBadgeJob_Decrement_NeverBelowZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	friendSvc := mock.NewMockClientFriendService(ctrl)
	job := NewBadgeJob(friendSvc, logger.Nop())

	friendSvc.EXPECT().PendingCount(gomock.Any()).Return(1, nil)
	job.RefreshNow(context.Background())

	job.Decrement()
	assert.Equal(t, 0, job.Count())

	job.Decrement()
	assert.Equal(t, 0, job.Count())
}

func TestBadgeJob_StartAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	friendSvc := mock.NewMockClientFriendService(ctrl)
	job := NewBadgeJob(friendSvc, logger.Nop())

	refreshed := make(chan struct{}, 1)
	friendSvc.EXPECT().PendingCount(gomock.Any()).
		DoAndReturn(func(context.Context) (int, error) {
			select {
			case refreshed <- struct{}{}:
			default:
			}
			return 2, nil
		}).MinTimes(1)

	job.Start(context.Background(), time.Hour)

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate refresh after Start")
	}

	job.Stop()
	require.Equal(t, 2, job.Count())

	// Stop is safe to call again on an idle job
	job.Stop()
}
