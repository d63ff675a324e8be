package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kolpakovda/go-journal-client/internal/adapter"
	"github.com/kolpakovda/go-journal-client/internal/mock"
	"github.com/kolpakovda/go-journal-client/models"
)

func TestClientFriendService_Overview_FetchesBothListsConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientFriendService(mockAdapter)

	pending := []models.FriendRequest{{ID: 1, Sender: models.User{ID: 7, Name: "Bob"}}}
	sent := []models.FriendRequest{{ID: 2, Receiver: models.User{ID: 9, Name: "Carol"}}}

	mockAdapter.EXPECT().PendingFriendRequests(gomock.Any()).Return(pending, nil)
	mockAdapter.EXPECT().SentFriendRequests(gomock.Any()).Return(sent, nil)

	overview, err := svc.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, pending, overview.Pending)
	assert.Equal(t, sent, overview.Sent)
}

func TestClientFriendService_Overview_EitherFailureFailsTheLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientFriendService(mockAdapter)

	mockAdapter.EXPECT().PendingFriendRequests(gomock.Any()).
		Return(nil, adapter.ErrInternalServerError)
	mockAdapter.EXPECT().SentFriendRequests(gomock.Any()).
		Return(nil, nil).AnyTimes()

	_, err := svc.Overview(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerFailure)
}

func TestClientFriendService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientFriendService(mockAdapter)
	ctx := context.Background()

	mockAdapter.EXPECT().RelationshipStatus(ctx, int64(7)).
		Return(models.RelationFriends, nil)

	status, err := svc.Status(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, models.RelationFriends, status)
}

func TestClientFriendService_PendingCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientFriendService(mockAdapter)
	ctx := context.Background()

	mockAdapter.EXPECT().PendingRequestCount(ctx).Return(3, nil)

	count, err := svc.PendingCount(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestClientFriendService_FriendsOf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientFriendService(mockAdapter)
	ctx := context.Background()

	friends := []models.User{{ID: 9, Name: "Carol"}}
	mockAdapter.EXPECT().FriendsOf(ctx, int64(7)).Return(friends, nil)

	got, err := svc.FriendsOf(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, friends, got)
}
