package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kolpakovda/go-journal-client/internal/adapter"
	"github.com/kolpakovda/go-journal-client/models"
)

type clientFriendService struct {
	adapter adapter.ServerAdapter
}

func NewClientFriendService(serverAdapter adapter.ServerAdapter) ClientFriendService {
	return &clientFriendService{adapter: serverAdapter}
}

// Overview fetches the pending and sent lists concurrently; the two reads
// are independent and either failing fails the whole page load.
func (f *clientFriendService) Overview(ctx context.Context) (FriendOverview, error) {
	var overview FriendOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pending, err := f.adapter.PendingFriendRequests(gctx)
		if err != nil {
			return fmt.Errorf("load pending friend requests: %w", mapAdapterError(err))
		}
		overview.Pending = pending
		return nil
	})
	g.Go(func() error {
		sent, err := f.adapter.SentFriendRequests(gctx)
		if err != nil {
			return fmt.Errorf("load sent friend requests: %w", mapAdapterError(err))
		}
		overview.Sent = sent
		return nil
	})

	if err := g.Wait(); err != nil {
		return FriendOverview{}, err
	}
	return overview, nil
}

func (f *clientFriendService) Send(ctx context.Context, receiverID int64) error {
	if err := f.adapter.SendFriendRequest(ctx, receiverID); err != nil {
		return fmt.Errorf("send friend request to user %d: %w", receiverID, mapAdapterError(err))
	}
	return nil
}

func (f *clientFriendService) Accept(ctx context.Context, requestID int64) error {
	if err := f.adapter.AcceptFriendRequest(ctx, requestID); err != nil {
		return fmt.Errorf("accept friend request %d: %w", requestID, mapAdapterError(err))
	}
	return nil
}

func (f *clientFriendService) Reject(ctx context.Context, requestID int64) error {
	if err := f.adapter.RejectFriendRequest(ctx, requestID); err != nil {
		return fmt.Errorf("reject friend request %d: %w", requestID, mapAdapterError(err))
	}
	return nil
}

func (f *clientFriendService) Remove(ctx context.Context, friendID int64) error {
	if err := f.adapter.RemoveFriend(ctx, friendID); err != nil {
		return fmt.Errorf("remove friend %d: %w", friendID, mapAdapterError(err))
	}
	return nil
}

func (f *clientFriendService) Status(ctx context.Context, userID int64) (models.RelationshipStatus, error) {
	status, err := f.adapter.RelationshipStatus(ctx, userID)
	if err != nil {
		return models.RelationNone, fmt.Errorf("load relationship status of user %d: %w", userID, mapAdapterError(err))
	}
	return status, nil
}

func (f *clientFriendService) PendingCount(ctx context.Context) (int, error) {
	count, err := f.adapter.PendingRequestCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("load pending request count: %w", mapAdapterError(err))
	}
	return count, nil
}

func (f *clientFriendService) FriendsOf(ctx context.Context, userID int64) ([]models.User, error) {
	friends, err := f.adapter.FriendsOf(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load friends of user %d: %w", userID, mapAdapterError(err))
	}
	return friends, nil
}
