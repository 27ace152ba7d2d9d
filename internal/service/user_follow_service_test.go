package service_test

import (
	"FitSphere/internal/model"
	"FitSphere/internal/service"
	"context"
	"testing"
)

// followState 用内存集合模拟关注边的存在性切换
type followState struct {
	edges map[[2]uint64]bool
}

func newFollowState() *followState {
	return &followState{edges: map[[2]uint64]bool{}}
}

func (s *followState) toggle(followerID, followingID uint64) bool {
	key := [2]uint64{followerID, followingID}
	if s.edges[key] {
		delete(s.edges, key)
		return false
	}
	s.edges[key] = true
	return true
}

func TestToggleFollow_Involution(t *testing.T) {
	state := newFollowState()
	repo := &mockUserFollowRepo{
		toggleFn: func(_ context.Context, followerID, followingID uint64) (bool, error) {
			return state.toggle(followerID, followingID), nil
		},
	}
	svc := service.NewUserFollowService(repo, &mockUserRepo{})

	first, err := svc.ToggleFollow(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first {
		t.Fatal("expected first toggle to follow")
	}

	second, err := svc.ToggleFollow(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second {
		t.Fatal("expected second toggle to unfollow")
	}
	if len(state.edges) != 0 {
		t.Fatalf("expected no edges after double toggle, got %d", len(state.edges))
	}
}

func TestToggleFollow_RejectsSelfFollow(t *testing.T) {
	svc := service.NewUserFollowService(&mockUserFollowRepo{}, &mockUserRepo{})

	_, err := svc.ToggleFollow(context.Background(), 7, 7)
	if err != service.ErrUserFollowSelf {
		t.Fatalf("expected ErrUserFollowSelf, got %v", err)
	}
}

func TestToggleFollow_TargetMissing(t *testing.T) {
	users := &mockUserRepo{
		getByIDFn: func(_ context.Context, _ uint64) (*model.User, error) {
			return nil, nil
		},
	}
	svc := service.NewUserFollowService(&mockUserFollowRepo{}, users)

	_, err := svc.ToggleFollow(context.Background(), 1, 99)
	if err != service.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestIsFollowing(t *testing.T) {
	repo := &mockUserFollowRepo{
		getFollowFn: func(_ context.Context, followerID, followingID uint64) (*model.UserFollow, error) {
			if followerID == 1 && followingID == 2 {
				return &model.UserFollow{FollowerID: 1, FollowingID: 2}, nil
			}
			return nil, nil
		},
	}
	svc := service.NewUserFollowService(repo, &mockUserRepo{})

	following, err := svc.IsFollowing(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !following {
		t.Fatal("expected is_following=true")
	}

	notFollowing, err := svc.IsFollowing(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notFollowing {
		t.Fatal("expected is_following=false for reverse direction")
	}
}

func TestGetFollowerCount_FallsBackToDB(t *testing.T) {
	// redis 未初始化时直接回源数据库
	repo := &mockUserFollowRepo{
		followerCountFn: func(_ context.Context, _ uint64) (int64, error) {
			return 42, nil
		},
	}
	svc := service.NewUserFollowService(repo, &mockUserRepo{})

	count, err := svc.GetFollowerCount(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 42 {
		t.Fatalf("expected 42 followers, got %d", count)
	}
}
