package service_test

import (
	"FitSphere/internal/model"
	"FitSphere/internal/pkg/consts"
	"FitSphere/internal/service"
	"context"
	"testing"
)

func newProfileService(posts int64, hasChallenge, has10k bool) service.ProfileService {
	postRepo := &mockPostRepo{
		countByUserFn: func(_ context.Context, _ uint64) (int64, error) {
			return posts, nil
		},
	}
	challengeRepo := &mockChallengeRepo{
		hasAnyFn: func(_ context.Context, _ uint64) (bool, error) {
			return hasChallenge, nil
		},
	}
	healthRepo := &mockHealthRepo{
		has10kFn: func(_ context.Context, _ uint64, minSteps int) (bool, error) {
			return has10k, nil
		},
	}
	followSvc := service.NewUserFollowService(&mockUserFollowRepo{}, &mockUserRepo{})
	return service.NewProfileService(&mockUserRepo{}, postRepo, &mockPostActionRepo{}, healthRepo, challengeRepo, followSvc)
}

func TestGetProfile_NoBadgesForFreshUser(t *testing.T) {
	svc := newProfileService(0, false, false)

	profile, err := svc.GetProfile(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profile.Badges) != 0 {
		t.Fatalf("expected empty badge list, got %v", profile.Badges)
	}
}

func TestGetProfile_SocialiteAfterFirstPost(t *testing.T) {
	svc := newProfileService(1, false, false)

	profile, err := svc.GetProfile(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profile.Badges) != 1 || profile.Badges[0] != consts.BadgeSocialite {
		t.Fatalf("expected exactly {Socialite}, got %v", profile.Badges)
	}
}

func TestGetProfile_BadgeOrderStable(t *testing.T) {
	svc := newProfileService(3, true, true)

	want := []string{consts.BadgeSocialite, consts.BadgeChallenger, consts.Badge10kClub}
	for i := 0; i < 3; i++ {
		profile, err := svc.GetProfile(context.Background(), 1, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(profile.Badges) != len(want) {
			t.Fatalf("expected %d badges, got %v", len(want), profile.Badges)
		}
		for j := range want {
			if profile.Badges[j] != want[j] {
				t.Fatalf("expected badge order %v, got %v", want, profile.Badges)
			}
		}
	}
}

func TestGetProfile_UserMissing(t *testing.T) {
	userRepo := &mockUserRepo{
		getByIDFn: func(_ context.Context, _ uint64) (*model.User, error) {
			return nil, nil
		},
	}
	followSvc := service.NewUserFollowService(&mockUserFollowRepo{}, userRepo)
	svc := service.NewProfileService(userRepo, &mockPostRepo{}, &mockPostActionRepo{}, &mockHealthRepo{}, &mockChallengeRepo{}, followSvc)

	_, err := svc.GetProfile(context.Background(), 404, 0)
	if err != service.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetProfile_ZeroFilledTodayRecord(t *testing.T) {
	svc := newProfileService(0, false, false)

	profile, err := svc.GetProfile(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.TodayRecord == nil {
		t.Fatal("expected zero-filled today record, got nil")
	}
	if profile.TodayRecord.Steps != 0 {
		t.Fatalf("expected zero steps, got %d", profile.TodayRecord.Steps)
	}
}
