package service

import (
	"FitSphere/internal/api/dto"
	"FitSphere/internal/pkg/consts"
	"FitSphere/internal/pkg/util"
	"FitSphere/internal/repository"
	"context"
	"time"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID, requesterID uint64) (*dto.UserProfileDTO, error)
}

type ProfileServiceImpl struct {
	userRepo       repository.UserRepo
	postRepo       repository.PostRepo
	postActionRepo repository.PostActionRepo
	healthRepo     repository.HealthRepo
	challengeRepo  repository.ChallengeRepo
	followSvc      UserFollowService
}

func NewProfileService(
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	postActionRepo repository.PostActionRepo,
	healthRepo repository.HealthRepo,
	challengeRepo repository.ChallengeRepo,
	followSvc UserFollowService,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:       userRepo,
		postRepo:       postRepo,
		postActionRepo: postActionRepo,
		healthRepo:     healthRepo,
		challengeRepo:  challengeRepo,
		followSvc:      followSvc,
	}
}

// GetProfile 个人主页聚合：最近帖子带交互状态、关注计数、当日数据与徽章。
// requesterID 为 0 表示未登录
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, userID, requesterID uint64) (*dto.UserProfileDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	posts, err := s.postRepo.GetRecentByUser(ctx, userID, consts.ProfilePostLimit)
	if err != nil {
		return nil, err
	}
	postDTOs, err := buildPostDTOs(ctx, s.postActionRepo, posts, requesterID)
	if err != nil {
		return nil, err
	}

	followerCount, err := s.followSvc.GetFollowerCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.followSvc.GetFollowingCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if requesterID != 0 && requesterID != userID {
		isFollowing, err = s.followSvc.IsFollowing(ctx, requesterID, userID)
		if err != nil {
			return nil, err
		}
	}

	today := util.Midnight(time.Now())
	record, err := s.healthRepo.GetRecordByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	todayDTO := &dto.HealthRecordDTO{Date: today.Format(time.DateOnly)}
	if record != nil {
		todayDTO = toHealthRecordDTO(record)
	}

	badges, err := s.computeBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserProfileDTO{
		User:           toPublicUserDTO(user),
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		IsFollowing:    isFollowing,
		TodayRecord:    todayDTO,
		Badges:         badges,
		RecentPosts:    postDTOs,
	}, nil
}

// computeBadges 徽章顺序固定，相同数据下结果稳定
func (s *ProfileServiceImpl) computeBadges(ctx context.Context, userID uint64) ([]string, error) {
	badges := make([]string, 0, 3)

	postCount, err := s.postRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if postCount > 0 {
		badges = append(badges, consts.BadgeSocialite)
	}

	hasChallenge, err := s.challengeRepo.HasAnyParticipation(ctx, userID)
	if err != nil {
		return nil, err
	}
	if hasChallenge {
		badges = append(badges, consts.BadgeChallenger)
	}

	has10k, err := s.healthRepo.HasDayWithSteps(ctx, userID, 10000)
	if err != nil {
		return nil, err
	}
	if has10k {
		badges = append(badges, consts.Badge10kClub)
	}

	return badges, nil
}
