package service_test

import (
	"FitSphere/internal/model"
	"FitSphere/internal/repository"
	"context"
	"time"
)

type mockUserRepo struct {
	createFn        func(ctx context.Context, user *model.User) error
	getByIDFn       func(ctx context.Context, id uint64) (*model.User, error)
	getByIDsFn      func(ctx context.Context, ids []uint64) ([]*model.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*model.User, error)
	getByNameMailFn func(ctx context.Context, username, email string) (*model.User, error)
	searchFn        func(ctx context.Context, keyword string, limit int) ([]*model.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &model.User{ID: id, Username: "someone"}, nil
}

func (m *mockUserRepo) GetUserByIDs(ctx context.Context, ids []uint64) ([]*model.User, error) {
	if m.getByIDsFn != nil {
		return m.getByIDsFn(ctx, ids)
	}
	users := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, &model.User{ID: id, Username: "someone"})
	}
	return users, nil
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	if m.getByNameMailFn != nil {
		return m.getByNameMailFn(ctx, username, email)
	}
	return nil, nil
}

func (m *mockUserRepo) SearchUsers(ctx context.Context, keyword string, limit int) ([]*model.User, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, keyword, limit)
	}
	return nil, nil
}

type mockHealthRepo struct {
	upsertFn     func(ctx context.Context, record *model.HealthRecord) error
	getByDateFn  func(ctx context.Context, userID uint64, date time.Time) (*model.HealthRecord, error)
	sumRangeFn   func(ctx context.Context, userIDs []uint64, start, end time.Time) (*repository.RangeTotal, error)
	sumGroupedFn func(ctx context.Context, userIDs []uint64, start, end time.Time) ([]*repository.UserRangeTotal, error)
	topByDateFn  func(ctx context.Context, date time.Time, limit int) ([]*repository.DailyRank, error)
	has10kFn     func(ctx context.Context, userID uint64, minSteps int) (bool, error)
}

func (m *mockHealthRepo) UpsertDailyRecord(ctx context.Context, record *model.HealthRecord) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, record)
	}
	return nil
}

func (m *mockHealthRepo) GetRecordByDate(ctx context.Context, userID uint64, date time.Time) (*model.HealthRecord, error) {
	if m.getByDateFn != nil {
		return m.getByDateFn(ctx, userID, date)
	}
	return nil, nil
}

func (m *mockHealthRepo) SumRange(ctx context.Context, userIDs []uint64, start, end time.Time) (*repository.RangeTotal, error) {
	if m.sumRangeFn != nil {
		return m.sumRangeFn(ctx, userIDs, start, end)
	}
	return &repository.RangeTotal{}, nil
}

func (m *mockHealthRepo) SumRangeGrouped(ctx context.Context, userIDs []uint64, start, end time.Time) ([]*repository.UserRangeTotal, error) {
	if m.sumGroupedFn != nil {
		return m.sumGroupedFn(ctx, userIDs, start, end)
	}
	return nil, nil
}

func (m *mockHealthRepo) TopByDate(ctx context.Context, date time.Time, limit int) ([]*repository.DailyRank, error) {
	if m.topByDateFn != nil {
		return m.topByDateFn(ctx, date, limit)
	}
	return nil, nil
}

func (m *mockHealthRepo) HasDayWithSteps(ctx context.Context, userID uint64, minSteps int) (bool, error) {
	if m.has10kFn != nil {
		return m.has10kFn(ctx, userID, minSteps)
	}
	return false, nil
}

type mockUserFollowRepo struct {
	toggleFn         func(ctx context.Context, followerID, followingID uint64) (bool, error)
	getFollowersFn   func(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error)
	getFollowingFn   func(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error)
	followerCountFn  func(ctx context.Context, userID uint64) (int64, error)
	followingCountFn func(ctx context.Context, userID uint64) (int64, error)
	getFollowFn      func(ctx context.Context, followerID, followingID uint64) (*model.UserFollow, error)
}

func (m *mockUserFollowRepo) ToggleFollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, followerID, followingID)
	}
	return false, nil
}

func (m *mockUserFollowRepo) GetUserFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	if m.getFollowersFn != nil {
		return m.getFollowersFn(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *mockUserFollowRepo) GetUserFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	if m.getFollowingFn != nil {
		return m.getFollowingFn(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *mockUserFollowRepo) GetUserFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	if m.followerCountFn != nil {
		return m.followerCountFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockUserFollowRepo) GetUserFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	if m.followingCountFn != nil {
		return m.followingCountFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockUserFollowRepo) GetUserFollow(ctx context.Context, followerID, followingID uint64) (*model.UserFollow, error) {
	if m.getFollowFn != nil {
		return m.getFollowFn(ctx, followerID, followingID)
	}
	return nil, nil
}

type mockPostRepo struct {
	createFn      func(ctx context.Context, post *model.Post) error
	getFn         func(ctx context.Context, postID uint64) (*model.Post, error)
	getFeedFn     func(ctx context.Context, limit, offset int) ([]*model.Post, error)
	getRecentFn   func(ctx context.Context, userID uint64, limit int) ([]*model.Post, error)
	countByUserFn func(ctx context.Context, userID uint64) (int64, error)
}

func (m *mockPostRepo) CreatePost(ctx context.Context, post *model.Post) error {
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepo) GetPost(ctx context.Context, postID uint64) (*model.Post, error) {
	if m.getFn != nil {
		return m.getFn(ctx, postID)
	}
	return &model.Post{ID: postID}, nil
}

func (m *mockPostRepo) GetFeed(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	if m.getFeedFn != nil {
		return m.getFeedFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockPostRepo) GetRecentByUser(ctx context.Context, userID uint64, limit int) ([]*model.Post, error) {
	if m.getRecentFn != nil {
		return m.getRecentFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockPostRepo) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	if m.countByUserFn != nil {
		return m.countByUserFn(ctx, userID)
	}
	return 0, nil
}

type mockPostActionRepo struct {
	toggleLikeFn func(ctx context.Context, userID, postID uint64) (bool, error)
	likeCountFn  func(ctx context.Context, postID uint64) (int64, error)
	likedPostsFn func(ctx context.Context, userID uint64, postIDs []uint64) ([]uint64, error)
	likeCountsFn func(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)
	createCmtFn  func(ctx context.Context, comment *model.PostComment) error
	deleteCmtFn  func(ctx context.Context, comment *model.PostComment) (int64, error)
	getCmtFn     func(ctx context.Context, commentID uint64) (*model.PostComment, error)
	rootCmtsFn   func(ctx context.Context, postID uint64) ([]*model.PostComment, error)
	repliesFn    func(ctx context.Context, parentIDs []uint64) ([]*model.PostComment, error)
	recountFn    func(ctx context.Context) (int64, error)
}

func (m *mockPostActionRepo) ToggleLike(ctx context.Context, userID, postID uint64) (bool, error) {
	if m.toggleLikeFn != nil {
		return m.toggleLikeFn(ctx, userID, postID)
	}
	return false, nil
}

func (m *mockPostActionRepo) GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	if m.likeCountFn != nil {
		return m.likeCountFn(ctx, postID)
	}
	return 0, nil
}

func (m *mockPostActionRepo) GetLikedPostIDs(ctx context.Context, userID uint64, postIDs []uint64) ([]uint64, error) {
	if m.likedPostsFn != nil {
		return m.likedPostsFn(ctx, userID, postIDs)
	}
	return nil, nil
}

func (m *mockPostActionRepo) GetLikeCountsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	if m.likeCountsFn != nil {
		return m.likeCountsFn(ctx, postIDs)
	}
	return map[uint64]int64{}, nil
}

func (m *mockPostActionRepo) CreateComment(ctx context.Context, comment *model.PostComment) error {
	if m.createCmtFn != nil {
		return m.createCmtFn(ctx, comment)
	}
	return nil
}

func (m *mockPostActionRepo) DeleteCommentCascade(ctx context.Context, comment *model.PostComment) (int64, error) {
	if m.deleteCmtFn != nil {
		return m.deleteCmtFn(ctx, comment)
	}
	return 1, nil
}

func (m *mockPostActionRepo) GetCommentByID(ctx context.Context, commentID uint64) (*model.PostComment, error) {
	if m.getCmtFn != nil {
		return m.getCmtFn(ctx, commentID)
	}
	return nil, nil
}

func (m *mockPostActionRepo) GetRootCommentsByPostID(ctx context.Context, postID uint64) ([]*model.PostComment, error) {
	if m.rootCmtsFn != nil {
		return m.rootCmtsFn(ctx, postID)
	}
	return nil, nil
}

func (m *mockPostActionRepo) GetRepliesByParentIDs(ctx context.Context, parentIDs []uint64) ([]*model.PostComment, error) {
	if m.repliesFn != nil {
		return m.repliesFn(ctx, parentIDs)
	}
	return nil, nil
}

func (m *mockPostActionRepo) RecountAllCommentCounts(ctx context.Context) (int64, error) {
	if m.recountFn != nil {
		return m.recountFn(ctx)
	}
	return 0, nil
}

type mockChallengeRepo struct {
	createFn       func(ctx context.Context, challenge *model.Challenge) error
	getByIDFn      func(ctx context.Context, challengeID uint64) (*model.Challenge, error)
	listActiveFn   func(ctx context.Context, today time.Time) ([]*model.Challenge, error)
	addFn          func(ctx context.Context, participant *model.ChallengeParticipant) error
	participantsFn func(ctx context.Context, challengeID uint64) ([]uint64, error)
	hasAnyFn       func(ctx context.Context, userID uint64) (bool, error)
}

func (m *mockChallengeRepo) CreateWithCreator(ctx context.Context, challenge *model.Challenge) error {
	if m.createFn != nil {
		return m.createFn(ctx, challenge)
	}
	return nil
}

func (m *mockChallengeRepo) GetByID(ctx context.Context, challengeID uint64) (*model.Challenge, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, challengeID)
	}
	return nil, nil
}

func (m *mockChallengeRepo) ListActive(ctx context.Context, today time.Time) ([]*model.Challenge, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx, today)
	}
	return nil, nil
}

func (m *mockChallengeRepo) AddParticipant(ctx context.Context, participant *model.ChallengeParticipant) error {
	if m.addFn != nil {
		return m.addFn(ctx, participant)
	}
	return nil
}

func (m *mockChallengeRepo) GetParticipantIDs(ctx context.Context, challengeID uint64) ([]uint64, error) {
	if m.participantsFn != nil {
		return m.participantsFn(ctx, challengeID)
	}
	return nil, nil
}

func (m *mockChallengeRepo) HasAnyParticipation(ctx context.Context, userID uint64) (bool, error) {
	if m.hasAnyFn != nil {
		return m.hasAnyFn(ctx, userID)
	}
	return false, nil
}
