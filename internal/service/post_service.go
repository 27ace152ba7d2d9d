package service

import (
	"FitSphere/internal/api/dto"
	"FitSphere/internal/model"
	"FitSphere/internal/repository"
	"context"
)

var validPostTypes = map[string]bool{
	model.PostTypeWorkout:         true,
	model.PostTypeMilestone:       true,
	model.PostTypeMotivation:      true,
	model.PostTypeProgressPhoto:   true,
	model.PostTypeChallengeUpdate: true,
}

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, d *dto.PostCreateDTO) (*dto.PostDTO, error)
	GetFeed(ctx context.Context, requesterID uint64, page, pageSize int) ([]*dto.PostDTO, error)
}

type PostServiceImpl struct {
	postRepo       repository.PostRepo
	postActionRepo repository.PostActionRepo
	userRepo       repository.UserRepo
}

func NewPostService(postRepo repository.PostRepo, postActionRepo repository.PostActionRepo, userRepo repository.UserRepo) PostService {
	return &PostServiceImpl{
		postRepo:       postRepo,
		postActionRepo: postActionRepo,
		userRepo:       userRepo,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, d *dto.PostCreateDTO) (*dto.PostDTO, error) {
	if !validPostTypes[d.PostType] {
		return nil, ErrPostTypeInvalid
	}
	author, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	post := &model.Post{
		UserID:   userID,
		Caption:  d.Caption,
		ImageURL: d.ImageURL,
		PostType: d.PostType,
	}
	err = s.postRepo.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	post.User = *author

	out := toPostDTO(post)
	return out, nil
}

// GetFeed 全站时间倒序流；requesterID 为 0 表示未登录，不标注 has_liked
func (s *PostServiceImpl) GetFeed(ctx context.Context, requesterID uint64, page, pageSize int) ([]*dto.PostDTO, error) {
	if page <= 0 {
		page = 1
	}
	pageSize = clampPageSize(pageSize)

	posts, err := s.postRepo.GetFeed(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return buildPostDTOs(ctx, s.postActionRepo, posts, requesterID)
}

func toPostDTO(post *model.Post) *dto.PostDTO {
	return &dto.PostDTO{
		ID:            post.ID,
		Caption:       post.Caption,
		ImageURL:      post.ImageURL,
		PostType:      post.PostType,
		CreatedAt:     post.CreatedAt.Format("2006-01-02 15:04:05"),
		UserID:        post.UserID,
		Username:      post.User.Username,
		ProfilePicURL: post.User.ProfilePicURL,
		CommentCount:  int64(post.CommentsCount),
	}
}

// buildPostDTOs 批量装配帖子视图：一条 SQL 取全部点赞数，
// 再一条取请求者点过赞的子集
func buildPostDTOs(ctx context.Context, actionRepo repository.PostActionRepo, posts []*model.Post, requesterID uint64) ([]*dto.PostDTO, error) {
	out := make([]*dto.PostDTO, 0, len(posts))
	if len(posts) == 0 {
		return out, nil
	}

	postIDs := make([]uint64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	likeCounts, err := actionRepo.GetLikeCountsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	likedSet := make(map[uint64]bool)
	if requesterID != 0 {
		likedIDs, err := actionRepo.GetLikedPostIDs(ctx, requesterID, postIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range likedIDs {
			likedSet[id] = true
		}
	}

	for _, post := range posts {
		item := toPostDTO(post)
		item.LikeCount = likeCounts[post.ID]
		item.HasLiked = likedSet[post.ID]
		out = append(out, item)
	}
	return out, nil
}
