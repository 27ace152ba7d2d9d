package service

import (
	"FitSphere/internal/api/dto"
	"FitSphere/internal/model"
	"FitSphere/internal/repository"
	"context"
)

type PostActionService interface {
	ToggleLike(ctx context.Context, userID, postID uint64) (*dto.LikeToggleDTO, error)
	CreateComment(ctx context.Context, userID, postID uint64, content string) (*dto.CommentDTO, error)
	CreateReply(ctx context.Context, userID, parentCommentID uint64, content string) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) (*dto.CommentDeleteDTO, error)
	ListComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error)
}

type PostActionServiceImpl struct {
	postActionRepo repository.PostActionRepo
	postRepo       repository.PostRepo
	userRepo       repository.UserRepo
}

func NewPostActionService(postActionRepo repository.PostActionRepo, postRepo repository.PostRepo, userRepo repository.UserRepo) PostActionService {
	return &PostActionServiceImpl{
		postActionRepo: postActionRepo,
		postRepo:       postRepo,
		userRepo:       userRepo,
	}
}

// ToggleLike 翻转点赞并返回翻转后的即时计数
func (s *PostActionServiceImpl) ToggleLike(ctx context.Context, userID, postID uint64) (*dto.LikeToggleDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	liked, err := s.postActionRepo.ToggleLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	count, err := s.postActionRepo.GetLikeCountByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeToggleDTO{Liked: liked, LikeCount: count}, nil
}

func (s *PostActionServiceImpl) CreateComment(ctx context.Context, userID, postID uint64, content string) (*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.insertComment(ctx, userID, postID, 0, content)
}

// CreateReply 回复只允许挂在一级评论下，不允许二级嵌套
func (s *PostActionServiceImpl) CreateReply(ctx context.Context, userID, parentCommentID uint64, content string) (*dto.CommentDTO, error) {
	parent, err := s.postActionRepo.GetCommentByID(ctx, parentCommentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrCommentNotFound
	}
	if parent.ParentID != 0 {
		return nil, ErrReplyToReply
	}
	return s.insertComment(ctx, userID, parent.PostID, parent.ID, content)
}

// DeleteComment 只有作者本人可删；删一级评论会连带删掉其全部回复，
// 帖子计数按实际删除行数扣减
func (s *PostActionServiceImpl) DeleteComment(ctx context.Context, userID, commentID uint64) (*dto.CommentDeleteDTO, error) {
	comment, err := s.postActionRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.UserID != userID {
		return nil, UnauthorizedError
	}

	_, err = s.postActionRepo.DeleteCommentCascade(ctx, comment)
	if err != nil {
		return nil, err
	}
	return &dto.CommentDeleteDTO{DeletedID: commentID}, nil
}

// ListComments 一级评论升序，内嵌各自的回复列表
func (s *PostActionServiceImpl) ListComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	roots, err := s.postActionRepo.GetRootCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return []*dto.CommentDTO{}, nil
	}

	rootIDs := make([]uint64, 0, len(roots))
	for _, root := range roots {
		rootIDs = append(rootIDs, root.ID)
	}
	replies, err := s.postActionRepo.GetRepliesByParentIDs(ctx, rootIDs)
	if err != nil {
		return nil, err
	}

	replyMap := make(map[uint64][]*dto.CommentDTO, len(roots))
	for _, reply := range replies {
		replyMap[reply.ParentID] = append(replyMap[reply.ParentID], toCommentDTO(reply))
	}

	out := make([]*dto.CommentDTO, 0, len(roots))
	for _, root := range roots {
		item := toCommentDTO(root)
		item.Replies = replyMap[root.ID]
		out = append(out, item)
	}
	return out, nil
}

func (s *PostActionServiceImpl) insertComment(ctx context.Context, userID, postID, parentID uint64, content string) (*dto.CommentDTO, error) {
	author, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	comment := &model.PostComment{
		PostID:   postID,
		UserID:   userID,
		Content:  content,
		ParentID: parentID,
	}
	err = s.postActionRepo.CreateComment(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.User = *author
	return toCommentDTO(comment), nil
}

func toCommentDTO(comment *model.PostComment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:            comment.ID,
		PostID:        comment.PostID,
		ParentID:      comment.ParentID,
		Content:       comment.Content,
		CreatedAt:     comment.CreatedAt.Format("2006-01-02 15:04:05"),
		UserID:        comment.UserID,
		Username:      comment.User.Username,
		ProfilePicURL: comment.User.ProfilePicURL,
	}
}
