package service_test

import (
	"FitSphere/internal/model"
	"FitSphere/internal/service"
	"context"
	"testing"
)

// likeState 用内存集合模拟点赞行的存在性切换
type likeState struct {
	likes map[[2]uint64]bool
}

func newLikeState() *likeState {
	return &likeState{likes: map[[2]uint64]bool{}}
}

func (s *likeState) toggle(userID, postID uint64) bool {
	key := [2]uint64{userID, postID}
	if s.likes[key] {
		delete(s.likes, key)
		return false
	}
	s.likes[key] = true
	return true
}

func (s *likeState) count(postID uint64) int64 {
	var n int64
	for key := range s.likes {
		if key[1] == postID {
			n++
		}
	}
	return n
}

func TestToggleLike_InvolutionRestoresCount(t *testing.T) {
	state := newLikeState()
	state.likes[[2]uint64{9, 5}] = true // 别人先点了一个赞

	actionRepo := &mockPostActionRepo{
		toggleLikeFn: func(_ context.Context, userID, postID uint64) (bool, error) {
			return state.toggle(userID, postID), nil
		},
		likeCountFn: func(_ context.Context, postID uint64) (int64, error) {
			return state.count(postID), nil
		},
	}
	svc := service.NewPostActionService(actionRepo, &mockPostRepo{}, &mockUserRepo{})

	before := state.count(5)

	first, err := svc.ToggleLike(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Liked || first.LikeCount != before+1 {
		t.Fatalf("expected liked=true count=%d, got liked=%v count=%d", before+1, first.Liked, first.LikeCount)
	}

	second, err := svc.ToggleLike(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Liked || second.LikeCount != before {
		t.Fatalf("expected count restored to %d, got liked=%v count=%d", before, second.Liked, second.LikeCount)
	}
}

func TestToggleLike_PostMissing(t *testing.T) {
	posts := &mockPostRepo{
		getFn: func(_ context.Context, _ uint64) (*model.Post, error) {
			return nil, nil
		},
	}
	svc := service.NewPostActionService(&mockPostActionRepo{}, posts, &mockUserRepo{})

	_, err := svc.ToggleLike(context.Background(), 1, 404)
	if err != service.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCreateReply_RejectsReplyToReply(t *testing.T) {
	actionRepo := &mockPostActionRepo{
		getCmtFn: func(_ context.Context, commentID uint64) (*model.PostComment, error) {
			// ID 20 本身就是一条回复
			return &model.PostComment{ID: commentID, PostID: 5, ParentID: 10}, nil
		},
	}
	svc := service.NewPostActionService(actionRepo, &mockPostRepo{}, &mockUserRepo{})

	_, err := svc.CreateReply(context.Background(), 1, 20, "nice")
	if err != service.ErrReplyToReply {
		t.Fatalf("expected ErrReplyToReply, got %v", err)
	}
}

func TestCreateReply_InheritsParentPost(t *testing.T) {
	var created *model.PostComment
	actionRepo := &mockPostActionRepo{
		getCmtFn: func(_ context.Context, commentID uint64) (*model.PostComment, error) {
			return &model.PostComment{ID: commentID, PostID: 5, ParentID: 0}, nil
		},
		createCmtFn: func(_ context.Context, comment *model.PostComment) error {
			created = comment
			return nil
		},
	}
	svc := service.NewPostActionService(actionRepo, &mockPostRepo{}, &mockUserRepo{})

	_, err := svc.CreateReply(context.Background(), 1, 10, "nice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PostID != 5 || created.ParentID != 10 {
		t.Fatalf("expected reply on post 5 under comment 10, got post=%d parent=%d", created.PostID, created.ParentID)
	}
}

func TestCreateReply_ParentMissing(t *testing.T) {
	svc := service.NewPostActionService(&mockPostActionRepo{}, &mockPostRepo{}, &mockUserRepo{})

	_, err := svc.CreateReply(context.Background(), 1, 404, "nice")
	if err != service.ErrCommentNotFound {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestDeleteComment_OnlyAuthorMayDelete(t *testing.T) {
	actionRepo := &mockPostActionRepo{
		getCmtFn: func(_ context.Context, commentID uint64) (*model.PostComment, error) {
			return &model.PostComment{ID: commentID, PostID: 5, UserID: 2}, nil
		},
	}
	svc := service.NewPostActionService(actionRepo, &mockPostRepo{}, &mockUserRepo{})

	_, err := svc.DeleteComment(context.Background(), 1, 30)
	if err != service.UnauthorizedError {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
}

func TestDeleteComment_CascadesReplies(t *testing.T) {
	var deleted *model.PostComment
	actionRepo := &mockPostActionRepo{
		getCmtFn: func(_ context.Context, commentID uint64) (*model.PostComment, error) {
			return &model.PostComment{ID: commentID, PostID: 5, UserID: 1}, nil
		},
		deleteCmtFn: func(_ context.Context, comment *model.PostComment) (int64, error) {
			deleted = comment
			return 3, nil // 一条评论加两条回复
		},
	}
	svc := service.NewPostActionService(actionRepo, &mockPostRepo{}, &mockUserRepo{})

	result, err := svc.DeleteComment(context.Background(), 1, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DeletedID != 30 {
		t.Fatalf("expected deleted id 30, got %d", result.DeletedID)
	}
	if deleted == nil || deleted.ID != 30 {
		t.Fatal("expected cascade delete on comment 30")
	}
}

func TestListComments_NestsReplies(t *testing.T) {
	actionRepo := &mockPostActionRepo{
		rootCmtsFn: func(_ context.Context, postID uint64) ([]*model.PostComment, error) {
			return []*model.PostComment{
				{ID: 1, PostID: postID, UserID: 1, Content: "first"},
				{ID: 2, PostID: postID, UserID: 2, Content: "second"},
			}, nil
		},
		repliesFn: func(_ context.Context, parentIDs []uint64) ([]*model.PostComment, error) {
			return []*model.PostComment{
				{ID: 3, PostID: 5, UserID: 2, ParentID: 1, Content: "reply to first"},
			}, nil
		},
	}
	svc := service.NewPostActionService(actionRepo, &mockPostRepo{}, &mockUserRepo{})

	comments, err := svc.ListComments(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 top-level comments, got %d", len(comments))
	}
	if comments[0].ID != 1 || comments[1].ID != 2 {
		t.Fatal("expected top-level comments in ascending order")
	}
	if len(comments[0].Replies) != 1 || comments[0].Replies[0].ID != 3 {
		t.Fatalf("expected one reply under first comment, got %+v", comments[0].Replies)
	}
	if len(comments[1].Replies) != 0 {
		t.Fatal("expected no replies under second comment")
	}
}
