package job

import (
	"FitSphere/internal/pkg/consts"
	"FitSphere/internal/pkg/redis"
	"FitSphere/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"
)

// CommentReconcileJob 每晚用实际行数重算帖子的评论冗余计数，
// 兜底计数漂移；多实例部署时用分布式锁保证只跑一份
type CommentReconcileJob struct {
	postActionRepo repository.PostActionRepo
}

func NewCommentReconcileJob(postActionRepo repository.PostActionRepo) *CommentReconcileJob {
	return &CommentReconcileJob{postActionRepo: postActionRepo}
}

func (s *CommentReconcileJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute*5)
	defer cancel()

	lockToken := time.Now().UnixNano()
	locked, err := redis.TryLock(ctx, consts.CommentReconcileLock, lockToken, time.Minute*10, 1)
	if err != nil && !errors.Is(err, redis.ErrNotReady) {
		log.Warn("comment reconcile lock failed", "err", err)
		return
	}
	if err == nil && !locked {
		return
	}
	defer redis.UnLock(ctx, consts.CommentReconcileLock, lockToken)

	fixed, err := s.postActionRepo.RecountAllCommentCounts(ctx)
	if err != nil {
		log.Error("comment count reconcile failed", "err", err)
		return
	}
	log.Info("comment counts reconciled", "fixed_posts", fixed)
}
