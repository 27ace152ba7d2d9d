package cron

import (
	"FitSphere/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine              *cron.Cron
	leaderboardJob      *job.LeaderboardWarmJob
	commentReconcileJob *job.CommentReconcileJob
}

func NewCronManager(leaderboardJob *job.LeaderboardWarmJob, commentReconcileJob *job.CommentReconcileJob) *Manager {
	return &Manager{
		engine:              cron.New(cron.WithSeconds()),
		leaderboardJob:      leaderboardJob,
		commentReconcileJob: commentReconcileJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("0 */5 * * * *", s.leaderboardJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.commentReconcileJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
