package cron

import (
	"Tweetr/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine         *cron.Cron
	followCountJob *job.FollowCountJob
}

func NewCronManager(followCountJob *job.FollowCountJob) *Manager {
	return &Manager{
		engine:         cron.New(cron.WithSeconds()),
		followCountJob: followCountJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@hourly", s.followCountJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	s.engine.Stop()
}
