package services

import (
	"fmt"

	"lawdesk/pkg/config"
	"lawdesk/pkg/logger"

	"github.com/robfig/cron/v3"
)

// RetentionScheduler 联系消息保留策略调度器
// 按配置的cron表达式定期清理超过保留期的联系消息
type RetentionScheduler struct {
	contactService *ContactService
	cron           *cron.Cron
	cfg            config.RetentionConfig
	running        bool
}

// NewRetentionScheduler 创建保留策略调度器
func NewRetentionScheduler(contactService *ContactService, cfg config.RetentionConfig) *RetentionScheduler {
	return &RetentionScheduler{
		contactService: contactService,
		cron:           cron.New(),
		cfg:            cfg,
	}
}

// Start 启动调度器
func (s *RetentionScheduler) Start() error {
	if !s.cfg.Enabled {
		logger.GetLogger().Info("联系消息保留清理未启用")
		return nil
	}
	if s.running {
		return fmt.Errorf("调度器已经在运行")
	}

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, s.purge)
	if err != nil {
		return fmt.Errorf("添加清理任务失败: %v", err)
	}

	s.cron.Start()
	s.running = true
	logger.GetLogger().Infof("联系消息保留清理已启动，计划: %s，保留 %d 天", s.cfg.CronSchedule, s.cfg.ContactDays)
	return nil
}

// Stop 停止调度器
func (s *RetentionScheduler) Stop() {
	if !s.running {
		return
	}
	s.cron.Stop()
	s.running = false
	logger.GetLogger().Info("联系消息保留清理已停止")
}

func (s *RetentionScheduler) purge() {
	deleted, err := s.contactService.PurgeOlderThan(s.cfg.ContactDays)
	if err != nil {
		logger.GetLogger().Errorf("清理联系消息失败: %v", err)
		return
	}
	if deleted > 0 {
		logger.GetLogger().Infof("已清理 %d 条过期联系消息", deleted)
	}
}
