package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kordia/tender_tools/internal/model"
)

type logService struct {
	*BaseService[*model.Log]
}

func NewLogService() *logService {
	return &logService{
		NewBaseService[*model.Log](),
	}
}

func (s *logService) NewModel() *model.Log {
	return &model.Log{}
}

func (s *logService) BuildCondition(query *gorm.DB, condition *model.Log) *gorm.DB {
	if condition.Action != 0 {
		query = query.Where("action = ?", condition.Action)
	}
	return query
}

// CreateOperationLog 记录操作日志
func (s *logService) CreateOperationLog(ctx context.Context, action int, ip, userAgent string) error {
	return s.db.Create(&model.Log{
		Action:    action,
		IP:        ip,
		UserAgent: userAgent,
	}).Error
}

// DeleteOldLogs 清理指定天数之前的日志
func (s *logService) DeleteOldLogs(ctx context.Context, days int) error {
	cutoff := time.Now().AddDate(0, 0, -days)
	return s.db.Where("created_at < ?", cutoff).Delete(&model.Log{}).Error
}
