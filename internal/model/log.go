package model

import (
	"gorm.io/gorm"

	"github.com/kordia/tender_tools/pkg/util"
)

// Log 操作日志
type Log struct {
	BaseModel
	Action    int    `json:"action" gorm:"not null"`
	IP        string `json:"ip" gorm:"type:varchar(50)"`
	UserAgent string `json:"userAgent" gorm:"type:varchar(255)"`
}

func (l *Log) TableComment() string {
	return "日志表"
}

// BeforeCreate 创建前钩子
func (l *Log) BeforeCreate(tx *gorm.DB) error {
	if l.ID == 0 {
		l.ID = util.NewID()
	}
	return nil
}

func init() {
	models = append(models, &Log{})
}
