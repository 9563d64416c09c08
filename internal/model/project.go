package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/kordia/tender_tools/pkg/util"
)

// Project 项目模型
type Project struct {
	BaseModel
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Code        string    `json:"code" gorm:"type:varchar(50);uniqueIndex"`
	Client      string    `json:"client" gorm:"type:varchar(100)"`
	Address     string    `json:"address" gorm:"type:varchar(200)"`
	Description string    `json:"description" gorm:"type:text"` // markdown或HTML富文本
	Status      int       `json:"status" gorm:"type:int;default:1;not null"` // 1: 进行中, -1: 归档
	UpdatedAt   time.Time `json:"updatedAt,omitzero" gorm:"type:timestamp;not null"`
}

func (p *Project) TableComment() string {
	return "项目表"
}

// BeforeCreate 创建前钩子
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == 0 {
		p.ID = util.NewID()
	}
	return nil
}

// Objective 项目目标，内容为富文本
type Objective struct {
	BaseModel
	ProjectID uint64    `json:"projectId,string" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null"`
	Content   string    `json:"content" gorm:"type:text"` // markdown或HTML富文本
	Sort      int       `json:"sort" gorm:"type:int;default:0"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" gorm:"type:timestamp;not null"`
}

func (o *Objective) TableComment() string {
	return "项目目标表"
}

// BeforeCreate 创建前钩子
func (o *Objective) BeforeCreate(tx *gorm.DB) error {
	if o.ID == 0 {
		o.ID = util.NewID()
	}
	return nil
}

// ProgramActivity 进度计划活动，ParentID为0表示顶层活动。
// 起止日期允许为空，无日期的活动不参与时间轴栅格。
type ProgramActivity struct {
	BaseModel
	ProjectID uint64     `json:"projectId,string" gorm:"index;not null"`
	ParentID  uint64     `json:"parentId,string" gorm:"index;default:0"`
	Name      string     `json:"name" gorm:"type:varchar(200);not null"`
	StartDate *time.Time `json:"startDate,omitempty" gorm:"type:date"`
	EndDate   *time.Time `json:"endDate,omitempty" gorm:"type:date"`
	SortOrder int        `json:"sortOrder" gorm:"type:int;default:0"`
	UpdatedAt time.Time  `json:"updatedAt,omitzero" gorm:"type:timestamp;not null"`
}

func (a *ProgramActivity) TableComment() string {
	return "进度计划活动表"
}

// BeforeCreate 创建前钩子
func (a *ProgramActivity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == 0 {
		a.ID = util.NewID()
	}
	return nil
}

func init() {
	models = append(models, &Project{}, &Objective{}, &ProgramActivity{})
}
