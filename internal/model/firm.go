package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/kordia/tender_tools/pkg/util"
)

// Consultant 顾问单位
type Consultant struct {
	BaseModel
	Name       string    `json:"name" gorm:"type:varchar(100);not null"`
	Discipline string    `json:"discipline" gorm:"type:varchar(50)"` // 专业：建筑/结构/机电等
	Contact    string    `json:"contact" gorm:"type:varchar(100)"`
	Email      string    `json:"email" gorm:"type:varchar(100)"`
	Phone      string    `json:"phone" gorm:"type:varchar(30)"`
	Status     int       `json:"status" gorm:"type:int;default:1;not null"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero" gorm:"type:timestamp;not null"`
}

func (c *Consultant) TableComment() string {
	return "顾问单位表"
}

// BeforeCreate 创建前钩子
func (c *Consultant) BeforeCreate(tx *gorm.DB) error {
	if c.ID == 0 {
		c.ID = util.NewID()
	}
	return nil
}

// Contractor 承包商
type Contractor struct {
	BaseModel
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Trade     string    `json:"trade" gorm:"type:varchar(50)"` // 工种/专业分包
	Contact   string    `json:"contact" gorm:"type:varchar(100)"`
	Email     string    `json:"email" gorm:"type:varchar(100)"`
	Phone     string    `json:"phone" gorm:"type:varchar(30)"`
	Status    int       `json:"status" gorm:"type:int;default:1;not null"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" gorm:"type:timestamp;not null"`
}

func (c *Contractor) TableComment() string {
	return "承包商表"
}

// BeforeCreate 创建前钩子
func (c *Contractor) BeforeCreate(tx *gorm.DB) error {
	if c.ID == 0 {
		c.ID = util.NewID()
	}
	return nil
}

func init() {
	models = append(models, &Consultant{}, &Contractor{})
}
