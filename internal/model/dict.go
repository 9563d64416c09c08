package model

import (
	"gorm.io/gorm"

	"github.com/kordia/tender_tools/pkg/util"
)

// Dict 字典表：文档类别、成本分区等可配置枚举
type Dict struct {
	BaseModel
	Name     string `json:"name" gorm:"type:varchar(50);not null"`
	Code     string `json:"code" gorm:"type:varchar(50);not null"`
	Value    string `json:"value" gorm:"type:varchar(255);not null"`
	ParentID uint64 `json:"parentId,string" gorm:"not null"`
	Sort     int    `json:"sort" gorm:"type:int;default:0"`
}

func (d *Dict) TableComment() string {
	return "字典表"
}

// BeforeCreate 创建前钩子
func (d *Dict) BeforeCreate(tx *gorm.DB) error {
	if d.ID == 0 {
		d.ID = util.NewID()
	}
	return nil
}

func init() {
	models = append(models, &Dict{})
}
