package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/kordia/tender_tools/pkg/util"
)

// RftPackage 招标文件包（Request for Tender）
type RftPackage struct {
	BaseModel
	ProjectID  uint64     `json:"projectId,string" gorm:"index;not null"`
	Title      string     `json:"title" gorm:"type:varchar(200);not null"`
	Reference  string     `json:"reference" gorm:"type:varchar(50)"` // 编号，如 RFT-001
	Scope      string     `json:"scope" gorm:"type:text"`            // 范围说明，富文本
	Conditions string     `json:"conditions" gorm:"type:text"`       // 投标条件，富文本
	IssuedDate *time.Time `json:"issuedDate,omitempty" gorm:"type:date"`
	CloseDate  *time.Time `json:"closeDate,omitempty" gorm:"type:date"`
	Status     int        `json:"status" gorm:"type:int;default:1;not null"` // 1: 草稿, 2: 已签发, -1: 作废
	UpdatedAt  time.Time  `json:"updatedAt,omitzero" gorm:"type:timestamp;not null"`
}

func (r *RftPackage) TableComment() string {
	return "招标文件包表"
}

// BeforeCreate 创建前钩子
func (r *RftPackage) BeforeCreate(tx *gorm.DB) error {
	if r.ID == 0 {
		r.ID = util.NewID()
	}
	return nil
}

// Addendum 针对已签发招标包的补遗
type Addendum struct {
	BaseModel
	RftID      uint64     `json:"rftId,string" gorm:"index;not null"`
	Number     int        `json:"number" gorm:"type:int;not null"` // 补遗序号
	Subject    string     `json:"subject" gorm:"type:varchar(200);not null"`
	Content    string     `json:"content" gorm:"type:text"` // 富文本
	IssuedDate *time.Time `json:"issuedDate,omitempty" gorm:"type:date"`
	UpdatedAt  time.Time  `json:"updatedAt,omitzero" gorm:"type:timestamp;not null"`
}

func (a *Addendum) TableComment() string {
	return "补遗表"
}

// BeforeCreate 创建前钩子
func (a *Addendum) BeforeCreate(tx *gorm.DB) error {
	if a.ID == 0 {
		a.ID = util.NewID()
	}
	return nil
}

// TransmittalDocument 随招标包/补遗签发的文件清单条目
type TransmittalDocument struct {
	BaseModel
	RftID         uint64     `json:"rftId,string" gorm:"index;not null"`
	AddendumID    uint64     `json:"addendumId,string" gorm:"index;default:0"` // 0表示随主包签发
	DrawingNumber string     `json:"drawingNumber" gorm:"type:varchar(50)"`
	Name          string     `json:"name" gorm:"type:varchar(200);not null"`
	Revision      string     `json:"revision" gorm:"type:varchar(10)"`
	Category      string     `json:"category" gorm:"type:varchar(50)"`
	Subcategory   string     `json:"subcategory" gorm:"type:varchar(50)"`
	IssuedDate    *time.Time `json:"issuedDate,omitempty" gorm:"type:date"`
	Sort          int        `json:"sort" gorm:"type:int;default:0"`
	UpdatedAt     time.Time  `json:"updatedAt,omitzero" gorm:"type:timestamp;not null"`
}

func (t *TransmittalDocument) TableComment() string {
	return "发文清单表"
}

// BeforeCreate 创建前钩子
func (t *TransmittalDocument) BeforeCreate(tx *gorm.DB) error {
	if t.ID == 0 {
		t.ID = util.NewID()
	}
	return nil
}

func init() {
	models = append(models, &RftPackage{}, &Addendum{}, &TransmittalDocument{})
}
