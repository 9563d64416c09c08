package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/kordia/tender_tools/pkg/util"
)

// 成本分区
const (
	CostSectionFees         = "fees"
	CostSectionConsultants  = "consultants"
	CostSectionConstruction = "construction"
	CostSectionContingency  = "contingency"
)

// CostLine 成本计划中的一条预算行
type CostLine struct {
	BaseModel
	ProjectID uint64    `json:"projectId,string" gorm:"index;not null"`
	Section   string    `json:"section" gorm:"type:varchar(20);not null"` // fees/consultants/construction/contingency
	Name      string    `json:"name" gorm:"type:varchar(200);not null"`
	Budget    float64   `json:"budget" gorm:"type:decimal(14,2);default:0"`
	Committed float64   `json:"committed" gorm:"type:decimal(14,2);default:0"`
	Notes     string    `json:"notes" gorm:"type:varchar(500)"`
	Sort      int       `json:"sort" gorm:"type:int;default:0"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" gorm:"type:timestamp;not null"`
}

func (c *CostLine) TableComment() string {
	return "成本预算行表"
}

// BeforeCreate 创建前钩子
func (c *CostLine) BeforeCreate(tx *gorm.DB) error {
	if c.ID == 0 {
		c.ID = util.NewID()
	}
	return nil
}

func init() {
	models = append(models, &CostLine{})
}
