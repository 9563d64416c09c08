package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kordia/tender_tools/internal/constant"
	"github.com/kordia/tender_tools/pkg/config"
	"github.com/kordia/tender_tools/pkg/logger"
)

type Model interface {
	TableComment() string
	GetID() uint64
}

type BaseModel struct {
	ID        uint64    `json:"id,string" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt,omitzero" gorm:"type:timestamp;not null"`
}

func (b *BaseModel) TableComment() string {
	return "基础模型"
}

func (b *BaseModel) GetID() uint64 {
	return b.ID
}

var models []Model

func AutoMigrate(db *gorm.DB) {
	switch dt := config.GetString("database.type"); dt {
	case "mysql":
		migrator := db.Migrator()
		for _, m := range models {
			if !migrator.HasTable(m) {
				if err := db.Set("gorm:table_options", fmt.Sprintf("ENGINE=innoDB DEFAULT CHARSET=utf8mb4 COMMENT='%s';", m.TableComment())).AutoMigrate(m); err != nil {
					logger.Error("自动迁移表失败", logger.F("error", err))
				}
			} else {
				_ = migrator.AutoMigrate(m)
			}
		}
	case "postgres":
		var mList []interface{}
		for _, m := range models {
			mList = append(mList, m)
		}
		if err := db.AutoMigrate(mList...); err != nil {
			logger.Error("自动迁移表失败", logger.F("error", err))
		}
		// 添加表注释
		for _, m := range models {
			stmt := &gorm.Statement{DB: db}
			if err := stmt.Parse(m); err != nil {
				logger.Error("解析模型失败", logger.F("error", err))
				continue
			}
			if err := db.Exec(fmt.Sprintf("COMMENT ON TABLE %s IS '%s';", stmt.Table, m.TableComment())).Error; err != nil {
				logger.Error("添加表注释失败", logger.F("error", err))
			}
		}
	case "sqlite":
		var mList []interface{}
		for _, m := range models {
			mList = append(mList, m)
		}
		if err := db.AutoMigrate(mList...); err != nil {
			logger.Error("自动迁移表失败", logger.F("error", err))
		}
	default:
		logger.Error("不支持的数据库类型", logger.F("type", dt))
	}
}

// InitData 初始化基础数据：文档类别字典
func InitData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		categoryDict := &Dict{
			Name:     "文档类别",
			Code:     constant.DictTypeCodeDocCategory,
			Value:    "文档类别",
			ParentID: 0,
			Sort:     0,
		}
		if err := tx.Model(&Dict{}).Where(&Dict{
			Code: categoryDict.Code,
		}).Attrs(categoryDict).FirstOrCreate(categoryDict).Error; err != nil {
			return fmt.Errorf("create dict failed: %v", err)
		}

		categories := []struct {
			Name string
			Code string
			Sort int
		}{
			{Name: "Architectural", Code: "doc_category_architectural", Sort: 1},
			{Name: "Structural", Code: "doc_category_structural", Sort: 2},
			{Name: "Civil", Code: "doc_category_civil", Sort: 3},
			{Name: "Services", Code: "doc_category_services", Sort: 4},
			{Name: "Specifications", Code: "doc_category_specifications", Sort: 5},
			{Name: "Reports", Code: "doc_category_reports", Sort: 6},
		}
		for _, c := range categories {
			if err := tx.Where(&Dict{
				Code:     c.Code,
				ParentID: categoryDict.ID,
			}).Attrs(&Dict{
				Name:  c.Name,
				Value: c.Name,
				Sort:  c.Sort,
			}).FirstOrCreate(&Dict{}).Error; err != nil {
				return fmt.Errorf("create dict failed: %v", err)
			}
		}

		// 成本计划分区字典
		sectionDict := &Dict{
			Name:     "成本分区",
			Code:     constant.DictTypeCodeCostSection,
			Value:    "成本分区",
			ParentID: 0,
			Sort:     1,
		}
		if err := tx.Model(&Dict{}).Where(&Dict{
			Code: sectionDict.Code,
		}).Attrs(sectionDict).FirstOrCreate(sectionDict).Error; err != nil {
			return fmt.Errorf("create dict failed: %v", err)
		}
		sections := []struct {
			Name string
			Code string
			Sort int
		}{
			{Name: "Fees", Code: "cost_section_fees", Sort: 1},
			{Name: "Consultants", Code: "cost_section_consultants", Sort: 2},
			{Name: "Construction", Code: "cost_section_construction", Sort: 3},
			{Name: "Contingency", Code: "cost_section_contingency", Sort: 4},
		}
		for _, s := range sections {
			if err := tx.Where(&Dict{
				Code:     s.Code,
				ParentID: sectionDict.ID,
			}).Attrs(&Dict{
				Name:  s.Name,
				Value: s.Name,
				Sort:  s.Sort,
			}).FirstOrCreate(&Dict{}).Error; err != nil {
				return fmt.Errorf("create dict failed: %v", err)
			}
		}

		return nil
	})
}
