package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/kordia/tender_tools/internal/model"
)

type costLineService struct {
	*BaseService[*model.CostLine]
}

func NewCostLineService() *costLineService {
	return &costLineService{
		NewBaseService[*model.CostLine](),
	}
}

func (s *costLineService) NewModel() *model.CostLine {
	return &model.CostLine{}
}

func (s *costLineService) BuildCondition(query *gorm.DB, condition *model.CostLine) *gorm.DB {
	if condition.ProjectID != 0 {
		query = query.Where("project_id = ?", condition.ProjectID)
	}
	if condition.Section != "" {
		query = query.Where("section = ?", condition.Section)
	}
	if condition.Name != "" {
		query = query.Where("name LIKE ?", "%"+condition.Name+"%")
	}
	return query
}

func (s *costLineService) ListOrder() string {
	return "section, sort"
}

func (s *costLineService) ListByProject(ctx context.Context, projectID uint64) ([]*model.CostLine, error) {
	var records []*model.CostLine
	if err := s.db.Where("project_id = ?", projectID).Order("section, sort").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
