package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/kordia/tender_tools/internal/constant"
	"github.com/kordia/tender_tools/internal/model"
)

type projectService struct {
	*BaseService[*model.Project]
}

func NewProjectService() *projectService {
	return &projectService{
		NewBaseService[*model.Project](),
	}
}

func (s *projectService) NewModel() *model.Project {
	return &model.Project{}
}

func (s *projectService) CheckDuplicate(record *model.Project) (bool, error) {
	if record.Code == "" {
		return false, nil
	}
	query := s.db.Model(s.NewModel()).Where(&model.Project{
		Code: record.Code,
	})
	if record.ID != 0 {
		query = query.Where("id <> ?", record.ID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *projectService) DeleteCheck(record *model.Project) error {
	var count int64
	if err := s.db.Model(&model.RftPackage{}).Where("project_id = ?", record.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return constant.ErrInvalidOperation
	}
	return nil
}

func (s *projectService) BuildCondition(query *gorm.DB, condition *model.Project) *gorm.DB {
	if condition.Name != "" {
		query = query.Where("name LIKE ?", "%"+condition.Name+"%")
	}
	if condition.Code != "" {
		query = query.Where("code LIKE ?", "%"+condition.Code+"%")
	}
	if condition.Status != 0 {
		query = query.Where("status = ?", condition.Status)
	}
	return query
}

// /////////////////////////////

type objectiveService struct {
	*BaseService[*model.Objective]
}

func NewObjectiveService() *objectiveService {
	return &objectiveService{
		NewBaseService[*model.Objective](),
	}
}

func (s *objectiveService) NewModel() *model.Objective {
	return &model.Objective{}
}

func (s *objectiveService) BuildCondition(query *gorm.DB, condition *model.Objective) *gorm.DB {
	if condition.ProjectID != 0 {
		query = query.Where("project_id = ?", condition.ProjectID)
	}
	if condition.Title != "" {
		query = query.Where("title LIKE ?", "%"+condition.Title+"%")
	}
	return query
}

func (s *objectiveService) ListOrder() string {
	return "sort"
}

func (s *objectiveService) ListByProject(ctx context.Context, projectID uint64) ([]*model.Objective, error) {
	var records []*model.Objective
	if err := s.db.Where("project_id = ?", projectID).Order("sort").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// /////////////////////////////

type activityService struct {
	*BaseService[*model.ProgramActivity]
}

func NewActivityService() *activityService {
	return &activityService{
		NewBaseService[*model.ProgramActivity](),
	}
}

func (s *activityService) NewModel() *model.ProgramActivity {
	return &model.ProgramActivity{}
}

func (s *activityService) BuildCondition(query *gorm.DB, condition *model.ProgramActivity) *gorm.DB {
	if condition.ProjectID != 0 {
		query = query.Where("project_id = ?", condition.ProjectID)
	}
	if condition.ParentID != 0 {
		query = query.Where("parent_id = ?", condition.ParentID)
	}
	if condition.Name != "" {
		query = query.Where("name LIKE ?", "%"+condition.Name+"%")
	}
	return query
}

func (s *activityService) ListOrder() string {
	return "sort_order"
}

// ListByProject 取项目全部进度活动，父子结构由导出侧整理
func (s *activityService) ListByProject(ctx context.Context, projectID uint64) ([]*model.ProgramActivity, error) {
	var records []*model.ProgramActivity
	if err := s.db.Where("project_id = ?", projectID).Order("sort_order").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
