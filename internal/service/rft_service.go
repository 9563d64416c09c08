package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/kordia/tender_tools/internal/constant"
	"github.com/kordia/tender_tools/internal/model"
)

type rftService struct {
	*BaseService[*model.RftPackage]
}

func NewRftService() *rftService {
	return &rftService{
		NewBaseService[*model.RftPackage](),
	}
}

func (s *rftService) NewModel() *model.RftPackage {
	return &model.RftPackage{}
}

func (s *rftService) CheckDuplicate(record *model.RftPackage) (bool, error) {
	if record.Reference == "" {
		return false, nil
	}
	query := s.db.Model(s.NewModel()).Where(&model.RftPackage{
		ProjectID: record.ProjectID,
		Reference: record.Reference,
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

func (s *rftService) DeleteCheck(record *model.RftPackage) error {
	var count int64
	if err := s.db.Model(&model.Addendum{}).Where("rft_id = ?", record.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return constant.ErrInvalidOperation
	}
	return nil
}

func (s *rftService) BuildCondition(query *gorm.DB, condition *model.RftPackage) *gorm.DB {
	if condition.ProjectID != 0 {
		query = query.Where("project_id = ?", condition.ProjectID)
	}
	if condition.Title != "" {
		query = query.Where("title LIKE ?", "%"+condition.Title+"%")
	}
	if condition.Reference != "" {
		query = query.Where("reference LIKE ?", "%"+condition.Reference+"%")
	}
	if condition.Status != 0 {
		query = query.Where("status = ?", condition.Status)
	}
	return query
}

func (s *rftService) ListByProject(ctx context.Context, projectID uint64) ([]*model.RftPackage, error) {
	var records []*model.RftPackage
	if err := s.db.Where("project_id = ?", projectID).Order("reference, created_at").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// /////////////////////////////

type addendumService struct {
	*BaseService[*model.Addendum]
}

func NewAddendumService() *addendumService {
	return &addendumService{
		NewBaseService[*model.Addendum](),
	}
}

func (s *addendumService) NewModel() *model.Addendum {
	return &model.Addendum{}
}

func (s *addendumService) CheckDuplicate(record *model.Addendum) (bool, error) {
	query := s.db.Model(s.NewModel()).Where(&model.Addendum{
		RftID:  record.RftID,
		Number: record.Number,
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

func (s *addendumService) BuildCondition(query *gorm.DB, condition *model.Addendum) *gorm.DB {
	if condition.RftID != 0 {
		query = query.Where("rft_id = ?", condition.RftID)
	}
	if condition.Subject != "" {
		query = query.Where("subject LIKE ?", "%"+condition.Subject+"%")
	}
	return query
}

func (s *addendumService) ListOrder() string {
	return "number"
}

func (s *addendumService) ListByRft(ctx context.Context, rftID uint64) ([]*model.Addendum, error) {
	var records []*model.Addendum
	if err := s.db.Where("rft_id = ?", rftID).Order("number").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// /////////////////////////////

type transmittalService struct {
	*BaseService[*model.TransmittalDocument]
}

func NewTransmittalService() *transmittalService {
	return &transmittalService{
		NewBaseService[*model.TransmittalDocument](),
	}
}

func (s *transmittalService) NewModel() *model.TransmittalDocument {
	return &model.TransmittalDocument{}
}

func (s *transmittalService) BuildCondition(query *gorm.DB, condition *model.TransmittalDocument) *gorm.DB {
	if condition.RftID != 0 {
		query = query.Where("rft_id = ?", condition.RftID)
	}
	if condition.AddendumID != 0 {
		query = query.Where("addendum_id = ?", condition.AddendumID)
	}
	if condition.Category != "" {
		query = query.Where("category = ?", condition.Category)
	}
	if condition.Name != "" {
		query = query.Where("name LIKE ?", "%"+condition.Name+"%")
	}
	return query
}

func (s *transmittalService) ListOrder() string {
	return "category, subcategory, sort"
}

// ListByRft 发文清单按类别分组展示，排序必须稳定
func (s *transmittalService) ListByRft(ctx context.Context, rftID uint64) ([]*model.TransmittalDocument, error) {
	var records []*model.TransmittalDocument
	if err := s.db.Where("rft_id = ?", rftID).Order("category, subcategory, sort, drawing_number").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
