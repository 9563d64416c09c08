package service

import (
	"gorm.io/gorm"

	"github.com/kordia/tender_tools/internal/model"
)

type consultantService struct {
	*BaseService[*model.Consultant]
}

func NewConsultantService() *consultantService {
	return &consultantService{
		NewBaseService[*model.Consultant](),
	}
}

func (s *consultantService) NewModel() *model.Consultant {
	return &model.Consultant{}
}

func (s *consultantService) CheckDuplicate(record *model.Consultant) (bool, error) {
	query := s.db.Model(s.NewModel()).Where(&model.Consultant{
		Name: record.Name,
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

func (s *consultantService) BuildCondition(query *gorm.DB, condition *model.Consultant) *gorm.DB {
	if condition.Name != "" {
		query = query.Where("name LIKE ?", "%"+condition.Name+"%")
	}
	if condition.Discipline != "" {
		query = query.Where("discipline = ?", condition.Discipline)
	}
	if condition.Status != 0 {
		query = query.Where("status = ?", condition.Status)
	}
	return query
}

// /////////////////////////////

type contractorService struct {
	*BaseService[*model.Contractor]
}

func NewContractorService() *contractorService {
	return &contractorService{
		NewBaseService[*model.Contractor](),
	}
}

func (s *contractorService) NewModel() *model.Contractor {
	return &model.Contractor{}
}

func (s *contractorService) CheckDuplicate(record *model.Contractor) (bool, error) {
	query := s.db.Model(s.NewModel()).Where(&model.Contractor{
		Name: record.Name,
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

func (s *contractorService) BuildCondition(query *gorm.DB, condition *model.Contractor) *gorm.DB {
	if condition.Name != "" {
		query = query.Where("name LIKE ?", "%"+condition.Name+"%")
	}
	if condition.Trade != "" {
		query = query.Where("trade = ?", condition.Trade)
	}
	if condition.Status != 0 {
		query = query.Where("status = ?", condition.Status)
	}
	return query
}
