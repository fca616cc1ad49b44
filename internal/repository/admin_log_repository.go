package repository

import (
	"github.com/securinets-fst/securiquiz/internal/model"
	"gorm.io/gorm"
)

type AdminLogRepository interface {
	Create(entry *model.AdminLog) error
	FindRecent(limit int) ([]model.AdminLog, error)
}

type adminLogRepository struct {
	db *gorm.DB
}

func NewAdminLogRepository(db *gorm.DB) AdminLogRepository {
	return &adminLogRepository{db: db}
}

func (r *adminLogRepository) Create(entry *model.AdminLog) error {
	return r.db.Create(entry).Error
}

func (r *adminLogRepository) FindRecent(limit int) ([]model.AdminLog, error) {
	var entries []model.AdminLog
	if err := r.db.Order("created_at desc").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
