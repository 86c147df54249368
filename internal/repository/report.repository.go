package repository

import (
	"fitnutri/internal/models"

	"gorm.io/gorm"
)

type ReportRepository interface {
	LoadAll() ([]models.RecipeReport, error)
	Save(report *models.RecipeReport) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) LoadAll() ([]models.RecipeReport, error) {
	var reports []models.RecipeReport
	err := r.db.Order("created_at").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) Save(report *models.RecipeReport) error {
	return r.db.Save(report).Error
}
