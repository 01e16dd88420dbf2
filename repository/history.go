package repository

import (
	"time"

	"github.com/ckirschner/ProjectSync/db"
	"github.com/ckirschner/ProjectSync/model"
)

type HistoryRepository struct{}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

func (r *HistoryRepository) Record(project string, op model.Operation, outcome model.Outcome, detail string) error {
	history := model.History{
		Project:   project,
		Operation: op,
		Outcome:   outcome,
		Detail:    detail,
		RanAt:     time.Now(),
	}

	return db.DB.Create(&history).Error
}

type Stats struct {
	Total     int64
	Succeeded int64
	Failed    int64
	Cancelled int64
}

func (r *HistoryRepository) GetStats() (Stats, error) {
	var stats Stats
	if err := db.DB.Model(&model.History{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}

	if err := db.DB.Model(&model.History{}).
		Where("outcome IN ?", []model.Outcome{model.OutcomeSuccess, model.OutcomeNothing}).
		Count(&stats.Succeeded).Error; err != nil {
		return stats, err
	}

	if err := db.DB.Model(&model.History{}).
		Where("outcome = ?", model.OutcomeCancelled).
		Count(&stats.Cancelled).Error; err != nil {
		return stats, err
	}

	stats.Failed = stats.Total - stats.Succeeded - stats.Cancelled
	return stats, nil
}

func (r *HistoryRepository) GetRecent(limit int) ([]model.History, error) {
	var histories []model.History
	result := db.DB.
		Order("ran_at desc").
		Limit(limit).
		Find(&histories)

	return histories, result.Error
}

func (r *HistoryRepository) GetFailed() ([]model.History, error) {
	var histories []model.History
	result := db.DB.
		Where("outcome = ?", model.OutcomeFailed).
		Order("ran_at desc").
		Find(&histories)

	return histories, result.Error
}
