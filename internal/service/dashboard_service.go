package service

import (
	"time"

	"github.com/sraidytech/Inventory-Management-sub001/internal/apperr"
	"github.com/sraidytech/Inventory-Management-sub001/internal/repository"
)

type DashboardService interface {
	GetStats(userID string, from, to time.Time) (*repository.DashboardStats, error)
}

type dashboardService struct {
	txRepo      repository.TransactionRepository
	recentLimit int
}

func NewDashboardService(txRepo repository.TransactionRepository, recentLimit int) DashboardService {
	if recentLimit <= 0 {
		recentLimit = 5
	}
	return &dashboardService{txRepo: txRepo, recentLimit: recentLimit}
}

// GetStats recomputes every aggregate per request; there is no caching or
// incremental maintenance.
func (s *dashboardService) GetStats(userID string, from, to time.Time) (*repository.DashboardStats, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, -1, 0)
	}
	stats, err := s.txRepo.GetDashboardStats(userID, from, to, s.recentLimit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return stats, nil
}
