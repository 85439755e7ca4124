package services

import (
	"errors"
	"time"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/auth"
	"tradelab_backend/internal/dto"
	"tradelab_backend/internal/models"
	"tradelab_backend/internal/repositories"
)

type PerformanceService interface {
	// Record пишет месячные метрики клиента. Одна строка на
	// (client, month): дубликат месяца вернет UniquenessViolation.
	Record(req *dto.RecordPerformanceRequest) (*models.TradingPerformance, error)
	ListOwn(caller auth.Identity) ([]models.TradingPerformance, error)
	GetOwnMonth(caller auth.Identity, month time.Time) (*models.TradingPerformance, error)
}

type performanceService struct {
	performanceRepo repositories.PerformanceRepository
	clientRepo      repositories.ClientRepository
}

func NewPerformanceService(
	performanceRepo repositories.PerformanceRepository,
	clientRepo repositories.ClientRepository,
) PerformanceService {
	return &performanceService{performanceRepo: performanceRepo, clientRepo: clientRepo}
}

func (s *performanceService) Record(req *dto.RecordPerformanceRequest) (*models.TradingPerformance, error) {
	if _, err := s.clientRepo.FindByID(req.ClientID); err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return nil, appErrors.ReferentialViolation(err, "trading_performance",
				"performance record references a nonexistent client")
		}
		return nil, err
	}

	record := &models.TradingPerformance{
		ClientID:        req.ClientID,
		Month:           models.MonthKey(req.Month),
		TotalTrades:     req.TotalTrades,
		WinningTrades:   req.WinningTrades,
		LosingTrades:    req.LosingTrades,
		TotalPips:       req.TotalPips,
		ProfitLoss:      req.ProfitLoss,
		WinRate:         req.WinRate,
		RiskRewardRatio: req.RiskRewardRatio,
		MaxDrawdown:     req.MaxDrawdown,
	}

	if err := s.performanceRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *performanceService) ListOwn(caller auth.Identity) ([]models.TradingPerformance, error) {
	if err := auth.Authorize(caller, auth.EntityPerform, auth.ActionRead,
		auth.RowAttrs{OwnerID: caller.ClientID}); err != nil {
		return nil, appErrors.AuthorizationDenied("performance records are readable only by their owner")
	}
	return s.performanceRepo.FindByClient(caller.ClientID)
}

func (s *performanceService) GetOwnMonth(caller auth.Identity, month time.Time) (*models.TradingPerformance, error) {
	if err := auth.Authorize(caller, auth.EntityPerform, auth.ActionRead,
		auth.RowAttrs{OwnerID: caller.ClientID}); err != nil {
		return nil, appErrors.AuthorizationDenied("performance records are readable only by their owner")
	}

	record, err := s.performanceRepo.FindByClientMonth(caller.ClientID, month)
	if err != nil {
		if errors.Is(err, repositories.ErrPerformanceNotFound) {
			return nil, appErrors.ErrNotFound(err, "performance record")
		}
		return nil, err
	}
	return record, nil
}
