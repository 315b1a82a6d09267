package service

import (
	"context"
	"time"

	"github.com/adchartview/tips-api/internal/repository"
	"github.com/adchartview/tips-api/internal/transfer"
)

type AdminService interface {
	DashboardStats(ctx context.Context) (*transfer.DashboardStats, error)
}

type adminService struct {
	ur repository.UserRepository
	sr repository.SubscriptionRepository
	tr repository.TipRepository
	pm repository.PaymentRepository
}

func NewAdminService(
	ur repository.UserRepository,
	sr repository.SubscriptionRepository,
	tr repository.TipRepository,
	pm repository.PaymentRepository) AdminService {
	return &adminService{
		ur: ur,
		sr: sr,
		tr: tr,
		pm: pm,
	}
}

func (s *adminService) DashboardStats(ctx context.Context) (*transfer.DashboardStats, error) {
	totalUsers, err := s.ur.Count(ctx)
	if err != nil {
		return nil, err
	}

	activeSubscribers, err := s.sr.CountActiveSubscribers(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.pm.SumRevenue(ctx)
	if err != nil {
		return nil, err
	}

	totalTips, err := s.tr.Count(ctx)
	if err != nil {
		return nil, err
	}

	demoTips, err := s.tr.CountDemo(ctx)
	if err != nil {
		return nil, err
	}

	return &transfer.DashboardStats{
		TotalUsers:        totalUsers,
		ActiveSubscribers: activeSubscribers,
		TotalRevenue:      totalRevenue,
		TotalTips:         totalTips,
		DemoTips:          demoTips,
	}, nil
}
