package services

import (
	"context"
	"fmt"
	"time"

	"fretedash/internal/models"
	"fretedash/internal/repositories/interfaces"
	"fretedash/pkg/logger"
)

// DashboardService aggregates the operational numbers shown on the admin
// home screen. Every call hits the database; the dashboard must reflect
// assignments and finalizations made seconds ago.
type DashboardService interface {
	Resumo(ctx context.Context) (*models.DashboardResumo, error)
}

type dashboardService struct {
	corridas   interfaces.CorridaRepository
	motoristas interfaces.MotoristaRepository
	logger     *logger.Logger
}

func NewDashboardService(corridas interfaces.CorridaRepository, motoristas interfaces.MotoristaRepository, log *logger.Logger) DashboardService {
	return &dashboardService{
		corridas:   corridas,
		motoristas: motoristas,
		logger:     log,
	}
}

func (s *dashboardService) Resumo(ctx context.Context) (*models.DashboardResumo, error) {
	resumo := &models.DashboardResumo{}

	var err error
	if resumo.TotalMotoristas, err = s.motoristas.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count motoristas: %w", err)
	}
	if resumo.MotoristasAtivos, err = s.motoristas.CountByStatus(ctx, models.MotoristaStatusAtivo); err != nil {
		return nil, fmt.Errorf("failed to count motoristas ativos: %w", err)
	}
	if resumo.TotalCorridas, err = s.corridas.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count corridas: %w", err)
	}
	if resumo.CorridasFinalizadas, err = s.corridas.CountByStatus(ctx, models.CorridaStatusFinalizada); err != nil {
		return nil, fmt.Errorf("failed to count corridas finalizadas: %w", err)
	}
	if resumo.CorridasEmAndamento, err = s.corridas.CountByStatus(ctx, models.CorridaStatusAtribuida); err != nil {
		return nil, fmt.Errorf("failed to count corridas em andamento: %w", err)
	}
	if resumo.CorridasCanceladas, err = s.corridas.CountByStatus(ctx, models.CorridaStatusCancelada); err != nil {
		return nil, fmt.Errorf("failed to count corridas canceladas: %w", err)
	}

	if resumo.FaturamentoTotal, err = s.corridas.SumValorFinalizadas(ctx); err != nil {
		return nil, fmt.Errorf("failed to sum faturamento total: %w", err)
	}

	inicioMes, fimMes := janelaMesAtual(time.Now())
	if resumo.FaturamentoMes, err = s.corridas.SumValorFinalizadasEntre(ctx, inicioMes, fimMes); err != nil {
		return nil, fmt.Errorf("failed to sum faturamento do mês: %w", err)
	}

	if resumo.AvaliacaoMedia, err = s.corridas.AvaliacaoMedia(ctx); err != nil {
		return nil, fmt.Errorf("failed to compute avaliação média: %w", err)
	}

	return resumo, nil
}

// janelaMesAtual returns [first instant of the current month, first instant
// of the next month) in the local timezone.
func janelaMesAtual(agora time.Time) (time.Time, time.Time) {
	inicio := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())
	return inicio, inicio.AddDate(0, 1, 0)
}
