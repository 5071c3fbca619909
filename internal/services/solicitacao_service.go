package services

import (
	"context"
	"errors"

	"fretedash/internal/models"
	"fretedash/internal/repositories/interfaces"
	"fretedash/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SolicitacaoService is read-only: solicitações are created through the
// corrida service and mutated only by lifecycle transitions.
type SolicitacaoService interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Solicitacao, error)
	List(ctx context.Context, status models.SolicitacaoStatus, params *utils.PaginationParams) ([]*models.Solicitacao, int64, error)
	GetCorrida(ctx context.Context, solicitacaoID primitive.ObjectID) (*models.Corrida, error)
}

type solicitacaoService struct {
	solicitacoes interfaces.SolicitacaoRepository
	corridas     interfaces.CorridaRepository
}

func NewSolicitacaoService(solicitacoes interfaces.SolicitacaoRepository, corridas interfaces.CorridaRepository) SolicitacaoService {
	return &solicitacaoService{
		solicitacoes: solicitacoes,
		corridas:     corridas,
	}
}

func (s *solicitacaoService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Solicitacao, error) {
	solicitacao, err := s.solicitacoes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNaoEncontrado) {
			return nil, ErrSolicitacaoNaoEncontrada
		}
		return nil, err
	}
	return solicitacao, nil
}

func (s *solicitacaoService) List(ctx context.Context, status models.SolicitacaoStatus, params *utils.PaginationParams) ([]*models.Solicitacao, int64, error) {
	return s.solicitacoes.List(ctx, status, params)
}

// GetCorrida resolves the corrida paired with a solicitação.
func (s *solicitacaoService) GetCorrida(ctx context.Context, solicitacaoID primitive.ObjectID) (*models.Corrida, error) {
	corrida, err := s.corridas.GetBySolicitacaoID(ctx, solicitacaoID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNaoEncontrado) {
			return nil, ErrCorridaNaoEncontrada
		}
		return nil, err
	}
	return corrida, nil
}
