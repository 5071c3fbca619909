package interfaces

import (
	"context"

	"fretedash/internal/models"
	"fretedash/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SolicitacaoRepository interface {
	Create(ctx context.Context, solicitacao *models.Solicitacao) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Solicitacao, error)
	List(ctx context.Context, status models.SolicitacaoStatus, params *utils.PaginationParams) ([]*models.Solicitacao, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
}
