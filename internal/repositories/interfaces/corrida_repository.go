package interfaces

import (
	"context"
	"time"

	"fretedash/internal/models"
	"fretedash/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CorridaRepository interface {
	Create(ctx context.Context, corrida *models.Corrida) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Corrida, error)
	GetBySolicitacaoID(ctx context.Context, solicitacaoID primitive.ObjectID) (*models.Corrida, error)
	List(ctx context.Context, status models.CorridaStatus, params *utils.PaginationParams) ([]*models.Corrida, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// AtribuirMotorista is a conditional update on {_id, status: pendente,
	// versao}; it returns ErrConflitoVersao when the filter matches nothing.
	AtribuirMotorista(ctx context.Context, id, motoristaID primitive.ObjectID, versao int64) error

	// Dashboard aggregations.
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.CorridaStatus) (int64, error)
	SumValorFinalizadas(ctx context.Context) (float64, error)
	SumValorFinalizadasEntre(ctx context.Context, inicio, fim time.Time) (float64, error)
	AvaliacaoMedia(ctx context.Context) (float64, error)
}
