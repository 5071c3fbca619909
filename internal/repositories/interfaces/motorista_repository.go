package interfaces

import (
	"context"

	"fretedash/internal/models"
	"fretedash/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MotoristaRepository interface {
	Create(ctx context.Context, motorista *models.Motorista) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Motorista, error)
	List(ctx context.Context, status models.MotoristaStatus, params *utils.PaginationParams) ([]*models.Motorista, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.MotoristaStatus) (int64, error)
}
