package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fretedash/internal/models"
	"fretedash/internal/repositories/interfaces"
	"fretedash/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type solicitacaoRepository struct {
	collection *mongo.Collection
}

func NewSolicitacaoRepository(db *mongo.Database) interfaces.SolicitacaoRepository {
	return &solicitacaoRepository{
		collection: db.Collection("solicitacoes"),
	}
}

func (r *solicitacaoRepository) Create(ctx context.Context, solicitacao *models.Solicitacao) error {
	if solicitacao.ID.IsZero() {
		solicitacao.ID = primitive.NewObjectID()
	}
	solicitacao.CreatedAt = time.Now()
	solicitacao.UpdatedAt = solicitacao.CreatedAt

	_, err := r.collection.InsertOne(ctx, solicitacao)
	if err != nil {
		return fmt.Errorf("failed to create solicitacao: %w", err)
	}

	return nil
}

func (r *solicitacaoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Solicitacao, error) {
	var solicitacao models.Solicitacao
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&solicitacao)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("failed to get solicitacao: %w", err)
	}

	return &solicitacao, nil
}

func (r *solicitacaoRepository) List(ctx context.Context, status models.SolicitacaoStatus, params *utils.PaginationParams) ([]*models.Solicitacao, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count solicitacoes: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list solicitacoes: %w", err)
	}
	defer cursor.Close(ctx)

	var solicitacoes []*models.Solicitacao
	if err := cursor.All(ctx, &solicitacoes); err != nil {
		return nil, 0, fmt.Errorf("failed to decode solicitacoes: %w", err)
	}

	return solicitacoes, total, nil
}

func (r *solicitacaoRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update solicitacao: %w", err)
	}
	if res.MatchedCount == 0 {
		return interfaces.ErrNaoEncontrado
	}

	return nil
}
