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

type corridaRepository struct {
	collection *mongo.Collection
}

func NewCorridaRepository(db *mongo.Database) interfaces.CorridaRepository {
	return &corridaRepository{
		collection: db.Collection("corridas"),
	}
}

func (r *corridaRepository) Create(ctx context.Context, corrida *models.Corrida) error {
	if corrida.ID.IsZero() {
		corrida.ID = primitive.NewObjectID()
	}
	corrida.Versao = 1
	corrida.CreatedAt = time.Now()
	corrida.UpdatedAt = corrida.CreatedAt

	_, err := r.collection.InsertOne(ctx, corrida)
	if err != nil {
		return fmt.Errorf("failed to create corrida: %w", err)
	}

	return nil
}

func (r *corridaRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Corrida, error) {
	var corrida models.Corrida
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&corrida)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("failed to get corrida: %w", err)
	}

	return &corrida, nil
}

func (r *corridaRepository) GetBySolicitacaoID(ctx context.Context, solicitacaoID primitive.ObjectID) (*models.Corrida, error) {
	var corrida models.Corrida
	err := r.collection.FindOne(ctx, bson.M{"solicitacao_id": solicitacaoID}).Decode(&corrida)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("failed to get corrida by solicitacao: %w", err)
	}

	return &corrida, nil
}

func (r *corridaRepository) List(ctx context.Context, status models.CorridaStatus, params *utils.PaginationParams) ([]*models.Corrida, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count corridas: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list corridas: %w", err)
	}
	defer cursor.Close(ctx)

	var corridas []*models.Corrida
	if err := cursor.All(ctx, &corridas); err != nil {
		return nil, 0, fmt.Errorf("failed to decode corridas: %w", err)
	}

	return corridas, total, nil
}

func (r *corridaRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update corrida: %w", err)
	}
	if res.MatchedCount == 0 {
		return interfaces.ErrNaoEncontrado
	}

	return nil
}

func (r *corridaRepository) AtribuirMotorista(ctx context.Context, id, motoristaID primitive.ObjectID, versao int64) error {
	now := time.Now()

	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{
			"_id":    id,
			"status": models.CorridaStatusPendente,
			"versao": versao,
		},
		bson.M{
			"$set": bson.M{
				"motorista_id": motoristaID,
				"status":       models.CorridaStatusAtribuida,
				"data_inicio":  now,
				"updated_at":   now,
			},
			"$inc": bson.M{"versao": 1},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to assign motorista: %w", err)
	}
	if res.MatchedCount == 0 {
		return interfaces.ErrConflitoVersao
	}

	return nil
}

func (r *corridaRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count corridas: %w", err)
	}
	return total, nil
}

func (r *corridaRepository) CountByStatus(ctx context.Context, status models.CorridaStatus) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count corridas by status: %w", err)
	}
	return total, nil
}

func (r *corridaRepository) SumValorFinalizadas(ctx context.Context) (float64, error) {
	return r.sumValor(ctx, bson.M{"status": models.CorridaStatusFinalizada})
}

func (r *corridaRepository) SumValorFinalizadasEntre(ctx context.Context, inicio, fim time.Time) (float64, error) {
	return r.sumValor(ctx, bson.M{
		"status":   models.CorridaStatusFinalizada,
		"data_fim": bson.M{"$gte": inicio, "$lt": fim},
	})
}

// sumValor ignores documents whose valor is null: $sum skips non-numeric values.
func (r *corridaRepository) sumValor(ctx context.Context, match bson.M) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$valor"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to sum valor: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode valor sum: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}

func (r *corridaRepository) AvaliacaoMedia(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status":    models.CorridaStatusFinalizada,
			"avaliacao": bson.M{"$gte": 1},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"media": bson.M{"$avg": "$avaliacao"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to average avaliacao: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Media float64 `bson:"media"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode avaliacao average: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Media, nil
}
