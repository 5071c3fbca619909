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

type motoristaRepository struct {
	collection *mongo.Collection
}

func NewMotoristaRepository(db *mongo.Database) interfaces.MotoristaRepository {
	return &motoristaRepository{
		collection: db.Collection("motoristas"),
	}
}

func (r *motoristaRepository) Create(ctx context.Context, motorista *models.Motorista) error {
	if motorista.ID.IsZero() {
		motorista.ID = primitive.NewObjectID()
	}
	motorista.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, motorista)
	if err != nil {
		return fmt.Errorf("failed to create motorista: %w", err)
	}

	return nil
}

func (r *motoristaRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Motorista, error) {
	var motorista models.Motorista
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&motorista)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("failed to get motorista: %w", err)
	}

	return &motorista, nil
}

func (r *motoristaRepository) List(ctx context.Context, status models.MotoristaStatus, params *utils.PaginationParams) ([]*models.Motorista, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count motoristas: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list motoristas: %w", err)
	}
	defer cursor.Close(ctx)

	var motoristas []*models.Motorista
	if err := cursor.All(ctx, &motoristas); err != nil {
		return nil, 0, fmt.Errorf("failed to decode motoristas: %w", err)
	}

	return motoristas, total, nil
}

func (r *motoristaRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update motorista: %w", err)
	}
	if res.MatchedCount == 0 {
		return interfaces.ErrNaoEncontrado
	}

	return nil
}

func (r *motoristaRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete motorista: %w", err)
	}
	if res.DeletedCount == 0 {
		return interfaces.ErrNaoEncontrado
	}

	return nil
}

func (r *motoristaRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count motoristas: %w", err)
	}
	return total, nil
}

func (r *motoristaRepository) CountByStatus(ctx context.Context, status models.MotoristaStatus) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count motoristas by status: %w", err)
	}
	return total, nil
}
