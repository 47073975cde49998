package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ServiceRepository gives read access to the treatment catalog.
type ServiceRepository interface {
	// GetAll returns the catalog in storage order.
	GetAll(ctx context.Context) ([]models.Service, error)
	// GetNames returns the catalog projected to service names.
	GetNames(ctx context.Context) ([]models.Service, error)
}

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a catalog repository on db.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	repo := &MongoServiceRepo{coll: db.Collection("services")}

	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("serviceRepo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_name"),
	})
	if err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}

// GetAll retrieves every service.
func (r *MongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	return r.getAllWithProjection(ctx, nil)
}

// GetNames retrieves every service with only its name and ID.
func (r *MongoServiceRepo) GetNames(ctx context.Context) ([]models.Service, error) {
	return r.getAllWithProjection(ctx, bson.M{"name": 1})
}

func (r *MongoServiceRepo) getAllWithProjection(ctx context.Context, projection bson.M) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}
	return services, nil
}
