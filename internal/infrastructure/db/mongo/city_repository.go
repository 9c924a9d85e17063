package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikelm2020/estatehub/internal/core/domain"
)

const collectionCities = "cities"

type CityRepository struct {
	col *mongo.Collection
}

func NewCityRepository(db *mongo.Database) *CityRepository {
	return &CityRepository{col: db.Collection(collectionCities)}
}

func (r *CityRepository) Create(ctx context.Context, c *domain.City) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *CityRepository) FindByID(ctx context.Context, id string) (*domain.City, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.City
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCityNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CityRepository) FindAll(ctx context.Context) ([]*domain.City, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cities []*domain.City
	if err := cursor.All(ctx, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *CityRepository) Update(ctx context.Context, c *domain.City) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCityNotFound
	}
	return nil
}

func (r *CityRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrCityNotFound
	}
	return nil
}

// EnsureIndexes creates the index backing state lookups.
func (r *CityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "state_id", Value: 1}},
	})
	return err
}
