package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikelm2020/estatehub/internal/core/domain"
)

const collectionStates = "states"

type StateRepository struct {
	col *mongo.Collection
}

func NewStateRepository(db *mongo.Database) *StateRepository {
	return &StateRepository{col: db.Collection(collectionStates)}
}

func (r *StateRepository) Create(ctx context.Context, s *domain.State) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *StateRepository) FindByID(ctx context.Context, id string) (*domain.State, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.State
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStateNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *StateRepository) FindAll(ctx context.Context) ([]*domain.State, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var states []*domain.State
	if err := cursor.All(ctx, &states); err != nil {
		return nil, err
	}
	return states, nil
}

func (r *StateRepository) Update(ctx context.Context, s *domain.State) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrStateNotFound
	}
	return nil
}

func (r *StateRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrStateNotFound
	}
	return nil
}
