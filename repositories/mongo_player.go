package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Dosada05/chess-registry/models"
)

type mongoPlayerRepository struct {
	coll *mongo.Collection
}

func NewMongoPlayerRepository(db *mongo.Database) PlayerRepository {
	return &mongoPlayerRepository{coll: db.Collection(playersCollection)}
}

func (r *mongoPlayerRepository) Create(ctx context.Context, p *models.Player) error {
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *mongoPlayerRepository) GetByID(ctx context.Context, id string) (*models.Player, error) {
	var p models.Player
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *mongoPlayerRepository) List(ctx context.Context, search string, limit int) ([]models.Player, error) {
	cursor, err := r.coll.Find(ctx, containsFilter(search, "name"), options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}

	players := make([]models.Player, 0)
	if err := cursor.All(ctx, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *mongoPlayerRepository) Update(ctx context.Context, p *models.Player) error {
	update := bson.M{"$set": bson.M{
		"name":       p.Name,
		"federation": p.Federation,
		"rating":     p.Rating,
		"title":      p.Title,
		"birth_year": p.BirthYear,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (r *mongoPlayerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrPlayerNotFound
	}
	return nil
}
