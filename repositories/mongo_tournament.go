package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Dosada05/chess-registry/models"
)

type mongoTournamentRepository struct {
	coll *mongo.Collection
}

func NewMongoTournamentRepository(db *mongo.Database) TournamentRepository {
	return &mongoTournamentRepository{coll: db.Collection(tournamentsCollection)}
}

func (r *mongoTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	_, err := r.coll.InsertOne(ctx, t)
	return err
}

func (r *mongoTournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	var t models.Tournament
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *mongoTournamentRepository) List(ctx context.Context, search string, limit int) ([]models.Tournament, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, containsFilter(search, "name"), opts)
	if err != nil {
		return nil, err
	}

	tournaments := make([]models.Tournament, 0)
	if err := cursor.All(ctx, &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *mongoTournamentRepository) Update(ctx context.Context, t *models.Tournament) error {
	update := bson.M{"$set": bson.M{
		"name":         t.Name,
		"location":     t.Location,
		"start_date":   t.StartDate,
		"end_date":     t.EndDate,
		"rounds":       t.Rounds,
		"time_control": t.TimeControl,
		"arbiter":      t.Arbiter,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": t.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrTournamentNotFound
	}
	return nil
}

func (r *mongoTournamentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrTournamentNotFound
	}
	return nil
}
