package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Dosada05/chess-registry/models"
)

type mongoResultRepository struct {
	coll *mongo.Collection
}

func NewMongoResultRepository(db *mongo.Database) ResultRepository {
	return &mongoResultRepository{coll: db.Collection(resultsCollection)}
}

func (r *mongoResultRepository) Create(ctx context.Context, res *models.TournamentResult) error {
	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrResultConflict
		}
		return err
	}
	return nil
}

func tournamentResultsPipeline(tournamentID string, limit int) mongo.Pipeline {
	sort := bson.D{{Key: "rank", Value: 1}, {Key: "created_at", Value: 1}}
	return joinPipeline("tournament_id", tournamentID, playersCollection, "player_id", "player", sort, limit)
}

func playerResultsPipeline(playerID string, limit int) mongo.Pipeline {
	sort := bson.D{{Key: "tournament.start_date", Value: -1}, {Key: "created_at", Value: 1}}
	return joinPipeline("player_id", playerID, tournamentsCollection, "tournament_id", "tournament", sort, limit)
}

func (r *mongoResultRepository) ListByTournament(ctx context.Context, tournamentID string, limit int) ([]models.ResultWithPlayer, error) {
	cursor, err := r.coll.Aggregate(ctx, tournamentResultsPipeline(tournamentID, limit))
	if err != nil {
		return nil, err
	}

	results := make([]models.ResultWithPlayer, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *mongoResultRepository) ListByPlayer(ctx context.Context, playerID string, limit int) ([]models.ResultWithTournament, error) {
	cursor, err := r.coll.Aggregate(ctx, playerResultsPipeline(playerID, limit))
	if err != nil {
		return nil, err
	}

	results := make([]models.ResultWithTournament, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
