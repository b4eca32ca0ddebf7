package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	federationsCollection = "federations"
	playersCollection     = "players"
	tournamentsCollection = "tournaments"
	resultsCollection     = "tournament_results"
)

// EnsureMongoIndexes creates the indexes the mongo repositories rely on: unique federation
// codes, one result per (tournament, player) and the sort keys of the list views.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		federationsCollection: {
			{
				Keys:    bson.D{{Key: "code", Value: 1}},
				Options: options.Index().SetName(federationsCodeConstraint).SetUnique(true),
			},
		},
		tournamentsCollection: {
			{Keys: bson.D{{Key: "start_date", Value: -1}}},
		},
		resultsCollection: {
			{
				Keys:    bson.D{{Key: "tournament_id", Value: 1}, {Key: "player_id", Value: 1}},
				Options: options.Index().SetName(resultsPairConstraint).SetUnique(true),
			},
			{Keys: bson.D{{Key: "player_id", Value: 1}}},
		},
	}

	for collection, specs := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, specs); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

// containsFilter matches documents whose field contains search, ignoring case.
// An empty search matches everything.
func containsFilter(search string, fields ...string) bson.M {
	if search == "" {
		return bson.M{}
	}
	regex := primitive.Regex{Pattern: literalRegex(search), Options: "i"}
	if len(fields) == 1 {
		return bson.M{fields[0]: regex}
	}
	or := make(bson.A, 0, len(fields))
	for _, field := range fields {
		or = append(or, bson.M{field: regex})
	}
	return bson.M{"$or": or}
}

// joinPipeline matches results on matchField, embeds the document from the `from` collection whose
// _id equals localField, drops results without a match, then sorts and caps the output.
func joinPipeline(matchField, id, from, localField, as string, sort bson.D, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: matchField, Value: id}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: from},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: as},
		}}},
		{{Key: "$unwind", Value: "$" + as}},
		{{Key: "$sort", Value: sort}},
		{{Key: "$limit", Value: int64(limit)}},
	}
}
