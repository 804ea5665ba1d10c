package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/maze-sprint-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BestTimeRepo handles the persistence of per-player best completion times.
type BestTimeRepo struct {
	collection *mongo.Collection
}

// NewBestTimeRepo creates a new BestTimeRepo with the given MongoDB client, database name, and collection name.
func NewBestTimeRepo(client *mongo.Client, dbName, collectionName string) *BestTimeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &BestTimeRepo{
		collection: collection,
	}
}

// SaveIfBetter stores the record unless the player already holds an equal or
// faster time for the level. The $min update keeps the write atomic, so two
// racing finishes cannot overwrite a faster time with a slower one.
func (b *BestTimeRepo) SaveIfBetter(bt *dmn.BestTime) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	existing, err := b.ByPlayerAndLevel(bt.PlayerID, bt.Level)
	if err != nil {
		return false, err
	}

	filter := bson.M{"playerId": bt.PlayerID, "level": bt.Level}
	update := bson.M{
		"$min": bson.M{"seconds": bt.Seconds},
		"$set": bson.M{"updatedAt": time.Now()},
		"$setOnInsert": bson.M{
			"playerId": bt.PlayerID,
			"level":    bt.Level,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := b.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return false, errors.New("unexpected error: " + err.Error())
	}

	return existing == nil || bt.Seconds < existing.Seconds, nil
}

// ByPlayer retrieves all best-time records for a player, lowest level first.
// Records that fail to decode are skipped rather than failing the whole
// read.
func (b *BestTimeRepo) ByPlayer(playerID uuid.UUID) ([]*dmn.BestTime, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"playerId": playerID}
	opts := options.Find().SetSort(bson.M{"level": 1})
	cursor, err := b.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	records := make([]*dmn.BestTime, 0)
	for cursor.Next(ctx) {
		var record dmn.BestTime
		if err := cursor.Decode(&record); err != nil {
			continue
		}
		records = append(records, &record)
	}

	return records, nil
}

// ByPlayerAndLevel retrieves one record, or nil when the player has no best
// time for the level yet.
func (b *BestTimeRepo) ByPlayerAndLevel(playerID uuid.UUID, level int) (*dmn.BestTime, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"playerId": playerID, "level": level}
	var record dmn.BestTime
	if err := b.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &record, nil
}
