package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Source supplies the catalog in popularity order.
type Source interface {
	List(ctx context.Context) ([]BotEntry, error)
}

type StaticSource struct {
	entries []BotEntry
}

func NewStaticSource(entries []BotEntry) *StaticSource {
	copied := make([]BotEntry, 0, len(entries))
	for _, e := range entries {
		copied = append(copied, e.Clone())
	}
	return &StaticSource{entries: copied}
}

func (s *StaticSource) List(ctx context.Context) ([]BotEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]BotEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Clone())
	}
	return out, nil
}

// BuiltIn is the catalog shipped with the directory page.
func BuiltIn() []BotEntry {
	return []BotEntry{
		{
			ID:          "1",
			Title:       "Tarot Whisper | Шёпот карт",
			Description: "Карта дня, быстрые расклады, подписка с премиум-спредами.",
			Tags:        []string{"Lifestyle", "AI", "Tarot"},
			Languages:   []string{"RU", "EN"},
			Rating:      4,
			Votes:       128,
		},
		{
			ID:          "2",
			Title:       "SongGift",
			Description: "Персональные песни по заявке. Мини-приложение и бот.",
			Tags:        []string{"Music", "Creator"},
			Languages:   []string{"RU"},
			Rating:      5,
			Votes:       312,
		},
		{
			ID:          "3",
			Title:       "TravelDeal Hunter",
			Description: "Мониторинг авиабилетов и отелей. Умные уведомления.",
			Tags:        []string{"Travel", "Deals"},
			Languages:   []string{"EN"},
			Rating:      4,
			Votes:       98,
		},
		{
			ID:          "4",
			Title:       "Kids StoryTime",
			Description: "Сказки на ночь по имени ребёнка. Мягкий голос и звуки.",
			Tags:        []string{"Kids", "Audio"},
			Languages:   []string{"RU", "EN"},
			Rating:      3,
			Votes:       47,
		},
	}
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) List(ctx context.Context) ([]BotEntry, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "rank", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]BotEntry, 0)
	for cursor.Next(ctx) {
		var entry BotEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, err
		}
		items = append(items, entry)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert inserts the entry or refreshes the existing document with the same slug.
func (r *MongoRepository) Upsert(ctx context.Context, entry BotEntry) error {
	filter := bson.M{"slug": entry.Slug}
	update := bson.M{
		"$setOnInsert": bson.M{"_id": entry.ID},
		"$set": bson.M{
			"title":       entry.Title,
			"description": entry.Description,
			"tags":        entry.Tags,
			"languages":   entry.Languages,
			"rating":      entry.Rating,
			"votes":       entry.Votes,
			"rank":        entry.Rank,
		},
	}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
