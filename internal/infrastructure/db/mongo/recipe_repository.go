package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
)

const recipesCollection = "recipes"

type RecipeRepository struct {
	col *mongo.Collection
}

func NewRecipeRepository(db *mongo.Database) *RecipeRepository {
	return &RecipeRepository{col: db.Collection(recipesCollection)}
}

type mongoRecipe struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Category     string             `bson:"category"`
	Area         string             `bson:"area,omitempty"`
	ImageURL     string             `bson:"image_url,omitempty"`
	YoutubeURL   string             `bson:"youtube_url,omitempty"`
	Instructions string             `bson:"instructions"`
	CreatedBy    primitive.ObjectID `bson:"created_by,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// Create inserts a new recipe document.
func (r *RecipeRepository) Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoRecipe{
		ID:           primitive.NewObjectID(),
		Title:        rec.Title,
		Category:     rec.Category,
		Area:         rec.Area,
		ImageURL:     rec.ImageURL,
		YoutubeURL:   rec.YoutubeURL,
		Instructions: rec.Instructions,
		CreatedAt:    rec.CreatedAt.UTC(),
		UpdatedAt:    rec.UpdatedAt.UTC(),
	}
	// created_by is a reference to the admin's user document
	if oid, err := primitive.ObjectIDFromHex(rec.CreatedBy); err == nil {
		doc.CreatedBy = oid
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, storeErr("insert recipe", err)
	}
	return doc.toDomain(), nil
}

// List returns all recipes, newest first. Instructions are not projected.
func (r *RecipeRepository) List(ctx context.Context) ([]*domain.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"instructions": 0})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeErr("list recipes", err)
	}
	defer cur.Close(ctx)

	var docs []mongoRecipe
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("decode recipes", err)
	}

	out := make([]*domain.Recipe, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRecipeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrRecipeNotFound
		}
		return storeErr("delete recipe", err)
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the recipes collection.
func (r *RecipeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	return err
}

func (d *mongoRecipe) toDomain() *domain.Recipe {
	rec := &domain.Recipe{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Category:     d.Category,
		Area:         d.Area,
		ImageURL:     d.ImageURL,
		YoutubeURL:   d.YoutubeURL,
		Instructions: d.Instructions,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if !d.CreatedBy.IsZero() {
		rec.CreatedBy = d.CreatedBy.Hex()
	}
	return rec
}
