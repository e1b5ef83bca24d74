package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/pawsconnect/backend/internal/apperror"
	"github.com/pawsconnect/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetPostsByAuthor(ctx context.Context, authorID uint, skip, limit int64) ([]models.Post, error)
	GetFeed(ctx context.Context, userID uint, friendIDs []uint, skip, limit int64) ([]models.Post, error)
	UpdatePost(ctx context.Context, id string, post *models.Post) error
	SoftDeletePost(ctx context.Context, id string) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// CreatePost creates a new post in MongoDB
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.IsActive = true
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetPostByID retrieves a post by ID. Soft-deleted posts are not returned.
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NotFound("post", id)
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID, "is_active": true}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("post", id)
		}
		return nil, err
	}
	return &post, nil
}

// GetPostsByAuthor retrieves active posts by a specific user, newest first.
func (r *MongoPostRepository) GetPostsByAuthor(ctx context.Context, authorID uint, skip, limit int64) ([]models.Post, error) {
	return r.find(ctx, bson.M{"author_id": authorID, "is_active": true}, skip, limit)
}

// GetFeed returns the posts visible to a user, newest first: their own posts,
// all public posts, and friends-only posts from accepted friends. The three
// clauses run as one $or so the store computes the union; a post matching
// several clauses still appears once.
func (r *MongoPostRepository) GetFeed(ctx context.Context, userID uint, friendIDs []uint, skip, limit int64) ([]models.Post, error) {
	return r.find(ctx, FeedFilter(userID, friendIDs), skip, limit)
}

// FeedFilter builds the visibility-scoped feed query for a viewer.
func FeedFilter(userID uint, friendIDs []uint) bson.M {
	if friendIDs == nil {
		friendIDs = []uint{}
	}
	return bson.M{
		"is_active": true,
		"$or": []bson.M{
			{"author_id": userID},
			{"visibility": models.VisibilityPublic},
			{"visibility": models.VisibilityFriendsOnly, "author_id": bson.M{"$in": friendIDs}},
		},
	}
}

func (r *MongoPostRepository) find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Post, error) {
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost updates the mutable fields of an existing post.
func (r *MongoPostRepository) UpdatePost(ctx context.Context, id string, post *models.Post) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperror.NotFound("post", id)
	}

	post.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"content":        post.Content,
			"photo_url":      post.PhotoURL,
			"visibility":     post.Visibility,
			"tagged_pet_ids": post.TaggedPetIDs,
			"updated_at":     post.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID, "is_active": true}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("post", id)
	}
	return nil
}

// SoftDeletePost flips is_active to false; the document is kept.
func (r *MongoPostRepository) SoftDeletePost(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperror.NotFound("post", id)
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("post", id)
	}
	return nil
}
