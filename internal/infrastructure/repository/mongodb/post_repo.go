package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"github.com/henok-tadesse/socialnet/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository represents the MongoDB implementation of the IPostRepository
// interface.
type PostRepository struct {
	collection *mongo.Collection
}

var _ contract.IPostRepository = (*PostRepository)(nil)

// NewPostRepository creates and returns a new PostRepository instance.
func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		collection: db.Collection("posts"),
	}
}

// EnsureIndexes creates the feed listing indexes.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create post indexes: %w", err)
	}
	return nil
}

// CreatePost inserts a new post record with zero-initialized counters.
func (r *PostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	post.LikeCount = 0
	post.DislikeCount = 0
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt

	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

// GetPostByID retrieves a post by its ID.
func (r *PostRepository) GetPostByID(ctx context.Context, id string) (*entity.Post, error) {
	var post entity.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	return &post, nil
}

// ExistsPost reports whether a post exists without decoding the document.
func (r *PostRepository) ExistsPost(ctx context.Context, id string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}
	return count > 0, nil
}

// DeletePost removes the post document.
func (r *PostRepository) DeletePost(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrPostNotFound
	}
	return nil
}

// ListPosts returns one feed page, newest first, plus the total count.
func (r *PostRepository) ListPosts(ctx context.Context, opts *contract.PostFilterOptions) ([]entity.Post, int64, error) {
	filter := bson.M{}
	if opts.AuthorID != nil && *opts.AuthorID != "" {
		filter["author_id"] = *opts.AuthorID
	}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((opts.Page - 1) * opts.PageSize)).
		SetLimit(int64(opts.PageSize))

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []entity.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, totalCount, nil
}
