package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"github.com/henok-tadesse/socialnet/internal/domain/entity"
	"github.com/henok-tadesse/socialnet/internal/infrastructure/metrics"
	usecasecontract "github.com/henok-tadesse/socialnet/internal/usecase/contract"
)

var (
	// ErrEmptyPostContent is returned when a post is created without content.
	ErrEmptyPostContent = errors.New("post content is required")
	// ErrNotPostAuthor is returned when a non-author tries to delete a post.
	ErrNotPostAuthor = errors.New("only the author can delete this post")
)

// PostUsecase handles post creation, deletion and feed listing. It is a thin
// collaborator of the reaction engine: it owns the post documents the counters
// live on, and cascade-deletes reactions when a post goes away.
type PostUsecase struct {
	postRepo     contract.IPostRepository
	reactionRepo contract.IReactionRepository
	userRepo     contract.IUserRepository
	txRunner     contract.ITxRunner
	uuidGen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger

	feedCache contract.IFeedCache
	cacheTTL  time.Duration
}

var _ usecasecontract.IPostUseCase = (*PostUsecase)(nil)

// NewPostUsecase creates and returns a new PostUsecase instance.
func NewPostUsecase(
	postRepo contract.IPostRepository,
	reactionRepo contract.IReactionRepository,
	userRepo contract.IUserRepository,
	txRunner contract.ITxRunner,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *PostUsecase {
	return &PostUsecase{
		postRepo:     postRepo,
		reactionRepo: reactionRepo,
		userRepo:     userRepo,
		txRunner:     txRunner,
		uuidGen:      uuidGen,
		logger:       logger,
	}
}

// SetFeedCache wires an optional Redis-backed feed page cache.
func (u *PostUsecase) SetFeedCache(cache contract.IFeedCache, ttl time.Duration) {
	u.feedCache = cache
	u.cacheTTL = ttl
}

// CreatePost creates a post with zero-initialized counters.
func (u *PostUsecase) CreatePost(ctx context.Context, authorID, content string, imageURL *string) (*entity.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyPostContent
	}
	if _, err := u.userRepo.GetUserByID(ctx, authorID); err != nil {
		return nil, fmt.Errorf("failed to resolve author: %w", err)
	}

	post := &entity.Post{
		ID:       u.uuidGen.NewUUID(),
		AuthorID: authorID,
		Content:  content,
		ImageURL: imageURL,
	}
	if err := u.postRepo.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	metrics.PostsCreated.Inc()
	u.invalidateFeed(ctx)
	return post, nil
}

// GetPost retrieves a post by ID.
func (u *PostUsecase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	post, err := u.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and every reaction attached to it in one
// transaction, so the reaction table never references a missing post.
func (u *PostUsecase) DeletePost(ctx context.Context, requesterID, postID string) error {
	post, err := u.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != requesterID {
		requester, err := u.userRepo.GetUserByID(ctx, requesterID)
		if err != nil || requester.Role != entity.UserRoleAdmin {
			return ErrNotPostAuthor
		}
	}

	err = u.txRunner.WithinTx(ctx, func(txCtx context.Context) error {
		if err := u.reactionRepo.RemoveAllForPost(txCtx, postID); err != nil {
			return fmt.Errorf("failed to cascade-delete reactions: %w", err)
		}
		return u.postRepo.DeletePost(txCtx, postID)
	})
	if err != nil {
		return err
	}
	u.invalidateFeed(ctx)
	return nil
}

// ListFeed returns a feed page, newest first, consulting the cache when one
// is wired. Cached pages carry the counters as of caching time; the reaction
// endpoints always bypass this cache.
func (u *PostUsecase) ListFeed(ctx context.Context, opts *contract.PostFilterOptions) ([]entity.Post, int64, error) {
	if opts == nil {
		opts = &contract.PostFilterOptions{}
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 || opts.PageSize > 100 {
		opts.PageSize = 20
	}

	key := feedPageKey(opts)
	if u.feedCache != nil {
		if page, ok, err := u.feedCache.GetFeedPage(ctx, key); err == nil && ok {
			return page.Posts, page.Total, nil
		}
	}

	posts, total, err := u.postRepo.ListPosts(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	if u.feedCache != nil {
		if err := u.feedCache.SetFeedPage(ctx, key, &contract.CachedFeedPage{Posts: posts, Total: total}); err != nil {
			u.logger.Warnf("failed to cache feed page %s: %v", key, err)
		}
	}
	return posts, total, nil
}

func (u *PostUsecase) invalidateFeed(ctx context.Context) {
	if u.feedCache == nil {
		return
	}
	if err := u.feedCache.InvalidateFeed(ctx); err != nil {
		u.logger.Warnf("failed to invalidate feed cache: %v", err)
	}
}

func feedPageKey(opts *contract.PostFilterOptions) string {
	author := "all"
	if opts.AuthorID != nil && *opts.AuthorID != "" {
		author = *opts.AuthorID
	}
	return fmt.Sprintf("feed:list:%s:%d:%d", author, opts.Page, opts.PageSize)
}
