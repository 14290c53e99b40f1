package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"github.com/henok-tadesse/socialnet/internal/handler/http/dto"
	"github.com/henok-tadesse/socialnet/internal/usecase"
	usecasecontract "github.com/henok-tadesse/socialnet/internal/usecase/contract"
)

type PostHandler struct {
	postUsecase usecasecontract.IPostUseCase
}

func NewPostHandler(postUsecase usecasecontract.IPostUseCase) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
	}
}

func (h *PostHandler) CreatePostHandler(c *gin.Context) {
	userID, ok := PrincipalID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CreatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.postUsecase.CreatePost(c.Request.Context(), userID, req.Content, req.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyPostContent):
			ErrorHandler(c, http.StatusBadRequest, "Post content is required")
		case errors.Is(err, contract.ErrUserNotFound):
			ErrorHandler(c, http.StatusUnauthorized, "User not found")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to create post")
		}
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToPostResponse(*post))
}

func (h *PostHandler) GetPostHandler(c *gin.Context) {
	postID := c.Param("postID")

	post, err := h.postUsecase.GetPost(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, contract.ErrPostNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Post not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToPostResponse(*post))
}

func (h *PostHandler) DeletePostHandler(c *gin.Context) {
	postID := c.Param("postID")
	userID, ok := PrincipalID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	err := h.postUsecase.DeletePost(c.Request.Context(), userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrPostNotFound):
			ErrorHandler(c, http.StatusNotFound, "Post not found")
		case errors.Is(err, usecase.ErrNotPostAuthor):
			ErrorHandler(c, http.StatusForbidden, "You cannot delete this post")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to delete post")
		}
		return
	}

	MessageHandler(c, http.StatusOK, "Post deleted successfully")
}

func (h *PostHandler) GetFeedHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	opts := &contract.PostFilterOptions{
		Page:     page,
		PageSize: pageSize,
	}
	if author := c.Query("author_id"); author != "" {
		opts.AuthorID = &author
	}

	posts, total, err := h.postUsecase.ListFeed(c.Request.Context(), opts)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch feed")
		return
	}

	resp := dto.FeedResponse{
		Posts:    make([]dto.PostResponse, 0, len(posts)),
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.PageSize,
	}
	for _, post := range posts {
		resp.Posts = append(resp.Posts, dto.ToPostResponse(post))
	}

	SuccessHandler(c, http.StatusOK, resp)
}
