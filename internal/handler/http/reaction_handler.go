package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"github.com/henok-tadesse/socialnet/internal/domain/entity"
	"github.com/henok-tadesse/socialnet/internal/handler/http/dto"
	"github.com/henok-tadesse/socialnet/internal/usecase"
	usecasecontract "github.com/henok-tadesse/socialnet/internal/usecase/contract"
)

type ReactionHandler struct {
	reactionUsecase usecasecontract.IReactionUseCase
}

func NewReactionHandler(reactionUsecase usecasecontract.IReactionUseCase) *ReactionHandler {
	return &ReactionHandler{
		reactionUsecase: reactionUsecase,
	}
}

// ToggleReactionHandler applies one like or dislike click for the
// authenticated user and returns the committed counters.
func (h *ReactionHandler) ToggleReactionHandler(c *gin.Context) {
	postID := c.Param("postID")
	userID, ok := PrincipalID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.ReactionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	counters, err := h.reactionUsecase.Toggle(c.Request.Context(), userID, postID, entity.ReactionKind(req.Kind))
	if err != nil {
		h.writeToggleError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ReactionResponse{
		Success:  true,
		Likes:    counters.Likes,
		Dislikes: counters.Dislikes,
	})
}

// GetReactionHandler returns the caller's current reaction on a post
// alongside the post's counters.
func (h *ReactionHandler) GetReactionHandler(c *gin.Context) {
	postID := c.Param("postID")
	userID, ok := PrincipalID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	kind, counters, err := h.reactionUsecase.GetReaction(c.Request.Context(), userID, postID)
	if err != nil {
		h.writeToggleError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ReactionStateResponse{
		Success:  true,
		Kind:     string(kind),
		Likes:    counters.Likes,
		Dislikes: counters.Dislikes,
	})
}

func (h *ReactionHandler) writeToggleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidReactionKind):
		ErrorHandler(c, http.StatusBadRequest, "Reaction must be like or dislike")
	case errors.Is(err, contract.ErrPostNotFound):
		ErrorHandler(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, contract.ErrTxConflict):
		ErrorHandler(c, http.StatusConflict, "Too much contention, please retry")
	default:
		ErrorHandler(c, http.StatusInternalServerError, "Something went wrong, please try again")
	}
}
