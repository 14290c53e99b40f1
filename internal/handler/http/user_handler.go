package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"github.com/henok-tadesse/socialnet/internal/handler/http/dto"
	"github.com/henok-tadesse/socialnet/internal/usecase"
	usecasecontract "github.com/henok-tadesse/socialnet/internal/usecase/contract"
)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req.FullName, req.Email, req.Password, req.Age)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			ErrorHandler(c, http.StatusConflict, "Email already registered")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, refreshToken, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			ErrorHandler(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Login failed, please try again")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (h *UserHandler) RefreshTokenHandler(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	accessToken, refreshToken, err := h.userUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (h *UserHandler) LogoutHandler(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	MessageHandler(c, http.StatusOK, "Logged out successfully")
}

func (h *UserHandler) GetCurrentUserHandler(c *gin.Context) {
	userID, ok := PrincipalID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			ErrorHandler(c, http.StatusNotFound, "User not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

func (h *UserHandler) GetUserHandler(c *gin.Context) {
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			ErrorHandler(c, http.StatusNotFound, "User not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	userID, ok := PrincipalID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := make(map[string]interface{})
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if len(updates) == 0 {
		ErrorHandler(c, http.StatusBadRequest, "Nothing to update")
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), userID, updates)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			ErrorHandler(c, http.StatusNotFound, "User not found")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}
