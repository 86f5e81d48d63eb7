package auth

import (
	"errors"

	"github.com/blognest/core/internal/middleware"
	"github.com/blognest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")

	g.POST("/signup", h.signup)
	g.POST("/verify-otp", h.verifyOTP)
	g.POST("/login", h.login)
	g.POST("/google-login", h.googleLogin)
	g.POST("/forgot-password", h.forgotPassword)
	g.POST("/reset-password", h.resetPassword)

	a := g.Group("", authMW)
	a.GET("/me", h.me)
	a.PUT("/update-profile", h.updateProfile)
	a.POST("/upload-profile-picture", h.setProfilePicture)
}

func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.Signup(c.Request.Context(), &dto); err != nil {
		if errors.Is(err, ErrUserExists) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"message": "OTP sent to your email"})
}

func (h *Handler) verifyOTP(c *gin.Context) {
	var dto VerifyOTPDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, err := h.svc.VerifyOTP(c.Request.Context(), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidOTP), errors.Is(err, ErrOTPExpired):
			response.BadRequest(c, err.Error())
		case errors.Is(err, ErrUserNotFound):
			response.NotFound(c, ErrUserNotFound.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"token": token})
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, err := h.svc.Login(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"token": token})
}

func (h *Handler) googleLogin(c *gin.Context) {
	var dto GoogleLoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, created, err := h.svc.GoogleLogin(c.Request.Context(), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if created {
		response.Created(c, gin.H{"token": token})
		return
	}
	response.OK(c, gin.H{"token": token})
}

func (h *Handler) forgotPassword(c *gin.Context) {
	var dto ForgotPasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.ForgotPassword(c.Request.Context(), dto.Email); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(c, ErrUserNotFound.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "OTP sent to your email"})
}

func (h *Handler) resetPassword(c *gin.Context) {
	var dto ResetPasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.ResetPassword(c.Request.Context(), &dto); err != nil {
		switch {
		case errors.Is(err, ErrInvalidOTP), errors.Is(err, ErrOTPExpired):
			response.BadRequest(c, err.Error())
		case errors.Is(err, ErrUserNotFound):
			response.NotFound(c, ErrUserNotFound.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"message": "Password reset successful"})
}

func (h *Handler) me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	user, err := h.svc.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(c, ErrUserNotFound.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, user)
}

func (h *Handler) updateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.UpdateProfile(c.Request.Context(), userID, &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.BadRequest(c, err.Error())
		case errors.Is(err, ErrUserNotFound):
			response.NotFound(c, ErrUserNotFound.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, user)
}

func (h *Handler) setProfilePicture(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	var dto ProfilePictureDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.SetProfilePicture(c.Request.Context(), userID, dto.ProfilePicture); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(c, ErrUserNotFound.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Profile picture updated"})
}
