package http_auth

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	usecase_auth "github.com/humanbelnik/kinomatch/internal/usecase/auth"
)

var errorStatuses = []http_common.ErrorStatus{
	{Err: usecase_auth.ErrUserExists, Status: http.StatusConflict},
	{Err: usecase_auth.ErrInvalidCredentials, Status: http.StatusUnauthorized},
	{Err: usecase_auth.ErrUserNotFound, Status: http.StatusNotFound},
	{Err: usecase_auth.ErrCodeRequired, Status: http.StatusBadRequest},
	{Err: usecase_auth.ErrInvalidCode, Status: http.StatusNotFound},
	{Err: usecase_auth.ErrCodesUnavailable, Status: http.StatusServiceUnavailable},
}

type Controller struct {
	uc   *usecase_auth.Usecase
	auth gin.HandlerFunc

	logger *slog.Logger
}

func New(
	uc *usecase_auth.Usecase,
	auth gin.HandlerFunc,
) *Controller {
	return &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/register", c.register)
	auth.POST("/login", c.login)
	auth.POST("/validate-code", c.validateCode)

	auth.POST("/logout", c.auth, c.logout)
	auth.GET("/me", c.auth, c.me)
	auth.GET("/invitation-code", c.auth, c.invitationCode)
}

// RegisterRequestDTO DTO for account creation
type RegisterRequestDTO struct {
	Username       string `json:"username" binding:"required,min=3,max=32" example:"lucia"`
	Email          string `json:"email" binding:"required,email" example:"lucia@example.com"`
	Password       string `json:"password" binding:"required,min=6" example:"s3cret-pass"`
	FirstName      string `json:"firstName" binding:"required" example:"Lucía"`
	LastName       string `json:"lastName" binding:"required" example:"Pérez"`
	InvitationCode string `json:"invitationCode" example:"3F9A0C1B7D2E4A56"`
}

type SessionResponseDTO struct {
	User  http_common.UserDTO `json:"user"`
	Token string              `json:"token"`
}

// @Summary Register
// @Description Creates an account. A valid invitation code creates an accepted match with its owner
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequestDTO true "New account"
// @Success 201 {object} SessionResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 409 {object} http_common.ErrorResponse "Username or email already taken"
// @Failure 500 {object} http_common.ErrorResponse
// @Router /auth/register [post]
func (c *Controller) register(ctx *gin.Context) {
	var req RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}

	user, token, err := c.uc.Register(ctx.Request.Context(), usecase_auth.Registration{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		InvitationCode: req.InvitationCode,
	})
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to register", err, errorStatuses)
		return
	}

	c.logger.Info("user registered", slog.String("user_id", user.ID.String()))
	ctx.JSON(http.StatusCreated, SessionResponseDTO{
		User:  http_common.NewUserDTO(user),
		Token: token,
	})
}

type LoginRequestDTO struct {
	Email    string `json:"email" binding:"required" example:"lucia@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequestDTO true "Credentials"
// @Success 200 {object} SessionResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 401 {object} http_common.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *Controller) login(ctx *gin.Context) {
	var req LoginRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}

	user, token, err := c.uc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to log in", err, errorStatuses)
		return
	}

	ctx.JSON(http.StatusOK, SessionResponseDTO{
		User:  http_common.NewUserDTO(user),
		Token: token,
	})
}

// @Summary Log out
// @Description Revokes the session of the presented token
// @Tags Auth
// @Success 204
// @Failure 401 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (c *Controller) logout(ctx *gin.Context) {
	token := http_common.BearerToken(ctx)
	if token == "" {
		token = ctx.Query("token")
	}

	if err := c.uc.Logout(token); err != nil {
		http_common.Fail(ctx, c.logger, "failed to log out", err, errorStatuses)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} http_common.UserDTO
// @Failure 401 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (c *Controller) me(ctx *gin.Context) {
	user, err := c.uc.Me(ctx.Request.Context(), http_common.UserID(ctx))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to load current user", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewUserDTO(user))
}

type InvitationCodeDTO struct {
	InvitationCode string `json:"invitationCode" binding:"required" example:"3F9A0C1B7D2E4A56"`
}

// @Summary Own invitation code
// @Tags Auth
// @Produce json
// @Success 200 {object} InvitationCodeDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /auth/invitation-code [get]
func (c *Controller) invitationCode(ctx *gin.Context) {
	code, err := c.uc.InvitationCode(ctx.Request.Context(), http_common.UserID(ctx))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to load invitation code", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, InvitationCodeDTO{InvitationCode: code})
}

type ValidateCodeResponseDTO struct {
	Message string                     `json:"message"`
	User    http_common.UserSummaryDTO `json:"user"`
}

// @Summary Validate an invitation code
// @Description Returns the owner of the code so the client can show who invited the user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body InvitationCodeDTO true "Code"
// @Success 200 {object} ValidateCodeResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Router /auth/validate-code [post]
func (c *Controller) validateCode(ctx *gin.Context) {
	var req InvitationCodeDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}

	owner, err := c.uc.ValidateCode(ctx.Request.Context(), req.InvitationCode)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to validate invitation code", err, errorStatuses)
		return
	}

	summary := owner.Summary()
	ctx.JSON(http.StatusOK, ValidateCodeResponseDTO{
		Message: "valid code",
		User:    *http_common.NewUserSummaryDTO(&summary),
	})
}
