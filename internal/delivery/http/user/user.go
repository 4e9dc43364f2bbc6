package http_user

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	"github.com/humanbelnik/kinomatch/internal/model"
	usecase_user "github.com/humanbelnik/kinomatch/internal/usecase/user"
)

var errorStatuses = []http_common.ErrorStatus{
	{Err: usecase_user.ErrUserNotFound, Status: http.StatusNotFound},
	{Err: usecase_user.ErrUserExists, Status: http.StatusConflict},
	{Err: usecase_user.ErrWrongPassword, Status: http.StatusUnauthorized},
	{Err: usecase_user.ErrPasswordRequired, Status: http.StatusBadRequest},
	{Err: usecase_user.ErrQueryRequired, Status: http.StatusBadRequest},
}

type Controller struct {
	uc   *usecase_user.Usecase
	auth gin.HandlerFunc

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_user.Usecase,
	auth gin.HandlerFunc,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users", c.auth)
	{
		users.GET("/profile", c.profile)
		users.PUT("/profile", c.updateProfile)
		users.GET("/profile/:username", c.publicProfile)
		users.POST("/change-password", c.changePassword)
		users.GET("/stats", c.stats)
		users.GET("/search", c.search)
		users.DELETE("/account", c.deleteAccount)
	}
}

type ProfileDTO struct {
	http_common.UserDTO
	Favorites []http_common.FavoriteDTO `json:"favorites"`
}

// @Summary Own profile
// @Tags Users
// @Produce json
// @Success 200 {object} ProfileDTO
// @Failure 401 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /users/profile [get]
func (c *Controller) profile(ctx *gin.Context) {
	profile, err := c.uc.Profile(ctx.Request.Context(), http_common.UserID(ctx))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to load profile", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, ProfileDTO{
		UserDTO:   http_common.NewUserDTO(profile.User),
		Favorites: http_common.NewFavoriteDTOs(profile.Favorites),
	})
}

// @Summary Public profile
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} ProfileDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /users/profile/{username} [get]
func (c *Controller) publicProfile(ctx *gin.Context) {
	profile, err := c.uc.PublicProfile(ctx.Request.Context(), ctx.Param("username"))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to load public profile", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, ProfileDTO{
		UserDTO:   http_common.NewPublicUserDTO(profile.User),
		Favorites: http_common.NewFavoriteDTOs(profile.Favorites),
	})
}

// UpdateProfileRequestDTO carries only the fields to change. An empty
// image field clears the stored image.
type UpdateProfileRequestDTO struct {
	Username        *string `json:"username" form:"username" example:"lucia"`
	Email           *string `json:"email" form:"email" binding:"omitempty,email" example:"lucia@example.com"`
	FirstName       *string `json:"firstName" form:"firstName" example:"Lucía"`
	LastName        *string `json:"lastName" form:"lastName" example:"Pérez"`
	Bio             *string `json:"bio" form:"bio" example:"Cine de los 90"`
	ProfileImage    *string `json:"profileImage"`
	BackgroundImage *string `json:"backgroundImage"`
}

// @Summary Update profile
// @Description Accepts JSON or multipart form data with profileImage and backgroundImage files
// @Tags Users
// @Accept json,mpfd
// @Produce json
// @Param request body UpdateProfileRequestDTO false "Fields to change"
// @Param profileImage formData file false "Avatar up to 5MB"
// @Param backgroundImage formData file false "Background up to 5MB"
// @Success 200 {object} http_common.UserDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 409 {object} http_common.ErrorResponse "Username or email already taken"
// @Security BearerAuth
// @Router /users/profile [put]
func (c *Controller) updateProfile(ctx *gin.Context) {
	var (
		req    UpdateProfileRequestDTO
		change usecase_user.ProfileChange
	)

	if strings.HasPrefix(ctx.ContentType(), gin.MIMEMultipartPOSTForm) {
		if err := ctx.ShouldBind(&req); err != nil {
			http_common.BadRequest(ctx, c.logger, err)
			return
		}
		var err error
		if change.ProfileUpload, err = http_common.FormImage(ctx, "profileImage"); err != nil {
			c.badImage(ctx, err)
			return
		}
		if change.BackgroundUpload, err = http_common.FormImage(ctx, "backgroundImage"); err != nil {
			c.badImage(ctx, err)
			return
		}
	} else if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}

	change.Fields = model.ProfileUpdate{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	}
	// Image URLs are only ever set by uploads. JSON may clear them.
	if req.ProfileImage != nil && *req.ProfileImage == "" {
		change.Fields.ProfileImage = req.ProfileImage
	}
	if req.BackgroundImage != nil && *req.BackgroundImage == "" {
		change.Fields.BackgroundImage = req.BackgroundImage
	}

	user, err := c.uc.UpdateProfile(ctx.Request.Context(), http_common.UserID(ctx), change)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to update profile", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewUserDTO(user))
}

func (c *Controller) badImage(ctx *gin.Context, err error) {
	c.logger.Warn("bad image upload", slog.String("error", err.Error()))
	ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: http_common.ErrBadImage.Error()})
}

type ChangePasswordRequestDTO struct {
	CurrentPassword string `json:"currentPassword" example:"old-pass"`
	NewPassword     string `json:"newPassword" binding:"omitempty,min=6" example:"new-pass"`
}

// @Summary Change password
// @Tags Users
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequestDTO true "Passwords"
// @Success 200 {object} http_common.MessageResponse
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 401 {object} http_common.ErrorResponse "Wrong current password"
// @Security BearerAuth
// @Router /users/change-password [post]
func (c *Controller) changePassword(ctx *gin.Context) {
	var req ChangePasswordRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}

	err := c.uc.ChangePassword(ctx.Request.Context(), http_common.UserID(ctx), req.CurrentPassword, req.NewPassword)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to change password", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.MessageResponse{Message: "password updated"})
}

type StatsDTO struct {
	UserID              string `json:"userId"`
	Username            string `json:"username"`
	TotalFavorites      int    `json:"totalFavorites"`
	TotalMatches        int    `json:"totalMatches"`
	TotalMatchRequests  int    `json:"totalMatchRequests"`
	TotalMatchResponses int    `json:"totalMatchResponses"`
}

// @Summary Own statistics
// @Tags Users
// @Produce json
// @Success 200 {object} StatsDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /users/stats [get]
func (c *Controller) stats(ctx *gin.Context) {
	stats, err := c.uc.Stats(ctx.Request.Context(), http_common.UserID(ctx))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to load user stats", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, StatsDTO{
		UserID:              stats.UserID.String(),
		Username:            stats.Username,
		TotalFavorites:      stats.TotalFavorites,
		TotalMatches:        stats.TotalMatches,
		TotalMatchRequests:  stats.TotalMatchRequests,
		TotalMatchResponses: stats.TotalMatchResponses,
	})
}

// @Summary Search users
// @Description Case insensitive search over username and names, excluding the caller
// @Tags Users
// @Produce json
// @Param q query string true "Query"
// @Param limit query int false "Max results, default 10, at most 50"
// @Success 200 {array} http_common.UserSummaryDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /users/search [get]
func (c *Controller) search(ctx *gin.Context) {
	users, err := c.uc.Search(ctx.Request.Context(), http_common.UserID(ctx),
		ctx.Query("q"), http_common.QueryInt(ctx, "limit", 0))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to search users", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewUserSummaryDTOs(users))
}

type DeleteAccountRequestDTO struct {
	Password string `json:"password" example:"s3cret-pass"`
}

// @Summary Delete account
// @Description Deletes the caller and everything owned by them after confirming the password
// @Tags Users
// @Accept json
// @Produce json
// @Param request body DeleteAccountRequestDTO true "Password confirmation"
// @Success 200 {object} http_common.MessageResponse
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 401 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /users/account [delete]
func (c *Controller) deleteAccount(ctx *gin.Context) {
	var req DeleteAccountRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}

	if err := c.uc.DeleteAccount(ctx.Request.Context(), http_common.UserID(ctx), req.Password); err != nil {
		http_common.Fail(ctx, c.logger, "failed to delete account", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.MessageResponse{Message: "account deleted"})
}
