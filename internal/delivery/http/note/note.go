package http_note

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	usecase_note "github.com/humanbelnik/kinomatch/internal/usecase/note"
)

var errorStatuses = []http_common.ErrorStatus{
	{Err: usecase_note.ErrNoteNotFound, Status: http.StatusNotFound},
	{Err: usecase_note.ErrMatchNotFound, Status: http.StatusNotFound},
	{Err: usecase_note.ErrNotParticipant, Status: http.StatusForbidden},
	{Err: usecase_note.ErrEmptyNote, Status: http.StatusBadRequest},
}

type Controller struct {
	uc   *usecase_note.Usecase
	auth gin.HandlerFunc

	logger *slog.Logger
}

func New(
	uc *usecase_note.Usecase,
	auth gin.HandlerFunc,
) *Controller {
	return &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	notes := router.Group("/notes", c.auth)
	{
		notes.GET("", c.list)
		notes.POST("", c.create)
		notes.DELETE("/:note_id", c.delete)
	}
}

// @Summary Notes of a match
// @Tags Notes
// @Produce json
// @Param matchId query string true "Match ID"
// @Param movieId query int false "Only notes about this movie"
// @Success 200 {array} http_common.NoteDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 403 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /notes [get]
func (c *Controller) list(ctx *gin.Context) {
	matchID, err := uuid.Parse(ctx.Query("matchId"))
	if err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}
	var movieID *int
	if raw := ctx.Query("movieId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			http_common.BadRequest(ctx, c.logger, err)
			return
		}
		movieID = &id
	}

	notes, err := c.uc.List(ctx.Request.Context(), http_common.UserID(ctx), matchID, movieID)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to list notes", err, errorStatuses)
		return
	}

	res := make([]http_common.NoteDTO, 0, len(notes))
	for _, n := range notes {
		res = append(res, http_common.NewNoteDTO(n))
	}
	ctx.JSON(http.StatusOK, res)
}

type CreateRequestDTO struct {
	MatchID uuid.UUID `json:"matchId" binding:"required" example:"5b0e3c3a-6f39-4d5e-9a43-0d2f1c7b8e11"`
	MovieID int       `json:"movieId" binding:"required,gt=0" example:"603"`
	Note    string    `json:"note" example:"Verla con subtítulos"`
}

// @Summary Add a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param request body CreateRequestDTO true "Note"
// @Success 201 {object} http_common.NoteDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 403 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /notes [post]
func (c *Controller) create(ctx *gin.Context) {
	var req CreateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}

	note, err := c.uc.Create(ctx.Request.Context(), http_common.UserID(ctx), req.MatchID, req.MovieID, req.Note)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to create note", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusCreated, http_common.NewNoteDTO(note))
}

// @Summary Delete a note
// @Tags Notes
// @Param note_id path string true "Note ID"
// @Success 204
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /notes/{note_id} [delete]
func (c *Controller) delete(ctx *gin.Context) {
	id, ok := http_common.UUIDParam(ctx, "note_id")
	if !ok {
		return
	}

	if err := c.uc.Delete(ctx.Request.Context(), http_common.UserID(ctx), id); err != nil {
		http_common.Fail(ctx, c.logger, "failed to delete note", err, errorStatuses)
		return
	}
	ctx.Status(http.StatusNoContent)
}
