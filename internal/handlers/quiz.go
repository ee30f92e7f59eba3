package handlers

import (
	"errors"
	"net/http"

	"quizdeck/internal/models"
	"quizdeck/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO shared by create and update: title plus the full question list.
// Structural validation happens in the service so error messages match the
// documented contract; binding only rejects malformed JSON.
type quizRequest struct {
	Title     string            `json:"title"`
	Questions []models.Question `json:"questions"`
}

// serverError logs the internal cause and returns an opaque 500 body so
// storage details never leak to the client.
func (h *Handler) serverError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
}

// quizError maps domain errors from the quiz service onto HTTP statuses.
func (h *Handler) quizError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, service.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
	default:
		h.serverError(c, logKey, err, kv...)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      List quizzes
// @Description  Summary form only: id, title, question count, creation time. Question bodies and correct answers are never included.
// @Tags         quizzes
// @Produce      json
// @Success      200  {array}   models.QuizSummary
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/quizzes [get]
// @Security     BearerAuth
func (h *Handler) listQuizzes(c *gin.Context) {
	summaries, err := h.services.Quizzes.List(c.Request.Context())
	if err != nil {
		h.serverError(c, "quiz_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// @Summary      Get a quiz by id
// @Tags         quizzes
// @Produce      json
// @Param        id   path      string  true  "Quiz id"
// @Success      200  {object}  models.Quiz
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/quizzes/{id} [get]
// @Security     BearerAuth
func (h *Handler) getQuiz(c *gin.Context) {
	id := c.Param("id")
	quiz, err := h.services.Quizzes.Get(c.Request.Context(), id)
	if err != nil {
		h.quizError(c, "quiz_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// @Summary      Create a quiz
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        body  body      quizRequest  true  "Quiz payload"
// @Success      201   {object}  models.Quiz
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/quizzes [post]
// @Security     BearerAuth
func (h *Handler) createQuiz(c *gin.Context) {
	var req quizRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	quiz, err := h.services.Quizzes.Create(c.Request.Context(), req.Title, req.Questions)
	if err != nil {
		h.quizError(c, "quiz_create_failed", err, "title", req.Title)
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// @Summary      Replace a quiz (admin only)
// @Description  Full replace of title and questions; not a patch.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Quiz id"
// @Param        body  body      quizRequest  true  "Quiz payload"
// @Success      200   {object}  models.Quiz
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/quizzes/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateQuiz(c *gin.Context) {
	var req quizRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	id := c.Param("id")
	quiz, err := h.services.Quizzes.Update(c.Request.Context(), id, req.Title, req.Questions)
	if err != nil {
		h.quizError(c, "quiz_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// @Summary      Delete a quiz (admin only)
// @Tags         quizzes
// @Produce      json
// @Param        id   path      string  true  "Quiz id"
// @Success      200  {object}  map[string]string  "message"
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/quizzes/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteQuiz(c *gin.Context) {
	id := c.Param("id")
	if err := h.services.Quizzes.Delete(c.Request.Context(), id); err != nil {
		h.quizError(c, "quiz_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "quiz deleted"})
}
