package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"testschool/internal/models"
	"testschool/internal/services"
)

type QuestionHandler struct {
	questionService services.QuestionService
}

func NewQuestionHandler(questionService services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// @Summary      Создать вопрос
// @Description  Только для администратора
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        question  body      models.Question  true  "Вопрос"
// @Success      201       {object}  models.Question
// @Failure      400       {object}  map[string]string
// @Security     BearerAuth
// @Router       /questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var q models.Question
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.questionService.CreateQuestion(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, q)
}

// @Summary      Список вопросов с пагинацией
// @Tags         Questions
// @Produce      json
// @Param        page   query     int  false  "Страница (с 1)"
// @Param        limit  query     int  false  "Размер страницы"
// @Success      200    {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	total, err := h.questionService.GetQuestionCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count questions"})
		return
	}
	questions, err := h.questionService.ListQuestions(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list questions"})
		return
	}

	totalPages := (total + limit - 1) / limit
	c.JSON(http.StatusOK, gin.H{
		"questions":   questions,
		"page":        page,
		"total_pages": totalPages,
		"total":       total,
	})
}
