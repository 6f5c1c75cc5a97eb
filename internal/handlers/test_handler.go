package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"testschool/internal/models"
	"testschool/internal/services"
)

type TestHandler struct {
	testService services.TestService
}

func NewTestHandler(testService services.TestService) *TestHandler {
	return &TestHandler{testService: testService}
}

// @Summary      Вопросы шага
// @Description  44 вопроса (по 22 на каждую из двух ступеней шага), без правильных ответов
// @Tags         Tests
// @Produce      json
// @Param        step  path      int  true  "Шаг теста (1-3)"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Security     BearerAuth
// @Router       /tests/{step}/questions [get]
func (h *TestHandler) GetQuestions(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid step"})
		return
	}

	questions, err := h.testService.FetchQuestions(step)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStep) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid step"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch questions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// @Summary      Сдача шага
// @Description  Проверяет допуск, считает балл и записывает результат (один на шаг, без перезаписи)
// @Tags         Tests
// @Accept       json
// @Produce      json
// @Param        step     path      int                   true  "Шаг теста (1-3)"
// @Param        answers  body      models.SubmitRequest  true  "Ответы: question_id -> индекс варианта"
// @Success      200      {object}  models.Result
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Security     BearerAuth
// @Router       /tests/{step}/submit [post]
func (h *TestHandler) Submit(c *gin.Context) {
	userID, _ := getUserAndRole(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid step"})
		return
	}

	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.testService.SubmitStep(userID, step, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStep), errors.Is(err, services.ErrNoAnswers):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrStepAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrStepLockedOut), errors.Is(err, services.ErrPrerequisiteNotMet):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "submission failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary      Результаты пользователя
// @Tags         Tests
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /results [get]
func (h *TestHandler) ListResults(c *gin.Context) {
	userID, _ := getUserAndRole(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	results, err := h.testService.ListResults(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list results"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// @Summary      Текущая сертификация
// @Description  Максимальный присвоенный уровень по всем результатам
// @Tags         Tests
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /certification [get]
func (h *TestHandler) GetCertification(c *gin.Context) {
	userID, _ := getUserAndRole(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	level, err := h.testService.ResolveCertification(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoCertification) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no certification achieved"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve certification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"level": string(level)})
}
