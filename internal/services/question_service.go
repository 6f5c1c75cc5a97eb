package services

import (
	"testschool/internal/models"
	"testschool/internal/repositories"
)

type QuestionService interface {
	CreateQuestion(q *models.Question) error
	ListQuestions(limit, offset int) ([]*models.Question, error)
	GetQuestionCount() (int, error)
}

type questionService struct {
	repo repositories.QuestionRepository
}

func NewQuestionService(repo repositories.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(q *models.Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	return s.repo.Create(q)
}

func (s *questionService) ListQuestions(limit, offset int) ([]*models.Question, error) {
	return s.repo.List(limit, offset)
}

func (s *questionService) GetQuestionCount() (int, error) {
	return s.repo.GetCount()
}
