package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"

	"testschool/internal/models"
	"testschool/internal/repositories"
)

var (
	// валидация — отказ до любой записи
	ErrInvalidStep = errors.New("invalid step")
	ErrNoAnswers   = errors.New("answers required")

	// гейт — отказ до скоринга, три различимые причины
	ErrStepAlreadyCompleted = errors.New("step already completed")
	ErrStepLockedOut        = errors.New("failed step 1, cannot retake")
	ErrPrerequisiteNotMet   = errors.New("previous step not passed")

	ErrNoCertification = errors.New("no certification achieved")
)

type TestService interface {
	// FetchQuestions — по 22 случайных вопроса на каждую из двух ступеней
	// шага, общий набор перемешан, правильные ответы вырезаны.
	FetchQuestions(step int) ([]models.PublicQuestion, error)
	// SubmitStep — гейт, скоринг и запись результата одним проходом.
	SubmitStep(userID, step int, answers map[int64]int) (*models.Result, error)
	ListResults(userID int) ([]*models.Result, error)
	// ResolveCertification — максимальный присвоенный уровень по всем
	// результатам пользователя.
	ResolveCertification(userID int) (models.Level, error)
}

type testService struct {
	questions repositories.QuestionRepository
	results   repositories.ResultRepository
	notifier  *TelegramNotifier // может быть nil
}

func NewTestService(
	questions repositories.QuestionRepository,
	results repositories.ResultRepository,
	notifier *TelegramNotifier,
) TestService {
	return &testService{
		questions: questions,
		results:   results,
		notifier:  notifier,
	}
}

func (s *testService) FetchQuestions(step int) ([]models.PublicQuestion, error) {
	if !IsValidStep(step) {
		return nil, ErrInvalidStep
	}

	var combined []*models.Question
	for _, level := range StepLevels[step] {
		sample, err := s.questions.SampleByLevel(level, questionsPerLevel)
		if err != nil {
			return nil, err
		}
		combined = append(combined, sample...)
	}

	rand.Shuffle(len(combined), func(i, j int) {
		combined[i], combined[j] = combined[j], combined[i]
	})

	public := make([]models.PublicQuestion, 0, len(combined))
	for _, q := range combined {
		public = append(public, q.Public())
	}
	return public, nil
}

func (s *testService) SubmitStep(userID, step int, answers map[int64]int) (*models.Result, error) {
	if !IsValidStep(step) {
		return nil, ErrInvalidStep
	}
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}

	// Гейт 1: результат по шагу уже есть — сабмит одноразовый.
	existing, err := s.results.GetByUserAndStep(userID, step)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrStepAlreadyCompleted
	}

	// Гейт 2: провал первого шага (score < 25) — терминальное состояние,
	// одна попытка на шаг 1.
	if step == 1 {
		first, err := s.results.GetByUserAndStep(userID, 1)
		if err != nil {
			return nil, err
		}
		if first != nil && first.Score < minAwardScore {
			return nil, ErrStepLockedOut
		}
	}

	// Гейт 3: на шаги 2 и 3 пускаем только с >=75% по предыдущему.
	if step > 1 {
		prev, err := s.results.GetByUserAndStep(userID, step-1)
		if err != nil {
			return nil, err
		}
		if prev == nil || prev.Score < proceedScore {
			return nil, fmt.Errorf("must score at least %d%% on step %d: %w", proceedScore, step-1, ErrPrerequisiteNotMet)
		}
	}

	correct, total, err := s.scoreAnswers(answers)
	if err != nil {
		return nil, err
	}
	score := int(math.Round(float64(correct) / float64(total) * 100))

	res := &models.Result{
		UserID:  userID,
		Step:    step,
		Score:   score,
		Correct: correct,
		Total:   total,
	}
	if level, ok := DetermineAwardedLevel(step, score); ok {
		res.AwardedLevel = &level
	}

	// Атомарный insert: проигравший гонку по (user_id, step) получает
	// нарушение уникальности и ту же ошибку "already completed".
	if err := s.results.Create(res); err != nil {
		if errors.Is(err, repositories.ErrDuplicateResult) {
			return nil, ErrStepAlreadyCompleted
		}
		return nil, err
	}
	res.NextStep = NextStep(step, score)

	log.Printf("[test][submit] user_id=%d step=%d score=%d correct=%d total=%d awarded=%v next=%d",
		userID, step, score, correct, total, res.AwardedLevel, res.NextStep)

	if s.notifier != nil && res.AwardedLevel != nil {
		s.notifier.NotifyLevelAwarded(userID, step, *res.AwardedLevel, score)
	}
	return res, nil
}

// scoreAnswers — total считаем только по вопросам, которые есть в банке:
// неизвестные id не засчитываются ни в правильные, ни в total.
func (s *testService) scoreAnswers(answers map[int64]int) (correct, total int, err error) {
	ids := make([]int64, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	key, err := s.questions.GetAnswerKey(ids)
	if err != nil {
		return 0, 0, err
	}

	for id, chosen := range answers {
		want, ok := key[id]
		if !ok {
			continue
		}
		total++
		if chosen == want {
			correct++
		}
	}
	if total == 0 {
		return 0, 0, fmt.Errorf("no submitted answers matched the question bank: %w", ErrNoAnswers)
	}
	return correct, total, nil
}

func (s *testService) ListResults(userID int) ([]*models.Result, error) {
	return s.results.ListByUser(userID)
}

func (s *testService) ResolveCertification(userID int) (models.Level, error) {
	results, err := s.results.ListByUser(userID)
	if err != nil {
		return "", err
	}

	var best models.Level
	for _, res := range results {
		if res.AwardedLevel == nil {
			continue
		}
		if res.AwardedLevel.Rank() > best.Rank() {
			best = *res.AwardedLevel
		}
	}
	if best == "" {
		return "", ErrNoCertification
	}
	return best, nil
}
