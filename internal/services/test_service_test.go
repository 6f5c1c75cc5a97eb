package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testschool/internal/models"
	"testschool/internal/repositories"
)

// fakeQuestionRepo — in-memory банк вопросов; правильный ответ всегда индекс 0.
type fakeQuestionRepo struct {
	key map[int64]int // id -> answer_index
}

func (f *fakeQuestionRepo) Create(q *models.Question) error { return nil }

func (f *fakeQuestionRepo) List(limit, offset int) ([]*models.Question, error) { return nil, nil }

func (f *fakeQuestionRepo) GetCount() (int, error) { return len(f.key), nil }

func (f *fakeQuestionRepo) SampleByLevel(level models.Level, n int) ([]*models.Question, error) {
	questions := make([]*models.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, &models.Question{
			ID:          int64(level.Rank()*1000 + i),
			Competency:  "Information Browsing",
			Level:       level,
			Text:        fmt.Sprintf("question %d for %s", i, level),
			Options:     []string{"a", "b", "c", "d"},
			AnswerIndex: 0,
		})
	}
	return questions, nil
}

func (f *fakeQuestionRepo) GetAnswerKey(ids []int64) (map[int64]int, error) {
	key := make(map[int64]int)
	for _, id := range ids {
		if idx, ok := f.key[id]; ok {
			key[id] = idx
		}
	}
	return key, nil
}

// fakeResultRepo повторяет контракт уникального индекса (user_id, step).
type fakeResultRepo struct {
	mu     sync.Mutex
	rows   map[[2]int]models.Result
	nextID int64
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{rows: make(map[[2]int]models.Result)}
}

func (f *fakeResultRepo) Create(res *models.Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := [2]int{res.UserID, res.Step}
	if _, exists := f.rows[k]; exists {
		return repositories.ErrDuplicateResult
	}
	f.nextID++
	res.ID = f.nextID
	res.CreatedAt = time.Now()
	f.rows[k] = *res
	return nil
}

func (f *fakeResultRepo) GetByUserAndStep(userID, step int) (*models.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.rows[[2]int{userID, step}]; ok {
		cp := row
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeResultRepo) ListByUser(userID int) ([]*models.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var results []*models.Result
	for k, row := range f.rows {
		if k[0] == userID {
			cp := row
			results = append(results, &cp)
		}
	}
	return results, nil
}

func (f *fakeResultRepo) seed(userID, step, score int, level *models.Level) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.rows[[2]int{userID, step}] = models.Result{
		ID:           f.nextID,
		UserID:       userID,
		Step:         step,
		Score:        score,
		AwardedLevel: level,
		CreatedAt:    time.Now(),
	}
}

// answersFor — ответы по 44 вопросам банка, из них correct правильных.
func answersFor(repo *fakeQuestionRepo, correct int) map[int64]int {
	answers := make(map[int64]int, len(repo.key))
	i := 0
	for id, want := range repo.key {
		if i < correct {
			answers[id] = want
		} else {
			answers[id] = want + 1
		}
		i++
	}
	return answers
}

func newBankOf(n int) *fakeQuestionRepo {
	key := make(map[int64]int, n)
	for i := 0; i < n; i++ {
		key[int64(i+1)] = 0
	}
	return &fakeQuestionRepo{key: key}
}

func lvl(l models.Level) *models.Level { return &l }

func TestSubmitStepScoresAndAwards(t *testing.T) {
	questions := newBankOf(44)
	results := newFakeResultRepo()
	svc := NewTestService(questions, results, nil)

	// 17/44 -> round(38.63) = 39 -> A1, допуска к шагу 2 нет
	res, err := svc.SubmitStep(7, 1, answersFor(questions, 17))
	require.NoError(t, err)

	assert.Equal(t, 39, res.Score)
	assert.Equal(t, 17, res.Correct)
	assert.Equal(t, 44, res.Total)
	require.NotNil(t, res.AwardedLevel)
	assert.Equal(t, models.LevelA1, *res.AwardedLevel)
	assert.Equal(t, 0, res.NextStep)
}

func TestSubmitStepBelowFloorAwardsNothing(t *testing.T) {
	questions := newBankOf(44)
	results := newFakeResultRepo()
	svc := NewTestService(questions, results, nil)

	// 10/44 -> 23% — ниже пола, уровень не присвоен, но результат записан
	res, err := svc.SubmitStep(7, 1, answersFor(questions, 10))
	require.NoError(t, err)
	assert.Equal(t, 23, res.Score)
	assert.Nil(t, res.AwardedLevel)

	stored, err := results.GetByUserAndStep(7, 1)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Nil(t, stored.AwardedLevel)
}

func TestSubmitStepValidation(t *testing.T) {
	questions := newBankOf(44)
	svc := NewTestService(questions, newFakeResultRepo(), nil)

	_, err := svc.SubmitStep(7, 0, answersFor(questions, 1))
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = svc.SubmitStep(7, 4, answersFor(questions, 1))
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = svc.SubmitStep(7, 1, map[int64]int{})
	assert.ErrorIs(t, err, ErrNoAnswers)

	// все id мимо банка: нечего оценивать, запись не создаётся
	_, err = svc.SubmitStep(7, 1, map[int64]int{9999: 0, 9998: 1})
	assert.ErrorIs(t, err, ErrNoAnswers)
}

func TestSubmitStepUnknownQuestionsExcludedFromTotal(t *testing.T) {
	questions := newBankOf(4)
	svc := NewTestService(questions, newFakeResultRepo(), nil)

	answers := answersFor(questions, 2) // 2 из 4 правильных
	answers[9999] = 0                   // неизвестный id не должен портить знаменатель

	res, err := svc.SubmitStep(7, 1, answers)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 2, res.Correct)
	assert.Equal(t, 50, res.Score)
}

func TestSubmitStepAlreadyCompleted(t *testing.T) {
	questions := newBankOf(44)
	results := newFakeResultRepo()
	svc := NewTestService(questions, results, nil)

	first, err := svc.SubmitStep(7, 1, answersFor(questions, 40))
	require.NoError(t, err)

	// повторный сабмит отклоняется и не трогает записанный результат
	_, err = svc.SubmitStep(7, 1, answersFor(questions, 44))
	assert.ErrorIs(t, err, ErrStepAlreadyCompleted)

	stored, err := results.GetByUserAndStep(7, 1)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, first.Score, stored.Score)
	assert.Equal(t, first.ID, stored.ID)
}

func TestSubmitStepPrerequisite(t *testing.T) {
	questions := newBankOf(44)
	results := newFakeResultRepo()
	svc := NewTestService(questions, results, nil)

	// шаг 2 без результата по шагу 1
	_, err := svc.SubmitStep(7, 2, answersFor(questions, 30))
	assert.ErrorIs(t, err, ErrPrerequisiteNotMet)

	// шаг 1 сдан, но ниже 75 — шаг 2 всё ещё закрыт
	results.seed(8, 1, 74, lvl(models.LevelA2))
	_, err = svc.SubmitStep(8, 2, answersFor(questions, 30))
	assert.ErrorIs(t, err, ErrPrerequisiteNotMet)

	// ровно 75 — допуск есть
	results.seed(9, 1, 75, lvl(models.LevelA2))
	res, err := svc.SubmitStep(9, 2, answersFor(questions, 30))
	require.NoError(t, err)
	require.NotNil(t, res.AwardedLevel)
	assert.Equal(t, models.LevelB2, *res.AwardedLevel)

	// шаг 3 требует >=75 по шагу 2
	_, err = svc.SubmitStep(9, 3, answersFor(questions, 30))
	assert.ErrorIs(t, err, ErrPrerequisiteNotMet)
}

func TestSubmitStepOneLockoutIsTerminal(t *testing.T) {
	questions := newBankOf(44)
	results := newFakeResultRepo()
	svc := NewTestService(questions, results, nil)

	res, err := svc.SubmitStep(7, 1, answersFor(questions, 5)) // 11% — провал
	require.NoError(t, err)
	assert.Nil(t, res.AwardedLevel)

	// при существующей записи первым срабатывает already-completed
	_, err = svc.SubmitStep(7, 1, answersFor(questions, 44))
	assert.ErrorIs(t, err, ErrStepAlreadyCompleted)

	// провал шага 1 не влияет на других пользователей
	_, err = svc.SubmitStep(8, 1, answersFor(questions, 44))
	assert.NoError(t, err)
}

// Проигравший в гонке двух сабмитов должен увидеть нарушение уникальности,
// переведённое в ту же доменную ошибку "already completed".
func TestSubmitStepConcurrentDuplicate(t *testing.T) {
	questions := newBankOf(44)
	results := newFakeResultRepo()
	svc := NewTestService(questions, results, nil)

	answers := answersFor(questions, 40)
	errs := make(chan error, 2)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SubmitStep(7, 1, answers)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var successes, alreadyCompleted int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		default:
			assert.ErrorIs(t, err, ErrStepAlreadyCompleted)
			alreadyCompleted++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, alreadyCompleted)

	stored, err := results.ListByUser(7)
	require.NoError(t, err)
	assert.Len(t, stored, 1, "exactly one result must be persisted")
}

func TestSubmitStepDuplicateInsertTranslated(t *testing.T) {
	questions := newBankOf(44)

	// запись появляется между проверкой гейта и insert'ом
	raceRepo := &racingResultRepo{fakeResultRepo: newFakeResultRepo()}
	svc := NewTestService(questions, raceRepo, nil)

	_, err := svc.SubmitStep(7, 1, answersFor(questions, 40))
	assert.ErrorIs(t, err, ErrStepAlreadyCompleted)
}

// racingResultRepo прячет существующую запись от гейта, чтобы insert
// гарантированно упёрся в уникальный ключ.
type racingResultRepo struct {
	*fakeResultRepo
}

func (r *racingResultRepo) GetByUserAndStep(userID, step int) (*models.Result, error) {
	return nil, nil
}

func (r *racingResultRepo) Create(res *models.Result) error {
	r.fakeResultRepo.seed(res.UserID, res.Step, 50, nil)
	return r.fakeResultRepo.Create(res)
}

func TestResolveCertification(t *testing.T) {
	results := newFakeResultRepo()
	svc := NewTestService(newBankOf(44), results, nil)

	// {step1: A2, step2: B1} -> B1
	results.seed(7, 1, 80, lvl(models.LevelA2))
	results.seed(7, 2, 30, lvl(models.LevelB1))

	level, err := svc.ResolveCertification(7)
	require.NoError(t, err)
	assert.Equal(t, models.LevelB1, level)
}

func TestResolveCertificationNonContiguous(t *testing.T) {
	results := newFakeResultRepo()
	svc := NewTestService(newBankOf(44), results, nil)

	// только шаг 2 (данные залиты напрямую) — резолвим по тому, что есть
	results.seed(7, 2, 60, lvl(models.LevelB2))

	level, err := svc.ResolveCertification(7)
	require.NoError(t, err)
	assert.Equal(t, models.LevelB2, level)
}

func TestResolveCertificationNotFound(t *testing.T) {
	results := newFakeResultRepo()
	svc := NewTestService(newBankOf(44), results, nil)

	_, err := svc.ResolveCertification(7)
	assert.ErrorIs(t, err, ErrNoCertification)

	// единственный результат без присвоенного уровня — тоже NotFound
	results.seed(7, 1, 10, nil)
	_, err = svc.ResolveCertification(7)
	assert.ErrorIs(t, err, ErrNoCertification)
}

func TestFetchQuestionsStripsAnswersAndMixesLevels(t *testing.T) {
	svc := NewTestService(newBankOf(44), newFakeResultRepo(), nil)

	questions, err := svc.FetchQuestions(2)
	require.NoError(t, err)
	require.Len(t, questions, 44)

	byLevel := map[models.Level]int{}
	for _, q := range questions {
		byLevel[q.Level]++
	}
	assert.Equal(t, 22, byLevel[models.LevelB1])
	assert.Equal(t, 22, byLevel[models.LevelB2])
}

func TestFetchQuestionsInvalidStep(t *testing.T) {
	svc := NewTestService(newBankOf(44), newFakeResultRepo(), nil)
	_, err := svc.FetchQuestions(5)
	assert.ErrorIs(t, err, ErrInvalidStep)
}
