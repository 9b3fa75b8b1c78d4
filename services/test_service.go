package services

import (
	"math"
	"strings"
	"time"

	"github.com/slavikovics/EducationalSystem-sub000/models"
	"gorm.io/datatypes"
)

// TestRepository is the persistence contract the test workflow runs on.
// The GORM implementation lives in the repository package; tests use a mock.
type TestRepository interface {
	MaterialExists(materialID uint) (bool, error)
	CreateTest(test *models.Test) error
	DeleteTest(testID uint) error
	ReplaceQuestions(testID uint, questions []models.Question, passingScore int) (*models.Test, error)
	FindTestByID(testID uint) (*models.Test, error)
	FindTestByMaterialID(materialID uint) (*models.Test, error)
	ListTests() ([]models.Test, error)
	InsertResult(result *models.TestResult) error
	ListResultsByUser(userID uint) ([]models.TestResult, error)
	ListResultsByTest(testID uint) ([]models.TestResult, error)
}

type TestService struct {
	repo TestRepository
}

func NewTestService(repo TestRepository) *TestService {
	return &TestService{repo: repo}
}

// PassingScore is the fixed 70%-to-pass policy, rounded up:
// 1 question -> 1, 4 -> 3, 10 -> 7.
func PassingScore(questionCount int) int {
	return int(math.Ceil(float64(questionCount) * 0.7))
}

func validateQuestions(questions []models.Question) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	for _, q := range questions {
		if strings.TrimSpace(q.QuestionText) == "" {
			return ErrEmptyQuestionText
		}
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			return ErrEmptyCorrectAnswer
		}
		if len(q.Options) > 0 && !containsFold(q.Options, q.CorrectAnswer) {
			return ErrAnswerNotInOptions
		}
	}
	return nil
}

func containsFold(options []string, answer string) bool {
	for _, opt := range options {
		if strings.EqualFold(opt, answer) {
			return true
		}
	}
	return false
}

func (s *TestService) CreateTest(materialID uint, questions []models.Question, creatorID uint) (*models.Test, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	exists, err := s.repo.MaterialExists(materialID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMaterialNotFound
	}

	test := &models.Test{
		MaterialID:   materialID,
		CreatedByID:  creatorID,
		PassingScore: PassingScore(len(questions)),
		Questions:    questions,
	}
	if err := s.repo.CreateTest(test); err != nil {
		return nil, err
	}
	return test, nil
}

// UpdateQuestions wholesale-replaces the test's question set and recomputes
// the passing score. It is a full replace, never a merge.
func (s *TestService) UpdateQuestions(testID uint, questions []models.Question) (*models.Test, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}
	return s.repo.ReplaceQuestions(testID, questions, PassingScore(len(questions)))
}

func (s *TestService) DeleteTest(testID uint) error {
	return s.repo.DeleteTest(testID)
}

func (s *TestService) GetTestByID(testID uint) (*models.Test, error) {
	return s.repo.FindTestByID(testID)
}

func (s *TestService) GetTestByMaterialID(materialID uint) (*models.Test, error) {
	return s.repo.FindTestByMaterialID(materialID)
}

func (s *TestService) GetAllTests() ([]models.Test, error) {
	return s.repo.ListTests()
}

// SubmitTest scores one attempt and records it. Answers are matched
// case-insensitively against the stored correct answer; answers for question
// ids the test does not contain are ignored, unanswered questions simply do
// not count. Every call inserts a fresh result row, so retakes are allowed
// and history is never rewritten.
func (s *TestService) SubmitTest(testID uint, userID uint, answers map[uint]string) (*models.TestResult, error) {
	test, err := s.repo.FindTestByID(testID)
	if err != nil {
		return nil, err
	}

	correctAnswers := make(map[uint]string, len(test.Questions))
	for _, q := range test.Questions {
		correctAnswers[q.ID] = q.CorrectAnswer
	}

	score := 0
	for questionID, answer := range answers {
		correct, ok := correctAnswers[questionID]
		if ok && strings.EqualFold(correct, answer) {
			score++
		}
	}

	result := &models.TestResult{
		TestID:         test.ID,
		UserID:         userID,
		Score:          score,
		TotalQuestions: len(test.Questions),
		PassingScore:   test.PassingScore,
		UserAnswers:    datatypes.NewJSONType(answers),
		SubmittedAt:    time.Now().UTC(),
	}
	if err := s.repo.InsertResult(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *TestService) GetResultsByUser(userID uint) ([]models.TestResult, error) {
	return s.repo.ListResultsByUser(userID)
}

func (s *TestService) GetResultsByTest(testID uint) ([]models.TestResult, error) {
	return s.repo.ListResultsByTest(testID)
}
