package services

import (
	"errors"
	"testing"

	"github.com/slavikovics/EducationalSystem-sub000/models"
)

type mockTestRepository struct {
	materials map[uint]bool
	tests     map[uint]*models.Test
	results   []*models.TestResult

	nextTestID     uint
	nextQuestionID uint
	nextResultID   uint
}

func newMockTestRepository(materialIDs ...uint) *mockTestRepository {
	m := &mockTestRepository{
		materials: make(map[uint]bool),
		tests:     make(map[uint]*models.Test),
	}
	for _, id := range materialIDs {
		m.materials[id] = true
	}
	return m
}

func (m *mockTestRepository) MaterialExists(materialID uint) (bool, error) {
	return m.materials[materialID], nil
}

func (m *mockTestRepository) CreateTest(test *models.Test) error {
	m.nextTestID++
	test.ID = m.nextTestID
	for i := range test.Questions {
		m.nextQuestionID++
		test.Questions[i].ID = m.nextQuestionID
		test.Questions[i].TestID = test.ID
	}
	stored := *test
	stored.Questions = append([]models.Question(nil), test.Questions...)
	m.tests[test.ID] = &stored
	return nil
}

func (m *mockTestRepository) DeleteTest(testID uint) error {
	if _, ok := m.tests[testID]; !ok {
		return ErrTestNotFound
	}
	delete(m.tests, testID)
	kept := m.results[:0]
	for _, r := range m.results {
		if r.TestID != testID {
			kept = append(kept, r)
		}
	}
	m.results = kept
	return nil
}

func (m *mockTestRepository) ReplaceQuestions(testID uint, questions []models.Question, passingScore int) (*models.Test, error) {
	test, ok := m.tests[testID]
	if !ok {
		return nil, ErrTestNotFound
	}
	for i := range questions {
		m.nextQuestionID++
		questions[i].ID = m.nextQuestionID
		questions[i].TestID = testID
	}
	test.Questions = append([]models.Question(nil), questions...)
	test.PassingScore = passingScore
	copied := *test
	copied.Questions = append([]models.Question(nil), test.Questions...)
	return &copied, nil
}

func (m *mockTestRepository) FindTestByID(testID uint) (*models.Test, error) {
	test, ok := m.tests[testID]
	if !ok {
		return nil, ErrTestNotFound
	}
	copied := *test
	copied.Questions = append([]models.Question(nil), test.Questions...)
	return &copied, nil
}

func (m *mockTestRepository) FindTestByMaterialID(materialID uint) (*models.Test, error) {
	for _, test := range m.tests {
		if test.MaterialID == materialID {
			copied := *test
			copied.Questions = append([]models.Question(nil), test.Questions...)
			return &copied, nil
		}
	}
	return nil, ErrTestNotFound
}

func (m *mockTestRepository) ListTests() ([]models.Test, error) {
	tests := make([]models.Test, 0, len(m.tests))
	for id := uint(1); id <= m.nextTestID; id++ {
		if test, ok := m.tests[id]; ok {
			tests = append(tests, *test)
		}
	}
	return tests, nil
}

func (m *mockTestRepository) InsertResult(result *models.TestResult) error {
	m.nextResultID++
	result.ID = m.nextResultID
	stored := *result
	m.results = append(m.results, &stored)
	return nil
}

func (m *mockTestRepository) ListResultsByUser(userID uint) ([]models.TestResult, error) {
	var out []models.TestResult
	for _, r := range m.results {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockTestRepository) ListResultsByTest(testID uint) ([]models.TestResult, error) {
	var out []models.TestResult
	for _, r := range m.results {
		if r.TestID == testID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func questionSet(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			QuestionText:  "question",
			CorrectAnswer: "answer",
		}
	}
	return questions
}

func TestPassingScore(t *testing.T) {
	cases := []struct {
		questions int
		want      int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 4},
		{10, 7},
	}
	for _, tc := range cases {
		if got := PassingScore(tc.questions); got != tc.want {
			t.Errorf("PassingScore(%d) = %d, want %d", tc.questions, got, tc.want)
		}
	}
}

func TestCreateTest(t *testing.T) {
	repo := newMockTestRepository(5)
	svc := NewTestService(repo)

	test, err := svc.CreateTest(5, questionSet(4), 9)
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	if test.ID == 0 {
		t.Error("expected a generated test id")
	}
	if test.MaterialID != 5 || test.CreatedByID != 9 {
		t.Errorf("unexpected references: material=%d creator=%d", test.MaterialID, test.CreatedByID)
	}
	if test.PassingScore != 3 {
		t.Errorf("passing score = %d, want 3", test.PassingScore)
	}
	if len(test.Questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(test.Questions))
	}
}

func TestCreateTestMissingMaterial(t *testing.T) {
	svc := NewTestService(newMockTestRepository())

	_, err := svc.CreateTest(42, questionSet(1), 1)
	if !errors.Is(err, ErrMaterialNotFound) {
		t.Fatalf("expected ErrMaterialNotFound, got %v", err)
	}
}

func TestCreateTestValidation(t *testing.T) {
	svc := NewTestService(newMockTestRepository(1))

	cases := []struct {
		name      string
		questions []models.Question
		want      error
	}{
		{"no questions", nil, ErrNoQuestions},
		{"empty text", []models.Question{{QuestionText: "  ", CorrectAnswer: "A"}}, ErrEmptyQuestionText},
		{"empty answer", []models.Question{{QuestionText: "Q", CorrectAnswer: ""}}, ErrEmptyCorrectAnswer},
		{
			"answer not in options",
			[]models.Question{{QuestionText: "Q", Options: []string{"A", "B"}, CorrectAnswer: "C"}},
			ErrAnswerNotInOptions,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTest(1, tc.questions, 1)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	// Option matching is case-insensitive, same as scoring.
	_, err := svc.CreateTest(1, []models.Question{
		{QuestionText: "Q", Options: []string{"Alpha", "Beta"}, CorrectAnswer: "alpha"},
	}, 1)
	if err != nil {
		t.Fatalf("case-insensitive option match should be accepted, got %v", err)
	}
}

func TestCreateTestRoundTrip(t *testing.T) {
	svc := NewTestService(newMockTestRepository(1))

	created, err := svc.CreateTest(1, []models.Question{
		{QuestionText: "Q1", Options: []string{"A", "B"}, CorrectAnswer: "A"},
	}, 2)
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}

	got, err := svc.GetTestByID(created.ID)
	if err != nil {
		t.Fatalf("GetTestByID: %v", err)
	}
	if len(got.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(got.Questions))
	}
	if got.Questions[0].CorrectAnswer != "A" {
		t.Errorf("stored answer = %q, want %q (case preserved)", got.Questions[0].CorrectAnswer, "A")
	}
	if got.PassingScore != 1 {
		t.Errorf("passing score = %d, want 1", got.PassingScore)
	}
}

func TestUpdateQuestionsFullReplace(t *testing.T) {
	repo := newMockTestRepository(1)
	svc := NewTestService(repo)

	created, err := svc.CreateTest(1, questionSet(5), 1)
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}

	replacement := []models.Question{
		{QuestionText: "new one", CorrectAnswer: "yes"},
		{QuestionText: "new two", CorrectAnswer: "no"},
	}
	updated, err := svc.UpdateQuestions(created.ID, replacement)
	if err != nil {
		t.Fatalf("UpdateQuestions: %v", err)
	}
	if updated.PassingScore != 2 {
		t.Errorf("passing score = %d, want 2", updated.PassingScore)
	}

	got, err := svc.GetTestByID(created.ID)
	if err != nil {
		t.Fatalf("GetTestByID: %v", err)
	}
	if len(got.Questions) != 2 {
		t.Fatalf("expected exactly 2 questions after replace, got %d", len(got.Questions))
	}
	for _, q := range got.Questions {
		if q.QuestionText != "new one" && q.QuestionText != "new two" {
			t.Errorf("old question survived the replace: %q", q.QuestionText)
		}
	}
}

func TestUpdateQuestionsUnknownTest(t *testing.T) {
	svc := NewTestService(newMockTestRepository(1))

	_, err := svc.UpdateQuestions(99, questionSet(1))
	if !errors.Is(err, ErrTestNotFound) {
		t.Fatalf("expected ErrTestNotFound, got %v", err)
	}
}

func TestDeleteTest(t *testing.T) {
	svc := NewTestService(newMockTestRepository(1))

	created, err := svc.CreateTest(1, questionSet(3), 1)
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	if err := svc.DeleteTest(created.ID); err != nil {
		t.Fatalf("DeleteTest: %v", err)
	}
	if _, err := svc.GetTestByID(created.ID); !errors.Is(err, ErrTestNotFound) {
		t.Fatalf("expected ErrTestNotFound after delete, got %v", err)
	}
	if err := svc.DeleteTest(created.ID); !errors.Is(err, ErrTestNotFound) {
		t.Fatalf("expected ErrTestNotFound on second delete, got %v", err)
	}
}

func TestSubmitTestScoring(t *testing.T) {
	repo := newMockTestRepository(5)
	svc := NewTestService(repo)

	created, err := svc.CreateTest(5, []models.Question{
		{QuestionText: "q1", CorrectAnswer: "correctAnswer"},
		{QuestionText: "q2", CorrectAnswer: "right"},
		{QuestionText: "q3", CorrectAnswer: "correctanswer"},
		{QuestionText: "q4", CorrectAnswer: "fourth"},
	}, 9)
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	q := created.Questions

	result, err := svc.SubmitTest(created.ID, 1, map[uint]string{
		q[0].ID: "correctAnswer", // exact match
		q[1].ID: "WRONG",
		q[2].ID: "CorrectAnswer", // case-insensitive match
		// q4 unanswered
	})
	if err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}
	if result.Score != 2 {
		t.Errorf("score = %d, want 2", result.Score)
	}
	if result.TotalQuestions != 4 {
		t.Errorf("total questions = %d, want 4", result.TotalQuestions)
	}
	if result.PassingScore != 3 {
		t.Errorf("passing score snapshot = %d, want 3", result.PassingScore)
	}
	if result.Passed() {
		t.Error("2 of 4 with passing score 3 must not pass")
	}
	if result.SubmittedAt.IsZero() {
		t.Error("submitted_at not set")
	}
}

func TestSubmitTestIgnoresUnknownQuestions(t *testing.T) {
	svc := NewTestService(newMockTestRepository(1))

	created, err := svc.CreateTest(1, []models.Question{
		{QuestionText: "q1", CorrectAnswer: "a"},
	}, 1)
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}

	result, err := svc.SubmitTest(created.ID, 7, map[uint]string{
		created.Questions[0].ID: "A",
		9999:                    "a",
	})
	if err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}
	if result.Score != 1 {
		t.Errorf("score = %d, want 1 (unknown question id must not count)", result.Score)
	}
}

func TestSubmitTestUnknownTest(t *testing.T) {
	svc := NewTestService(newMockTestRepository(1))

	_, err := svc.SubmitTest(123, 1, map[uint]string{1: "a"})
	if !errors.Is(err, ErrTestNotFound) {
		t.Fatalf("expected ErrTestNotFound, got %v", err)
	}
}

func TestSubmitTestRetakesAppend(t *testing.T) {
	repo := newMockTestRepository(1)
	svc := NewTestService(repo)

	created, err := svc.CreateTest(1, []models.Question{
		{QuestionText: "q1", CorrectAnswer: "a"},
		{QuestionText: "q2", CorrectAnswer: "b"},
	}, 1)
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}

	answers := map[uint]string{created.Questions[0].ID: "a"}
	for i := 0; i < 3; i++ {
		if _, err := svc.SubmitTest(created.ID, 4, answers); err != nil {
			t.Fatalf("SubmitTest #%d: %v", i+1, err)
		}
	}

	results, err := svc.GetResultsByUser(4)
	if err != nil {
		t.Fatalf("GetResultsByUser: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 independent result rows, got %d", len(results))
	}
	for _, r := range results {
		if r.Score != 1 {
			t.Errorf("score = %d, want 1 on every retake", r.Score)
		}
	}
}

func TestSubmitTestSnapshotSurvivesReplace(t *testing.T) {
	repo := newMockTestRepository(1)
	svc := NewTestService(repo)

	created, err := svc.CreateTest(1, questionSet(4), 1)
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}

	result, err := svc.SubmitTest(created.ID, 2, map[uint]string{
		created.Questions[0].ID: "answer",
	})
	if err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}

	if _, err := svc.UpdateQuestions(created.ID, questionSet(10)); err != nil {
		t.Fatalf("UpdateQuestions: %v", err)
	}

	results, err := svc.GetResultsByTest(created.ID)
	if err != nil {
		t.Fatalf("GetResultsByTest: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].TotalQuestions != result.TotalQuestions || results[0].TotalQuestions != 4 {
		t.Errorf("total questions snapshot = %d, want 4", results[0].TotalQuestions)
	}
	if results[0].PassingScore != 3 {
		t.Errorf("passing score snapshot = %d, want 3 (must not follow the new question count)", results[0].PassingScore)
	}
}

func TestGetAllTestsOrderedByID(t *testing.T) {
	repo := newMockTestRepository(1, 2, 3)
	svc := NewTestService(repo)

	for _, materialID := range []uint{3, 1, 2} {
		if _, err := svc.CreateTest(materialID, questionSet(1), 1); err != nil {
			t.Fatalf("CreateTest: %v", err)
		}
	}

	tests, err := svc.GetAllTests()
	if err != nil {
		t.Fatalf("GetAllTests: %v", err)
	}
	if len(tests) != 3 {
		t.Fatalf("expected 3 tests, got %d", len(tests))
	}
	for i := 1; i < len(tests); i++ {
		if tests[i-1].ID >= tests[i].ID {
			t.Fatalf("tests not ordered by id: %d before %d", tests[i-1].ID, tests[i].ID)
		}
	}
}

func TestGetTestByMaterialID(t *testing.T) {
	svc := NewTestService(newMockTestRepository(8))

	created, err := svc.CreateTest(8, questionSet(2), 1)
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}

	got, err := svc.GetTestByMaterialID(8)
	if err != nil {
		t.Fatalf("GetTestByMaterialID: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("got test %d, want %d", got.ID, created.ID)
	}

	if _, err := svc.GetTestByMaterialID(99); !errors.Is(err, ErrTestNotFound) {
		t.Fatalf("expected ErrTestNotFound, got %v", err)
	}
}
