package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/slavikovics/EducationalSystem-sub000/database"
	"github.com/slavikovics/EducationalSystem-sub000/middleware"
	"github.com/slavikovics/EducationalSystem-sub000/models"
	"github.com/slavikovics/EducationalSystem-sub000/repository"
	"github.com/slavikovics/EducationalSystem-sub000/services"
	"github.com/slavikovics/EducationalSystem-sub000/websocket"
)

func testService() *services.TestService {
	return services.NewTestService(repository.NewTestRepository(database.DB))
}

type QuestionRequest struct {
	QuestionText  string   `json:"question_text" validate:"required"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
}

type TestRequest struct {
	MaterialID uint              `json:"material_id" validate:"required"`
	Questions  []QuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

func toQuestionModels(requests []QuestionRequest) []models.Question {
	questions := make([]models.Question, len(requests))
	for i, q := range requests {
		questions[i] = models.Question{
			QuestionText:  q.QuestionText,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return questions
}

func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrTestNotFound), errors.Is(err, services.ErrMaterialNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrNoQuestions),
		errors.Is(err, services.ErrEmptyQuestionText),
		errors.Is(err, services.ErrEmptyCorrectAnswer),
		errors.Is(err, services.ErrAnswerNotInOptions):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func CreateTest(c *fiber.Ctx) error {
	var req TestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	test, err := testService().CreateTest(req.MaterialID, toQuestionModels(req.Questions), middleware.UserID(c))
	if err != nil {
		return c.Status(serviceErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(test)
}

type UpdateQuestionsRequest struct {
	Questions []QuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

func UpdateTestQuestions(c *fiber.Ctx) error {
	testID, err := strconv.ParseUint(c.Params("testId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid test id"})
	}

	var req UpdateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	test, err := testService().UpdateQuestions(uint(testID), toQuestionModels(req.Questions))
	if err != nil {
		return c.Status(serviceErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(test)
}

func DeleteTest(c *fiber.Ctx) error {
	testID, err := strconv.ParseUint(c.Params("testId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid test id"})
	}

	if err := testService().DeleteTest(uint(testID)); err != nil {
		return c.Status(serviceErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func GetTest(c *fiber.Ctx) error {
	testID, err := strconv.ParseUint(c.Params("testId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid test id"})
	}

	test, err := testService().GetTestByID(uint(testID))
	if err != nil {
		return c.Status(serviceErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(test)
}

func GetTestByMaterial(c *fiber.Ctx) error {
	materialID, err := strconv.ParseUint(c.Params("materialId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid material id"})
	}

	test, err := testService().GetTestByMaterialID(uint(materialID))
	if err != nil {
		return c.Status(serviceErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(test)
}

func ListTests(c *fiber.Ctx) error {
	tests, err := testService().GetAllTests()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(tests)
}

type SubmitTestRequest struct {
	// questionId -> submitted answer text
	Answers map[uint]string `json:"answers" validate:"required,min=1"`
}

func SubmitTest(c *fiber.Ctx) error {
	testID, err := strconv.ParseUint(c.Params("testId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid test id"})
	}

	var req SubmitTestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := middleware.UserID(c)
	result, err := testService().SubmitTest(uint(testID), userID, req.Answers)
	if err != nil {
		return c.Status(serviceErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	passed := result.Passed()
	websocket.BroadcastSubmission(&websocket.SubmissionEvent{
		TestID:         result.TestID,
		UserID:         result.UserID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Passed:         passed,
		SubmittedAt:    result.SubmittedAt,
	})

	if passed {
		go services.IssueCertificate(result)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"result": result,
		"passed": passed,
	})
}

func GetMyResults(c *fiber.Ctx) error {
	results, err := testService().GetResultsByUser(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(results)
}

func GetTestResults(c *fiber.Ctx) error {
	testID, err := strconv.ParseUint(c.Params("testId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid test id"})
	}

	if _, err := testService().GetTestByID(uint(testID)); err != nil {
		return c.Status(serviceErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	results, err := testService().GetResultsByTest(uint(testID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(results)
}
