package services

import "errors"

var (
	ErrTestNotFound     = errors.New("test not found")
	ErrMaterialNotFound = errors.New("material not found")

	ErrNoQuestions        = errors.New("a test needs at least one question")
	ErrEmptyQuestionText  = errors.New("question text must not be empty")
	ErrEmptyCorrectAnswer = errors.New("correct answer must not be empty")
	ErrAnswerNotInOptions = errors.New("correct answer must be one of the question's options")
)
