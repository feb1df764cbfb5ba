package services

import (
	"context"
	"strings"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/pkg/utils"
)

type questionStore interface {
	Create(ctx context.Context, question *models.UserQuestion) error
	GetAll(ctx context.Context) ([]models.UserQuestion, error)
	GetByID(ctx context.Context, id int64) (*models.UserQuestion, error)
	Update(ctx context.Context, question *models.UserQuestion) error
	Delete(ctx context.Context, id int64) error
}

type faqWriter interface {
	Create(ctx context.Context, faq *models.FAQ) error
}

type QuestionService struct {
	store questionStore
	faqs  faqWriter
}

func NewQuestionService(store questionStore, faqs faqWriter) *QuestionService {
	return &QuestionService{store: store, faqs: faqs}
}

type SubmitQuestionInput struct {
	Name     string
	Email    string
	Question string
	Category string
}

func (s *QuestionService) Submit(ctx context.Context, input SubmitQuestionInput) (*models.UserQuestion, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Question) == "" {
		return nil, ErrInvalidInput
	}
	if !utils.IsValidEmail(input.Email) {
		return nil, ErrInvalidInput
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = "General"
	}

	question := &models.UserQuestion{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Question: strings.TrimSpace(input.Question),
		Category: category,
		Status:   "pending",
	}
	if err := s.store.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

type QuestionFilter struct {
	Search   string
	Status   string
	Category string
}

func (s *QuestionService) List(ctx context.Context, filter QuestionFilter) ([]models.UserQuestion, error) {
	questions, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.UserQuestion, 0, len(questions))
	for _, question := range questions {
		if filter.Status != "" && question.Status != filter.Status {
			continue
		}
		if filter.Category != "" && question.Category != filter.Category {
			continue
		}
		if !MatchesQuery(filter.Search, question.Name, question.Email, question.Question) {
			continue
		}
		filtered = append(filtered, question)
	}
	return filtered, nil
}

func (s *QuestionService) Get(ctx context.Context, id int64) (*models.UserQuestion, error) {
	return s.store.GetByID(ctx, id)
}

// Answer attaches an admin answer and marks the question answered.
func (s *QuestionService) Answer(ctx context.Context, id int64, answer string) (*models.UserQuestion, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, ErrInvalidInput
	}

	question, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(answer)
	question.Answer = &trimmed
	question.Status = "answered"
	if err := s.store.Update(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) UpdateStatus(ctx context.Context, id int64, status string) (*models.UserQuestion, error) {
	if !utils.IsValidStatus("question", status) {
		return nil, ErrInvalidStatus
	}

	question, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	question.Status = status
	if err := s.store.Update(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// Promote turns an answered question into a public FAQ entry and
// keeps the question record, marked answered.
func (s *QuestionService) Promote(ctx context.Context, id int64) (*models.FAQ, error) {
	question, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question.Answer == nil || strings.TrimSpace(*question.Answer) == "" {
		return nil, ErrInvalidInput
	}

	faq := &models.FAQ{
		Question: question.Question,
		Answer:   *question.Answer,
		Category: question.Category,
		IsActive: true,
	}
	if err := s.faqs.Create(ctx, faq); err != nil {
		return nil, err
	}

	if question.Status != "answered" {
		question.Status = "answered"
		if err := s.store.Update(ctx, question); err != nil {
			return nil, err
		}
	}
	return faq, nil
}

func (s *QuestionService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (s *QuestionService) Stats(ctx context.Context) (*models.QuestionStats, error) {
	questions, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.QuestionStats{Total: len(questions)}
	for _, question := range questions {
		switch question.Status {
		case "pending":
			stats.Pending++
		case "reviewed":
			stats.Reviewed++
		case "answered":
			stats.Answered++
		}
	}
	return stats, nil
}
