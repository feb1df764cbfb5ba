package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/jackc/pgx/v5"
)

type stubQuestionStore struct {
	byID    map[int64]*models.UserQuestion
	created []*models.UserQuestion
	updated []*models.UserQuestion
}

func (s *stubQuestionStore) Create(_ context.Context, question *models.UserQuestion) error {
	question.ID = int64(len(s.created) + 1)
	s.created = append(s.created, question)
	return nil
}

func (s *stubQuestionStore) GetAll(_ context.Context) ([]models.UserQuestion, error) {
	all := make([]models.UserQuestion, 0, len(s.byID))
	for _, q := range s.byID {
		all = append(all, *q)
	}
	return all, nil
}

func (s *stubQuestionStore) GetByID(_ context.Context, id int64) (*models.UserQuestion, error) {
	question, ok := s.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *question
	return &copied, nil
}

func (s *stubQuestionStore) Update(_ context.Context, question *models.UserQuestion) error {
	s.updated = append(s.updated, question)
	if existing, ok := s.byID[question.ID]; ok {
		*existing = *question
	}
	return nil
}

func (s *stubQuestionStore) Delete(_ context.Context, _ int64) error { return nil }

type stubFAQWriter struct {
	created []*models.FAQ
}

func (s *stubFAQWriter) Create(_ context.Context, faq *models.FAQ) error {
	faq.ID = int64(len(s.created) + 1)
	s.created = append(s.created, faq)
	return nil
}

func TestSubmitDefaultsCategoryAndStatus(t *testing.T) {
	store := &stubQuestionStore{byID: map[int64]*models.UserQuestion{}}
	service := NewQuestionService(store, &stubFAQWriter{})

	question, err := service.Submit(context.Background(), SubmitQuestionInput{
		Name:     "  Dana  ",
		Email:    "Dana@Example.com",
		Question: "How often should I train per week?",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if question.Category != "General" {
		t.Fatalf("category = %q, want General", question.Category)
	}
	if question.Status != "pending" {
		t.Fatalf("status = %q, want pending", question.Status)
	}
	if question.Name != "Dana" || question.Email != "dana@example.com" {
		t.Fatalf("expected trimmed and normalized fields, got %+v", question)
	}
}

func TestSubmitRejectsInvalidQuestion(t *testing.T) {
	service := NewQuestionService(&stubQuestionStore{byID: map[int64]*models.UserQuestion{}}, &stubFAQWriter{})

	cases := []SubmitQuestionInput{
		{Email: "d@example.com", Question: "Q?"},
		{Name: "D", Email: "bad", Question: "Q?"},
		{Name: "D", Email: "d@example.com"},
	}
	for i, input := range cases {
		if _, err := service.Submit(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestAnswerMarksQuestionAnswered(t *testing.T) {
	store := &stubQuestionStore{byID: map[int64]*models.UserQuestion{
		7: {ID: 7, Name: "Dana", Question: "How much protein?", Status: "pending"},
	}}
	service := NewQuestionService(store, &stubFAQWriter{})

	question, err := service.Answer(context.Background(), 7, "  About 1.6g per kg.  ")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if question.Status != "answered" {
		t.Fatalf("status = %q, want answered", question.Status)
	}
	if question.Answer == nil || *question.Answer != "About 1.6g per kg." {
		t.Fatalf("answer = %v", question.Answer)
	}
}

func TestPromoteCreatesActiveFAQ(t *testing.T) {
	answer := "Three full-body sessions work for most beginners."
	store := &stubQuestionStore{byID: map[int64]*models.UserQuestion{
		3: {
			ID:       3,
			Question: "How often should a beginner train?",
			Answer:   &answer,
			Category: "Training",
			Status:   "reviewed",
		},
	}}
	faqs := &stubFAQWriter{}
	service := NewQuestionService(store, faqs)

	faq, err := service.Promote(context.Background(), 3)
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if !faq.IsActive {
		t.Fatal("promoted FAQ must be active")
	}
	if faq.Question != "How often should a beginner train?" || faq.Answer != answer {
		t.Fatalf("unexpected FAQ content: %+v", faq)
	}
	if faq.Category != "Training" {
		t.Fatalf("category = %q", faq.Category)
	}
	if store.byID[3].Status != "answered" {
		t.Fatalf("source question status = %q, want answered", store.byID[3].Status)
	}
}

func TestPromoteRequiresAnswer(t *testing.T) {
	store := &stubQuestionStore{byID: map[int64]*models.UserQuestion{
		4: {ID: 4, Question: "Unanswered?", Status: "pending"},
	}}
	faqs := &stubFAQWriter{}
	service := NewQuestionService(store, faqs)

	if _, err := service.Promote(context.Background(), 4); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(faqs.created) != 0 {
		t.Fatal("no FAQ should be created for an unanswered question")
	}
}

func TestQuestionUpdateStatusValidates(t *testing.T) {
	store := &stubQuestionStore{byID: map[int64]*models.UserQuestion{
		5: {ID: 5, Status: "pending"},
	}}
	service := NewQuestionService(store, &stubFAQWriter{})

	if _, err := service.UpdateStatus(context.Background(), 5, "archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	question, err := service.UpdateStatus(context.Background(), 5, "reviewed")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if question.Status != "reviewed" {
		t.Fatalf("status = %q", question.Status)
	}
}
