package faq

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/url"
	"strings"

	"support-chat-backend/internal/env"
	"support-chat-backend/internal/model"
)

const (
	// minConfidence is the cosine score under which a match is treated
	// as "no answer found" and the generator picks the fallback wording.
	minConfidence = 0.60

	indexBatchSize = 20

	summaryPrompt = "Summarize the following answer in one short sentence."
)

type ai interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// Service answers general inquiries from the embedded FAQ corpus.
type Service struct {
	repo    Repository
	ai      ai
	baseURL string
}

func New(client ai) *Service {
	return NewWithDeps(NewRedisRepository(), client, env.Get(env.FAQBaseURL))
}

func NewWithDeps(repo Repository, client ai, baseURL string) *Service {
	return &Service{
		repo:    repo,
		ai:      client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Search returns the best FAQ match for the query, or nil when nothing
// scores above the confidence floor.
func (s *Service) Search(ctx context.Context, query string) (*model.FAQResult, error) {
	embedding, err := s.ai.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("search faqs: %w", err)
	}

	var best *Entry
	bestScore := -1.0
	for i := range entries {
		score := cosine(embedding, entries[i].Embedding)
		if score > bestScore {
			best = &entries[i]
			bestScore = score
		}
	}

	if best == nil || bestScore < minConfidence {
		return nil, nil
	}

	result := &model.FAQResult{
		Question:    best.FAQ.Question,
		Answer:      best.FAQ.Answer,
		ShortAnswer: best.FAQ.ShortAnswer,
		LinkURL:     best.FAQ.LinkURL,
		Confidence:  bestScore,
	}
	if result.ShortAnswer == "" {
		result.ShortAnswer = s.shortAnswer(ctx, best.FAQ.Answer)
	}
	if result.LinkURL == "" {
		result.LinkURL = s.faqLink(best.FAQ.Question)
	}
	return result, nil
}

// IndexFAQs embeds and upserts entries in batches to stay under rate limits.
func (s *Service) IndexFAQs(ctx context.Context, faqs []model.FAQ) error {
	for start := 0; start < len(faqs); start += indexBatchSize {
		end := start + indexBatchSize
		if end > len(faqs) {
			end = len(faqs)
		}

		batch := make([]Entry, 0, end-start)
		for _, item := range faqs[start:end] {
			text := fmt.Sprintf("Question: %s\nAnswer: %s", item.Question, item.Answer)
			embedding, err := s.ai.Embed(ctx, text)
			if err != nil {
				return fmt.Errorf("embed faq %s: %w", item.ID, err)
			}
			batch = append(batch, Entry{FAQ: item, Embedding: embedding})
		}

		if err := s.repo.PutEntries(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) shortAnswer(ctx context.Context, fullAnswer string) string {
	summary, err := s.ai.Complete(ctx, summaryPrompt, fullAnswer, 100)
	if err == nil && summary != "" {
		return summary
	}
	if err != nil {
		log.Printf("faq: short answer summarization failed: %v", err)
	}
	if len(fullAnswer) > 100 {
		return fullAnswer[:100] + "..."
	}
	return fullAnswer
}

func (s *Service) faqLink(question string) string {
	if s.baseURL == "" {
		return ""
	}
	return s.baseURL + "#:~:text=" + url.QueryEscape(strings.ToUpper(question))
}

func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
