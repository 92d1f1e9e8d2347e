package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nikolayk812/bookverse/internal/cache"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const maxRecommendations = 3

// RecommendService asks a hosted language model for up to three books
// similar to a given one. The whole feature is best effort: any failure
// degrades to an empty result, nothing is surfaced to the caller.
type RecommendService struct {
	books  port.BookRepository
	cache  cache.RecommendCache
	client *http.Client
	logger zerolog.Logger

	endpoint string
	apiKey   string
	model    string

	sfg singleflight.Group // one model call per book id at a time
}

func NewRecommendService(books port.BookRepository, recCache cache.RecommendCache,
	endpoint, apiKey, model string, logger zerolog.Logger) (*RecommendService, error) {
	if books == nil {
		return nil, fmt.Errorf("books is nil")
	}
	if recCache == nil {
		return nil, fmt.Errorf("recCache is nil")
	}

	return &RecommendService{
		books:    books,
		cache:    recCache,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
	}, nil
}

// Recommend never returns an error; an empty slice means no
// recommendations are available right now.
func (s *RecommendService) Recommend(ctx context.Context, bookID string) []domain.Book {
	if s.endpoint == "" {
		return nil
	}

	book, err := s.books.GetBook(ctx, bookID)
	if err != nil {
		s.logger.Debug().Err(err).Str("book_id", bookID).Msg("recommend: book lookup failed")
		return nil
	}

	catalog, err := s.books.ListBooks(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Msg("recommend: catalog listing failed")
		return nil
	}

	byID := make(map[string]domain.Book, len(catalog))
	for _, b := range catalog {
		byID[b.ID] = b
	}

	ids, err := s.cache.Get(ctx, bookID)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Debug().Err(err).Msg("recommend: cache get failed")
		}

		v, err, _ := s.sfg.Do(bookID, func() (any, error) {
			return s.fetchIDs(ctx, book, catalog)
		})
		if err != nil {
			s.logger.Debug().Err(err).Str("book_id", bookID).Msg("recommend: model call failed")
			return nil
		}
		ids = v.([]string)

		if err := s.cache.Set(ctx, bookID, ids); err != nil {
			s.logger.Debug().Err(err).Msg("recommend: cache set failed")
		}
	}

	var result []domain.Book
	for _, id := range ids {
		if b, ok := byID[id]; ok && id != bookID {
			result = append(result, b)
		}
		if len(result) == maxRecommendations {
			break
		}
	}

	return result
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *RecommendService) fetchIDs(ctx context.Context, book domain.Book, catalog []domain.Book) ([]string, error) {
	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a knowledgeable bookstore assistant helping customers discover books they might like."},
			{Role: "user", Content: buildPrompt(book, catalog)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model endpoint returned %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("model returned no choices")
	}

	var parsed struct {
		Recommendations []string `json:"recommendations"`
	}
	content := chat.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("parse model content: %w", err)
	}

	return parsed.Recommendations, nil
}

func buildPrompt(book domain.Book, catalog []domain.Book) string {
	var sb strings.Builder

	sb.WriteString("Recommend exactly 3 other books from the list below, similar in genre and theme to this one. ")
	sb.WriteString("Never recommend the book itself. ")
	sb.WriteString(`Respond with a JSON object of the form {"recommendations": ["<id>", ...]} and nothing else.`)
	sb.WriteString("\n\nBook:\n")
	fmt.Fprintf(&sb, "id: %s\ntitle: %s\nauthor: %s\ngenre: %s\ndescription: %s\n", book.ID, book.Title, book.Author, book.Genre, book.Description)

	sb.WriteString("\nAvailable books:\n")
	for _, b := range catalog {
		if b.ID == book.ID {
			continue
		}
		fmt.Fprintf(&sb, "- id: %s, title: %s, author: %s, genre: %s\n", b.ID, b.Title, b.Author, b.Genre)
	}

	return sb.String()
}
