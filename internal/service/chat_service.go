package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"systemfit/leveling-app/internal/cache"
	"systemfit/leveling-app/internal/generator"
	"systemfit/leveling-app/internal/storage"
)

// Offline/degraded responses shown when no backend credential is configured
// or a remote call fails. The chat surface never returns an error to the
// caller; it speaks in the product voice instead.
const (
	msgChatOffline    = "SISTEMA OFFLINE. Verifique a conexão com a API."
	msgChatEmpty      = "Sem resposta do Sistema."
	msgChatFailed     = "Erro: O Sistema não pode processar a solicitação."
	msgSearchOffline  = "SISTEMA OFFLINE."
	msgSearchFailed   = "Funcionalidade de busca indisponível."
	msgSearchEmpty    = "Nenhum dado encontrado."
	msgVisionOffline  = "SISTEMA OFFLINE. Visão indisponível."
	msgVisionFailed   = "Erro: Falha na análise de imagem."
	msgAnalysisFailed = "Falha na Análise."
)

// ChatService is the conversational surface of the System: coaching chat,
// grounded knowledge search, physique/equipment image analysis and exercise
// visualization.
type ChatService interface {
	Chat(ctx context.Context, username, message string) (string, error)
	SearchKnowledge(ctx context.Context, query string) (*generator.SearchResult, error)
	AnalyzeImage(ctx context.Context, image []byte, prompt string) (string, error)
	// Visualize renders a technical illustration for the given subject and
	// returns a temporary download URL, or "" when unavailable.
	Visualize(ctx context.Context, subject string) (string, error)
	ClearHistory(ctx context.Context, username string) error
}

type chatService struct {
	gen     generator.Client
	history *cache.ChatHistory
	files   storage.FileStorage
}

func NewChatService(gen generator.Client, history *cache.ChatHistory, files storage.FileStorage) ChatService {
	return &chatService{gen: gen, history: history, files: files}
}

// Chat sends one message with the user's stored conversation as context and
// records both turns. History failures degrade to a stateless exchange.
func (s *chatService) Chat(ctx context.Context, username, message string) (string, error) {
	if !s.gen.Enabled() {
		return msgChatOffline, nil
	}

	var turns []generator.ChatTurn
	if s.history != nil {
		stored, err := s.history.Get(ctx, username)
		if err != nil {
			log.Printf("WARN: Failed to load chat history for %s: %v", username, err)
		} else {
			turns = stored
		}
	}

	reply, err := s.gen.Chat(ctx, message, turns)
	if err != nil {
		log.Printf("WARN: Chat request failed: %v", err)
		return msgChatFailed, nil
	}
	if reply == "" {
		return msgChatEmpty, nil
	}

	if s.history != nil {
		for _, turn := range []generator.ChatTurn{
			{Role: "user", Text: message},
			{Role: "model", Text: reply},
		} {
			if err := s.history.Append(ctx, username, turn); err != nil {
				log.Printf("WARN: Failed to record chat turn for %s: %v", username, err)
				break
			}
		}
	}
	return reply, nil
}

func (s *chatService) SearchKnowledge(ctx context.Context, query string) (*generator.SearchResult, error) {
	if !s.gen.Enabled() {
		return &generator.SearchResult{Text: msgSearchOffline, Sources: []generator.Source{}}, nil
	}

	result, err := s.gen.SearchKnowledge(ctx, query)
	if err != nil {
		log.Printf("WARN: Knowledge search failed: %v", err)
		return &generator.SearchResult{Text: msgSearchFailed, Sources: []generator.Source{}}, nil
	}
	if result == nil || result.Text == "" {
		return &generator.SearchResult{Text: msgSearchEmpty, Sources: []generator.Source{}}, nil
	}
	return result, nil
}

func (s *chatService) AnalyzeImage(ctx context.Context, image []byte, prompt string) (string, error) {
	if !s.gen.Enabled() {
		return msgVisionOffline, nil
	}

	analysis, err := s.gen.AnalyzeImage(ctx, image, prompt)
	if err != nil {
		log.Printf("WARN: Image analysis failed: %v", err)
		return msgVisionFailed, nil
	}
	if analysis == "" {
		return msgAnalysisFailed, nil
	}
	return analysis, nil
}

// Visualize generates the illustration, stores it and hands back a
// presigned download URL. Every failure mode yields "", not an error:
// visualization is a cosmetic feature.
func (s *chatService) Visualize(ctx context.Context, subject string) (string, error) {
	if !s.gen.Enabled() || s.files == nil {
		return "", nil
	}

	image, err := s.gen.GenerateVisualization(ctx, subject)
	if err != nil {
		log.Printf("WARN: Visualization failed: %v", err)
		return "", nil
	}
	if len(image) == 0 {
		return "", nil
	}

	objectKey := fmt.Sprintf("visualizations/%s.png", uuid.NewString())
	if err := s.files.UploadObject(ctx, objectKey, "image/png", image); err != nil {
		return "", nil
	}

	url, err := s.files.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		// The object is unreachable without a URL; remove it so failed
		// requests do not accumulate orphans in the bucket.
		if delErr := s.files.DeleteObject(ctx, objectKey); delErr != nil {
			log.Printf("WARN: Failed to remove unreachable visualization %s: %v", objectKey, delErr)
		}
		return "", nil
	}
	return url, nil
}

func (s *chatService) ClearHistory(ctx context.Context, username string) error {
	if s.history == nil {
		return nil
	}
	return s.history.Clear(ctx, username)
}
