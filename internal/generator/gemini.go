package generator

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"systemfit/leveling-app/internal/domain"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// A hung remote call must surface as an error so the fallback path
	// triggers in bounded time.
	defaultTimeout = 60 * time.Second

	defaultTextModel  = "gemini-3-flash-preview"
	defaultChatModel  = "gemini-3-pro-preview"
	defaultImageModel = "gemini-2.5-flash-image"
)

// geminiClient talks to the Gemini generateContent REST API.
type geminiClient struct {
	apiKey     string
	baseURL    string
	textModel  string
	chatModel  string
	imageModel string
	httpClient *http.Client
}

// NewGeminiClient builds the production generation client. An empty apiKey
// yields a disabled client; callers are expected to check Enabled and route
// to offline behavior.
func NewGeminiClient(apiKey, textModel, chatModel, imageModel string) Client {
	if textModel == "" {
		textModel = defaultTextModel
	}
	if chatModel == "" {
		chatModel = defaultChatModel
	}
	if imageModel == "" {
		imageModel = defaultImageModel
	}
	return &geminiClient{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		textModel:  textModel,
		chatModel:  chatModel,
		imageModel: imageModel,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

func (g *geminiClient) Enabled() bool {
	return g.apiKey != ""
}

// --- Wire types ---

type geminiBlob struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *geminiBlob `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
	Tools             []geminiTool      `json:"tools,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content           geminiContent `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []struct {
				Web *struct {
					Title string `json:"title"`
					URI   string `json:"uri"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

func systemText(text string) *geminiContent {
	return &geminiContent{Parts: []geminiPart{{Text: text}}}
}

func userText(text string) geminiContent {
	return geminiContent{Role: "user", Parts: []geminiPart{{Text: text}}}
}

func (g *geminiClient) generateContent(ctx context.Context, model string, reqBody geminiRequest) (*geminiResponse, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generator: %s returned status %d", model, resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &parsed, nil
}

// firstText concatenates the text parts of the first candidate.
func firstText(resp *geminiResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String()
}

// cleanJSON strips Markdown code fences some models wrap JSON payloads in.
func cleanJSON(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	return strings.TrimSpace(cleaned)
}

// --- Response schemas (structured output) ---

func schemaOf(t string) map[string]any { return map[string]any{"type": t} }

func exerciseSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"name":          schemaOf("STRING"),
			"sets":          schemaOf("NUMBER"),
			"reps":          schemaOf("STRING"),
			"restTime":      schemaOf("STRING"),
			"grip":          schemaOf("STRING"),
			"notes":         schemaOf("STRING"),
			"technicalTips": schemaOf("STRING"),
			"difficulty": map[string]any{
				"type": "STRING",
				"enum": []string{"Normal", "Hard", "Hell"},
			},
		},
		"required": []string{"name", "sets", "reps", "restTime", "difficulty", "technicalTips", "grip"},
	}
}

func workoutPlanSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"title":             schemaOf("STRING"),
			"xpReward":          schemaOf("NUMBER"),
			"estimatedDuration": schemaOf("STRING"),
			"mobilityRoutine": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"name":        schemaOf("STRING"),
						"duration":    schemaOf("STRING"),
						"description": schemaOf("STRING"),
						"benefit":     schemaOf("STRING"),
					},
					"required": []string{"name", "duration", "description", "benefit"},
				},
			},
			"exercises": map[string]any{
				"type":  "ARRAY",
				"items": exerciseSchema(),
			},
		},
		"required": []string{"title", "xpReward", "estimatedDuration", "mobilityRoutine", "exercises"},
	}
}

// --- Client surface ---

func (g *geminiClient) GeneratePlan(ctx context.Context, req PlanRequest) (*GeneratedPlan, error) {
	if !g.Enabled() {
		return nil, nil
	}

	resp, err := g.generateContent(ctx, g.textModel, geminiRequest{
		Contents:          []geminiContent{userText(buildWorkoutPrompt(req))},
		SystemInstruction: systemText(workoutSystemInstruction(req.Mode)),
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   workoutPlanSchema(),
		},
	})
	if err != nil {
		return nil, err
	}

	var plan GeneratedPlan
	if err := json.Unmarshal([]byte(cleanJSON(firstText(resp))), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &plan, nil
}

func (g *geminiClient) GenerateAlternatives(ctx context.Context, exerciseName, muscleContext string) ([]domain.Exercise, error) {
	if !g.Enabled() {
		return nil, nil
	}

	prompt := fmt.Sprintf("Substitua %q (%s). 4 opções. JSON.", exerciseName, muscleContext)
	resp, err := g.generateContent(ctx, g.textModel, geminiRequest{
		Contents: []geminiContent{userText(prompt)},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"alternatives": map[string]any{
						"type":  "ARRAY",
						"items": exerciseSchema(),
					},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Alternatives []domain.Exercise `json:"alternatives"`
	}
	if err := json.Unmarshal([]byte(cleanJSON(firstText(resp))), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(parsed.Alternatives) > 4 {
		parsed.Alternatives = parsed.Alternatives[:4]
	}
	return parsed.Alternatives, nil
}

func (g *geminiClient) GenerateSkillAnalysis(ctx context.Context, skillName string) (*SkillAnalysis, error) {
	if !g.Enabled() {
		return nil, nil
	}

	resp, err := g.generateContent(ctx, g.textModel, geminiRequest{
		Contents:          []geminiContent{userText(fmt.Sprintf("Análise técnica: %s.", skillName))},
		SystemInstruction: systemText(promptSkillAnalysis),
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"description":   schemaOf("STRING"),
					"execution":     map[string]any{"type": "ARRAY", "items": schemaOf("STRING")},
					"technicalTips": schemaOf("STRING"),
				},
				"required": []string{"description", "execution", "technicalTips"},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	var analysis SkillAnalysis
	if err := json.Unmarshal([]byte(cleanJSON(firstText(resp))), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &analysis, nil
}

func (g *geminiClient) GenerateVisualization(ctx context.Context, prompt string) ([]byte, error) {
	if !g.Enabled() {
		return nil, nil
	}

	resp, err := g.generateContent(ctx, g.imageModel, geminiRequest{
		Contents: []geminiContent{userText(buildVisualizationPrompt(prompt))},
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 {
		return nil, nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil {
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			return data, nil
		}
	}
	return nil, nil
}

func (g *geminiClient) Chat(ctx context.Context, message string, history []ChatTurn) (string, error) {
	if !g.Enabled() {
		return "", nil
	}

	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, geminiContent{
			Role:  turn.Role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, userText(message))

	resp, err := g.generateContent(ctx, g.chatModel, geminiRequest{
		Contents:          contents,
		SystemInstruction: systemText(promptCoach),
	})
	if err != nil {
		return "", err
	}
	return firstText(resp), nil
}

func (g *geminiClient) SearchKnowledge(ctx context.Context, query string) (*SearchResult, error) {
	if !g.Enabled() {
		return nil, nil
	}

	resp, err := g.generateContent(ctx, g.textModel, geminiRequest{
		Contents: []geminiContent{userText(query)},
		Tools:    []geminiTool{{GoogleSearch: &struct{}{}}},
	})
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Text: firstText(resp), Sources: []Source{}}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web != nil {
				result.Sources = append(result.Sources, Source{Title: chunk.Web.Title, URI: chunk.Web.URI})
			}
		}
	}
	return result, nil
}

func (g *geminiClient) AnalyzeImage(ctx context.Context, image []byte, prompt string) (string, error) {
	if !g.Enabled() {
		return "", nil
	}

	resp, err := g.generateContent(ctx, g.chatModel, geminiRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{InlineData: &geminiBlob{MimeType: "image/jpeg", Data: base64.StdEncoding.EncodeToString(image)}},
				{Text: prompt},
			},
		}},
		SystemInstruction: systemText(promptImageAnalysis),
	})
	if err != nil {
		return "", err
	}
	return firstText(resp), nil
}
