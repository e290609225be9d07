package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/avelichko/schoolinv/internal/logging"
	"google.golang.org/genai"
)

const visionPrompt = `Это фотография единицы школьного инвентаря.
Определи по ней категорию, модель и серийный номер, если они различимы.
Ответь строго JSON-объектом вида
{"category": "...", "model": "...", "serialNumber": "..."}
с пустыми строками вместо неизвестных значений.`

// Suggestion is the best-effort auto-fill produced from an item photo.
// Any field may be empty.
type Suggestion struct {
	Category     string `json:"category"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
}

// Vision asks Gemini to describe an item photo for form auto-fill. It never
// fails the caller: without an API key it is disabled, and any request or
// parse error degrades to an empty suggestion with a warning in the log.
type Vision struct {
	client *genai.Client
	model  string
	log    logging.Logger
}

// NewVision constructs the helper. An empty apiKey yields a disabled
// instance; a client construction error is logged and also yields a
// disabled instance.
func NewVision(ctx context.Context, apiKey, model string, log logging.Logger) *Vision {
	v := &Vision{model: model, log: log}
	if apiKey == "" {
		return v
	}
	if v.model == "" {
		v.model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		log.Warn(ctx, "photo analysis unavailable", "error", err)
		return v
	}
	v.client = client
	return v
}

// Enabled reports whether photo analysis can be attempted.
func (v *Vision) Enabled() bool {
	return v.client != nil
}

// Analyze returns form suggestions for the given image. On any failure the
// zero Suggestion is returned.
func (v *Vision) Analyze(ctx context.Context, image []byte, mimeType string) Suggestion {
	var s Suggestion
	if v.client == nil {
		return s
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(visionPrompt),
		}, genai.RoleUser),
	}

	resp, err := v.client.Models.GenerateContent(ctx, v.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		v.log.Warn(ctx, "photo analysis failed", "error", err)
		return Suggestion{}
	}

	text := strings.TrimSpace(resp.Text())
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		v.log.Warn(ctx, "photo analysis returned malformed reply", "error", err)
		return Suggestion{}
	}
	return s
}
