package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/blood-press-log/internal/config"
	"github.com/MKhiriev/blood-press-log/internal/logger"
	"github.com/MKhiriev/blood-press-log/models"
)

// extractionPrompt instructs the vision model to answer with nothing but
// the three values in a fixed comma-separated order.
const extractionPrompt = "Extract the systolic, diastolic, and pulse readings displayed on a digital " +
	"blood pressure monitor. The values are shown on the screen, where the systolic (SYS) is the upper " +
	"number, the diastolic (DIA) is the middle number, and the pulse (PULSE) is the bottom number. " +
	"Output the values in the format: 'SYS, DIA, PULSE'. Do not add any additional text"

const completionsPath = "/v1/chat/completions"

type ocrAdapter struct {
	client *resty.Client
	model  string
	logger *logger.Logger
}

// NewOCRAdapter constructs a [Recognizer] talking to an OpenAI-compatible
// chat-completions API. Empty config fields fall back to the public OpenAI
// endpoint, the gpt-4o model, and a 15 second request timeout.
func NewOCRAdapter(cfg config.OCR, log *logger.Logger) Recognizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.APIKey)

	return &ocrAdapter{client: cli, model: cfg.Model, logger: log}
}

// completionRequest is the subset of the chat-completions request schema
// this adapter uses: one user message carrying the prompt and the image.
type completionRequest struct {
	Model    string              `json:"model"`
	Messages []completionMessage `json:"messages"`
}

type completionMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

// completionResponse is the subset of the reply schema the adapter reads.
type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Recognize sends the image to the completion API and parses the reply.
//
// The reply is expected to be exactly three comma-separated tokens
// ("118, 76, 69"). Token count is validated explicitly: anything else
// yields [ErrMalformedReply] rather than an index fault. The call is
// fire-once; timeouts and transport errors surface as
// [ErrRecognitionFailed].
func (o *ocrAdapter) Recognize(ctx context.Context, imageBase64 string) (models.RawMeasurement, error) {
	log := logger.FromContext(ctx)

	payload := completionRequest{
		Model: o.model,
		Messages: []completionMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: extractionPrompt},
					{Type: "image_url", ImageURL: &imageURL{
						URL: "data:image/png;base64," + imageBase64,
					}},
				},
			},
		},
	}

	var completion completionResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&completion).
		Post(completionsPath)
	if err != nil {
		log.Err(err).Str("func", "ocrAdapter.Recognize").Msg("recognition request failed")
		return models.RawMeasurement{}, fmt.Errorf("%w: %w", ErrRecognitionFailed, err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Error().
			Str("func", "ocrAdapter.Recognize").
			Int("status", resp.StatusCode()).
			Msg("recognition API returned non-OK status")
		return models.RawMeasurement{}, fmt.Errorf("%w: http %d: %s",
			ErrRecognitionFailed, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	if len(completion.Choices) == 0 {
		return models.RawMeasurement{}, ErrEmptyCompletion
	}

	return parseReply(completion.Choices[0].Message.Content)
}

// parseReply splits the model's answer into the three channels, trimmed
// and unparsed. Number conversion is the caller's concern.
func parseReply(content string) (models.RawMeasurement, error) {
	tokens := strings.Split(content, ",")
	if len(tokens) != 3 {
		return models.RawMeasurement{}, fmt.Errorf("%w: expected 3 comma-separated values, got %d in %q",
			ErrMalformedReply, len(tokens), content)
	}

	return models.RawMeasurement{
		High: strings.TrimSpace(tokens[0]),
		Low:  strings.TrimSpace(tokens[1]),
		Plus: strings.TrimSpace(tokens[2]),
	}, nil
}
