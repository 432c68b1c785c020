package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

// ErrStream marks a response stream that failed or ended without a completed
// response.
var ErrStream = errors.New("stream error")

// OpenAIResponder talks to the OpenAI Responses API.
type OpenAIResponder struct {
	client openai.Client
	stream bool
}

// OpenAIConfig holds configuration for the OpenAI responder.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string

	// Stream writes reply text as it is generated.
	Stream bool

	// Timeout bounds a single exchange. Zero means no client-side limit.
	Timeout time.Duration
}

// NewOpenAIResponder creates a new OpenAI responder. Requests are never
// retried.
func NewOpenAIResponder(cfg OpenAIConfig) *OpenAIResponder {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &OpenAIResponder{
		client: openai.NewClient(opts...),
		stream: cfg.Stream,
	}
}

// Respond sends one user turn and returns the reply.
func (r *OpenAIResponder) Respond(ctx context.Context, req Request, w io.Writer) (*Reply, error) {
	params := buildParams(req)

	slog.Debug("sending response request",
		"model", req.Model,
		"continuing", req.PreviousResponseID != "",
		"stream", r.stream,
	)

	if r.stream {
		return r.respondStreaming(ctx, params, w)
	}

	resp, err := r.client.Responses.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create response: %w", err)
	}

	return &Reply{
		Text:  resp.OutputText(),
		ID:    resp.ID,
		Model: string(resp.Model),
	}, nil
}

func (r *OpenAIResponder) respondStreaming(ctx context.Context, params responses.ResponseNewParams, w io.Writer) (*Reply, error) {
	stream := r.client.Responses.NewStreaming(ctx, params)
	defer stream.Close()

	var text strings.Builder
	reply := &Reply{}

	for stream.Next() {
		event := stream.Current()

		switch event.Type {
		case "response.output_text.delta":
			text.WriteString(event.Delta)
			if w != nil {
				if _, err := io.WriteString(w, event.Delta); err != nil {
					return nil, fmt.Errorf("write delta: %w", err)
				}
			}
		case "response.completed":
			reply.ID = event.Response.ID
			reply.Model = string(event.Response.Model)
		case "response.failed":
			message := event.Response.Error.Message
			if message == "" {
				message = "response " + string(event.Response.Status)
			}
			return nil, fmt.Errorf("%w: %s", ErrStream, message)
		case "response.incomplete":
			return nil, fmt.Errorf("%w: response incomplete: %s", ErrStream, event.Response.IncompleteDetails.Reason)
		case "error":
			return nil, fmt.Errorf("%w: %s", ErrStream, event.Message)
		}
	}

	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("stream response: %w", err)
	}
	if reply.ID == "" {
		return nil, fmt.Errorf("%w: stream ended before the response completed", ErrStream)
	}

	reply.Text = text.String()
	return reply, nil
}

func buildParams(req Request) responses.ResponseNewParams {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				{
					OfMessage: &responses.EasyInputMessageParam{
						Role: responses.EasyInputMessageRoleUser,
						Content: responses.EasyInputMessageContentUnionParam{
							OfString: openai.String(req.Input),
						},
					},
				},
			},
		},
	}
	if req.PreviousResponseID != "" {
		params.PreviousResponseID = openai.String(req.PreviousResponseID)
	}

	return params
}
