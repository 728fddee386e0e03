package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/framesift/ai"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Encoder implements ai.ImageEncoder against a CLIP-serving
// OpenAI-compatible embeddings endpoint.
//
// The text branch goes through the regular embeddings client. The image
// branch posts a base64 data URI to the same endpoint, which is how
// CLIP-serving servers accept image input; no Go client library exposes
// that surface, so the request is issued directly.
type Encoder struct {
	host       string
	model      string
	httpClient *http.Client
	textClient embeddings.Embedder
	logger     *slog.Logger
}

// newEncoder is an internal constructor that returns the concrete type.
func newEncoder(config *ai.Config) (*Encoder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.EncoderHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EncoderModel),
	)
	if err != nil {
		return nil, err
	}

	textClient, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &Encoder{
		host:       config.EncoderHost,
		model:      config.EncoderModel,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		textClient: textClient,
		logger:     slog.Default().With("component", "openai-encoder"),
	}, nil
}

// NewEncoder creates a new image encoder using the provided configuration.
//
// Returns ai.ImageEncoder interface to enforce abstraction.
func NewEncoder(config *ai.Config) (ai.ImageEncoder, error) {
	return newEncoder(config)
}

// embeddingRequest is the OpenAI-compatible embeddings request body.
type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// embeddingResponse is the OpenAI-compatible embeddings response body.
type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// EmbedImage generates a visual embedding for an encoded image.
func (e *Encoder) EmbedImage(ctx context.Context, image []byte) ([]float32, error) {
	dataURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)

	body, err := json.Marshal(embeddingRequest{Model: e.model, Input: []string{dataURI}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.host+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.logger.Error("image embedding request failed", "err", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("image embedding request returned %d: %s", resp.StatusCode, msg)
	}

	var decoded embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding image embedding response: %w", err)
	}
	if len(decoded.Data) == 0 {
		return nil, fmt.Errorf("image embedding response contained no data")
	}

	return decoded.Data[0].Embedding, nil
}

// EmbedImageText generates a text embedding in the image encoder's space.
func (e *Encoder) EmbedImageText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.textClient.EmbedDocuments(ctx, []string{text})
	if err != nil {
		e.logger.Error("encoder text embedding failed", "err", err)
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("encoder text embedding returned no data")
	}
	return vectors[0], nil
}
