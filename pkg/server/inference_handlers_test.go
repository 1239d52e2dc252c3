package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mightyai/mighty-gateway/config"
	"github.com/mightyai/mighty-gateway/pkg/models"
)

// mockInferenceClient implements models.InferenceClient with per-operation
// function fields so each test can stub exactly what it needs.
type mockInferenceClient struct {
	healthCheck            func(ctx context.Context) (*models.HealthcheckResponse, error)
	embeddings             func(ctx context.Context, req *models.TextRequest) (*models.EmbeddingsResponse, error)
	questionAnswering      func(ctx context.Context, req *models.QuestionAnswerRequest) (*models.QuestionAnswerResponse, error)
	sentenceTransformers   func(ctx context.Context, req *models.TextRequest) (*models.SentenceTransformersResponse, error)
	sequenceClassification func(ctx context.Context, req *models.TextRequest) (*models.SequenceClassificationResponse, error)
	tokenClassification    func(ctx context.Context, req *models.TextRequest) (*models.TokenClassificationResponse, error)
	metadata               func(ctx context.Context) (*models.MetadataResponse, error)
}

var _ models.InferenceClient = &mockInferenceClient{}

func (m *mockInferenceClient) HealthCheck(ctx context.Context) (*models.HealthcheckResponse, error) {
	return m.healthCheck(ctx)
}

func (m *mockInferenceClient) Embeddings(ctx context.Context, req *models.TextRequest) (*models.EmbeddingsResponse, error) {
	return m.embeddings(ctx, req)
}

func (m *mockInferenceClient) QuestionAnswering(
	ctx context.Context,
	req *models.QuestionAnswerRequest,
) (*models.QuestionAnswerResponse, error) {
	return m.questionAnswering(ctx, req)
}

func (m *mockInferenceClient) SentenceTransformers(
	ctx context.Context,
	req *models.TextRequest,
) (*models.SentenceTransformersResponse, error) {
	return m.sentenceTransformers(ctx, req)
}

func (m *mockInferenceClient) SequenceClassification(
	ctx context.Context,
	req *models.TextRequest,
) (*models.SequenceClassificationResponse, error) {
	return m.sequenceClassification(ctx, req)
}

func (m *mockInferenceClient) TokenClassification(
	ctx context.Context,
	req *models.TextRequest,
) (*models.TokenClassificationResponse, error) {
	return m.tokenClassification(ctx, req)
}

func (m *mockInferenceClient) Metadata(ctx context.Context) (*models.MetadataResponse, error) {
	return m.metadata(ctx)
}

func newTestAppState(client models.InferenceClient) *models.AppState {
	return &models.AppState{
		InferenceClient: client,
		Config:          &config.Config{},
	}
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestEmbeddingsRoute(t *testing.T) {
	text := gofakeit.Sentence(5)
	expected := &models.EmbeddingsResponse{
		Embeddings: []models.Embedding{{Values: []float32{0.1, 0.2}}},
		Took:       9,
		Text:       text,
		Shape:      &models.Shape{Dim1: 1, Dim2: 2},
	}

	client := &mockInferenceClient{
		embeddings: func(_ context.Context, req *models.TextRequest) (*models.EmbeddingsResponse, error) {
			// The gateway must pass the request through unmodified.
			assert.Equal(t, text, req.Text)
			return expected, nil
		},
	}
	router := setupRouter(newTestAppState(client))

	res := postJSON(t, router, "/api/v1/embeddings", &models.TextRequest{Text: text})
	require.Equal(t, http.StatusOK, res.Code)

	got := new(models.EmbeddingsResponse)
	err := json.NewDecoder(res.Body).Decode(got)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestEmbeddingsRouteBackendUnavailable(t *testing.T) {
	client := &mockInferenceClient{
		embeddings: func(_ context.Context, _ *models.TextRequest) (*models.EmbeddingsResponse, error) {
			return nil, models.NewBackendUnavailableError("request to backend failed", nil)
		},
	}
	router := setupRouter(newTestAppState(client))

	res := postJSON(t, router, "/api/v1/embeddings", &models.TextRequest{Text: "t"})

	assert.Equal(t, http.StatusServiceUnavailable, res.Code)
	assert.Contains(t, res.Body.String(), "error fetching embeddings")
	assert.Contains(t, res.Body.String(), "request to backend failed")
}

func TestEmbeddingsRouteMalformedBackendResponse(t *testing.T) {
	client := &mockInferenceClient{
		embeddings: func(_ context.Context, _ *models.TextRequest) (*models.EmbeddingsResponse, error) {
			return nil, models.NewMalformedResponseError("failed to parse backend response as JSON", nil)
		},
	}
	router := setupRouter(newTestAppState(client))

	res := postJSON(t, router, "/api/v1/embeddings", &models.TextRequest{Text: "t"})

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Contains(t, res.Body.String(), "error fetching embeddings")
}

func TestEmbeddingsRouteBadRequestBody(t *testing.T) {
	client := &mockInferenceClient{}
	router := setupRouter(newTestAppState(client))

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/v1/embeddings",
		strings.NewReader("{not json"),
	)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestQuestionAnsweringRoute(t *testing.T) {
	request := &models.QuestionAnswerRequest{
		Question: "What is the answer?",
		Context:  "This is the context.",
	}

	client := &mockInferenceClient{
		questionAnswering: func(_ context.Context, req *models.QuestionAnswerRequest) (*models.QuestionAnswerResponse, error) {
			return &models.QuestionAnswerResponse{
				Answer:   "This is the answer.",
				StartIdx: 10,
				EndIdx:   50,
				Question: req.Question,
				Context:  req.Context,
				Took:     9,
			}, nil
		},
	}
	router := setupRouter(newTestAppState(client))

	res := postJSON(t, router, "/api/v1/question-answering", request)
	require.Equal(t, http.StatusOK, res.Code)

	got := new(models.QuestionAnswerResponse)
	err := json.NewDecoder(res.Body).Decode(got)
	require.NoError(t, err)
	assert.Equal(t, request.Question, got.Question)
	assert.Equal(t, request.Context, got.Context)
	assert.Equal(t, "This is the answer.", got.Answer)
}

func TestSentenceTransformersRoute(t *testing.T) {
	client := &mockInferenceClient{
		sentenceTransformers: func(_ context.Context, _ *models.TextRequest) (*models.SentenceTransformersResponse, error) {
			return &models.SentenceTransformersResponse{
				Embeddings: []models.Embedding{{Values: []float32{0.4}}},
			}, nil
		},
	}
	router := setupRouter(newTestAppState(client))

	res := postJSON(t, router, "/api/v1/sentence-transformers", &models.TextRequest{Text: "t"})
	require.Equal(t, http.StatusOK, res.Code)

	got := new(models.SentenceTransformersResponse)
	err := json.NewDecoder(res.Body).Decode(got)
	require.NoError(t, err)
	require.Len(t, got.Embeddings, 1)
	assert.Equal(t, []float32{0.4}, got.Embeddings[0].Values)
}

func TestSequenceClassificationRoute(t *testing.T) {
	client := &mockInferenceClient{
		sequenceClassification: func(_ context.Context, _ *models.TextRequest) (*models.SequenceClassificationResponse, error) {
			return &models.SequenceClassificationResponse{
				Logits: []float32{0.1, 0.2, 0.3},
			}, nil
		},
	}
	router := setupRouter(newTestAppState(client))

	res := postJSON(t, router, "/api/v1/sequence-classification", &models.TextRequest{Text: "t"})
	require.Equal(t, http.StatusOK, res.Code)

	got := new(models.SequenceClassificationResponse)
	err := json.NewDecoder(res.Body).Decode(got)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, got.Logits)
}

func TestTokenClassificationRouteError(t *testing.T) {
	client := &mockInferenceClient{
		tokenClassification: func(_ context.Context, _ *models.TextRequest) (*models.TokenClassificationResponse, error) {
			return nil, models.NewBackendUnavailableError("request to backend failed", nil)
		},
	}
	router := setupRouter(newTestAppState(client))

	res := postJSON(t, router, "/api/v1/token-classification", &models.TextRequest{Text: "t"})

	assert.Equal(t, http.StatusServiceUnavailable, res.Code)
	assert.Contains(t, res.Body.String(), "error fetching token classification")
}

func TestHealthCheckRoute(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		client := &mockInferenceClient{
			healthCheck: func(_ context.Context) (*models.HealthcheckResponse, error) {
				return &models.HealthcheckResponse{Success: true}, nil
			},
		}
		router := setupRouter(newTestAppState(client))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/healthcheck", nil)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)

		require.Equal(t, http.StatusOK, res.Code)
		got := new(models.HealthcheckResponse)
		err := json.NewDecoder(res.Body).Decode(got)
		require.NoError(t, err)
		assert.True(t, got.Success)
	})

	t.Run("unavailable", func(t *testing.T) {
		client := &mockInferenceClient{
			healthCheck: func(_ context.Context) (*models.HealthcheckResponse, error) {
				return nil, models.NewBackendUnavailableError("healthcheck failed with status 500", nil)
			},
		}
		router := setupRouter(newTestAppState(client))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/healthcheck", nil)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)

		assert.Equal(t, http.StatusServiceUnavailable, res.Code)
		assert.Contains(t, res.Body.String(), "error getting healthcheck")
	})
}

func TestMetadataRoute(t *testing.T) {
	client := &mockInferenceClient{
		metadata: func(_ context.Context) (*models.MetadataResponse, error) {
			return &models.MetadataResponse{
				Metadata: map[string]string{"model_name": "distilbert"},
			}, nil
		},
	}
	router := setupRouter(newTestAppState(client))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metadata", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	got := new(models.MetadataResponse)
	require.NoError(t, json.Unmarshal(body, got))
	assert.Equal(t, "distilbert", got.Metadata["model_name"])
}

func TestMetadataRouteMalformed(t *testing.T) {
	client := &mockInferenceClient{
		metadata: func(_ context.Context) (*models.MetadataResponse, error) {
			return nil, models.NewMalformedResponseError("failed to parse metadata JSON as object", nil)
		},
	}
	router := setupRouter(newTestAppState(client))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metadata", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Contains(t, res.Body.String(), "error fetching metadata")
}
