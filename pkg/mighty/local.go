package mighty

import (
	"context"

	"github.com/mightyai/mighty-gateway/pkg/models"
)

var _ models.InferenceClient = &LocalClient{}

// LocalClient is a placeholder implementation of models.InferenceClient for an
// in-process backend that runs the models inside the gateway binary instead of
// calling out over HTTP. It exists to demonstrate that the gateway is
// backend-agnostic; every method currently reports ErrNotImplemented.
type LocalClient struct{}

func NewLocalClient() *LocalClient {
	return &LocalClient{}
}

func (c *LocalClient) HealthCheck(_ context.Context) (*models.HealthcheckResponse, error) {
	return nil, models.ErrNotImplemented
}

func (c *LocalClient) Embeddings(_ context.Context, _ *models.TextRequest) (*models.EmbeddingsResponse, error) {
	return nil, models.ErrNotImplemented
}

func (c *LocalClient) QuestionAnswering(
	_ context.Context,
	_ *models.QuestionAnswerRequest,
) (*models.QuestionAnswerResponse, error) {
	return nil, models.ErrNotImplemented
}

func (c *LocalClient) SentenceTransformers(
	_ context.Context,
	_ *models.TextRequest,
) (*models.SentenceTransformersResponse, error) {
	return nil, models.ErrNotImplemented
}

func (c *LocalClient) SequenceClassification(
	_ context.Context,
	_ *models.TextRequest,
) (*models.SequenceClassificationResponse, error) {
	return nil, models.ErrNotImplemented
}

func (c *LocalClient) TokenClassification(
	_ context.Context,
	_ *models.TextRequest,
) (*models.TokenClassificationResponse, error) {
	return nil, models.ErrNotImplemented
}

func (c *LocalClient) Metadata(_ context.Context) (*models.MetadataResponse, error) {
	return nil, models.ErrNotImplemented
}
