package mighty

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mightyai/mighty-gateway/pkg/models"
)

func TestLocalClientNotImplemented(t *testing.T) {
	client := NewLocalClient()
	ctx := context.Background()

	_, err := client.HealthCheck(ctx)
	assert.ErrorIs(t, err, models.ErrNotImplemented)

	_, err = client.Embeddings(ctx, &models.TextRequest{Text: "t"})
	assert.ErrorIs(t, err, models.ErrNotImplemented)

	_, err = client.QuestionAnswering(ctx, &models.QuestionAnswerRequest{Question: "q", Context: "c"})
	assert.ErrorIs(t, err, models.ErrNotImplemented)

	_, err = client.SentenceTransformers(ctx, &models.TextRequest{Text: "t"})
	assert.ErrorIs(t, err, models.ErrNotImplemented)

	_, err = client.SequenceClassification(ctx, &models.TextRequest{Text: "t"})
	assert.ErrorIs(t, err, models.ErrNotImplemented)

	_, err = client.TokenClassification(ctx, &models.TextRequest{Text: "t"})
	assert.ErrorIs(t, err, models.ErrNotImplemented)

	_, err = client.Metadata(ctx)
	assert.ErrorIs(t, err, models.ErrNotImplemented)
}
