package mighty

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mightyai/mighty-gateway/config"
	"github.com/mightyai/mighty-gateway/internal"
	"github.com/mightyai/mighty-gateway/pkg/httputil"
	"github.com/mightyai/mighty-gateway/pkg/models"
)

var log = internal.GetLogger()

// Force compiler to validate that RESTClient implements the capability.
var _ models.InferenceClient = &RESTClient{}

// RESTClient implements models.InferenceClient against the Mighty Inference
// Server REST API. Every operation is a single GET against the configured base
// URL; response bodies are decoded defensively, see decode.go.
type RESTClient struct {
	client  httputil.HTTPClient
	baseURL string
}

func NewRESTClient(cfg *config.Config) *RESTClient {
	return &RESTClient{
		client:  httputil.NewPooledHTTPClient(time.Duration(cfg.Mighty.TimeoutSeconds) * time.Second),
		baseURL: strings.TrimSuffix(cfg.Mighty.ServerURL, "/"),
	}
}

// fetchJSON issues a GET against path with the given query parameters and
// parses the body as a generic JSON document. Transport failures map to
// BackendUnavailableError, unparseable bodies to MalformedResponseError.
func (c *RESTClient) fetchJSON(ctx context.Context, path string, query url.Values) (any, error) {
	req, err := c.newRequest(ctx, path, query)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, models.NewBackendUnavailableError("request to backend failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewBackendUnavailableError("failed to read backend response", err)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, models.NewMalformedResponseError("failed to parse backend response as JSON", err)
	}

	log.Tracef("Parsed JSON: %v", doc)

	return doc, nil
}

func (c *RESTClient) newRequest(ctx context.Context, path string, query url.Values) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
}

// HealthCheck is status-only: a 200 means healthy, anything else is reported
// as a failure rather than Success=false.
func (c *RESTClient) HealthCheck(ctx context.Context) (*models.HealthcheckResponse, error) {
	log.Debug("Received health check request")

	req, err := c.newRequest(ctx, "/healthcheck", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, models.NewBackendUnavailableError("healthcheck request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, models.NewBackendUnavailableError(
			fmt.Sprintf("healthcheck failed with status %d", resp.StatusCode), nil)
	}

	return &models.HealthcheckResponse{Success: true}, nil
}

func (c *RESTClient) Embeddings(ctx context.Context, req *models.TextRequest) (*models.EmbeddingsResponse, error) {
	log.Debugf("Received embeddings request: %+v", req)

	doc, err := c.fetchJSON(ctx, "/embeddings", url.Values{"text": {req.Text}})
	if err != nil {
		return nil, err
	}

	return DecodeEmbeddingsResponse(doc), nil
}

func (c *RESTClient) QuestionAnswering(
	ctx context.Context,
	req *models.QuestionAnswerRequest,
) (*models.QuestionAnswerResponse, error) {
	log.Debugf("Received question answering request: %+v", req)

	doc, err := c.fetchJSON(ctx, "/question-answering", url.Values{
		"question": {req.Question},
		"context":  {req.Context},
	})
	if err != nil {
		return nil, err
	}

	return DecodeQuestionAnswerResponse(doc, req.Question, req.Context), nil
}

func (c *RESTClient) SentenceTransformers(
	ctx context.Context,
	req *models.TextRequest,
) (*models.SentenceTransformersResponse, error) {
	log.Debugf("Received sentence transformers request: %+v", req)

	doc, err := c.fetchJSON(ctx, "/sentence-transformers", url.Values{"text": {req.Text}})
	if err != nil {
		return nil, err
	}

	return DecodeSentenceTransformersResponse(doc), nil
}

func (c *RESTClient) SequenceClassification(
	ctx context.Context,
	req *models.TextRequest,
) (*models.SequenceClassificationResponse, error) {
	log.Debugf("Received sequence classification request: %+v", req)

	doc, err := c.fetchJSON(ctx, "/sequence-classification", url.Values{"text": {req.Text}})
	if err != nil {
		return nil, err
	}

	return DecodeSequenceClassificationResponse(doc), nil
}

func (c *RESTClient) TokenClassification(
	ctx context.Context,
	req *models.TextRequest,
) (*models.TokenClassificationResponse, error) {
	log.Debugf("Received token classification request: %+v", req)

	doc, err := c.fetchJSON(ctx, "/token-classification", url.Values{"text": {req.Text}})
	if err != nil {
		return nil, err
	}

	return DecodeTokenClassificationResponse(doc), nil
}

func (c *RESTClient) Metadata(ctx context.Context) (*models.MetadataResponse, error) {
	log.Debug("Received metadata request")

	doc, err := c.fetchJSON(ctx, "/metadata", nil)
	if err != nil {
		return nil, err
	}

	return DecodeMetadataResponse(doc)
}
