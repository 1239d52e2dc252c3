package models

import "context"

// TextRequest is the request payload for the single-text inference operations.
type TextRequest struct {
	Text string `json:"text"`
}

// QuestionAnswerRequest carries a question and the context passage the answer
// should be extracted from.
type QuestionAnswerRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// Shape describes the dimensions of the model output the backend reported.
type Shape struct {
	Dim1 int32 `json:"dim1"`
	Dim2 int32 `json:"dim2"`
}

// Embedding is a single dense vector. Value order is preserved from the
// backend's output array.
type Embedding struct {
	Values []float32 `json:"values"`
}

type EmbeddingsResponse struct {
	Embeddings []Embedding `json:"embeddings"`
	Took       int32       `json:"took"`
	Text       string      `json:"text"`
	Shape      *Shape      `json:"shape,omitempty"`
}

type SentenceTransformersResponse struct {
	Embeddings []Embedding `json:"embeddings"`
	Took       int32       `json:"took"`
	Text       string      `json:"text"`
	Shape      *Shape      `json:"shape,omitempty"`
}

// SequenceClassificationResponse carries the model logits flattened row-major
// into a single vector.
type SequenceClassificationResponse struct {
	Text   string    `json:"text"`
	Logits []float32 `json:"logits"`
	Took   int32     `json:"took"`
	Shape  *Shape    `json:"shape,omitempty"`
}

// Entity is a single span identified by token classification.
type Entity struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Text        string  `json:"text"`
	Score       float32 `json:"score"`
	StartOffset int32   `json:"start_offset"`
	EndOffset   int32   `json:"end_offset"`
}

type TokenClassificationResponse struct {
	Took     int32    `json:"took"`
	Text     string   `json:"text"`
	Entities []Entity `json:"entities"`
	Shape    *Shape   `json:"shape,omitempty"`
}

// QuestionAnswerResponse echoes the question and context from the original
// request alongside the extracted answer.
type QuestionAnswerResponse struct {
	Answer   string `json:"answer"`
	StartIdx int32  `json:"start_idx"`
	EndIdx   int32  `json:"end_idx"`
	Question string `json:"question"`
	Context  string `json:"context"`
	Took     int32  `json:"took"`
}

// MetadataResponse holds the backend's configuration and model metadata with
// every value rendered to its string form.
type MetadataResponse struct {
	Metadata map[string]string `json:"metadata"`
}

type HealthcheckResponse struct {
	Success bool `json:"success"`
}

// InferenceClient is the capability a backend must provide to be used by the
// gateway. The gateway holds it as an opaque value; new backend transports are
// added by implementing this interface, with no change to the handlers.
// Implementations must be safe for concurrent use.
type InferenceClient interface {
	// HealthCheck reports whether the backend is reachable and healthy.
	HealthCheck(ctx context.Context) (*HealthcheckResponse, error)
	// Embeddings retrieves embeddings for the given text.
	Embeddings(ctx context.Context, req *TextRequest) (*EmbeddingsResponse, error)
	// QuestionAnswering extracts an answer to the question from the context.
	QuestionAnswering(ctx context.Context, req *QuestionAnswerRequest) (*QuestionAnswerResponse, error)
	// SentenceTransformers produces sentence-level embeddings.
	SentenceTransformers(ctx context.Context, req *TextRequest) (*SentenceTransformersResponse, error)
	// SequenceClassification returns the model's unnormalized output logits.
	SequenceClassification(ctx context.Context, req *TextRequest) (*SequenceClassificationResponse, error)
	// TokenClassification identifies and labels entity spans within the text.
	TokenClassification(ctx context.Context, req *TextRequest) (*TokenClassificationResponse, error)
	// Metadata fetches the backend's configuration and model metadata.
	Metadata(ctx context.Context) (*MetadataResponse, error)
}
