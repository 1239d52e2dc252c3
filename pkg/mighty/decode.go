// Package mighty provides clients for the Mighty Inference Server and the
// decoding of its loosely-typed JSON responses into the gateway's typed
// response models.
package mighty

import (
	"encoding/json"
	"math"

	"github.com/mightyai/mighty-gateway/pkg/models"
)

// The backend's response shape is not contractually guaranteed, so decoding is
// best effort with zero-value fallback rather than validation: a missing or
// wrong-typed field yields the field's zero value, never an error. The one
// exception is DecodeMetadataResponse, which has no sensible fallback for a
// top-level value that is not an object.

// DecodeEmbeddingsResponse maps a JSON document to an EmbeddingsResponse.
// "outputs" is read as an array of arrays; non-numeric inner entries are
// dropped, not zero-filled.
func DecodeEmbeddingsResponse(doc any) *models.EmbeddingsResponse {
	return &models.EmbeddingsResponse{
		Embeddings: decodeEmbeddings(doc),
		Took:       intValue(doc, "took"),
		Text:       stringValue(doc, "text"),
		Shape:      decodeShape(doc),
	}
}

// DecodeSentenceTransformersResponse maps a JSON document to a
// SentenceTransformersResponse. The wire shape is identical to embeddings.
func DecodeSentenceTransformersResponse(doc any) *models.SentenceTransformersResponse {
	return &models.SentenceTransformersResponse{
		Embeddings: decodeEmbeddings(doc),
		Took:       intValue(doc, "took"),
		Text:       stringValue(doc, "text"),
		Shape:      decodeShape(doc),
	}
}

// DecodeQuestionAnswerResponse maps a JSON document to a
// QuestionAnswerResponse. Question and context are echoed from the original
// request, not read from the backend response.
func DecodeQuestionAnswerResponse(doc any, question, context string) *models.QuestionAnswerResponse {
	return &models.QuestionAnswerResponse{
		Answer:   stringValue(doc, "answer"),
		StartIdx: uintValue(doc, "start_idx"),
		EndIdx:   uintValue(doc, "end_idx"),
		Question: question,
		Context:  context,
		Took:     intValue(doc, "took"),
	}
}

// DecodeSequenceClassificationResponse maps a JSON document to a
// SequenceClassificationResponse. The 2-D "logits" array is flattened
// row-major: each inner array is emitted in full before the next. Inner
// elements that are not arrays contribute nothing.
func DecodeSequenceClassificationResponse(doc any) *models.SequenceClassificationResponse {
	logits := []float32{}
	rows, _ := keyValue(doc, "logits").([]any)
	for _, row := range rows {
		inner, ok := row.([]any)
		if !ok {
			continue
		}
		for _, v := range inner {
			f, _ := v.(float64)
			logits = append(logits, float32(f))
		}
	}

	return &models.SequenceClassificationResponse{
		Text:   stringValue(doc, "text"),
		Logits: logits,
		Took:   intValue(doc, "took"),
		Shape:  decodeShape(doc),
	}
}

// DecodeTokenClassificationResponse maps a JSON document to a
// TokenClassificationResponse. Entity offsets come from a 2-element
// "offsets" array; each side defaults to 0 independently.
func DecodeTokenClassificationResponse(doc any) *models.TokenClassificationResponse {
	values, _ := keyValue(doc, "entities").([]any)
	entities := make([]models.Entity, 0, len(values))
	for _, value := range values {
		offsets, _ := keyValue(value, "offsets").([]any)
		entities = append(entities, models.Entity{
			ID:          stringValue(value, "id"),
			Label:       stringValue(value, "label"),
			Text:        stringValue(value, "text"),
			Score:       float32(floatValue(value, "score")),
			StartOffset: intAt(offsets, 0),
			EndOffset:   intAt(offsets, 1),
		})
	}

	return &models.TokenClassificationResponse{
		Took:     intValue(doc, "took"),
		Text:     stringValue(doc, "text"),
		Entities: entities,
		Shape:    decodeShape(doc),
	}
}

// DecodeMetadataResponse maps a JSON document to a MetadataResponse. The
// top-level value must be an object; every value is rendered to its string
// form: arrays as compact JSON, strings verbatim, everything else via its
// default JSON rendering.
func DecodeMetadataResponse(doc any) (*models.MetadataResponse, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, models.NewMalformedResponseError("failed to parse metadata JSON as object", nil)
	}

	metadata := make(map[string]string, len(obj))
	for k, v := range obj {
		metadata[k] = stringify(v)
	}

	return &models.MetadataResponse{Metadata: metadata}, nil
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	// Compact rendering, no space after commas
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// decodeShape reads a "shape" key as a 2-element array. It returns nil only
// when the key is missing or not an array; short arrays zero-default each
// dimension independently.
func decodeShape(doc any) *models.Shape {
	arr, ok := keyValue(doc, "shape").([]any)
	if !ok {
		return nil
	}
	return &models.Shape{
		Dim1: intAt(arr, 0),
		Dim2: intAt(arr, 1),
	}
}

func decodeEmbeddings(doc any) []models.Embedding {
	outputs, _ := keyValue(doc, "outputs").([]any)
	embeddings := make([]models.Embedding, 0, len(outputs))
	for _, output := range outputs {
		inner, _ := output.([]any)
		values := make([]float32, 0, len(inner))
		for _, v := range inner {
			if f, ok := v.(float64); ok {
				values = append(values, float32(f))
			}
		}
		embeddings = append(embeddings, models.Embedding{Values: values})
	}
	return embeddings
}

// keyValue looks up a key on a document, returning nil if the document is not
// an object or the key is absent.
func keyValue(doc any, key string) any {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	return obj[key]
}

func stringValue(doc any, key string) string {
	s, _ := keyValue(doc, key).(string)
	return s
}

func floatValue(doc any, key string) float64 {
	f, _ := keyValue(doc, key).(float64)
	return f
}

// intValue extracts an integer field. JSON numbers with a fractional part are
// not integers and default to 0.
func intValue(doc any, key string) int32 {
	return asInt(keyValue(doc, key))
}

// uintValue extracts an unsigned integer field; negative numbers default to 0.
func uintValue(doc any, key string) int32 {
	v := asInt(keyValue(doc, key))
	if v < 0 {
		return 0
	}
	return v
}

func intAt(arr []any, i int) int32 {
	if i >= len(arr) {
		return 0
	}
	return asInt(arr[i])
}

func asInt(v any) int32 {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0
	}
	return int32(f)
}
