package server

import (
	"fmt"
	"net/http"

	"github.com/mightyai/mighty-gateway/pkg/models"
)

// The handlers below are a pure pass-through to the backend capability: each
// decodes the typed request, delegates unmodified, and translates any
// capability-level error into exactly one caller-visible error naming the
// failing operation. No retries, no request transformation.

// HealthCheckHandler godoc
//
//	@Summary		Check the health of the inference backend
//	@Tags			inference
//	@Produce		json
//	@Success		200	{object}	models.HealthcheckResponse
//	@Failure		503	{object}	APIError	"Service Unavailable"
//	@Router			/api/v1/healthcheck [get]
func HealthCheckHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := appState.InferenceClient.HealthCheck(r.Context())
		if err != nil {
			renderError(w, fmt.Errorf("error getting healthcheck: %w", err), statusForError(err))
			return
		}
		if err := encodeJSON(w, resp); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// EmbeddingsHandler godoc
//
//	@Summary		Retrieve embeddings for a text
//	@Tags			inference
//	@Accept			json
//	@Produce		json
//	@Param			textRequest	body		models.TextRequest	true	"Text"
//	@Success		200			{object}	models.EmbeddingsResponse
//	@Failure		400			{object}	APIError	"Bad Request"
//	@Failure		503			{object}	APIError	"Service Unavailable"
//	@Router			/api/v1/embeddings [post]
func EmbeddingsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TextRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		resp, err := appState.InferenceClient.Embeddings(r.Context(), &req)
		if err != nil {
			renderError(w, fmt.Errorf("error fetching embeddings: %w", err), statusForError(err))
			return
		}

		if err := encodeJSON(w, resp); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// QuestionAnsweringHandler godoc
//
//	@Summary		Answer a question from a context passage
//	@Tags			inference
//	@Accept			json
//	@Produce		json
//	@Param			questionAnswerRequest	body		models.QuestionAnswerRequest	true	"Question and context"
//	@Success		200						{object}	models.QuestionAnswerResponse
//	@Failure		400						{object}	APIError	"Bad Request"
//	@Failure		503						{object}	APIError	"Service Unavailable"
//	@Router			/api/v1/question-answering [post]
func QuestionAnsweringHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.QuestionAnswerRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		resp, err := appState.InferenceClient.QuestionAnswering(r.Context(), &req)
		if err != nil {
			renderError(w, fmt.Errorf("error fetching question answering: %w", err), statusForError(err))
			return
		}

		if err := encodeJSON(w, resp); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// SentenceTransformersHandler godoc
//
//	@Summary		Transform a sentence into embeddings
//	@Tags			inference
//	@Accept			json
//	@Produce		json
//	@Param			textRequest	body		models.TextRequest	true	"Text"
//	@Success		200			{object}	models.SentenceTransformersResponse
//	@Failure		400			{object}	APIError	"Bad Request"
//	@Failure		503			{object}	APIError	"Service Unavailable"
//	@Router			/api/v1/sentence-transformers [post]
func SentenceTransformersHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TextRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		resp, err := appState.InferenceClient.SentenceTransformers(r.Context(), &req)
		if err != nil {
			renderError(w, fmt.Errorf("error fetching sentence transformers: %w", err), statusForError(err))
			return
		}

		if err := encodeJSON(w, resp); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// SequenceClassificationHandler godoc
//
//	@Summary		Classify a sequence, returning flattened logits
//	@Tags			inference
//	@Accept			json
//	@Produce		json
//	@Param			textRequest	body		models.TextRequest	true	"Text"
//	@Success		200			{object}	models.SequenceClassificationResponse
//	@Failure		400			{object}	APIError	"Bad Request"
//	@Failure		503			{object}	APIError	"Service Unavailable"
//	@Router			/api/v1/sequence-classification [post]
func SequenceClassificationHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TextRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		resp, err := appState.InferenceClient.SequenceClassification(r.Context(), &req)
		if err != nil {
			renderError(w, fmt.Errorf("error fetching sequence classification: %w", err), statusForError(err))
			return
		}

		if err := encodeJSON(w, resp); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// TokenClassificationHandler godoc
//
//	@Summary		Identify and label entity spans within a text
//	@Tags			inference
//	@Accept			json
//	@Produce		json
//	@Param			textRequest	body		models.TextRequest	true	"Text"
//	@Success		200			{object}	models.TokenClassificationResponse
//	@Failure		400			{object}	APIError	"Bad Request"
//	@Failure		503			{object}	APIError	"Service Unavailable"
//	@Router			/api/v1/token-classification [post]
func TokenClassificationHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TextRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		resp, err := appState.InferenceClient.TokenClassification(r.Context(), &req)
		if err != nil {
			renderError(w, fmt.Errorf("error fetching token classification: %w", err), statusForError(err))
			return
		}

		if err := encodeJSON(w, resp); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// MetadataHandler godoc
//
//	@Summary		Fetch backend configuration and model metadata
//	@Tags			inference
//	@Produce		json
//	@Success		200	{object}	models.MetadataResponse
//	@Failure		500	{object}	APIError	"Internal Server Error"
//	@Failure		503	{object}	APIError	"Service Unavailable"
//	@Router			/api/v1/metadata [get]
func MetadataHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := appState.InferenceClient.Metadata(r.Context())
		if err != nil {
			renderError(w, fmt.Errorf("error fetching metadata: %w", err), statusForError(err))
			return
		}

		if err := encodeJSON(w, resp); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
