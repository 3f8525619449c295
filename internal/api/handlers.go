package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"yt2blog/internal/pipeline"
)

// Response messages, part of the wire contract.
const (
	msgInvalidMethod    = "Invalid request method"
	msgInvalidJSON      = "Invalid JSON data"
	msgLinkRequired     = "YouTube link is required"
	msgTitleFailed      = "Failed to fetch YouTube title"
	msgTranscriptFailed = "Failed to get transcript"
	msgGenerateFailed   = "Failed to generate blog article"
)

// Generator runs the blog generation pipeline for one video link.
type Generator interface {
	Generate(ctx context.Context, link string) (*pipeline.Result, error)
}

// GenerateHandler serves POST /generate.
type GenerateHandler struct {
	generator Generator
}

// NewGenerateHandler creates the handler around a pipeline.
func NewGenerateHandler(generator Generator) *GenerateHandler {
	return &GenerateHandler{generator: generator}
}

func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if req.Link == "" {
		writeError(w, http.StatusBadRequest, msgLinkRequired)
		return
	}

	result, err := h.generator.Generate(r.Context(), req.Link)
	if err != nil {
		log.Printf("Pipeline failed for %s: %v", req.Link, err)
		writeError(w, http.StatusInternalServerError, stageMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		Title:   result.Title,
		Content: result.Content,
	})
}

// stageMessage maps a pipeline failure onto the stage-identifying response
// message. Download and transcription failures share one message: the caller
// only learns that no transcript could be produced.
func stageMessage(err error) string {
	var stageErr *pipeline.StageError
	if errors.As(err, &stageErr) {
		switch stageErr.Stage {
		case pipeline.StageTitle:
			return msgTitleFailed
		case pipeline.StageDownload, pipeline.StageTranscription:
			return msgTranscriptFailed
		case pipeline.StageSynthesis:
			return msgGenerateFailed
		}
	}
	return msgGenerateFailed
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
