package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"testly/internal/server/images"
	"testly/internal/server/storage"
	"testly/internal/server/vision"
)

type processResponse struct {
	OriginalURL  string      `json:"original_url"`
	ProcessedURL string      `json:"processed_url"`
	Meta         vision.Meta `json:"meta"`
}

type imageResponse struct {
	ID           string    `json:"id"`
	OriginalURL  string    `json:"original_url"`
	ProcessedURL string    `json:"processed_url"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	CreatedAt    time.Time `json:"created_at"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleProcessImage accepts one multipart image under the "image" field,
// stores the original, runs the question-extraction pipeline, stores the
// crop, records the pair, and returns both URLs plus the crop meta.
func (s *Server) handleProcessImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) || strings.Contains(err.Error(), "request body too large") {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		writeError(w, http.StatusBadRequest, "image is required")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "empty filename")
		return
	}
	if !vision.AllowedExt(header.Filename) {
		writeError(w, http.StatusUnsupportedMediaType, "unsupported extension")
		return
	}

	var data bytes.Buffer
	if _, err := data.ReadFrom(file); err != nil {
		writeError(w, http.StatusBadRequest, "image is required")
		return
	}

	id := uuid.New()
	uid := strings.ReplaceAll(id.String(), "-", "")
	ext := strings.ToLower(filepath.Ext(header.Filename))

	origKey, err := s.store.Save(ctx, storage.AreaUploads, uid+ext, bytes.NewReader(data.Bytes()))
	if err != nil {
		s.logger.Error(ctx, "failed to store upload", "error", err)
		writeError(w, http.StatusInternalServerError, "storage_failed")
		return
	}

	result, err := s.process(data.Bytes())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "processing_failed",
			"detail": err.Error(),
		})
		return
	}

	var out bytes.Buffer
	if err := vision.EncodePNG(&out, result.Final); err != nil {
		s.logger.Error(ctx, "failed to encode crop", "error", err)
		writeError(w, http.StatusInternalServerError, "storage_failed")
		return
	}

	outKey, err := s.store.Save(ctx, storage.AreaOutputs, uid+"_final.png", &out)
	if err != nil {
		s.logger.Error(ctx, "failed to store crop", "error", err)
		writeError(w, http.StatusInternalServerError, "storage_failed")
		return
	}

	// Metadata is best-effort: a write failure must not fail a processed
	// image the client can already use.
	if err := s.repo.Create(ctx, &images.Image{
		ID:           id.String(),
		OriginalKey:  origKey,
		ProcessedKey: outKey,
		Width:        result.Meta.Width,
		Height:       result.Meta.Height,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		s.logger.Warn(ctx, "failed to record processed image", "id", id.String(), "error", err)
	}

	s.logger.Info(ctx, "image processed", "id", id.String(),
		"width", result.Meta.Width, "height", result.Meta.Height)

	writeJSON(w, http.StatusOK, processResponse{
		OriginalURL:  s.store.URL(origKey),
		ProcessedURL: s.store.URL(outKey),
		Meta:         result.Meta,
	})
}

// process decodes the upload and runs the vision pipeline.
func (s *Server) process(data []byte) (*vision.Result, error) {
	img, err := vision.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return vision.Refine(img)
}

// handleListImages returns recently processed images, newest first. The
// optional "limit" query parameter caps the result, default 50, max 500.
func (s *Server) handleListImages(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		if n > 500 {
			n = 500
		}
		limit = n
	}

	records, err := s.repo.SelectRecent(r.Context(), limit)
	if err != nil {
		s.logger.Error(r.Context(), "failed to list images", "error", err)
		writeError(w, http.StatusInternalServerError, "db_failed")
		return
	}

	resp := make([]imageResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, imageResponse{
			ID:           rec.ID,
			OriginalURL:  s.store.URL(rec.OriginalKey),
			ProcessedURL: s.store.URL(rec.ProcessedKey),
			Width:        rec.Width,
			Height:       rec.Height,
			CreatedAt:    rec.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": resp})
}
