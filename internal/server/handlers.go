package server

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pajakio/bupot-extract/internal/extract"
	"go.uber.org/zap"
)

func (s *Server) handleExtractText(w http.ResponseWriter, r *http.Request) {
	var req extract.ExtractTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		s.respondError(w, http.StatusBadRequest, "text is required")
		return
	}
	result, err := s.service.ExtractText(req)
	if err != nil {
		s.logger.Error("text extraction failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.logger.Debug("text extraction",
		zap.String("id", result.ID),
		zap.String("format", result.Format))
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleExtractFile(w http.ResponseWriter, r *http.Request) {
	path, cleanup, err := s.saveUpload(w, r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	result, err := s.service.ExtractFile(extract.ExtractFileRequest{Path: path})
	if err != nil {
		s.logger.Error("file extraction failed", zap.Error(err))
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	// The temp path is meaningless to the caller.
	result.Path = ""
	s.logger.Debug("file extraction",
		zap.String("id", result.ID),
		zap.String("format", result.Format),
		zap.Int("pages", result.Pages))
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleValidateFile(w http.ResponseWriter, r *http.Request) {
	path, cleanup, err := s.saveUpload(w, r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	result, err := s.service.ValidateFile(extract.ValidateFileRequest{Path: path})
	if err != nil {
		s.logger.Error("file validation failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	result.Path = ""
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"name":          s.config.ServerName,
		"version":       s.config.Version,
		"max_file_size": s.service.MaxFileSize(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// saveUpload writes the "file" part of a multipart upload to a temp file and
// returns its path with a cleanup func. The request body is capped at the
// configured maximum file size.
func (s *Server) saveUpload(w http.ResponseWriter, r *http.Request) (string, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxFileSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	dir, err := os.MkdirTemp("", "bupot-upload-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	name := filepath.Base(header.Filename)
	if filepath.Ext(name) != ".pdf" {
		name = "upload.pdf"
	}
	path := filepath.Join(dir, name)

	out, err := os.Create(path)
	if err != nil {
		cleanup()
		return "", nil, err
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		cleanup()
		return "", nil, err
	}
	if err := out.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
