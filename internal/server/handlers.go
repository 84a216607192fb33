package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/telugu-corpus/pkg/cleaner"
	"github.com/jmylchreest/telugu-corpus/pkg/telugu"
)

// Client-facing error messages. Internal details are logged, never sent.
const (
	msgInvalidURL        = `Missing or invalid "url" in JSON body.`
	msgNoText            = `No text provided. Send JSON {"text": "..."} or upload a .txt file field named "file".`
	msgScrapeFailed      = "Failed to scrape the provided URL."
	msgScrapeCleanFailed = "Failed to scrape and clean the provided URL."
	msgInternal          = "Internal server error"
)

type scrapeRequest struct {
	URL  string `json:"url" validate:"required,url"`
	Save *bool  `json:"save,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleClean accepts JSON {"text"}, a multipart "file" upload or a form
// "text" field and returns the basic-cleaned text.
func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	text, status, msg := s.readCleanInput(w, r)
	if status != 0 {
		writeError(w, status, msg)
		return
	}
	if strings.TrimSpace(text) == "" {
		writeError(w, http.StatusBadRequest, msgNoText)
		return
	}

	cleaned := cleaner.CleanText(text)

	if wantsDownload(r) {
		writeAttachment(w, "cleaned.txt", cleaned)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"cleaned": cleaned})
}

// readCleanInput returns the submitted text, or a non-zero status and
// message when the request cannot be read.
func (s *Server) readCleanInput(w http.ResponseWriter, r *http.Request) (string, int, string) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		var body struct {
			Text any `json:"text"`
		}
		r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxJSON)
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return s.bodyError(err, s.config.MaxJSON)
		}
		text, _ := body.Text.(string)
		return text, 0, ""

	case "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUpload+1<<20)
		if err := r.ParseMultipartForm(s.config.MaxUpload); err != nil {
			return s.bodyError(err, s.config.MaxUpload)
		}
		file, header, err := r.FormFile("file")
		if err == nil {
			defer file.Close()
			if header.Size > s.config.MaxUpload {
				return "", http.StatusRequestEntityTooLarge, tooLargeMessage(s.config.MaxUpload)
			}
			data, err := io.ReadAll(io.LimitReader(file, s.config.MaxUpload+1))
			if err != nil {
				s.log.Warn("clean: reading upload failed", "error", err)
				return "", http.StatusInternalServerError, msgInternal
			}
			return string(data), 0, ""
		}
		return r.FormValue("text"), 0, ""

	default:
		r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxJSON)
		if err := r.ParseForm(); err != nil {
			return s.bodyError(err, s.config.MaxJSON)
		}
		return r.PostFormValue("text"), 0, ""
	}
}

// bodyError maps a body read failure to 413 when limit was hit, else to
// 400 with the no-text message.
func (s *Server) bodyError(err error, limit int64) (string, int, string) {
	if isTooLarge(err) {
		return "", http.StatusRequestEntityTooLarge, tooLargeMessage(limit)
	}
	s.log.Debug("clean: unreadable body", "error", err)
	return "", http.StatusBadRequest, msgNoText
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func tooLargeMessage(limit int64) string {
	return fmt.Sprintf("Upload exceeds the %s limit.", humanize.IBytes(uint64(limit)))
}

// handleScrape returns the page's Telugu paragraphs without strict cleaning.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeScrapeRequest(w, r)
	if !ok {
		return
	}

	text, err := s.scraper.ScrapeRaw(r.Context(), req.URL)
	if err != nil {
		s.writeScrapeError(w, r, err, msgScrapeFailed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// handleScrapeClean strict-cleans the article, saves it as a corpus file and
// returns it as a text attachment.
func (s *Server) handleScrapeClean(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeScrapeRequest(w, r)
	if !ok {
		return
	}

	res, err := s.scraper.Scrape(r.Context(), req.URL)
	if err != nil {
		s.writeScrapeError(w, r, err, msgScrapeCleanFailed)
		return
	}

	save := s.config.SaveByDefault
	if req.Save != nil {
		save = *req.Save
	}

	filename := "article.txt"
	if save {
		path, err := s.scraper.Save(res.Document)
		if err != nil {
			s.log.Error("saving corpus file failed", "url", req.URL, "error", err)
			writeError(w, http.StatusInternalServerError, msgScrapeCleanFailed)
			return
		}
		filename = filepath.Base(path)
		w.Header().Set("X-Filename", filename)
	}

	writeAttachment(w, filename, res.Document.String())
}

func (s *Server) decodeScrapeRequest(w http.ResponseWriter, r *http.Request) (scrapeRequest, bool) {
	var req scrapeRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxJSON)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if isTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, tooLargeMessage(s.config.MaxJSON))
			return req, false
		}
		writeError(w, http.StatusBadRequest, msgInvalidURL)
		return req, false
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidURL)
		return req, false
	}
	return req, true
}

func (s *Server) writeScrapeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, telugu.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, msgInvalidURL)
	case errors.Is(err, telugu.ErrFetchFailure):
		s.log.Warn("scrape failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadGateway, msg)
	default:
		s.log.Error("scrape failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

func wantsDownload(r *http.Request) bool {
	switch strings.ToLower(r.URL.Query().Get("download")) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeAttachment(w http.ResponseWriter, filename, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, body)
}
