package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/readmecraft/readmecraft/internal/badges"
	"github.com/readmecraft/readmecraft/internal/errors"
	"github.com/readmecraft/readmecraft/internal/preview"
	"github.com/readmecraft/readmecraft/internal/sections"
)

// MarkdownResponse is returned by the generation endpoints.
type MarkdownResponse struct {
	Markdown   string   `json:"markdown"`
	Unresolved []string `json:"unresolved,omitempty"`
}

// ReadmeRequest is the body of /api/readme.
type ReadmeRequest struct {
	Project  sections.ProjectInfo `json:"project"`
	Features []string             `json:"features,omitempty"`
	Roadmap  bool                 `json:"roadmap,omitempty"`
}

// HTMLResponse is returned by /api/render.
type HTMLResponse struct {
	HTML string `json:"html"`
}

const indexMarkdown = `# readmecraft preview

Start the server with ` + "`--watch README.md`" + ` to preview a file here.

| method | path | body |
|---|---|---|
| GET | /api/templates | |
| POST | /api/templates/{name} | JSON variables |
| POST | /api/badges | JSON badge config |
| POST | /api/sections/{type} | JSON project info |
| POST | /api/readme | JSON project info and options |
| POST | /api/render | Markdown |
| GET | /metrics | |
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.options.WatchFile != "" {
		page, err := s.renderWatched(r.Context())
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, errors.FromError(err, "E009"))
			return
		}
		writeHTML(w, page)
		return
	}

	body, err := preview.HTML(indexMarkdown)
	if err == nil {
		body, err = preview.Page("readmecraft", body, "")
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, errors.FromError(err, "E009"))
		return
	}
	writeHTML(w, body)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	list, err := s.options.Templates.List()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, errors.FromError(err, "E004"))
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleRenderTemplate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	_, span := startSpan(r.Context(), "render.template", attribute.String("readmecraft.template", name))

	tmpl, err := s.options.Templates.Get(name)
	if err != nil {
		endSpan(span, err)
		status := http.StatusInternalServerError
		if errors.HasCode(err, "E003") {
			status = http.StatusNotFound
		}
		s.writeError(w, status, err)
		return
	}

	vars := map[string]string{}
	if err := decodeJSON(r, &vars); err != nil {
		endSpan(span, err)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := MarkdownResponse{
		Markdown:   tmpl.Render(vars),
		Unresolved: tmpl.Unresolved(vars),
	}
	endSpan(span, nil)
	s.metrics.RecordGenerated("template")
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBadges(w http.ResponseWriter, r *http.Request) {
	var cfg badges.SetConfig
	if err := decodeJSON(r, &cfg); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	var missing []string
	if cfg.Username == "" {
		missing = append(missing, "username")
	}
	if cfg.Repo == "" {
		missing = append(missing, "repo")
	}
	if len(missing) > 0 {
		s.writeError(w, http.StatusBadRequest, errors.New("E001").
			WithDetail("Missing required field: "+strings.Join(missing, ", ")))
		return
	}

	s.metrics.RecordGenerated("badges")
	writeJSON(w, http.StatusOK, MarkdownResponse{Markdown: badges.Set(cfg)})
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "type")

	var info sections.ProjectInfo
	if err := decodeJSON(r, &info); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	md, err := sections.Generate(kind, info)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}

	s.metrics.RecordGenerated("section")
	writeJSON(w, http.StatusOK, MarkdownResponse{Markdown: md})
}

func (s *Server) handleReadme(w http.ResponseWriter, r *http.Request) {
	var req ReadmeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Project.Name == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("E001").WithDetail("Missing required field: project.name"))
		return
	}

	md := sections.Complete(req.Project, sections.CompleteOptions{
		Features:       req.Features,
		IncludeRoadmap: req.Roadmap,
	})
	s.metrics.RecordGenerated("readme")
	writeJSON(w, http.StatusOK, MarkdownResponse{Markdown: md})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "render.html")

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		endSpan(span, err)
		s.writeError(w, http.StatusBadRequest, errors.Newf(errors.CategoryRender, "read body: %v", err))
		return
	}

	html, err := preview.HTML(string(data))
	endSpan(span, err)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.metrics.RecordGenerated("html")
	writeJSON(w, http.StatusOK, HTMLResponse{HTML: html})
}

// decodeJSON decodes the request body into v. An empty body leaves v as is.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil && err != io.EOF {
		return errors.Newf(errors.CategoryCLI, "invalid JSON body: %v", err)
	}
	return nil
}

// writeError writes err as a JSON error object.
func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	var coded *errors.Error
	if !errors.As(err, &coded) {
		coded = errors.Newf(errors.CategoryCLI, "%v", err)
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, coded.FormatJSON())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeHTML(w http.ResponseWriter, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, page)
}
