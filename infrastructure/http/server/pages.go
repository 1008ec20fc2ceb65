package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"ml-showcase/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Page string

const (
	PageIndex         Page = "index.html"
	PageGallery       Page = "gallery.html"
	PageSentimentDemo Page = "sentiment_demo.html"
	PageImageDemo     Page = "image_demo.html"
	PageAPIDocs       Page = "api_docs.html"
	PageNotFound      Page = "404.html"
	PageServerError   Page = "500.html"
)

var allPages = []Page{
	PageIndex, PageGallery, PageSentimentDemo, PageImageDemo, PageAPIDocs, PageNotFound, PageServerError,
}

// Projects are the showcase cards of the home page.
var Projects = []domain.Project{
	{
		Title:       "Sentiment Analysis",
		Description: "Classifies text sentiment with 92% accuracy",
		DemoURL:     "/demo/sentiment",
		GithubURL:   "#",
		Tags:        []string{"NLP", "Classification", "Scikit-Learn"},
	},
	{
		Title:       "Image Classifier",
		Description: "CNN-based image recognition",
		DemoURL:     "/demo/image",
		GithubURL:   "#",
		Tags:        []string{"CNN", "Computer Vision", "PyTorch"},
	},
}

// PageData is handed to every template.
type PageData struct {
	AppName     string
	AppVersion  string
	CurrentYear int
	Title       string
	Projects    []domain.Project
	Models      []domain.ModelInfo
}

// Pages holds one parsed template set per page, each sharing the layout.
type Pages struct {
	appName    string
	appVersion string
	templates  map[Page]*template.Template
}

func NewPages(appName, appVersion string) *Pages {
	templates := make(map[Page]*template.Template, len(allPages))
	for _, page := range allPages {
		templates[page] = template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/"+string(page)))
	}
	return &Pages{appName: appName, appVersion: appVersion, templates: templates}
}

func (p *Pages) Data(title string) PageData {
	return PageData{
		AppName:     p.appName,
		AppVersion:  p.appVersion,
		CurrentYear: time.Now().Year(),
		Title:       title,
	}
}

// Render executes page into a buffer so a failing template never leaves a
// half-written response.
func (p *Pages) Render(page Page, data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.templates[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Server) renderPage(w http.ResponseWriter, status int, page Page, data PageData) {
	body, err := s.pages.Render(page, data)
	if err != nil {
		s.log.Error("Page rendering failed", "page", page, "error", err)
		http.Error(w, internalErrorMessage, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	data := s.pages.Data("Home")
	data.Projects = Projects
	s.renderPage(w, http.StatusOK, PageIndex, data)
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	models, err := s.models.Gallery()
	if err != nil {
		s.log.Error("Gallery unavailable", "request_id", RequestID(r.Context()), "error", err)
		s.renderPage(w, http.StatusInternalServerError, PageServerError, s.pages.Data("Server error"))
		return
	}
	data := s.pages.Data("Model Gallery")
	data.Models = models
	s.renderPage(w, http.StatusOK, PageGallery, data)
}

func (s *Server) handleStaticPage(page Page, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.renderPage(w, http.StatusOK, page, s.pages.Data(title))
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.renderPage(w, http.StatusNotFound, PageNotFound, s.pages.Data("Page not found"))
}
