package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/docsmith/go-docgen-api/internal/logger"
	"github.com/docsmith/go-docgen-api/internal/utils"
)

//go:embed templates/index.html
var templateFS embed.FS

var homeTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type homePageData struct {
	ServiceName string
}

// HomeHandler renders the landing page
// @Summary      Landing page
// @Description  Renders the static landing page with a form for submitting code
// @Tags         pages
// @Produce      html
// @Success      200  {string}  string  "Landing page HTML"
// @Router       / [get]
func (h *APIHandlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set(utils.HeaderContentType, utils.ContentTypeHTMLUTF8)
	if err := homeTemplate.Execute(w, homePageData{ServiceName: "DocGen API"}); err != nil {
		logger.Error("Failed to render landing page", "error", err)
	}
}
