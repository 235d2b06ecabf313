package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"CryptoMonitor/internal/domain/models"
)

// DashboardTemplate is the template name of the index page.
const DashboardTemplate = "dashboard.html"

//go:embed templates/*.html
var templateFS embed.FS

// Renderer turns a dashboard page into HTML. Interpolated text is escaped by
// html/template, so upstream titles and links cannot inject markup.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"price":    formatPrice,
		"forecast": formatForecast,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderPage writes the full dashboard document for page to w.
func (r *Renderer) RenderPage(w io.Writer, page *models.Page) error {
	return r.tmpl.ExecuteTemplate(w, DashboardTemplate, page)
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

func formatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatForecast(f models.Forecast) string {
	parts := make([]string, len(f))
	for i, v := range f {
		parts[i] = fmt.Sprintf("%.2f", v)
	}
	return strings.Join(parts, ", ")
}

var _ echo.Renderer = (*Renderer)(nil)
