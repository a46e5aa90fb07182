package printing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templateFS embed.FS

// slipLocation is the timezone printed on slips
var slipLocation = func() *time.Location {
	loc, err := time.LoadLocation("Africa/Cairo")
	if err != nil {
		return time.FixedZone("EET", 2*60*60)
	}
	return loc
}()

// statusLabels are the Arabic order status names shown to packing staff
var statusLabels = map[string]string{
	"pending":   "قيد الانتظار",
	"preparing": "قيد التجهيز",
	"shipped":   "تم الشحن",
	"delivered": "تم التوصيل",
	"canceled":  "ملغي",
}

// TemplateEngine renders the embedded HTML templates
type TemplateEngine struct {
	templates *template.Template
}

// NewTemplateEngine parses the embedded templates
func NewTemplateEngine() (*TemplateEngine, error) {
	tmpl, err := template.New("printing").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse print templates: %w", err)
	}
	return &TemplateEngine{templates: tmpl}, nil
}

// Render executes the named template
func (e *TemplateEngine) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to render "+name, err)
	}
	return buf.String(), nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatMoney":    formatMoney,
		"formatDateTime": formatDateTime,
		"statusLabel":    statusLabel,
		"title":          titleCase,
		"inc":            func(i int) int { return i + 1 },
	}
}

// formatMoney renders an EGP amount with thousand separators.
// Example: 1234.5 -> "1,234.50 ج.م"
func formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	intPart, decPart, _ := strings.Cut(d.StringFixed(2), ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(c)
	}
	return sign + b.String() + "." + decPart + " ج.م"
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(slipLocation).Format("2006-01-02 15:04")
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// titleCase capitalizes Latin names; Arabic text is unchanged
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}
