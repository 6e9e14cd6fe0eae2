package api

import (
	"embed"
	"html/template"
	"strings"

	"tripzy/internal/domain/models"
	"tripzy/internal/utils"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func templateFuncs(currency string) template.FuncMap {
	return template.FuncMap{
		"price":     func(v float64) string { return utils.FormatPrice(currency, v) },
		"longDate":  utils.FormatLongDate,
		"shortDate": utils.FormatShortDate,
		"upper":     strings.ToUpper,
		"statusClass": func(s models.BookingStatus) string {
			switch s {
			case models.StatusConfirmed:
				return "status-confirmed"
			case models.StatusCancelled:
				return "status-cancelled"
			case models.StatusPending:
				return "status-pending"
			default:
				return "status-unknown"
			}
		},
	}
}

func loadTemplates(currency string) *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs(currency)).ParseFS(templateFS, "templates/*.tmpl"))
}
