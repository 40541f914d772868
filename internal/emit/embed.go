package emit

import (
	"embed"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Script templates are compiled into the binary at build time.
//
//go:embed templates/*.tmpl
var templateFS embed.FS

var scriptTemplates = template.Must(
	template.New("scripts").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/*.tmpl"),
)
