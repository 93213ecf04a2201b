package gen

import "text/template"

// tokenFileTemplate renders one file of token functions. Output goes
// through go/format, so the template only has to be syntactically correct.
var tokenFileTemplate = template.Must(template.New("tokens").Parse(
	`// Code generated by numbind-generator. DO NOT EDIT.
//
// Tokens for {{.TypeName}} ({{.Selection}}).

package {{.PackageName}}

{{if .Imports}}import (
{{range .Imports}}	"{{.}}"
{{end}})

{{end}}{{range .Tokens}}// {{.FuncName}} returns {{.Doc}}.
func {{.FuncName}}() {{$.TypeName}} { return {{.Expr}} }

{{end}}{{if .WithNum}}// {{.NumName}} converts v into {{.TypeName}}.
{{if .NumGuard}}// Values {{.TypeName}} cannot represent panic at the call site.
func {{.NumName}}(v float64) {{.TypeName}} {
	if math.Trunc(v) != v || {{.NumGuard}} {
		panic(fmt.Sprintf("converting %v to {{.TypeName}}: unsupported conversion", v))
	}
	return {{.TypeName}}(v)
}
{{else}}func {{.NumName}}(v float64) {{.TypeName}} { return {{.TypeName}}(v) }
{{end}}{{end}}`))
