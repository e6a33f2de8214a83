package render

import (
	"html/template"
	"io"
)

var cardsTemplate = template.Must(template.New("cards").Funcs(template.FuncMap{
	"css": cssColor,
}).Parse(`{{range .}}{{if .Placeholder}}
<div class="placeholder" style="text-align:center;color:{{css .Color}};font-size:22px;margin-top:100px;">{{.Name}}</div>
{{else}}
<div class="card" style="background:#111;padding:22px;margin:15px 0;border-radius:16px;border-left:8px solid {{css .Color}};">
  <h3 style="margin:0;color:#e74c3c;font-size:24px;">{{.Name}}</h3>
  <p class="category" style="margin:8px 0 0;color:{{css .Color}};font-size:18px;font-weight:bold;">{{.Category}}</p>
  <p class="details" style="margin:10px 0;color:#ddd;">{{.Details}}</p>
  <p class="summary" style="margin:10px 0 0;color:#aaa;font-style:italic;">About: {{.Summary}}</p>
</div>
{{end}}{{end}}`))

// WriteHTML renders cards as styled HTML fragments
func WriteHTML(w io.Writer, cards []Card) error {
	return cardsTemplate.Execute(w, cards)
}

// cssColor only lets well-formed hex colors through unescaped
func cssColor(hex string) template.CSS {
	if _, _, _, ok := parseHex(hex); !ok {
		return template.CSS("inherit")
	}
	return template.CSS(hex)
}
