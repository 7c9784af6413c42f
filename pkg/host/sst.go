package host

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"text/template"
)

var sstTemplate = template.Must(template.New("sst").Funcs(template.FuncMap{
	"py": strconv.Quote,
}).Parse(`# Generated by booksim-params. Run with: sst <this file>
import sst
{{range .}}
{{.Var}} = sst.Component({{py .Name}}, {{py .TypeName}})
{{.Var}}.addParams({
{{- range .Params}}
    {{py .Key}}: {{py .Value}},
{{- end}}
})
{{end -}}
`))

type sstParam struct {
	Key   string
	Value string
}

type sstComponent struct {
	Var      string
	Name     string
	TypeName string
	Params   []sstParam
}

var nonIdentifier = regexp.MustCompile(`[^A-Za-z0-9_]`)

// pythonVar turns a component name into a Python identifier that is not
// already taken.
func pythonVar(name string, used map[string]bool) string {
	v := nonIdentifier.ReplaceAllString(name, "_")
	if v == "" || (v[0] >= '0' && v[0] <= '9') {
		v = "c_" + v
	}
	base := v
	for i := 2; used[v]; i++ {
		v = fmt.Sprintf("%s_%d", base, i)
	}
	used[v] = true
	return v
}

// RenderSST writes an SST Python configuration that instantiates every
// component with its parameters. Parameter keys are written in sorted order
// so the output is stable.
func RenderSST(w io.Writer, components ...Component) error {
	used := make(map[string]bool, len(components))
	view := make([]sstComponent, 0, len(components))
	for _, c := range components {
		if err := c.Validate(); err != nil {
			return err
		}
		sc := sstComponent{
			Var:      pythonVar(c.Name, used),
			Name:     c.Name,
			TypeName: c.TypeName(),
		}
		keys := make([]string, 0, len(c.Params))
		for k := range c.Params {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			sc.Params = append(sc.Params, sstParam{Key: k, Value: c.Params[k]})
		}
		view = append(view, sc)
	}

	if err := sstTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render SST script: %w", err)
	}
	return nil
}
