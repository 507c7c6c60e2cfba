package html

import (
	"html/template"
	"io"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/utils/route"
)

// Renderer draws the runs view as HTML fragments. Table actions are plain
// forms posted to ActionPath, so the page works without JavaScript.
type Renderer struct {
	actionPath string
	hidden     url.Values
}

var _ interfaces.Renderer = (*Renderer)(nil)

type Option func(*Renderer)

// WithActionPath sets the path that action and pagination forms are posted to.
// Actions go to <path>/actions/<id> and pagination to <path>/page.
func WithActionPath(path string) Option {
	return func(x *Renderer) {
		x.actionPath = path
	}
}

// WithHiddenValue adds a hidden input to every form, e.g. the branch filter.
func WithHiddenValue(key, value string) Option {
	return func(x *Renderer) {
		if value != "" {
			x.hidden.Add(key, value)
		}
	}
}

func New(options ...Option) *Renderer {
	r := &Renderer{
		hidden: url.Values{},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

type hiddenField struct {
	Key   string
	Value string
}

type pageLink struct {
	Page    int
	Label   string
	Enabled bool
}

type tableData struct {
	*model.Table
	ActionPath string
	PagePath   string
	Hidden     []hiddenField
	PageLinks  []pageLink
	LastPage   int
}

func (x *Renderer) hiddenFields() []hiddenField {
	var fields []hiddenField
	for key, values := range x.hidden {
		for _, v := range values {
			fields = append(fields, hiddenField{Key: key, Value: v})
		}
	}
	return fields
}

func (x *Renderer) RenderTable(w io.Writer, t *model.Table) error {
	lastPage := 0
	if t.PageSize > 0 && t.TotalCount > 0 {
		lastPage = (t.TotalCount - 1) / t.PageSize
	}

	data := tableData{
		Table:      t,
		ActionPath: route.Join(x.actionPath, "/actions"),
		PagePath:   route.Join(x.actionPath, "/page"),
		Hidden:     x.hiddenFields(),
		LastPage:   lastPage,
		PageLinks: []pageLink{
			{Page: 0, Label: "First", Enabled: t.Page > 0},
			{Page: t.Page - 1, Label: "Previous", Enabled: t.Page > 0},
			{Page: t.Page + 1, Label: "Next", Enabled: t.Page < lastPage},
			{Page: lastPage, Label: "Last", Enabled: t.Page < lastPage},
		},
	}

	if err := templates.ExecuteTemplate(w, "table", data); err != nil {
		return goerr.Wrap(err, "failed to render table")
	}
	return nil
}

func (x *Renderer) RenderEmptyState(w io.Writer, state *model.EmptyState) error {
	if err := templates.ExecuteTemplate(w, "empty", state); err != nil {
		return goerr.Wrap(err, "failed to render empty state")
	}
	return nil
}

var templates = template.Must(template.New("render").Funcs(template.FuncMap{
	"pathEscape": url.PathEscape,
	"add":        func(a, b int) int { return a + b },
	"isCell": func(cell model.Cell, kind string) bool {
		return cellKinds[kind] == cell.Kind
	},
}).Parse(tmplRender))

var cellKinds = map[string]model.CellKind{
	"text":   model.CellText,
	"link":   model.CellLink,
	"lines":  model.CellLines,
	"status": model.CellStatus,
	"action": model.CellAction,
}

const tmplRender = `
{{define "hidden"}}{{range .}}<input type="hidden" name="{{.Key}}" value="{{.Value}}">{{end}}{{end}}

{{define "table"}}
<div class="runs-table{{if .Loading}} loading{{end}}">
  <div class="runs-toolbar">
    <h2 class="runs-title">{{.Title}} <small class="runs-subtitle">{{.Subtitle}}</small></h2>
    {{if .Loading}}<span class="runs-progress" role="progressbar">Loading...</span>{{end}}
    {{range .Actions}}
    <form method="post" action="{{$.ActionPath}}/{{pathEscape .ID}}" class="runs-action">
      {{template "hidden" $.Hidden}}
      <button type="submit" title="{{.Tooltip}}" data-icon="{{.Icon}}">{{.Label}}</button>
    </form>
    {{end}}
  </div>
  <table>
    <thead>
      <tr>{{range .Columns}}<th{{if .Width}} style="width: {{.Width}}"{{end}} data-field="{{.Field}}">{{.Title}}</th>{{end}}</tr>
    </thead>
    <tbody>
      {{range .Rows}}
      <tr data-key="{{.Key}}">
        {{range $i, $cell := .Cells}}{{with index $.Columns $i}}<td class="{{.Type}}{{if .NoWrap}} nowrap{{end}}">{{end}}
          {{if isCell $cell "link"}}<a href="{{$cell.Href}}">{{$cell.Text}}</a>
          {{else if isCell $cell "lines"}}{{range $cell.Lines}}<div>{{.}}</div>{{end}}
          {{else if isCell $cell "status"}}{{if $cell.Badge.Label}}<span class="status status-{{$cell.Badge.Level}}">{{$cell.Badge.Label}}</span>{{end}}
          {{else if isCell $cell "action"}}{{with $cell.Action}}<form method="post" action="{{$.ActionPath}}/{{pathEscape .ID}}" class="runs-action">
            {{template "hidden" $.Hidden}}
            <button type="submit" title="{{.Tooltip}}" data-icon="{{.Icon}}">{{.Label}}</button>
          </form>{{end}}
          {{else}}{{$cell.Text}}{{end}}
        </td>{{end}}
      </tr>
      {{else}}
      <tr><td colspan="{{len .Columns}}" class="runs-empty">No records to display</td></tr>
      {{end}}
    </tbody>
  </table>
  <div class="runs-pagination">
    <form method="post" action="{{.PagePath}}" class="runs-page-size">
      {{template "hidden" .Hidden}}
      <label>Rows per page
        <select name="pageSize">{{range .PageSizeOptions}}<option value="{{.}}"{{if eq . $.PageSize}} selected{{end}}>{{.}}</option>{{end}}</select>
      </label>
      <button type="submit">Apply</button>
    </form>
    <span class="runs-page">Page {{add .Page 1}} of {{add .LastPage 1}} ({{.TotalCount}} runs)</span>
    {{range .PageLinks}}
    <form method="post" action="{{$.PagePath}}" class="runs-page-link">
      {{template "hidden" $.Hidden}}
      <input type="hidden" name="page" value="{{.Page}}">
      <button type="submit"{{if not .Enabled}} disabled{{end}}>{{.Label}}</button>
    </form>
    {{end}}
  </div>
</div>
{{end}}

{{define "empty"}}
<div class="empty-state" data-missing="{{.Missing}}">
  <h2>{{.Title}}</h2>
  <p>{{.Description}}</p>
  {{with .Action}}<a class="button" href="{{.Href}}">{{.Label}}</a>{{end}}
</div>
{{end}}
`
