package server

import (
	"html/template"

	"github.com/secmon-lab/runboard/pkg/domain/model"
)

type pageData struct {
	Title   string
	Branch  string
	Refresh int
	Content template.HTML
}

type entityRow struct {
	*model.Entity
	Path    string
	Project string
}

var pageTemplate = template.Must(template.New("page").Parse(tmplPage))

var catalogTemplate = template.Must(template.New("catalog").Parse(tmplCatalog))

const tmplPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
{{if .Refresh}}<meta http-equiv="refresh" content="{{.Refresh}}">{{end}}
<title>{{.Title}} - runboard</title>
<style>
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Helvetica,Arial,sans-serif;margin:0;background:#f6f8fa;color:#24292f}
header{background:#24292f;color:#fff;padding:12px 24px}
header a{color:#fff;text-decoration:none;font-weight:600}
main{padding:24px}
table{border-collapse:collapse;width:100%;background:#fff}
th,td{border-bottom:1px solid #d0d7de;padding:8px 12px;text-align:left;vertical-align:top}
td.numeric{text-align:right}
td.nowrap{white-space:nowrap}
.runs-toolbar,.runs-pagination{display:flex;gap:8px;align-items:center;padding:8px 0}
.runs-title{flex:1;margin:0;font-size:20px}
.runs-subtitle{color:#57606a;font-weight:400;font-size:14px}
.runs-progress{color:#0969da}
.runs-action,.runs-page-link,.runs-page-size{display:inline;margin:0}
.runs-empty{text-align:center;color:#57606a}
.status{border-radius:12px;padding:2px 8px;font-size:12px;color:#fff}
.status-ok{background:#1a7f37}
.status-pending{background:#9a6700}
.status-running{background:#0969da}
.status-warning{background:#bc4c00}
.status-error{background:#cf222e}
.status-aborted{background:#6e7781}
.empty-state{background:#fff;border:1px solid #d0d7de;border-radius:6px;padding:24px;max-width:640px}
.button{display:inline-block;background:#1f883d;color:#fff;padding:6px 16px;border-radius:6px;text-decoration:none}
</style>
</head>
<body>
<header><a href="/catalog">runboard</a></header>
<main>
<h1>{{.Title}}{{if .Branch}} <small>({{.Branch}})</small>{{end}}</h1>
{{.Content}}
</main>
</body>
</html>
`

const tmplCatalog = `
<table>
  <thead><tr><th>Name</th><th>Kind</th><th>Namespace</th><th>Project</th><th>Description</th></tr></thead>
  <tbody>
    {{range .}}
    <tr>
      <td><a href="{{.Path}}">{{.Metadata.Name}}</a></td>
      <td>{{.Kind}}</td>
      <td>{{.Ref.Namespace}}</td>
      <td>{{.Project}}</td>
      <td>{{.Metadata.Description}}</td>
    </tr>
    {{else}}
    <tr><td colspan="5">No entities in catalog</td></tr>
    {{end}}
  </tbody>
</table>
`
