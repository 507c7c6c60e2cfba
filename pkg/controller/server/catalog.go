package server

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/controller/render/html"
	"github.com/secmon-lab/runboard/pkg/controller/view"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/repository"
	"github.com/secmon-lab/runboard/pkg/utils/errutil"
	"github.com/secmon-lab/runboard/pkg/utils/route"
)

const entityRoute = "/catalog/:namespace/:kind/:name"

type catalogHandler struct {
	uc        interfaces.UseCase
	container *view.Container
	cfg       *config
}

func entityPath(ref model.EntityRef) string {
	return route.Build(entityRoute, map[string]string{
		"namespace": ref.Namespace,
		"kind":      ref.Kind,
		"name":      ref.Name,
	})
}

// runsPath is the CI/CD page of the entity, keeping the branch filter.
func runsPath(ref model.EntityRef, branch string) string {
	p := route.Join(entityPath(ref), "/ci-cd")
	if branch != "" {
		p += "?" + url.Values{"branch": {branch}}.Encode()
	}
	return p
}

func handleError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	errutil.HandleError(r.Context(), msg, err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (x *catalogHandler) entity(r *http.Request) (*model.Entity, error) {
	ref := model.NewEntityRef(chi.URLParam(r, "kind"), chi.URLParam(r, "namespace"), chi.URLParam(r, "name"))
	return x.uc.GetEntity(r.Context(), ref)
}

func (x *catalogHandler) writePage(w http.ResponseWriter, r *http.Request, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		handleError(w, r, "fail to render page", goerr.Wrap(err, "failed to execute page template"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	safeWrite(w, http.StatusOK, buf.Bytes())
}

func (x *catalogHandler) listEntities(w http.ResponseWriter, r *http.Request) {
	entities, err := x.uc.ListEntities(r.Context())
	if err != nil {
		handleError(w, r, "fail to list entities", err)
		return
	}

	rows := make([]entityRow, len(entities))
	for i, entity := range entities {
		rows[i] = entityRow{
			Entity:  entity,
			Path:    runsPath(entity.Ref(), ""),
			Project: x.uc.ProjectName(r.Context(), entity).Value,
		}
	}

	var buf bytes.Buffer
	if err := catalogTemplate.Execute(&buf, rows); err != nil {
		handleError(w, r, "fail to render catalog", goerr.Wrap(err, "failed to execute catalog template"))
		return
	}

	x.writePage(w, r, pageData{
		Title:   "Catalog",
		Content: template.HTML(buf.String()), // #nosec G203 produced by html/template
	})
}

func (x *catalogHandler) buildView(r *http.Request, entity *model.Entity, branch string) *model.RunsView {
	return x.container.Build(r.Context(), entity, branch, entityPath(entity.Ref()))
}

func (x *catalogHandler) showRuns(w http.ResponseWriter, r *http.Request) {
	entity, err := x.entity(r)
	if err != nil {
		handleError(w, r, "fail to get entity", err)
		return
	}

	branch := r.URL.Query().Get("branch")
	v := x.buildView(r, entity, branch)

	renderer := html.New(
		html.WithActionPath(route.Join(entityPath(entity.Ref()), "/ci-cd")),
		html.WithHiddenValue("branch", branch),
	)

	var buf bytes.Buffer
	if err := view.RenderView(&buf, renderer, v); err != nil {
		handleError(w, r, "fail to render workflow runs", err)
		return
	}

	data := pageData{
		Title:   entityTitle(entity),
		Branch:  branch,
		Content: template.HTML(buf.String()), // #nosec G203 produced by html/template
	}
	if v.Table != nil && v.Table.Loading {
		data.Refresh = x.cfg.refreshInterval
	}

	x.writePage(w, r, data)
}

func (x *catalogHandler) triggerAction(w http.ResponseWriter, r *http.Request) {
	entity, err := x.entity(r)
	if err != nil {
		handleError(w, r, "fail to get entity", err)
		return
	}

	branch := r.FormValue("branch")
	actionID := chi.URLParam(r, "actionID")

	v := x.buildView(r, entity, branch)
	if v.Table == nil || !v.Table.Trigger(actionID) {
		http.Error(w, "action not found", http.StatusNotFound)
		return
	}

	http.Redirect(w, r, runsPath(entity.Ref(), branch), http.StatusSeeOther)
}

func (x *catalogHandler) changePage(w http.ResponseWriter, r *http.Request) {
	entity, err := x.entity(r)
	if err != nil {
		handleError(w, r, "fail to get entity", err)
		return
	}

	branch := r.FormValue("branch")
	v := x.buildView(r, entity, branch)
	if v.Table == nil {
		http.Error(w, "no workflow runs", http.StatusNotFound)
		return
	}

	switch {
	case r.FormValue("pageSize") != "":
		pageSize, err := strconv.Atoi(r.FormValue("pageSize"))
		if err != nil {
			http.Error(w, "invalid pageSize", http.StatusBadRequest)
			return
		}
		v.Table.ChangeRowsPerPage(pageSize)

	case r.FormValue("page") != "":
		page, err := strconv.Atoi(r.FormValue("page"))
		if err != nil {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		v.Table.ChangePage(page)

	default:
		http.Error(w, "page or pageSize is required", http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, runsPath(entity.Ref(), branch), http.StatusSeeOther)
}

// showRun redirects to the GitHub page of the run. Runs out of the current
// page are resolved by the GitHub URL convention.
func (x *catalogHandler) showRun(w http.ResponseWriter, r *http.Request) {
	entity, err := x.entity(r)
	if err != nil {
		handleError(w, r, "fail to get entity", err)
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		http.Error(w, "invalid run ID", http.StatusBadRequest)
		return
	}

	owner, repo := x.uc.ProjectName(r.Context(), entity).Split()
	if owner == "" || repo == "" {
		http.Error(w, "entity has no GitHub project", http.StatusNotFound)
		return
	}

	state, _ := x.uc.WorkflowRuns(r.Context(), model.WorkflowRunsQuery{
		Owner:  owner,
		Repo:   repo,
		Branch: r.URL.Query().Get("branch"),
	})
	for _, run := range state.Runs {
		if run.ID == id && run.GitHubURL != "" {
			http.Redirect(w, r, run.GitHubURL, http.StatusFound)
			return
		}
	}

	http.Redirect(w, r, fmt.Sprintf("https://github.com/%s/%s/actions/runs/%s", owner, repo, id), http.StatusFound)
}

func entityTitle(entity *model.Entity) string {
	if entity.Metadata.Title != "" {
		return entity.Metadata.Title
	}
	return entity.Metadata.Name
}
