package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/model"
)

// NoRecordsText is shown under the headers of a table without rows.
const NoRecordsText = "No records to display"

var badgeColors = map[model.StatusLevel]lipgloss.Color{
	model.StatusLevelOK:      lipgloss.Color("2"),
	model.StatusLevelPending: lipgloss.Color("3"),
	model.StatusLevelRunning: lipgloss.Color("4"),
	model.StatusLevelWarning: lipgloss.Color("214"),
	model.StatusLevelError:   lipgloss.Color("1"),
	model.StatusLevelAborted: lipgloss.Color("8"),
}

// Renderer draws the runs view as a terminal table. Colors are enabled only
// if the writer is a terminal.
type Renderer struct {
	width int
}

var _ interfaces.Renderer = (*Renderer)(nil)

type Option func(*Renderer)

// WithWidth sets the total width of the table. Zero means fit to content.
func WithWidth(width int) Option {
	return func(x *Renderer) {
		x.width = width
	}
}

func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (x *Renderer) RenderTable(w io.Writer, t *model.Table) error {
	re := lipgloss.NewRenderer(w)
	bold := re.NewStyle().Bold(true)
	faint := re.NewStyle().Faint(true)

	var b strings.Builder

	title := bold.Render(t.Title)
	if t.Subtitle != "" {
		title += " " + faint.Render(t.Subtitle)
	}
	if t.Loading {
		title += " " + faint.Render("(loading...)")
	}
	b.WriteString(title + "\n")

	var toolbar []string
	for _, action := range t.Actions {
		toolbar = append(toolbar, fmt.Sprintf("[%s] %s", action.ID, action.Tooltip))
	}
	if len(toolbar) > 0 {
		b.WriteString(faint.Render(strings.Join(toolbar, "  ")) + "\n")
	}

	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Title
	}

	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			rows[i][j] = x.cellText(re, cell)
		}
	}

	header := re.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := re.NewStyle().Padding(0, 1)
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = header
			}
			if col < len(t.Columns) && t.Columns[col].TermWidth > 0 {
				style = style.Width(t.Columns[col].TermWidth)
			}
			if col < len(t.Columns) && t.Columns[col].Type == model.ColumnTypeNumeric {
				style = style.Align(lipgloss.Right)
			}
			return style
		})
	if x.width > 0 {
		tbl = tbl.Width(x.width)
	}
	b.WriteString(tbl.Render() + "\n")

	if len(t.Rows) == 0 {
		b.WriteString(faint.Render(NoRecordsText) + "\n")
	}
	b.WriteString(faint.Render(pageFooter(t)) + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write table")
	}
	return nil
}

func (x *Renderer) cellText(re *lipgloss.Renderer, cell model.Cell) string {
	switch cell.Kind {
	case model.CellLines:
		return strings.Join(cell.Lines, "\n")
	case model.CellStatus:
		if cell.Badge.IsZero() {
			return ""
		}
		return re.NewStyle().Foreground(badgeColors[cell.Badge.Level]).Render("● " + cell.Badge.Label)
	case model.CellAction:
		if cell.Action == nil {
			return ""
		}
		return cell.Action.Label
	default:
		return cell.Text
	}
}

// pageFooter shows the zero based page as a one based number.
func pageFooter(t *model.Table) string {
	pages := 1
	if t.PageSize > 0 && t.TotalCount > 0 {
		pages = (t.TotalCount + t.PageSize - 1) / t.PageSize
	}
	return fmt.Sprintf("Page %d of %d (%d runs, %d per page)", t.Page+1, pages, t.TotalCount, t.PageSize)
}

func (x *Renderer) RenderEmptyState(w io.Writer, state *model.EmptyState) error {
	re := lipgloss.NewRenderer(w)

	lines := []string{
		re.NewStyle().Bold(true).Render(state.Title),
		"",
		state.Description,
	}
	if state.Action != nil {
		lines = append(lines, "", fmt.Sprintf("%s: %s", state.Action.Label, state.Action.Href))
	}

	width := 72
	if x.width > 0 {
		width = x.width
	}
	box := re.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))

	if _, err := io.WriteString(w, box+"\n"); err != nil {
		return goerr.Wrap(err, "failed to write empty state")
	}
	return nil
}
