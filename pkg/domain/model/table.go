package model

type ColumnType string

const (
	ColumnTypeString  ColumnType = "string"
	ColumnTypeNumeric ColumnType = "numeric"
)

// Column describes one table column. Width is a CSS width for HTML output and
// TermWidth a cell count for terminal output; zero means automatic.
type Column struct {
	Title     string
	Field     string
	Type      ColumnType
	Width     string
	TermWidth int
	NoWrap    bool
}

type CellKind int

const (
	CellText CellKind = iota
	CellLink
	CellLines
	CellStatus
	CellAction
)

// Cell is the rendered content of one table cell. Only the fields relevant
// to Kind are set.
type Cell struct {
	Kind       CellKind
	Text       string
	Href       string
	Lines      []string
	Status     string
	Conclusion string
	Badge      StatusBadge
	Action     *Action
}

// Action is a clickable element of the table. OnClick must not block.
type Action struct {
	ID      string
	Icon    string
	Label   string
	Tooltip string
	OnClick func()
}

type TableRow struct {
	Key   string
	Cells []Cell
}

// Table is a paginated table ready to be rendered. Page is zero based and is
// passed to renderers as given.
type Table struct {
	Title           string
	Subtitle        string
	Columns         []Column
	Rows            []TableRow
	Loading         bool
	Page            int
	PageSize        int
	TotalCount      int
	PageSizeOptions []int
	Actions         []*Action

	OnChangePage        func(page int)
	OnChangeRowsPerPage func(pageSize int)
}

// Trigger invokes the toolbar or row action with the given ID. It returns
// false if no action has the ID.
func (x *Table) Trigger(actionID string) bool {
	for _, action := range x.Actions {
		if action.ID == actionID {
			invoke(action)
			return true
		}
	}

	for _, row := range x.Rows {
		for _, cell := range row.Cells {
			if cell.Kind == CellAction && cell.Action != nil && cell.Action.ID == actionID {
				invoke(cell.Action)
				return true
			}
		}
	}

	return false
}

// ChangePage forwards the page verbatim.
func (x *Table) ChangePage(page int) {
	if x.OnChangePage != nil {
		x.OnChangePage(page)
	}
}

// ChangeRowsPerPage forwards the page size verbatim.
func (x *Table) ChangeRowsPerPage(pageSize int) {
	if x.OnChangeRowsPerPage != nil {
		x.OnChangeRowsPerPage(pageSize)
	}
}

func invoke(action *Action) {
	if action.OnClick != nil {
		action.OnClick()
	}
}

// EmptyState is shown instead of a table when there is no data.
type EmptyState struct {
	Missing     string
	Title       string
	Description string
	Action      *LinkAction
}

type LinkAction struct {
	Label string
	Href  string
}

// RunsView is either an empty state or a table.
type RunsView struct {
	Empty *EmptyState
	Table *Table
}
