package interfaces

import (
	"io"

	"github.com/secmon-lab/runboard/pkg/domain/model"
)

// Renderer draws the runs view to an output. Implementations must render the
// table values as given, without clamping pagination or filtering rows.
type Renderer interface {
	RenderTable(w io.Writer, table *model.Table) error
	RenderEmptyState(w io.Writer, state *model.EmptyState) error
}
