// Package render turns a decoded topology snapshot into human-readable text,
// as a tree per root geom plus a one-line snapshot summary.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/geomesh"
	"github.com/desertwitch/geomesh/record"
	"github.com/dustin/go-humanize"
)

//nolint:gochecknoglobals
var (
	// classStyle defines the style for a geom's class tag.
	classStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	// detailStyle defines the style for edge and payload details.
	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Handler renders topology snapshots into text.
type Handler struct {
	styled bool
}

// NewHandler returns a pointer to a new render [Handler]. Styling is meant
// for terminals; plain output suits pipes and logs.
func NewHandler(styled bool) *Handler {
	return &Handler{
		styled: styled,
	}
}

// Summary renders a one-line description of the snapshot.
func (r *Handler) Summary(graph *geomesh.Graph) string {
	fingerprint := graph.Fingerprint()

	return fmt.Sprintf("%d geoms, %d roots, snapshot %x",
		graph.GeomCount(), len(graph.Roots()), fingerprint[:4])
}

// Tree renders the whole snapshot, one indented tree per root geom. Geoms
// reachable on multiple paths appear under their first parent only, in the
// graph's deterministic walk order.
func (r *Handler) Tree(graph *geomesh.Graph) string {
	var s strings.Builder

	for i, root := range graph.Roots() {
		if i > 0 {
			s.WriteString("\n")
		}
		r.writeSubtree(&s, graph, root)
	}

	return s.String()
}

// writeSubtree renders one root's subtree.
func (r *Handler) writeSubtree(s *strings.Builder, graph *geomesh.Graph, root *geomesh.Geom) {
	seq, err := graph.Descendants(root.ID)
	if err != nil {
		// Roots come from the graph itself; they always resolve.
		return
	}

	depths := map[geomesh.GeomID]int{root.ID: 0}

	for edge, geom := range seq {
		if edge != nil {
			depths[geom.ID] = depths[edge.Parent] + 1
		}
		indent := strings.Repeat("  ", depths[geom.ID])

		s.WriteString(indent)
		s.WriteString(geom.Name)
		s.WriteString(" ")
		s.WriteString(r.styleClass(string(geom.Class)))

		if detail := r.describeEdge(edge); detail != "" {
			s.WriteString(" ")
			s.WriteString(r.styleDetail(detail))
		}

		s.WriteString("\n")
	}
}

// describeEdge renders the payload details of the edge a geom was reached by.
func (r *Handler) describeEdge(edge *geomesh.Edge) string {
	if edge == nil {
		return ""
	}

	details := []string{humanize.IBytes(edge.MediaSize), edge.Mode.String()}

	if entry, ok := edge.Meta.(*record.Partition); ok {
		details = append(details, entry.Type)
		if entry.Label != "" {
			details = append(details, entry.Label)
		}
	}

	return "(" + strings.Join(details, ", ") + ")"
}

func (r *Handler) styleClass(class string) string {
	tag := "[" + class + "]"
	if !r.styled {
		return tag
	}

	return classStyle.Render(tag)
}

func (r *Handler) styleDetail(detail string) string {
	if !r.styled {
		return detail
	}

	return detailStyle.Render(detail)
}
