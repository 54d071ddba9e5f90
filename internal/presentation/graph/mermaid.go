package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/fundflow/pkg/domain"
)

// Overlay contains session data to visualize on the graph.
type Overlay struct {
	Visited []domain.StateID
	Current domain.StateID
}

// GenerateMermaid produces a Mermaid flowchart of the flow.
// It applies semantic styling:
// - Start: ((Circle))
// - Computation: [[Subroutine]]
// - Input: [/Parallelogram/]
// - Default: [Rectangle]
// Button edges carry the button label, input edges the answer key and the
// edge a computation continues on is dotted.
func GenerateMermaid(flow *domain.Flow, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, def := range flow.States() {
		id := sanitizeMermaidID(def.ID)

		opener, closer := "[", "]"
		_, hasInput := def.InputAction()
		switch {
		case def.ID == domain.StateStart:
			opener, closer = "((", "))"
		case def.IsComputation():
			opener, closer = "[[", "]]"
		case hasInput:
			opener, closer = "[/", "/]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s <br/> %d%%\"%s\n", id, opener, def.ID, def.Progress, closer)

		for _, a := range def.Actions {
			to := sanitizeMermaidID(a.Target)
			switch a.Kind {
			case domain.ActionInput:
				fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", id, escapeLabel(string(a.Key)), to)
			default:
				fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", id, escapeLabel(a.Label), to)
			}
		}
		if def.Continue != "" {
			fmt.Fprintf(&sb, "    %s -.-> %s\n", id, sanitizeMermaidID(def.Continue))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, v := range overlay.Visited {
			safe := sanitizeMermaidID(v)
			if !seen[safe] && safe != "" {
				seen[safe] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safe)
			}
		}
		if overlay.Current != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.Current))
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id domain.StateID) string {
	s := strings.ReplaceAll(string(id), ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}
