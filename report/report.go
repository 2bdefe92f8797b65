// Package report renders the tree extracted from a trained
// Auto-Contractive Map.
//
// Two reporters are provided, both read-only over their inputs:
//
//   - Write — plain text, one line per connection, preceded by the run
//     counter; meant for terminals and logs.
//   - DOT   — a Graphviz "graph" document (nodes = labels, edges =
//     connections with weight labels) for visual inspection via
//     `dot -Tsvg` or any Graphviz viewer.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/acmap/acm"
)

// Write prints the run counter followed by one line per connection:
//
//	Total number of runs: <runs>
//
//	Connection: <from> --> 	<to>	<weight>
//
// Returns the first write error encountered, if any.
//
// Complexity: O(len(conns)).
func Write(w io.Writer, runs int, conns []acm.Connection) error {
	if _, err := fmt.Fprintf(w, "Total number of runs: %d\n\n", runs); err != nil {
		return err
	}
	for _, c := range conns {
		_, err := fmt.Fprintf(w, "Connection: %s --> \t%s\t%s\n",
			c.From, c.To, formatWeight(c.Weight))
		if err != nil {
			return err
		}
	}

	return nil
}

// DOT emits an undirected Graphviz graph of the connections. Every label
// becomes a node, every connection an edge annotated with its weight.
//
// Complexity: O(len(conns)).
func DOT(w io.Writer, conns []acm.Connection) error {
	if _, err := fmt.Fprintln(w, "graph acm {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\tnode [shape=ellipse];"); err != nil {
		return err
	}
	for _, c := range conns {
		_, err := fmt.Fprintf(w, "\t%s -- %s [label=%s];\n",
			quote(c.From), quote(c.To), quote(formatWeight(c.Weight)))
		if err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}

	return nil
}

// formatWeight renders a weight with the shortest exact representation.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// quote wraps s in double quotes, escaping embedded quotes and backslashes
// per the DOT grammar.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)

	return `"` + s + `"`
}
