// Package graph renders commit ancestry as a PlantUML diagram description.
package graph

import (
	"strings"

	"github.com/masmgr/commitgraph/internal/git"
)

const (
	openMarker  = "@startuml"
	closeMarker = "@enduml"
)

// header lines follow the open marker in every document.
var header = []string{
	"skinparam linetype ortho",
	"skinparam monochrome true",
}

// Document is a complete PlantUML description produced by Build.
type Document string

// String returns the document text.
func (d Document) String() string {
	return string(d)
}

// Build renders commits (newest first) as a PlantUML document.
//
// Nodes are emitted oldest first, each followed by one edge per listed parent
// pointing into it. Parents outside the commit list still get an edge. IDs and
// messages are quoted verbatim; embedded quotes are not escaped.
func Build(commits []git.CommitRecord) Document {
	var sb strings.Builder

	sb.WriteString(openMarker)
	sb.WriteByte('\n')
	for _, line := range header {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	// First occurrence wins when an ID repeats; later duplicates emit nothing.
	byID := make(map[string]git.CommitRecord, len(commits))
	order := make([]string, 0, len(commits))
	for _, c := range commits {
		if _, ok := byID[c.ID]; ok {
			continue
		}
		byID[c.ID] = c
		order = append(order, c.ID)
	}

	for i := len(order) - 1; i >= 0; i-- {
		c := byID[order[i]]
		writeNode(&sb, c.ID, c.Message)
		for _, p := range c.Parents {
			writeEdge(&sb, p, c.ID)
		}
	}

	sb.WriteString(closeMarker)
	sb.WriteByte('\n')
	return Document(sb.String())
}

func writeNode(sb *strings.Builder, id, message string) {
	sb.WriteByte('"')
	sb.WriteString(id)
	sb.WriteString(`" : "`)
	sb.WriteString(message)
	sb.WriteString("\"\n")
}

func writeEdge(sb *strings.Builder, parent, child string) {
	sb.WriteByte('"')
	sb.WriteString(parent)
	sb.WriteString(`" --> "`)
	sb.WriteString(child)
	sb.WriteString("\"\n")
}
