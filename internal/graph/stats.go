package graph

import "github.com/masmgr/commitgraph/internal/git"

// Summary counts what Build emits for a commit list.
type Summary struct {
	Nodes    int
	Edges    int
	Roots    int
	Merges   int
	Dangling int // Edges whose parent is not in the commit list
}

// Summarize returns the node and edge counts of the document Build would emit.
func Summarize(commits []git.CommitRecord) Summary {
	present := make(map[string]bool, len(commits))
	for _, c := range commits {
		present[c.ID] = true
	}

	var s Summary
	seen := make(map[string]bool, len(commits))
	for _, c := range commits {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		s.Nodes++
		s.Edges += len(c.Parents)
		if c.IsRoot() {
			s.Roots++
		}
		if c.IsMerge() {
			s.Merges++
		}
		for _, p := range c.Parents {
			if !present[p] {
				s.Dangling++
			}
		}
	}
	return s
}
