// Package scan implements the Markdown structural scanners: the fenced
// code block finder and the pipe-table finder. Both are pure functions of
// the input text with no I/O or shared state, so they are safe to invoke
// concurrently on independent documents.
package scan

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/mdpipe/core"
)

// fenceRe matches one fenced code block: an opening ``` with an optional
// language tag and an optional ":filename" hint, then a non-greedy body up
// to the first closing ```. A literal ``` inside a body therefore closes
// the block early; that is the observed behavior and is kept as-is.
var fenceRe = regexp.MustCompile("(?s)```[ \t]*([a-zA-Z0-9_+#.-]*)(?::([^\n]+))?\n(.*?)```")

// CodeBlocks scans text for fenced code blocks in document order.
// A fence with no closing delimiter before end of input yields no block.
func CodeBlocks(text string) []core.CodeBlock {
	matches := fenceRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	index := NewLineIndex(text)

	blocks := make([]core.CodeBlock, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, core.CodeBlock{
			Lang:         strings.TrimSpace(submatch(text, m, 1)),
			FilenameHint: strings.TrimSpace(submatch(text, m, 2)),
			Body:         submatch(text, m, 3),
			Line:         index.LineAt(m[0]),
		})
	}
	return blocks
}

// submatch returns capture group n of a FindAllStringSubmatchIndex match,
// or "" when the group did not participate.
func submatch(text string, m []int, n int) string {
	start, end := m[2*n], m[2*n+1]
	if start < 0 {
		return ""
	}
	return text[start:end]
}
