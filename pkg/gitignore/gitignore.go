// Package gitignore maintains firstrun-managed entries in a .gitignore
// file. Entries are grouped under a tagged block so repeated runs stay
// idempotent and unrelated user entries are never touched.
package gitignore

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/firstrun/pkg/errors"
	"github.com/arthur-debert/firstrun/pkg/logging"
	"github.com/arthur-debert/firstrun/pkg/types"
)

// Manager edits one .gitignore file
type Manager struct {
	fs   types.FS
	path string
}

// NewManager creates a Manager for the .gitignore at path
func NewManager(fs types.FS, path string) *Manager {
	return &Manager{fs: fs, path: path}
}

func blockMarkers(group string) (string, string) {
	return fmt.Sprintf("# firstrun:%s begin", group),
		fmt.Sprintf("# firstrun:%s end", group)
}

// Add ensures the given patterns appear inside the tagged block for
// group, creating the file or the block as needed. Patterns already in
// the block are kept once.
func (m *Manager) Add(group string, patterns ...string) error {
	if len(patterns) == 0 {
		return nil
	}

	content := ""
	data, err := m.fs.ReadFile(m.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", m.path)
		}
	} else {
		content = string(data)
	}

	begin, end := blockMarkers(group)
	existing, before, after := splitBlock(content, begin, end)

	for _, p := range patterns {
		found := false
		for _, have := range existing {
			if have == p {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, p)
		}
	}

	var b strings.Builder
	b.WriteString(before)
	if before != "" && !strings.HasSuffix(before, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(begin + "\n")
	for _, p := range existing {
		b.WriteString(p + "\n")
	}
	b.WriteString(end + "\n")
	b.WriteString(after)

	if err := m.fs.WriteFile(m.path, []byte(b.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", m.path)
	}

	logger := logging.GetLogger("gitignore")
	logger.Debug().
		Str("path", m.path).
		Str("group", group).
		Strs("patterns", patterns).
		Msg("Updated managed gitignore block")
	return nil
}

// splitBlock extracts the lines inside the tagged block and the text
// before and after it. A missing block yields no lines with everything
// in before.
func splitBlock(content, begin, end string) (lines []string, before, after string) {
	startIdx := strings.Index(content, begin)
	if startIdx == -1 {
		return nil, content, ""
	}

	rest := content[startIdx+len(begin):]
	endIdx := strings.Index(rest, end)
	if endIdx == -1 {
		// Malformed block: treat the begin marker onwards as replaceable
		return nil, content[:startIdx], ""
	}

	inner := strings.Trim(rest[:endIdx], "\n")
	if inner != "" {
		lines = strings.Split(inner, "\n")
	}

	before = content[:startIdx]
	after = strings.TrimPrefix(rest[endIdx+len(end):], "\n")
	return lines, before, after
}
