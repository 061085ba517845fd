package history

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const recentTimeout = 2 * time.Second

// ShellRecent asks the shell for its session buffer with `fc -ln -<limit>`.
// Output is chronological.
func ShellRecent(ctx context.Context, shell string, limit int) ([]string, error) {
	if strings.TrimSpace(shell) == "" {
		return nil, ErrUnknownShell
	}
	ctx, cancel := context.WithTimeout(ctx, recentTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, shell, "-c", fmt.Sprintf("fc -ln -%d", limit))
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s fc failed: %w", shell, err)
	}
	raw := splitLines(string(output))
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines, nil
}
