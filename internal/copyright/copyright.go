// Package copyright formats the copyright banner placed at the top of generated C++ sources.
package copyright

import (
	"fmt"
	"strings"
	"time"
)

// Formatter renders copyright banners. The zero value uses the wall clock.
type Formatter struct {
	// Now supplies the year of the default notice.
	Now func() time.Time
}

// DefaultNotice returns the notice used when the user supplies none.
func (f Formatter) DefaultNotice() string {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	return fmt.Sprintf("Copyright (c) %d Enzien Audio, Ltd.", now().Year())
}

// Format wraps user (or the default notice when user is blank) in a C block comment.
func (f Formatter) Format(user string) string {
	text := strings.TrimSpace(user)
	if text == "" {
		text = f.DefaultNotice()
	}

	var b strings.Builder

	b.WriteString("/**\n")

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		// keep user text from closing the comment early
		line = strings.ReplaceAll(line, "*/", "* /")

		if line == "" {
			b.WriteString(" *\n")

			continue
		}

		b.WriteString(" * ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(" */\n")

	return b.String()
}

// Format formats user with the wall clock.
func Format(user string) string {
	return Formatter{}.Format(user)
}
