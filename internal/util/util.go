package util

import (
	"fmt"
	"path"
	"strings"
	"time"
)

const maxFileNameLength = 128

// SanitizeFileName reduces a client-supplied file name to a safe object key segment.
// Directory parts are dropped and anything outside [A-Za-z0-9._-] becomes an underscore.
func SanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	sanitized := strings.TrimLeft(b.String(), ".")
	if sanitized == "" {
		return "file"
	}
	if len(sanitized) > maxFileNameLength {
		ext := path.Ext(sanitized)
		if len(ext) >= maxFileNameLength {
			ext = ""
		}
		sanitized = sanitized[:maxFileNameLength-len(ext)] + ext
	}

	return sanitized
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
