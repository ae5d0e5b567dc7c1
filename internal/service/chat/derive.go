package chat

import (
	"time"

	"github.com/kissandost/backend/internal/i18n"
)

// TruncateTitle derives a session title from its first user message:
// at most 30 characters, with an ellipsis when cut. Counting is by rune,
// not grapheme cluster, which is fine for a one-line display.
func TruncateTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= titleLimit {
		return text
	}
	return string(runes[:titleLimit]) + "..."
}

// TruncatePreview derives the short excerpt shown in the session list:
// at most 40 characters, no ellipsis.
func TruncatePreview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit])
}

// RelativeTimeLabel renders a session's UpdatedAt for the history list:
// a clock time on the same calendar day, a localized "Yesterday" for the
// previous calendar day, and a short date otherwise.
func RelativeTimeLabel(ts, now time.Time, lang i18n.Language) string {
	ty, tm, td := ts.Date()
	ny, nm, nd := now.Date()
	if ty == ny && tm == nm && td == nd {
		return ts.Format("15:04")
	}

	yy, ym, yd := now.AddDate(0, 0, -1).Date()
	if ty == yy && tm == ym && td == yd {
		return i18n.T(lang).Yesterday
	}

	return ts.Format("02/01/2006")
}
