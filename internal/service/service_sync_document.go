package service

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-kb-sync/models"
)

const (
	// maxSyncErrorLength bounds the stored error text, in characters.
	maxSyncErrorLength = 950

	publishedAtLayout = "2006-01-02 15:04:05"
)

// Document modes selected by configuration.
const (
	DocumentModeText = "text"
	DocumentModeFile = "file"
)

// buildPostContent assembles the document body pushed for a post. Fields
// appear in a fixed order as labeled paragraphs; optional ones are left out
// when empty.
func buildPostContent(p models.Post) string {
	var b strings.Builder

	writeParagraph(&b, "Title", p.Title)
	if p.Category != nil {
		writeParagraph(&b, "Category", p.Category.Name)
	}
	if p.Excerpt != "" {
		writeParagraph(&b, "Summary", p.Excerpt)
	}
	writeParagraph(&b, "Content", p.Content)
	if p.MetaKeywords != "" {
		writeParagraph(&b, "Tags", p.MetaKeywords)
	}
	if p.PublishedAt != nil {
		writeParagraph(&b, "Published", p.PublishedAt.Format(publishedAtLayout))
	}

	return b.String()
}

func writeParagraph(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n\n")
}

// documentFilename names the uploaded file in file mode.
func documentFilename(p models.Post) string {
	if p.Slug != "" {
		return p.Slug + ".md"
	}
	return "post-" + strconv.FormatInt(p.ID, 10) + ".md"
}

// truncateSyncError keeps at most maxSyncErrorLength characters of msg.
func truncateSyncError(msg string) string {
	runes := []rune(msg)
	if len(runes) <= maxSyncErrorLength {
		return msg
	}
	return string(runes[:maxSyncErrorLength])
}
