package notion

import (
	"fmt"
	"strings"

	"github.com/jomei/notionapi"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// renderBlocks flattens a page's blocks into markdown-like text and
// collects the child page references declared among them. Line order
// follows block order; the output is the input to fingerprinting, so
// rendering must be deterministic.
func renderBlocks(blocks []notionapi.Block) (string, []domain.PageRef) {
	var (
		lines []string
		refs  []domain.PageRef
	)

	for _, b := range blocks {
		switch blk := b.(type) {
		case *notionapi.ParagraphBlock:
			// Empty paragraphs are spacing, not content.
			if text := richTextPlain(blk.Paragraph.RichText); text != "" {
				lines = append(lines, text)
			}
		case *notionapi.Heading1Block:
			lines = append(lines, "# "+richTextPlain(blk.Heading1.RichText))
		case *notionapi.Heading2Block:
			lines = append(lines, "## "+richTextPlain(blk.Heading2.RichText))
		case *notionapi.Heading3Block:
			lines = append(lines, "### "+richTextPlain(blk.Heading3.RichText))
		case *notionapi.BulletedListItemBlock:
			lines = append(lines, "- "+richTextPlain(blk.BulletedListItem.RichText))
		case *notionapi.NumberedListItemBlock:
			lines = append(lines, "1. "+richTextPlain(blk.NumberedListItem.RichText))
		case *notionapi.ChildPageBlock:
			id := string(blk.GetID())
			title := blk.ChildPage.Title
			lines = append(lines, fmt.Sprintf("- [%s](%s)", title, id))
			refs = append(refs, domain.PageRef{ID: id, Title: title})
		default:
			// Keep unknown content visible so edits to it still move
			// the fingerprint.
			lines = append(lines, fmt.Sprintf("[%s]", b.GetType()))
		}
	}

	return strings.Join(lines, "\n"), refs
}

// richTextPlain concatenates the plain text of a rich text list.
func richTextPlain(rts []notionapi.RichText) string {
	var sb strings.Builder
	for _, rt := range rts {
		if rt.PlainText != "" {
			sb.WriteString(rt.PlainText)
			continue
		}
		if rt.Text != nil {
			sb.WriteString(rt.Text.Content)
		}
	}
	return sb.String()
}
