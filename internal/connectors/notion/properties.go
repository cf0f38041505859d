package notion

import (
	"fmt"
	"time"

	"github.com/jomei/notionapi"

	"github.com/SunnyChopper/notion-assistant/internal/core/domain"
)

// parseProperties translates Notion's heterogeneous property model into
// the normalized typed values the domain carries.
func parseProperties(props notionapi.Properties) map[string]domain.PropertyValue {
	out := make(map[string]domain.PropertyValue, len(props))
	for name, p := range props {
		out[name] = parseProperty(p)
	}
	return out
}

//nolint:gocyclo // One arm per property kind in the source palette.
func parseProperty(p notionapi.Property) domain.PropertyValue {
	switch v := p.(type) {
	case *notionapi.TitleProperty:
		return domain.PropertyValue{Kind: domain.PropertyTextList, Texts: richTextList(v.Title)}

	case *notionapi.RichTextProperty:
		return domain.PropertyValue{Kind: domain.PropertyTextList, Texts: richTextList(v.RichText)}

	case *notionapi.URLProperty:
		return domain.PropertyValue{Kind: domain.PropertyURL, Text: v.URL}

	case *notionapi.SelectProperty:
		return domain.PropertyValue{Kind: domain.PropertySelect, Text: v.Select.Name}

	case *notionapi.MultiSelectProperty:
		names := make([]string, 0, len(v.MultiSelect))
		for _, opt := range v.MultiSelect {
			names = append(names, opt.Name)
		}
		return domain.PropertyValue{Kind: domain.PropertyMultiSelect, Texts: names}

	case *notionapi.DateProperty:
		if v.Date == nil || v.Date.Start == nil {
			return domain.PropertyValue{Kind: domain.PropertyDate}
		}
		start := time.Time(*v.Date.Start)
		return domain.PropertyValue{Kind: domain.PropertyDate, Text: start.Format(time.RFC3339)}

	case *notionapi.PeopleProperty:
		names := make([]string, 0, len(v.People))
		for _, person := range v.People {
			names = append(names, person.Name)
		}
		return domain.PropertyValue{Kind: domain.PropertyPeople, Texts: names}

	case *notionapi.RelationProperty:
		ids := make([]string, 0, len(v.Relation))
		for _, rel := range v.Relation {
			ids = append(ids, string(rel.ID))
		}
		return domain.PropertyValue{Kind: domain.PropertyRelation, Texts: ids}

	case *notionapi.CheckboxProperty:
		return domain.PropertyValue{Kind: domain.PropertyCheckbox, Bool: v.Checkbox}

	case *notionapi.NumberProperty:
		return domain.PropertyValue{Kind: domain.PropertyNumber, Number: v.Number}

	default:
		// Unrecognized kinds degrade to a debug rendering instead of
		// disappearing from the page.
		return domain.PropertyValue{Kind: domain.PropertyUnknown, Text: fmt.Sprintf("%+v", p)}
	}
}

// richTextList extracts one plain string per rich text fragment,
// dropping empty fragments.
func richTextList(rts []notionapi.RichText) []string {
	out := make([]string, 0, len(rts))
	for _, rt := range rts {
		text := rt.PlainText
		if text == "" && rt.Text != nil {
			text = rt.Text.Content
		}
		if text != "" {
			out = append(out, text)
		}
	}
	return out
}
