package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// UntitledPage is the display title for pages whose title property
// is missing or empty.
const UntitledPage = "Untitled"

// Page represents one unit of content in the hierarchical corpus.
// It is the canonical representation after block rendering and is
// transient: only derived data (fingerprint, chunks, graph membership)
// is ever persisted.
type Page struct {
	// ID is the stable opaque identifier assigned by the source.
	ID string

	// Title is the human-readable title, UntitledPage when absent.
	Title string

	// Properties holds the page's typed property values keyed by
	// property name.
	Properties map[string]PropertyValue

	// FullText is the flattened textual rendering of the page's block
	// content. Markdown-like structure is preserved for headings and
	// list items.
	FullText string

	// ChildRefs lists directly nested pages in source order.
	ChildRefs []PageRef
}

// PageRef identifies a child page declared inside another page's content.
type PageRef struct {
	// ID is the child page's identifier.
	ID string

	// Title is the child page's title as declared by the parent.
	Title string
}

// PropertyKind discriminates the value shape of a PropertyValue.
type PropertyKind string

// Property kinds mirror the source's property palette.
const (
	// PropertyTextList is a list of plain-text fragments (title, rich text).
	PropertyTextList PropertyKind = "text_list"

	// PropertyURL is a single URL string.
	PropertyURL PropertyKind = "url"

	// PropertySelect is a single enum option name.
	PropertySelect PropertyKind = "select"

	// PropertyMultiSelect is a list of enum option names.
	PropertyMultiSelect PropertyKind = "multi_select"

	// PropertyDate is the start date of a date value, ISO formatted.
	PropertyDate PropertyKind = "date"

	// PropertyPeople is a list of person display names.
	PropertyPeople PropertyKind = "people"

	// PropertyRelation is a list of related page ids.
	PropertyRelation PropertyKind = "relation"

	// PropertyCheckbox is a boolean.
	PropertyCheckbox PropertyKind = "checkbox"

	// PropertyNumber is a floating point number.
	PropertyNumber PropertyKind = "number"

	// PropertyUnknown is an unrecognised property rendered as an opaque
	// debug string rather than dropped.
	PropertyUnknown PropertyKind = "unknown"
)

// PropertyValue holds one typed property value. Kind selects which of
// the value fields is meaningful; the others are zero.
type PropertyValue struct {
	// Kind discriminates the value shape.
	Kind PropertyKind

	// Texts carries list-shaped values (text list, multi-select,
	// people, relation ids).
	Texts []string

	// Text carries single-string values (url, select, date, unknown).
	Text string

	// Bool carries checkbox values.
	Bool bool

	// Number carries numeric values.
	Number float64
}

// String renders the value for display output.
func (v PropertyValue) String() string {
	switch v.Kind {
	case PropertyTextList, PropertyMultiSelect, PropertyPeople, PropertyRelation:
		return strings.Join(v.Texts, ", ")
	case PropertyURL, PropertySelect, PropertyDate, PropertyUnknown:
		return v.Text
	case PropertyCheckbox:
		return strconv.FormatBool(v.Bool)
	case PropertyNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	default:
		// Convert to a method-less type so %+v cannot re-enter String.
		type bare PropertyValue
		return fmt.Sprintf("%+v", bare(v))
	}
}

// TitleFromProperties extracts the page title from a parsed property
// map, falling back to UntitledPage.
func TitleFromProperties(props map[string]PropertyValue) string {
	for name, v := range props {
		if !strings.EqualFold(name, "title") {
			continue
		}
		if v.Kind == PropertyTextList && len(v.Texts) > 0 && v.Texts[0] != "" {
			return v.Texts[0]
		}
	}
	return UntitledPage
}
