package paginate

import (
	"strconv"
	"strings"
)

// Default pager symbols and format sequences. The symbols are inserted into
// the output verbatim, so they ship pre-escaped.
const (
	DefaultFormat         = "~2~"
	DefaultSeparator      = " "
	DefaultSymbolFirst    = "&lt;&lt;"
	DefaultSymbolLast     = "&gt;&gt;"
	DefaultSymbolPrevious = "&lt;"
	DefaultSymbolNext     = "&gt;"
	DefaultGapLabel       = ".."
)

// NavKind identifies the role of a navigation entry.
type NavKind string

const (
	NavFirstPage    NavKind = "first_page"
	NavLastPage     NavKind = "last_page"
	NavPreviousPage NavKind = "previous_page"
	NavNextPage     NavKind = "next_page"
	NavCurrentPage  NavKind = "current_page"
	NavPage         NavKind = "page"
	NavGap          NavKind = "gap"
)

// NavEntry is one entry in a pager's link list.
//
// Gap entries have no Page and no Href. CurrentPage entries carry their
// page number but no Href: the current page is a display-only marker, not a
// clickable link, and callers that want a self-link can generate one from
// Page.
type NavEntry struct {
	Kind  NavKind
	Label string
	Href  string
	Page  int
	Attrs map[string]string
}

// URLFor generates the href for a page number. It is invoked once per
// emitted linked entry, in page-number order, and never for gaps or for the
// current page.
type URLFor func(page int) string

// LinkMap is the structured representation of a pager, suitable for
// programmatic rendering by any templating layer.
//
// First, Last and Current are set whenever the collection has items;
// Previous and Next only when the corresponding page exists. All fields are
// nil/empty when the collection is empty.
type LinkMap struct {
	First    *NavEntry
	Last     *NavEntry
	Previous *NavEntry
	Next     *NavEntry
	Current  *NavEntry
	Range    []NavEntry
	Radius   int
}

// BuildRange produces the entries of one radius-limited page window around
// the current page, e.g. pages 5-9 of "1 .. 5 6 [7] 8 9 .. 50" for radius 2.
//
// The first and last page are always reachable: when the window cuts them
// off, a direct entry for the boundary page is emitted before/after the gap
// marker. A gap that would hide exactly one page is suppressed and the page
// shown directly instead.
//
// It is a pure function of its inputs; urlFor may be nil, leaving Href
// empty on every entry.
func BuildRange(state State, radius int, urlFor URLFor) []NavEntry {
	return buildRange(state, radius, urlFor, rangeAttrs{})
}

type rangeAttrs struct {
	link    map[string]string
	current map[string]string
	gap     map[string]string
}

func buildRange(state State, radius int, urlFor URLFor, attrs rangeAttrs) []NavEntry {
	if state.PageCount == 0 || radius < 0 {
		return nil
	}

	// The window of pages around the current page,
	// e.g. '1 .. 5 6 [7] 8 9 .. 12' -> leftmost 5, rightmost 9.
	leftmost := max(state.FirstPage, state.Page-radius)
	rightmost := min(state.LastPage, state.Page+radius)

	var entries []NavEntry

	// Keep the first page reachable when the window cuts it off.
	if state.Page != state.FirstPage && state.FirstPage < leftmost {
		entries = append(entries, linkedEntry(NavPage, state.FirstPage, urlFor, attrs.link))
	}

	// Gap between the first page and the window. A 1-page gap is
	// pointless: the adjacent page is shown directly instead.
	if leftmost-state.FirstPage > 1 {
		entries = append(entries, NavEntry{Kind: NavGap, Label: DefaultGapLabel, Attrs: attrs.gap})
	}

	for p := leftmost; p <= rightmost; p++ {
		if p == state.Page {
			entries = append(entries, NavEntry{
				Kind:  NavCurrentPage,
				Label: strconv.Itoa(p),
				Page:  p,
				Attrs: attrs.current,
			})
			continue
		}
		entries = append(entries, linkedEntry(NavPage, p, urlFor, attrs.link))
	}

	if state.LastPage-rightmost > 1 {
		entries = append(entries, NavEntry{Kind: NavGap, Label: DefaultGapLabel, Attrs: attrs.gap})
	}

	// Keep the last page reachable, symmetric to the leading entry.
	if state.Page != state.LastPage && rightmost < state.LastPage {
		entries = append(entries, linkedEntry(NavPage, state.LastPage, urlFor, attrs.link))
	}

	return entries
}

func linkedEntry(kind NavKind, page int, urlFor URLFor, attrs map[string]string) NavEntry {
	e := NavEntry{Kind: kind, Label: strconv.Itoa(page), Page: page, Attrs: attrs}
	if urlFor != nil {
		e.Href = urlFor(page)
	}
	return e
}

func symbolEntry(kind NavKind, page int, label string, urlFor URLFor) *NavEntry {
	e := linkedEntry(kind, page, urlFor, nil)
	e.Label = label
	return &e
}

// BuildLinkMap produces the structured pager record: the first/last/
// previous/next/current singleton entries plus the radius window from
// BuildRange. The first/last/previous/next entries carry the original's
// default symbols as labels.
//
// When the collection is empty the all-nil LinkMap is returned without
// invoking urlFor.
func BuildLinkMap(state State, radius int, urlFor URLFor) LinkMap {
	lm := LinkMap{Radius: radius}
	if state.PageCount == 0 {
		return lm
	}

	lm.First = symbolEntry(NavFirstPage, state.FirstPage, DefaultSymbolFirst, urlFor)
	if state.HasPrevious() {
		lm.Previous = symbolEntry(NavPreviousPage, state.PreviousPage, DefaultSymbolPrevious, urlFor)
	}
	current := NavEntry{Kind: NavCurrentPage, Label: strconv.Itoa(state.Page), Page: state.Page}
	lm.Current = &current
	if state.HasNext() {
		lm.Next = symbolEntry(NavNextPage, state.NextPage, DefaultSymbolNext, urlFor)
	}
	lm.Last = symbolEntry(NavLastPage, state.LastPage, DefaultSymbolLast, urlFor)
	lm.Range = BuildRange(state, radius, urlFor)

	return lm
}

// PagerOptions customizes Pager output. The zero value renders the default
// "~2~" format with single-space separators and no link target, which is a
// configuration error - set URL or URLFor.
type PagerOptions struct {
	// Format defines how the pager is rendered. It may contain the
	// $-placeholders first_page, last_page, page, page_count,
	// items_per_page, first_item, last_item, item_count, link_first,
	// link_last, link_previous and link_next, plus range tokens of the
	// form ~3~ where the number is the radius of pages shown around the
	// current page. Unrecognized placeholders are left verbatim.
	// Default: "~2~".
	Format string

	// URL is a link template containing the literal "$page", replaced
	// textually with the target page number.
	URL string

	// URLFor generates link targets; it takes precedence over URL.
	URLFor URLFor

	// ShowIfSinglePage renders the pager even when there is only one
	// page. An empty collection always renders as the empty string.
	ShowIfSinglePage bool

	// Separator joins the entries of a range token. Empty means the
	// default single space.
	Separator string

	// Display texts for the link_first/link_last/link_previous/link_next
	// placeholders. Empty means the defaults "&lt;&lt;", "&gt;&gt;",
	// "&lt;" and "&gt;".
	SymbolFirst    string
	SymbolLast     string
	SymbolPrevious string
	SymbolNext     string

	// LinkAttr is added to every A tag pointing to another page, e.g.
	// {"class": "pager_link"}.
	LinkAttr map[string]string

	// CurrentAttr wraps the current page number in a SPAN tag with these
	// attributes. Without it the bare number is emitted.
	CurrentAttr map[string]string

	// GapAttr wraps gap markers in a SPAN tag with these attributes.
	GapAttr map[string]string
}

func (o PagerOptions) withDefaults() PagerOptions {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Separator == "" {
		o.Separator = DefaultSeparator
	}
	if o.SymbolFirst == "" {
		o.SymbolFirst = DefaultSymbolFirst
	}
	if o.SymbolLast == "" {
		o.SymbolLast = DefaultSymbolLast
	}
	if o.SymbolPrevious == "" {
		o.SymbolPrevious = DefaultSymbolPrevious
	}
	if o.SymbolNext == "" {
		o.SymbolNext = DefaultSymbolNext
	}
	return o
}

// urlFor resolves the link-generation strategy. A format that references
// links without a usable strategy is an ECONFIGURATION error; a URL
// template without the "$page" placeholder is one as well.
func (o PagerOptions) urlFor() (URLFor, error) {
	if o.URLFor != nil {
		return o.URLFor, nil
	}
	if o.URL != "" {
		if !strings.Contains(o.URL, "$page") {
			return nil, Errorf(ECONFIGURATION, "pager.render",
				"the URL template must contain a $page placeholder")
		}
		return PageURL(o.URL), nil
	}
	if formatNeedsLinks(o.Format) {
		return nil, Errorf(ECONFIGURATION, "pager.render",
			"no link target: set URL or URLFor to render links")
	}
	return nil, nil
}

// Pager returns a string with links to other pages, e.g.
// '1 .. 5 6 7 [8] 9 10 11 .. 50' plus markup.
//
// Empty collections render as the empty string, as do single-page
// collections unless ShowIfSinglePage is set; the short-circuit runs before
// any template substitution. Misconfigured link generation fails with an
// ECONFIGURATION error regardless of the collection size.
func Pager(state State, opts PagerOptions) (string, error) {
	opts = opts.withDefaults()

	urlFor, err := opts.urlFor()
	if err != nil {
		return "", err
	}

	// No navigator when there is no more than one page.
	if state.PageCount == 0 || (state.PageCount == 1 && !opts.ShowIfSinglePage) {
		return "", nil
	}

	// Replace ~...~ tokens with the rendered range of pages.
	result := expandRangeTokens(opts.Format, func(radius int) string {
		entries := buildRange(state, radius, urlFor, rangeAttrs{
			link:    opts.LinkAttr,
			current: opts.CurrentAttr,
			gap:     opts.GapAttr,
		})
		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[i] = renderEntry(e)
		}
		return strings.Join(parts, opts.Separator)
	})

	return safeSubstitute(result, map[string]string{
		"first_page":     strconv.Itoa(state.FirstPage),
		"last_page":      strconv.Itoa(state.LastPage),
		"page":           strconv.Itoa(state.Page),
		"page_count":     strconv.Itoa(state.PageCount),
		"items_per_page": strconv.Itoa(state.ItemsPerPage),
		"first_item":     strconv.Itoa(state.FirstItem),
		"last_item":      strconv.Itoa(state.LastItem),
		"item_count":     strconv.Itoa(state.ItemCount),
		"link_first":     boundaryLink(state.Page > state.FirstPage, state.FirstPage, opts.SymbolFirst, urlFor, opts.LinkAttr),
		"link_last":      boundaryLink(state.Page < state.LastPage, state.LastPage, opts.SymbolLast, urlFor, opts.LinkAttr),
		"link_previous":  boundaryLink(state.HasPrevious(), state.PreviousPage, opts.SymbolPrevious, urlFor, opts.LinkAttr),
		"link_next":      boundaryLink(state.HasNext(), state.NextPage, opts.SymbolNext, urlFor, opts.LinkAttr),
	}), nil
}

// boundaryLink renders one of the link_* placeholder values, or "" when the
// target page does not apply (e.g. link_previous on the first page).
func boundaryLink(show bool, page int, symbol string, urlFor URLFor, attrs map[string]string) string {
	if !show {
		return ""
	}
	e := linkedEntry(NavPage, page, urlFor, attrs)
	e.Label = symbol
	return renderEntry(e)
}

// renderEntry serializes one entry: an A tag for links, the bare label
// (optionally SPAN-wrapped) for the current page and gap markers.
func renderEntry(e NavEntry) string {
	switch e.Kind {
	case NavGap, NavCurrentPage:
		if len(e.Attrs) > 0 {
			return MakeHTMLTag("span", e.Label, e.Attrs)
		}
		return e.Label
	default:
		attrs := make(map[string]string, len(e.Attrs)+1)
		for k, v := range e.Attrs {
			attrs[k] = v
		}
		attrs["href"] = e.Href
		return MakeHTMLTag("a", e.Label, attrs)
	}
}
