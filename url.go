package paginate

import (
	"net/url"
	"strconv"
	"strings"
)

// PageURL returns a URLFor that substitutes the literal "$page" in the
// template with the target page number:
//
//	PageURL("/phonebook?page=$page")(3) -> "/phonebook?page=3"
func PageURL(template string) URLFor {
	return func(page int) string {
		return strings.ReplaceAll(template, "$page", strconv.Itoa(page))
	}
}

// URLForQuery returns a URLFor that merges the page number into an existing
// query-parameter set, preserving the other parameters:
//
//	URLForQuery("/articles", url.Values{"q": {"go"}}, "page")(2)
//	-> "/articles?page=2&q=go"
//
// An empty pageParam defaults to "page". The params are copied once, so the
// returned URLFor is safe to call repeatedly.
func URLForQuery(path string, params url.Values, pageParam string) URLFor {
	if pageParam == "" {
		pageParam = "page"
	}
	merged := url.Values{}
	for k, vs := range params {
		merged[k] = append([]string(nil), vs...)
	}
	return func(page int) string {
		merged.Set(pageParam, strconv.Itoa(page))
		return path + "?" + merged.Encode()
	}
}
