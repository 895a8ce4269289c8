package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kinds extracts the entry kinds for compact range assertions.
func kinds(entries []NavEntry) []NavKind {
	out := make([]NavKind, len(entries))
	for i, e := range entries {
		out[i] = e.Kind
	}
	return out
}

// pages extracts the page numbers (0 for gaps).
func pages(entries []NavEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Page
	}
	return out
}

func TestBuildRange(t *testing.T) {
	tests := []struct {
		name      string
		itemCount int
		perPage   int
		page      int
		radius    int
		wantPages []int
		wantKinds []NavKind
	}{
		{
			name:      "window in the middle shows both boundaries and gaps",
			itemCount: 1000, perPage: 20, page: 7, radius: 2,
			wantPages: []int{1, 0, 5, 6, 7, 8, 9, 0, 50},
			wantKinds: []NavKind{NavPage, NavGap, NavPage, NavPage, NavCurrentPage, NavPage, NavPage, NavGap, NavPage},
		},
		{
			name:      "first page with trailing gap",
			itemCount: 109, perPage: 15, page: 1, radius: 4,
			wantPages: []int{1, 2, 3, 4, 5, 0, 8},
			wantKinds: []NavKind{NavCurrentPage, NavPage, NavPage, NavPage, NavPage, NavGap, NavPage},
		},
		{
			name:      "last page with leading gap",
			itemCount: 109, perPage: 15, page: 8, radius: 4,
			wantPages: []int{1, 0, 4, 5, 6, 7, 8},
			wantKinds: []NavKind{NavPage, NavGap, NavPage, NavPage, NavPage, NavPage, NavCurrentPage},
		},
		{
			name:      "one-page gap on the left is suppressed",
			itemCount: 200, perPage: 20, page: 4, radius: 2,
			wantPages: []int{1, 2, 3, 4, 5, 6, 0, 10},
			wantKinds: []NavKind{NavPage, NavPage, NavPage, NavCurrentPage, NavPage, NavPage, NavGap, NavPage},
		},
		{
			name:      "one-page gap on the right is suppressed",
			itemCount: 200, perPage: 20, page: 7, radius: 2,
			wantPages: []int{1, 0, 5, 6, 7, 8, 9, 10},
			wantKinds: []NavKind{NavPage, NavGap, NavPage, NavPage, NavCurrentPage, NavPage, NavPage, NavPage},
		},
		{
			name:      "window touching the first page has no leading entry",
			itemCount: 200, perPage: 20, page: 3, radius: 2,
			wantPages: []int{1, 2, 3, 4, 5, 0, 10},
			wantKinds: []NavKind{NavPage, NavPage, NavCurrentPage, NavPage, NavPage, NavGap, NavPage},
		},
		{
			name:      "radius covers every page",
			itemCount: 60, perPage: 20, page: 2, radius: 5,
			wantPages: []int{1, 2, 3},
			wantKinds: []NavKind{NavPage, NavCurrentPage, NavPage},
		},
		{
			name:      "radius zero still reaches both boundaries",
			itemCount: 200, perPage: 20, page: 5, radius: 0,
			wantPages: []int{1, 0, 5, 0, 10},
			wantKinds: []NavKind{NavPage, NavGap, NavCurrentPage, NavGap, NavPage},
		},
		{
			name:      "single page",
			itemCount: 5, perPage: 20, page: 1, radius: 2,
			wantPages: []int{1},
			wantKinds: []NavKind{NavCurrentPage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := Compute(tt.itemCount, tt.page, tt.perPage)
			entries := BuildRange(state, tt.radius, nil)
			assert.Equal(t, tt.wantPages, pages(entries))
			assert.Equal(t, tt.wantKinds, kinds(entries))
		})
	}
}

func TestBuildRangeEmptyAndNegative(t *testing.T) {
	assert.Nil(t, BuildRange(Compute(0, 1, 10), 2, nil))
	assert.Nil(t, BuildRange(Compute(100, 1, 10), -1, nil))
}

func TestBuildRangeIsPure(t *testing.T) {
	state := Compute(1000, 17, 20)
	first := BuildRange(state, 3, PageURL("/p/$page"))
	second := BuildRange(state, 3, PageURL("/p/$page"))
	assert.Equal(t, first, second)
}

func TestBuildRangeBoundaryReachability(t *testing.T) {
	// The first and last page must appear somewhere in the range output
	// for every current page and radius.
	state0 := Compute(500, 1, 10)
	for page := 1; page <= state0.PageCount; page++ {
		for radius := 0; radius <= 6; radius++ {
			entries := BuildRange(Compute(500, page, 10), radius, nil)
			got := pages(entries)
			assert.Contains(t, got, 1, "page=%d radius=%d", page, radius)
			assert.Contains(t, got, state0.PageCount, "page=%d radius=%d", page, radius)
		}
	}
}

func TestBuildRangeURLForInvocations(t *testing.T) {
	var calls []int
	urlFor := func(p int) string {
		calls = append(calls, p)
		return "/p"
	}

	entries := BuildRange(Compute(1000, 7, 20), 2, urlFor)

	// Once per linked entry, ascending, never for the current page or gaps.
	assert.Equal(t, []int{1, 5, 6, 8, 9, 50}, calls)
	for _, e := range entries {
		if e.Kind == NavGap || e.Kind == NavCurrentPage {
			assert.Empty(t, e.Href)
		} else {
			assert.NotEmpty(t, e.Href)
		}
	}
}

func TestBuildLinkMap(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		lm := BuildLinkMap(Compute(1000, 7, 20), 2, PageURL("/p/$page"))

		require.NotNil(t, lm.First)
		assert.Equal(t, NavFirstPage, lm.First.Kind)
		assert.Equal(t, 1, lm.First.Page)
		assert.Equal(t, "/p/1", lm.First.Href)

		require.NotNil(t, lm.Previous)
		assert.Equal(t, 6, lm.Previous.Page)
		require.NotNil(t, lm.Next)
		assert.Equal(t, 8, lm.Next.Page)
		require.NotNil(t, lm.Last)
		assert.Equal(t, 50, lm.Last.Page)

		require.NotNil(t, lm.Current)
		assert.Equal(t, 7, lm.Current.Page)
		assert.Empty(t, lm.Current.Href)

		assert.Equal(t, 2, lm.Radius)
		assert.Equal(t, []int{1, 0, 5, 6, 7, 8, 9, 0, 50}, pages(lm.Range))
	})

	t.Run("first page has no previous", func(t *testing.T) {
		lm := BuildLinkMap(Compute(100, 1, 10), 2, PageURL("/p/$page"))
		assert.Nil(t, lm.Previous)
		require.NotNil(t, lm.Next)
		assert.Equal(t, 2, lm.Next.Page)
	})

	t.Run("last page has no next", func(t *testing.T) {
		lm := BuildLinkMap(Compute(100, 10, 10), 2, PageURL("/p/$page"))
		assert.Nil(t, lm.Next)
		require.NotNil(t, lm.Previous)
		assert.Equal(t, 9, lm.Previous.Page)
	})

	t.Run("empty collection yields the all-nil map without urlFor calls", func(t *testing.T) {
		called := false
		lm := BuildLinkMap(Compute(0, 1, 10), 2, func(int) string {
			called = true
			return ""
		})
		assert.False(t, called)
		assert.Nil(t, lm.First)
		assert.Nil(t, lm.Last)
		assert.Nil(t, lm.Previous)
		assert.Nil(t, lm.Next)
		assert.Nil(t, lm.Current)
		assert.Empty(t, lm.Range)
	})
}

func TestPager(t *testing.T) {
	url := "http://example.org/foo/page=$page"

	t.Run("empty collection renders nothing", func(t *testing.T) {
		state := Compute(0, 0, 20)

		out, err := Pager(state, PagerOptions{URL: url})
		require.NoError(t, err)
		assert.Equal(t, "", out)

		out, err = Pager(state, PagerOptions{URL: url, ShowIfSinglePage: true})
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("single page hidden by default", func(t *testing.T) {
		state := Compute(10, 0, 10)

		out, err := Pager(state, PagerOptions{URL: url})
		require.NoError(t, err)
		assert.Equal(t, "", out)

		out, err = Pager(state, PagerOptions{URL: url, ShowIfSinglePage: true})
		require.NoError(t, err)
		assert.Equal(t, "1", out)
	})

	t.Run("default format", func(t *testing.T) {
		state := Compute(100, 0, 15)
		out, err := Pager(state, PagerOptions{URL: url})
		require.NoError(t, err)
		assert.Equal(t,
			`1 <a href="http://example.org/foo/page=2">2</a> <a href="http://example.org/foo/page=3">3</a> .. <a href="http://example.org/foo/page=7">7</a>`,
			out)
	})

	t.Run("custom separator", func(t *testing.T) {
		state := Compute(100, 0, 15)
		out, err := Pager(state, PagerOptions{URL: url, Separator: "_"})
		require.NoError(t, err)
		assert.Equal(t,
			`1_<a href="http://example.org/foo/page=2">2</a>_<a href="http://example.org/foo/page=3">3</a>_.._<a href="http://example.org/foo/page=7">7</a>`,
			out)
	})

	t.Run("link current and gap attributes", func(t *testing.T) {
		state := Compute(100, 0, 15)
		out, err := Pager(state, PagerOptions{
			URL:         url,
			LinkAttr:    map[string]string{"style": "linkstyle"},
			CurrentAttr: map[string]string{"style": "curpagestyle"},
			GapAttr:     map[string]string{"style": "dotdotstyle"},
		})
		require.NoError(t, err)
		assert.Equal(t,
			`<span style="curpagestyle">1</span> <a href="http://example.org/foo/page=2" style="linkstyle">2</a> <a href="http://example.org/foo/page=3" style="linkstyle">3</a> <span style="dotdotstyle">..</span> <a href="http://example.org/foo/page=7" style="linkstyle">7</a>`,
			out)
	})

	t.Run("full format with placeholders", func(t *testing.T) {
		state := Compute(1000, 3, 20)
		out, err := Pager(state, PagerOptions{
			Format: "$link_previous ~1~ $link_next (Page $page of $page_count)",
			URL:    "/foo?page=$page",
		})
		require.NoError(t, err)
		assert.Equal(t,
			`<a href="/foo?page=2">&lt;</a> <a href="/foo?page=1">1</a> <a href="/foo?page=2">2</a> 3 <a href="/foo?page=4">4</a> .. <a href="/foo?page=50">50</a> <a href="/foo?page=4">&gt;</a> (Page 3 of 50)`,
			out)
	})

	t.Run("boundary links are empty at the bounds", func(t *testing.T) {
		first := Compute(100, 1, 10)
		out, err := Pager(first, PagerOptions{Format: "[$link_previous][$link_next]", URL: "/p=$page"})
		require.NoError(t, err)
		assert.Equal(t, `[][<a href="/p=2">&gt;</a>]`, out)

		last := Compute(100, 10, 10)
		out, err = Pager(last, PagerOptions{Format: "[$link_first][$link_last]", URL: "/p=$page"})
		require.NoError(t, err)
		assert.Equal(t, `[<a href="/p=1">&lt;&lt;</a>][]`, out)
	})

	t.Run("custom symbols", func(t *testing.T) {
		state := Compute(100, 5, 10)
		out, err := Pager(state, PagerOptions{
			Format:         "$link_previous $page $link_next",
			URL:            "/p=$page",
			SymbolPrevious: "prev",
			SymbolNext:     "next",
		})
		require.NoError(t, err)
		assert.Equal(t, `<a href="/p=4">prev</a> 5 <a href="/p=6">next</a>`, out)
	})

	t.Run("unrecognized placeholders stay verbatim", func(t *testing.T) {
		state := Compute(100, 2, 10)
		out, err := Pager(state, PagerOptions{Format: "$page $bogus ${page_count}", URL: "/p=$page"})
		require.NoError(t, err)
		assert.Equal(t, "2 $bogus 10", out)
	})

	t.Run("scalar placeholders", func(t *testing.T) {
		state := Compute(23, 2, 10)
		out, err := Pager(state, PagerOptions{
			Format: "Items $first_item-$last_item of $item_count ($items_per_page per page, pages $first_page-$last_page)",
		})
		require.NoError(t, err)
		assert.Equal(t, "Items 11-20 of 23 (10 per page, pages 1-3)", out)
	})

	t.Run("urlFor callback takes precedence", func(t *testing.T) {
		state := Compute(30, 2, 10)
		out, err := Pager(state, PagerOptions{
			Format: "~0~",
			URL:    "/ignored=$page",
			URLFor: func(p int) string { return "/cb" },
		})
		require.NoError(t, err)
		assert.Equal(t, `<a href="/cb">1</a> 2 <a href="/cb">3</a>`, out)
	})
}

func TestPagerConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		opts PagerOptions
	}{
		{"range token without link target", PagerOptions{Format: "~2~"}},
		{"link placeholder without link target", PagerOptions{Format: "$link_next"}},
		{"url template without page placeholder", PagerOptions{Format: "~2~", URL: "/static"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Pager(Compute(100, 1, 10), tt.opts)
			require.Error(t, err)
			assert.Equal(t, ECONFIGURATION, ErrorCode(err))
		})
	}

	t.Run("misconfiguration fails even on an empty collection", func(t *testing.T) {
		_, err := Pager(Compute(0, 1, 10), PagerOptions{Format: "~2~"})
		require.Error(t, err)
		assert.Equal(t, ECONFIGURATION, ErrorCode(err))
	})

	t.Run("no link target is fine for link-free formats", func(t *testing.T) {
		out, err := Pager(Compute(100, 2, 10), PagerOptions{Format: "Page $page of $page_count"})
		require.NoError(t, err)
		assert.Equal(t, "Page 2 of 10", out)
	})
}
