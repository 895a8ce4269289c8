// Package handler contains the demo server's HTTP handlers.
package handler

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Pylons/paginate"
	"github.com/Pylons/paginate/internal/metrics"
	"github.com/Pylons/paginate/internal/phonebook"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Phonebook</title></head>
<body>
<h1>Phonebook</h1>
<p>{{.Summary}}</p>
<table>
<tr><th>Name</th><th>Company</th><th>Phone</th><th>Email</th></tr>
{{range .Entries}}<tr><td>{{.Name}}</td><td>{{.Company}}</td><td>{{.Phone}}</td><td>{{.Email}}</td></tr>
{{end}}</table>
<nav class="pager">{{.Pager}}</nav>
</body>
</html>
`))

// PhonebookHandler serves the paginated phonebook listing.
type PhonebookHandler struct {
	coll     paginate.Collection[phonebook.Entry]
	logger   *slog.Logger
	pageSize int
	radius   int
	printer  *message.Printer
}

// NewPhonebookHandler creates the listing handler.
func NewPhonebookHandler(coll paginate.Collection[phonebook.Entry], logger *slog.Logger, pageSize, radius int) *PhonebookHandler {
	return &PhonebookHandler{
		coll:     coll,
		logger:   logger,
		pageSize: pageSize,
		radius:   radius,
		printer:  message.NewPrinter(language.English),
	}
}

// RegisterRoutes attaches the phonebook routes to the mux.
func (h *PhonebookHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /", h.Index)
	mux.HandleFunc("GET /api/entries", h.List)
}

// Index renders the HTML listing with a pager below the table.
func (h *PhonebookHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page, ok := h.page(w, r)
	if !ok {
		return
	}

	pager, err := paginate.Pager(page.State, paginate.PagerOptions{
		Format:      fmt.Sprintf("$link_previous ~%d~ $link_next", h.radius),
		URLFor:      paginate.URLForQuery(r.URL.Path, r.URL.Query(), "page"),
		LinkAttr:    map[string]string{"class": "pager-link"},
		CurrentAttr: map[string]string{"class": "pager-current"},
		GapAttr:     map[string]string{"class": "pager-gap"},
	})
	if err != nil {
		metrics.PagerRendersTotal.WithLabelValues("error").Inc()
		h.logger.Error("render pager", "error", err, "page", page.Page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	metrics.PagerRendersTotal.WithLabelValues("ok").Inc()

	data := struct {
		Summary string
		Entries []phonebook.Entry
		Pager   template.HTML
	}{
		Summary: h.summary(page.State),
		Entries: page.Items,
		// The pager string is markup produced by this application's own
		// options; entry labels and hrefs are numeric.
		Pager: template.HTML(pager),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		h.logger.Error("render index", "error", err)
	}
}

// List returns one page of entries as JSON, with the structured link map
// instead of rendered markup.
func (h *PhonebookHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := h.page(w, r)
	if !ok {
		return
	}

	links := paginate.BuildLinkMap(page.State, h.radius,
		paginate.URLForQuery("/api/entries", r.URL.Query(), "page"))

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(struct {
		Page      int               `json:"page"`
		PageCount int               `json:"page_count"`
		ItemCount int               `json:"item_count"`
		FirstItem int               `json:"first_item"`
		LastItem  int               `json:"last_item"`
		Items     []phonebook.Entry `json:"items"`
		Links     paginate.LinkMap  `json:"links"`
	}{
		Page:      page.Page,
		PageCount: page.PageCount,
		ItemCount: page.ItemCount,
		FirstItem: page.FirstItem,
		LastItem:  page.LastItem,
		Items:     page.Items,
		Links:     links,
	})
	if err != nil {
		h.logger.Error("encode entries", "error", err)
	}
}

// page builds the requested page, writing the error response itself when
// the collection fails.
func (h *PhonebookHandler) page(w http.ResponseWriter, r *http.Request) (*paginate.Page[phonebook.Entry], bool) {
	pageNum := paginate.ParsePage(r.URL.Query().Get("page"))

	page, err := paginate.New(r.Context(), h.coll, pageNum, h.pageSize)
	if err != nil {
		h.logger.Error("load page", "error", err, "op", paginate.ErrorOp(err), "page", pageNum)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}

	metrics.PageItemsReturned.Observe(float64(len(page.Items)))
	return page, true
}

func (h *PhonebookHandler) summary(s paginate.State) string {
	if s.PageCount == 0 {
		return "No entries."
	}
	return h.printer.Sprintf("Showing entries %d-%d of %d.", s.FirstItem, s.LastItem, s.ItemCount)
}
