package http

import (
	"net/http"

	"github.com/dmarrero/jobtrack/internal/utils"
	"github.com/dmarrero/jobtrack/models"
)

// search proxies a keyword/location query to the upstream job search API.
// Query parameters "what" (keyword) and "where" (location) are both optional.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	what := r.URL.Query().Get("what")
	where := r.URL.Query().Get("where")

	results, err := h.services.SearchService.Search(ctx, what, where)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if results == nil {
		results = []models.SearchResult{}
	}

	_, _ = utils.WriteJSON(w, results, http.StatusOK)
}
