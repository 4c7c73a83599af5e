package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/happytails/happytails/internal/utils"
)

// idParam parses the {id} route parameter. On failure it answers 400 and
// returns ok=false; the caller must return immediately.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
