package nets

import (
	"encoding/json"
	"net/http"

	"github.com/reusee/qsearch/circuits"
	"github.com/reusee/qsearch/grover"
)

// Handler serves a Backend over the Remote wire protocol.
func Handler(backend grover.Backend) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			http.Error(w, "POST only", http.StatusMethodNotAllowed)
			return
		}

		var program circuits.Program
		if err := json.NewDecoder(req.Body).Decode(&program); err != nil {
			writeResponse(w, http.StatusBadRequest, executeResponse{
				Error: err.Error(),
			})
			return
		}

		counts, err := backend.Execute(req.Context(), program)
		if err != nil {
			writeResponse(w, http.StatusInternalServerError, executeResponse{
				Error: err.Error(),
			})
			return
		}

		writeResponse(w, http.StatusOK, executeResponse{
			Counts: counts,
		})
	})
}

func writeResponse(w http.ResponseWriter, status int, resp executeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
