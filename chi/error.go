package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/newsnotes"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	newsnotes.ECONFLICT: http.StatusConflict,
	newsnotes.EINVALID:  http.StatusBadRequest,
	newsnotes.ENOTFOUND: http.StatusNotFound,
	newsnotes.EFETCH:    http.StatusBadGateway,
	newsnotes.EPARSE:    http.StatusUnprocessableEntity,
	newsnotes.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the body written for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes err as a JSON error body. Internal errors are logged
// and reported with a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, message := newsnotes.ErrorCode(err), newsnotes.ErrorMessage(err)
	if code == newsnotes.EINTERNAL {
		s.logger().Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}
	writeJSON(w, ErrorStatusCode(code), &ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("encode response", "err", err)
	}
}
