package resp

import (
	"encoding/json"
	"net/http"
)

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

type errorResponse struct {
	Error string `json:"error"`
}

// WriteError отвечает ошибкой в JSON
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSONResponse(w, status, errorResponse{Error: msg})
}
