package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-admin-config/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteSuccess writes a {"success": true, "data": ...} envelope.
func WriteSuccess(w http.ResponseWriter, data json.RawMessage, statusCode int) (int, error) {
	return WriteJSON(w, models.APIResponse{Success: true, Data: data}, statusCode)
}

// WriteFailure writes a {"success": false, "message": ...} envelope.
func WriteFailure(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.APIResponse{Success: false, Message: message}, statusCode)
}
