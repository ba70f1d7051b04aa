package handlers

import (
	"encoding/json"
	"net/http"
	"reflect"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondData(w http.ResponseWriter, v interface{}) {
	// Listings scan into a slice that stays nil on zero rows; clients
	// always get a JSON array, never null
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice && rv.IsNil() {
		v = reflect.MakeSlice(rv.Type(), 0, 0).Interface()
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": v})
}
