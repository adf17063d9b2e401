package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
)

type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return errors.New("failed to encode json")
	}

	js = append(js, '\n')

	maps.Copy(w.Header(), headers)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

func errorResponse(w http.ResponseWriter, status int, message any) {
	if err := writeJSON(w, status, envelope{"error": message}, nil); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
