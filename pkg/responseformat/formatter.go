// Package responseformat encodes API responses as JSON or MessagePack,
// negotiated per request via the format query parameter.
package responseformat

import (
	"encoding/json"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
)

// Formatter encodes and writes API responses. JSON is the default;
// clients pass format=msgpack for the binary encoding.
type Formatter struct{}

// NewFormatter creates a response formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// WriteResponse writes data in the format the request asks for, with
// status 200.
func (f *Formatter) WriteResponse(w http.ResponseWriter, req *http.Request, data any) error {
	return f.write(w, req, http.StatusOK, data)
}

// WriteError writes an error payload with the given status, in the
// format the request asks for.
func (f *Formatter) WriteError(w http.ResponseWriter, req *http.Request, status int, message string) error {
	return f.write(w, req, status, map[string]string{"error": message})
}

func (f *Formatter) write(w http.ResponseWriter, req *http.Request, status int, data any) error {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if req.URL.Query().Get("format") == "msgpack" {
		w.Header().Set("Content-Type", "application/x-msgpack")
		w.WriteHeader(status)
		encoder := msgpack.NewEncoder(w)
		encoder.SetCustomStructTag("json")
		return encoder.Encode(data)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}
