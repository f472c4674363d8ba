package generator

import (
	"encoding/json"
)

// Version is the JSON-RPC version spoken by the driver.
const Version = "2.0"

// Request is a JSON-RPC request sent by the host.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response answers a Request. Exactly one of Result and Error is sent; a
// nil Result is sent as null.
type Response struct {
	ID     json.RawMessage
	Result any
	Error  *Error
}

// Error is the error object of a failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MarshalJSON implements json.Marshaler.
func (r *Response) MarshalJSON() ([]byte, error) {
	id := r.ID
	if len(id) == 0 {
		id = json.RawMessage("null")
	}
	if r.Error != nil {
		return json.Marshal(struct {
			JSONRPC string          `json:"jsonrpc"`
			ID      json.RawMessage `json:"id"`
			Error   *Error          `json:"error"`
		}{Version, id, r.Error})
	}
	return json.Marshal(struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Result  any             `json:"result"`
	}{Version, id, r.Result})
}

// Manifest describes the generator to the host.
type Manifest struct {
	DefaultOutput string `json:"defaultOutput"`
	PrettyName    string `json:"prettyName"`
}

// ManifestResult is the result of a getManifest request.
type ManifestResult struct {
	Manifest Manifest `json:"manifest"`
}

// Methods understood by the driver.
const (
	MethodGetManifest = "getManifest"
	MethodGenerate    = "generate"
)
