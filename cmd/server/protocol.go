// Package main provides a TCP parse server for minisql.
package main

import (
	"encoding/json"
)

// Request represents a parse request from the client. Clients may also send
// the bare SQL text without the JSON envelope.
type Request struct {
	Query string `json:"query"`

	// Tokens requests the token stream instead of the syntax tree.
	Tokens bool `json:"tokens,omitempty"`
}

// Response represents the server's response to a request.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Type    string          `json:"type,omitempty"` // "select", "create_table" or "tokens"
	Result  json.RawMessage `json:"result,omitempty"`
}

// TokenInfo is one entry of a token stream response.
type TokenInfo struct {
	Token  string `json:"token"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// AuthResponse reports the outcome of an AUTH command.
type AuthResponse struct {
	Authenticated bool   `json:"authenticated"`
	Subject       string `json:"subject,omitempty"`
	ExpiresIn     int    `json:"expires_in,omitempty"`
}

// EncodeResponse serializes a Response to JSON with a newline.
func EncodeResponse(resp Response) ([]byte, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// DecodeRequest parses a JSON request from a byte slice.
func DecodeRequest(data []byte) (Request, error) {
	var req Request
	err := json.Unmarshal(data, &req)
	return req, err
}
