// Package telegram provides typed bindings for the Telegram Bot API:
// the wire types, pure request builders producing a method name plus a
// parameter mapping, and the codec for the API's untagged one-of fields.
//
// The package performs no I/O. Executing a built Request against
// api.telegram.org, uploading files referenced through InputFile and
// handling retries belong to a transport implementing Caller.
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
)

// Request describes a single Bot API call: the method name and its
// parameters. Params never contains entries for unset optional
// parameters.
type Request struct {
	Method string
	Params map[string]any
}

// Caller executes prepared requests against the Bot API. Implementations
// own HTTP transport, multipart file uploads and retries.
type Caller interface {
	Call(ctx context.Context, req Request) (*APIResponse, error)
}

// APIResponse is the envelope the Bot API wraps every method result in.
type APIResponse struct {
	Ok          bool                `json:"ok"`
	Result      json.RawMessage     `json:"result,omitempty"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Description string              `json:"description,omitempty"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`
}

// Err returns the API error carried by a failed response, or nil when
// the response is ok.
func (r *APIResponse) Err() error {
	if r.Ok {
		return nil
	}
	return &APIError{
		Code:        r.ErrorCode,
		Description: r.Description,
		Parameters:  r.Parameters,
	}
}

// DecodeResult decodes a successful response's result into dst.
func (r *APIResponse) DecodeResult(dst any) error {
	if err := r.Err(); err != nil {
		return err
	}
	if err := jsonCodec.Unmarshal(r.Result, dst); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

// ResponseParameters carries extra error information the API attaches to
// some failed responses.
type ResponseParameters struct {
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      int   `json:"retry_after,omitempty"`
}

// APIError is an error returned by the Bot API itself.
type APIError struct {
	Code        int
	Description string
	Parameters  *ResponseParameters
}

var _ error = (*APIError)(nil)

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram: %d %s", e.Code, e.Description)
}

// ChatID identifies a chat either by its numeric id or by a public
// @username. The wire form is flat: a JSON number or a JSON string.
type ChatID struct {
	ID       int64
	Username string
}

// ID creates a ChatID from a numeric chat id.
func ID(id int64) ChatID {
	return ChatID{ID: id}
}

// Name creates a ChatID from a public chat or channel username.
func Name(username string) ChatID {
	return ChatID{Username: username}
}

var (
	_ json.Marshaler   = ChatID{}
	_ json.Unmarshaler = (*ChatID)(nil)
)

func (c ChatID) MarshalJSON() ([]byte, error) {
	if c.Username != "" {
		return jsonCodec.Marshal(c.Username)
	}
	return jsonCodec.Marshal(c.ID)
}

func (c *ChatID) UnmarshalJSON(data []byte) error {
	c.ID, c.Username = 0, ""
	if err := jsonCodec.Unmarshal(data, &c.ID); err == nil {
		return nil
	}
	if err := jsonCodec.Unmarshal(data, &c.Username); err != nil {
		return fmt.Errorf("decode ChatID: %w", err)
	}
	return nil
}

// params assembles the parameter mapping of a request. Absent optional
// values never reach the map, so a marshaled body carries no null
// placeholders.
type params map[string]any

func (p params) set(key string, value any) params {
	p[key] = value
	return p
}

// setOpt stores the pointed-to value, dropping unset optionals.
func setOpt[T any](p params, key string, value *T) {
	if value != nil {
		p[key] = *value
	}
}

// setOptAny stores an interface-typed optional such as a ReplyMarkup,
// dropping nil.
func setOptAny(p params, key string, value any) {
	if value == nil {
		return
	}
	p[key] = value
}
