package telegram

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DecodeError reports that a JSON payload matched none of a union's
// candidate shapes. Candidates holds the names of every shape that was
// attempted, in the order they were tried.
type DecodeError struct {
	Union      string
	Candidates []string
	Input      json.RawMessage
}

var _ error = (*DecodeError)(nil)

func (e *DecodeError) Error() string {
	return fmt.Sprintf(
		"decode %s: no candidate matched, tried [%s], input: %s",
		e.Union, strings.Join(e.Candidates, ", "), string(e.Input),
	)
}

// IsDecodeError checks if the given error is a union decode failure.
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

// candidate describes one concrete shape of a closed union.
//
// tagField and tagValue, when set, name the payload field carrying a
// discriminant ("type" for input media, "source" for passport errors)
// and the value it must hold for the candidate to be considered. Unions
// whose wire format carries no usable tag leave them empty and are
// matched by shape alone.
//
// required lists the fields that must be present (and non-null) in the
// payload. value returns a pointer to a fresh concrete shape to decode
// into.
type candidate[T any] struct {
	name     string
	tagField string
	tagValue string
	required []string
	value    func() T
}

// decodeUnion tries candidates strictly in declared order and returns the
// first one whose discriminant and required fields all match the payload.
//
// First match wins. When one candidate's required fields form a subset of
// a later candidate's, the earlier one shadows it for payloads satisfying
// both. That fragility is inherent to the untagged wire format and is
// preserved on purpose: a best-match heuristic would silently change
// which variant callers observe.
func decodeUnion[T any](union string, data []byte, candidates []candidate[T]) (T, error) {
	var zero T

	var fields map[string]json.RawMessage
	if err := jsonCodec.Unmarshal(data, &fields); err != nil {
		return zero, fmt.Errorf("decode %s: %w", union, err)
	}

	for _, c := range candidates {
		if !c.matches(fields) {
			continue
		}

		v := c.value()
		if err := jsonCodec.Unmarshal(data, v); err != nil {
			// A required field with the wrong primitive type fails
			// this shape, the next candidate may still fit.
			continue
		}

		return v, nil
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.name)
	}

	return zero, &DecodeError{
		Union:      union,
		Candidates: names,
		Input:      append(json.RawMessage(nil), data...),
	}
}

func (c candidate[T]) matches(fields map[string]json.RawMessage) bool {
	if c.tagField != "" {
		var got string
		if err := jsonCodec.Unmarshal(fields[c.tagField], &got); err != nil || got != c.tagValue {
			return false
		}
	}

	for _, field := range c.required {
		raw, ok := fields[field]
		if !ok || string(raw) == "null" {
			return false
		}
	}

	return true
}
