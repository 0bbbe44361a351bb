package telegram

import (
	"encoding/json"
	"fmt"
)

// Either holds exactly one of two candidate shapes. Its wire format is
// untagged: encoding emits the held value alone, with no wrapper object
// and no discriminant key, and decoding tries A before B, first match
// wins.
type Either[A, B any] struct {
	left  *A
	right *B
}

// EitherLeft wraps a value of the first candidate shape.
func EitherLeft[A, B any](value A) Either[A, B] {
	return Either[A, B]{left: &value}
}

// EitherRight wraps a value of the second candidate shape.
func EitherRight[A, B any](value B) Either[A, B] {
	return Either[A, B]{right: &value}
}

// Left returns the held value if the first shape is populated.
func (e Either[A, B]) Left() (A, bool) {
	if e.left == nil {
		var zero A
		return zero, false
	}
	return *e.left, true
}

// Right returns the held value if the second shape is populated.
func (e Either[A, B]) Right() (B, bool) {
	if e.right == nil {
		var zero B
		return zero, false
	}
	return *e.right, true
}

var (
	_ json.Marshaler   = (*Either[int, string])(nil)
	_ json.Unmarshaler = (*Either[int, string])(nil)
)

func (e Either[A, B]) MarshalJSON() ([]byte, error) {
	switch {
	case e.left != nil:
		return jsonCodec.Marshal(e.left)
	case e.right != nil:
		return jsonCodec.Marshal(e.right)
	default:
		return nil, fmt.Errorf("marshal %s: no value set", e.name())
	}
}

func (e *Either[A, B]) UnmarshalJSON(data []byte) error {
	e.left, e.right = nil, nil

	var a A
	if err := jsonCodec.Unmarshal(data, &a); err == nil {
		e.left = &a
		return nil
	}

	var b B
	if err := jsonCodec.Unmarshal(data, &b); err == nil {
		e.right = &b
		return nil
	}

	var zeroA A
	var zeroB B
	return &DecodeError{
		Union:      e.name(),
		Candidates: []string{fmt.Sprintf("%T", zeroA), fmt.Sprintf("%T", zeroB)},
		Input:      append(json.RawMessage(nil), data...),
	}
}

func (e Either[A, B]) name() string {
	var a A
	var b B
	return fmt.Sprintf("Either[%T, %T]", a, b)
}
