// Package types provides type definitions for structured data used throughout the soil-prediction results system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ShapeError reports input JSON that parses but does not match the expected
// property -> method -> score nesting.
type ShapeError struct {
	Property string
	Method   string
	Message  string
}

func (e *ShapeError) Error() string {
	switch {
	case e.Property != "" && e.Method != "":
		return fmt.Sprintf("invalid results shape: property %q, method %q: %s", e.Property, e.Method, e.Message)
	case e.Property != "":
		return fmt.Sprintf("invalid results shape: property %q: %s", e.Property, e.Message)
	default:
		return fmt.Sprintf("invalid results shape: %s", e.Message)
	}
}

// MarshalJSON renders the method scores as a JSON object in insertion order.
// Nil scores become JSON null. Non-ASCII characters are written verbatim.
func (ms MethodScores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range ms {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := appendJSONString(&buf, entry.Method); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if entry.Score == nil {
			buf.WriteString("null")
		} else {
			val, err := json.Marshal(*entry.Score)
			if err != nil {
				return nil, fmt.Errorf("encoding score for method %q: %w", entry.Method, err)
			}
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of method scores, preserving key order.
// Values must be numbers or null. A duplicated method keeps its first position
// and takes the last value seen.
func (ms *MethodScores) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	decoded, err := decodeMethodScores(dec, "")
	if err != nil {
		return err
	}
	*ms = decoded
	return nil
}

// MarshalJSON renders the result set as a two-level JSON object in insertion order.
func (rs ResultSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range rs.Properties {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := appendJSONString(&buf, entry.Property); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		val, err := entry.Methods.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("encoding property %q: %w", entry.Property, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalIndent renders the result set as pretty-printed JSON with four-space
// indentation, preserving property and method order.
func (rs ResultSet) MarshalIndent() ([]byte, error) {
	compact, err := rs.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "    "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a two-level JSON object of property -> method -> score,
// preserving key order at both levels. A duplicated property keeps its first
// position and takes the last methods object seen.
func (rs *ResultSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &ShapeError{Message: fmt.Sprintf("expected an object of soil properties, got %s", tokenKind(tok))}
	}

	decoded := ResultSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		property, ok := keyTok.(string)
		if !ok {
			return &ShapeError{Message: "expected a property name"}
		}
		methods, err := decodeMethodScores(dec, property)
		if err != nil {
			return err
		}
		decoded.SetProperty(property, methods)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*rs = decoded
	return nil
}

// decodeMethodScores consumes one JSON object of method -> score pairs from dec.
func decodeMethodScores(dec *json.Decoder, property string) (MethodScores, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &ShapeError{
			Property: property,
			Message:  fmt.Sprintf("expected an object of method scores, got %s", tokenKind(tok)),
		}
	}

	var methods MethodScores
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		method, ok := keyTok.(string)
		if !ok {
			return nil, &ShapeError{Property: property, Message: "expected a method name"}
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch v := valTok.(type) {
		case nil:
			methods.Set(method, nil)
		case float64:
			methods.Set(method, &v)
		default:
			return nil, &ShapeError{
				Property: property,
				Method:   method,
				Message:  fmt.Sprintf("expected a number or null, got %s", tokenKind(valTok)),
			}
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return methods, nil
}

// tokenKind names a decoded JSON token for error messages.
func tokenKind(tok json.Token) string {
	switch t := tok.(type) {
	case json.Delim:
		if t == '{' || t == '}' {
			return "object"
		}
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case nil:
		return "null"
	default:
		return "unknown token"
	}
}

// appendJSONString writes s to buf as a JSON string without HTML escaping,
// so non-ASCII characters pass through untouched.
func appendJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encoder.Encode terminates the value with a newline; drop it.
	buf.Truncate(buf.Len() - 1)
	return nil
}
