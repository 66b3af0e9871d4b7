package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Decoding errors.
var (
	ErrNotObject = errors.New("record must be a JSON object")
	ErrNotArray  = errors.New("payload must be a JSON array")
)

// Record is one row of the dataset: a mapping of field names to values.
// Values decoded from JSON are string, float64, bool, nil, map[string]any or []any.
type Record struct {
	fields []string
	values map[string]any
}

// New creates a record from ordered field names and their values.
// Fields listed without a value are kept with a nil value; values whose
// field is not listed are appended in sorted key order.
func New(fields []string, values map[string]any) Record {
	r := Record{
		fields: make([]string, 0, len(values)),
		values: make(map[string]any, len(values)),
	}
	for _, f := range fields {
		if _, seen := r.values[f]; seen {
			continue
		}
		r.fields = append(r.fields, f)
		r.values[f] = values[f]
	}
	extra := make([]string, 0, len(values))
	for k := range values {
		if _, seen := r.values[k]; !seen {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		r.fields = append(r.fields, k)
		r.values[k] = values[k]
	}
	return r
}

// Fields returns the record's field names in document order.
func (r Record) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Get returns the value stored under field and whether the field is present.
func (r Record) Get(field string) (any, bool) {
	v, ok := r.values[field]
	return v, ok
}

// String returns the value of field when it is a string.
func (r Record) String(field string) (string, bool) {
	v, ok := r.values[field].(string)
	return v, ok
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.fields)
}

// Lookup resolves a dotted path such as "address.street" through nested objects.
func (r Record) Lookup(path string) (any, bool) {
	parts := strings.Split(path, ".")
	cur, ok := r.values[parts[0]]
	if !ok {
		return nil, false
	}
	for _, p := range parts[1:] {
		obj, isObj := cur.(map[string]any)
		if !isObj {
			return nil, false
		}
		cur, ok = obj[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Display renders field as a table cell. Nested objects are rendered through
// the sub-path configured for that field in paths (e.g. "company" -> "name");
// missing values and objects without a configured path render as "".
func (r Record) Display(field string, paths map[string]string) string {
	v, ok := r.values[field]
	if !ok {
		return ""
	}
	if _, isObj := v.(map[string]any); isObj {
		sub, hasPath := paths[field]
		if !hasPath {
			return ""
		}
		nested, found := r.Lookup(field + "." + sub)
		if !found {
			return ""
		}
		return FormatValue(nested)
	}
	return FormatValue(v)
}

// FormatValue renders a primitive value as text. Composite values render as "".
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return val.String()
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprint(val)
	}
}

// UnmarshalJSON decodes a JSON object while preserving its key order.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	r.fields = r.fields[:0]
	r.values = make(map[string]any)
	for dec.More() {
		keyTok, keyErr := dec.Token()
		if keyErr != nil {
			return keyErr
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", keyTok)
		}
		var value any
		if decodeErr := dec.Decode(&value); decodeErr != nil {
			return fmt.Errorf("decoding field %q: %w", key, decodeErr)
		}
		if _, dup := r.values[key]; !dup {
			r.fields = append(r.fields, key)
		}
		r.values[key] = value
	}
	// closing brace
	if _, err = dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON encodes the record as a JSON object in field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[f])
		if err != nil {
			return nil, fmt.Errorf("encoding field %q: %w", f, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseJSON decodes a JSON array of objects into records.
func ParseJSON(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}
	var out []Record
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Record{}
	}
	return out, nil
}
