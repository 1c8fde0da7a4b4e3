package logging

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Field names whose string values carry raw reflection or journal
// text. Reflections are personal clinical writing; only their length
// ever reaches a log line.
var redactedTextFields = map[string]bool{
	"text":        true,
	"reflection":  true,
	"entry":       true,
	"insight":     true,
	"description": true,
}

// RedactedText creates a field carrying only the length of val, for
// call sites that want explicit redaction regardless of key name.
func RedactedText(key, val string) zap.Field {
	return zap.String(key, "[redacted:"+strconv.Itoa(len(val))+"]")
}

// RedactingEncoder wraps a zapcore.Encoder so reflection text fields
// are length-redacted no matter which call site logged them.
type RedactingEncoder struct {
	zapcore.Encoder
}

// NewRedactingEncoder wraps base with reflection text redaction.
func NewRedactingEncoder(base zapcore.Encoder) *RedactingEncoder {
	return &RedactingEncoder{Encoder: base}
}

func shouldRedactKey(key string) bool {
	return redactedTextFields[strings.ToLower(key)]
}

// AddString replaces reflection text values with their length.
func (e *RedactingEncoder) AddString(key, val string) {
	if shouldRedactKey(key) {
		e.Encoder.AddString(key, "[redacted:"+strconv.Itoa(len(val))+"]")
		return
	}
	e.Encoder.AddString(key, val)
}

// AddByteString replaces reflection text values with their length.
func (e *RedactingEncoder) AddByteString(key string, val []byte) {
	if shouldRedactKey(key) {
		e.Encoder.AddByteString(key, []byte("[redacted:"+strconv.Itoa(len(val))+"]"))
		return
	}
	e.Encoder.AddByteString(key, val)
}

// AddReflected redacts the whole value when the key names reflection text.
func (e *RedactingEncoder) AddReflected(key string, val interface{}) error {
	if shouldRedactKey(key) {
		e.Encoder.AddString(key, "[redacted]")
		return nil
	}
	return e.Encoder.AddReflected(key, val)
}

// EncodeEntry routes per-entry fields through the wrapper before
// delegating to the base encoder. Without this, fields attached at
// the call site would hit the base encoder directly and skip
// redaction.
func (e *RedactingEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	clone := e.Clone().(*RedactingEncoder)
	for i := range fields {
		fields[i].AddTo(clone)
	}
	return clone.Encoder.EncodeEntry(ent, nil)
}

// Clone creates a copy of the encoder.
func (e *RedactingEncoder) Clone() zapcore.Encoder {
	return &RedactingEncoder{Encoder: e.Encoder.Clone()}
}
