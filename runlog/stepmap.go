package runlog

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// StepMap maps step identifiers to their action logs while preserving
// insertion order, which by construction equals execution order. A plain
// Go map would marshal its keys sorted and lose that ordering.
type StepMap struct {
	ids     []string
	entries map[string]*ActionLog
}

// NewStepMap creates an empty StepMap.
func NewStepMap() *StepMap {
	return &StepMap{entries: make(map[string]*ActionLog)}
}

// Set inserts or overwrites the entry for id. A new identifier is
// appended; overwriting keeps the identifier's original position.
func (m *StepMap) Set(id string, a *ActionLog) {
	if m.entries == nil {
		m.entries = make(map[string]*ActionLog)
	}
	if _, exists := m.entries[id]; !exists {
		m.ids = append(m.ids, id)
	}
	m.entries[id] = a
}

// Get returns the entry for id and whether it was present.
func (m *StepMap) Get(id string) (*ActionLog, bool) {
	a, ok := m.entries[id]
	return a, ok
}

// IDs returns the identifiers in insertion order.
func (m *StepMap) IDs() []string {
	ids := make([]string, len(m.ids))
	copy(ids, m.ids)
	return ids
}

// Len returns the number of entries.
func (m *StepMap) Len() int {
	return len(m.ids)
}

// MarshalJSON renders the map as a JSON object whose keys appear in
// insertion order.
func (m *StepMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range m.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(m.entries[id])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal action log for step '%s'", id)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving the key order it appears
// in on disk.
func (m *StepMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "failed to read steps object")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("steps is not a JSON object")
	}

	m.ids = nil
	m.entries = make(map[string]*ActionLog)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "failed to read step identifier")
		}
		id, ok := keyTok.(string)
		if !ok {
			return errors.New("step identifier is not a string")
		}
		var a ActionLog
		if err := dec.Decode(&a); err != nil {
			return errors.Wrapf(err, "failed to decode action log for step '%s'", id)
		}
		m.Set(id, &a)
	}

	if _, err := dec.Token(); err != nil {
		return errors.Wrap(err, "failed to read steps object close")
	}
	return nil
}
