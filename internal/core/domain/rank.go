package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RankTable is the ordered rank price list. Upgrade progression follows the
// position of the keys in the source document, not the prices, so decoding
// must preserve document key order; a plain map would lose it.
type RankTable struct {
	names  []string
	prices map[string]int
}

// NewRankTable builds a table from an ordered list of (name, price) pairs.
// Used by tests and the default-table seeder; duplicate names keep the first
// occurrence's position and the last occurrence's price, matching a JSON
// object with repeated keys.
func NewRankTable(names []string, prices map[string]int) *RankTable {
	t := &RankTable{prices: make(map[string]int, len(names))}
	for _, name := range names {
		if _, seen := t.prices[name]; !seen {
			t.names = append(t.names, name)
		}
		t.prices[name] = prices[name]
	}
	return t
}

// UnmarshalJSON decodes a JSON object rank→price, preserving key order by
// walking the token stream instead of decoding into a map.
func (t *RankTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("rank table: expected object, got %v", tok)
	}

	t.names = nil
	t.prices = make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name := keyTok.(string)

		var price int
		if err := dec.Decode(&price); err != nil {
			return fmt.Errorf("rank table: price for %q: %w", name, err)
		}
		if _, seen := t.prices[name]; !seen {
			t.names = append(t.names, name)
		}
		t.prices[name] = price
	}
	_, err = dec.Token() // closing brace
	return err
}

func (t *RankTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range t.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", t.prices[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Names returns rank names in progression order.
func (t *RankTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of ranks in the table.
func (t *RankTable) Len() int { return len(t.names) }

// Price returns the token price of rank, and whether the rank exists.
func (t *RankTable) Price(rank string) (int, bool) {
	price, ok := t.prices[rank]
	return price, ok
}

// IndexOf returns the position of rank in progression order, or -1 when the
// rank is not in the table. Callers compare indexes to enforce forward-only
// progression; a -1 for a corrupted current rank therefore permits purchasing
// any listed rank.
func (t *RankTable) IndexOf(rank string) int {
	for i, name := range t.names {
		if name == rank {
			return i
		}
	}
	return -1
}
