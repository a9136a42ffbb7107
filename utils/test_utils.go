package utils

import (
	"batchsender/core"
	"encoding/json"
	"testing"
)

// DecodeBodies unmarshals the body of every entry.
func DecodeBodies(t *testing.T, entries []*core.BatchEntry) []core.Message {
	t.Helper()
	result := make([]core.Message, len(entries))
	for i, e := range entries {
		m := core.Message{}
		if err := json.Unmarshal([]byte(e.Body), &m); err != nil {
			t.Fatal(err)
		}
		result[i] = m
	}
	return result
}

func EntryIDs(entries []*core.BatchEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
