package view

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/usertable/internal/records"
)

// loadUsers reads the twelve-user fixture.
func loadUsers(t *testing.T) []records.Record {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "users.json"))
	require.NoError(t, err)
	recs, err := records.ParseJSON(data)
	require.NoError(t, err)
	require.Len(t, recs, 12)
	return recs
}

// loadedStore returns a store holding recs.
func loadedStore(t *testing.T, recs []records.Record) *records.Store {
	t.Helper()
	store := records.NewStore()
	require.NoError(t, store.Load(recs))
	return store
}

// parse decodes an inline JSON array of records.
func parse(t *testing.T, payload string) []records.Record {
	t.Helper()
	recs, err := records.ParseJSON([]byte(payload))
	require.NoError(t, err)
	return recs
}

// column extracts the display value of field from every record.
func column(recs []records.Record, field string) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Display(field, nil)
	}
	return out
}
