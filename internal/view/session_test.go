package view

import (
	"bytes"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/usertable/internal/records"
)

func TestSession_InitialView(t *testing.T) {
	s := NewSession(loadedStore(t, loadUsers(t)), Schema{}, NewState(10))

	result := s.Result()
	assert.Len(t, result.Records, 10)
	assert.Equal(t, 2, result.Meta.PageCount)
	assert.Equal(t,
		[]string{"id", "firstname", "lastname", "email", "birthDate", "login", "address", "phone", "website", "company"},
		s.Columns())
}

func TestSession_PageNavigation(t *testing.T) {
	s := NewSession(loadedStore(t, loadUsers(t)), Schema{}, NewState(10))

	result := s.PreviousPage()
	assert.Equal(t, 1, result.Meta.CurrentPage)

	result = s.NextPage()
	assert.Equal(t, 2, result.Meta.CurrentPage)
	assert.Len(t, result.Records, 2)
	assert.False(t, result.Meta.HasNext)

	result = s.NextPage()
	assert.Equal(t, 2, result.Meta.CurrentPage)

	result = s.GoToPage(7)
	assert.Equal(t, 2, s.State().CurrentPage, "out-of-range requests are ignored")
	assert.Equal(t, 2, result.Meta.CurrentPage)

	result = s.GoToPage(1)
	assert.Equal(t, 1, result.Meta.CurrentPage)
}

func TestSession_SearchIsCaseInsensitive(t *testing.T) {
	s := NewSession(loadedStore(t, loadUsers(t)), Schema{}, NewState(10))

	for _, term := range []string{"smith", "SMITH"} {
		result := s.SetSearchTerm(term)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "Smith", result.Records[0].Display("firstname", nil))
		assert.Equal(t, 1, result.Meta.PageCount)
	}
}

func TestSession_SearchResetsPage(t *testing.T) {
	s := NewSession(loadedStore(t, loadUsers(t)), Schema{}, NewState(10))
	s.NextPage()
	require.Equal(t, 2, s.State().CurrentPage)

	result := s.SetSearchTerm("example")
	assert.Equal(t, 1, result.Meta.CurrentPage)
	assert.Equal(t, 1, s.State().CurrentPage)
}

func TestSession_ToggleSortTwiceReverses(t *testing.T) {
	s := NewSession(loadedStore(t, loadUsers(t)), Schema{}, NewState(20))

	asc := s.ToggleSort("email")
	assert.Equal(t, Ascending, s.State().SortOrder)
	assert.Equal(t, "email", s.State().SortKey)

	desc := s.ToggleSort("email")
	assert.Equal(t, Descending, s.State().SortOrder)

	ascEmails := column(asc.Records, "email")
	descEmails := column(desc.Records, "email")
	slices.Reverse(descEmails)
	assert.Equal(t, ascEmails, descEmails)
	assert.True(t, slices.IsSorted(ascEmails))
}

func TestSession_EmptyStore(t *testing.T) {
	s := NewSession(loadedStore(t, []records.Record{}), Schema{}, NewState(10))

	result := s.Result()
	assert.True(t, result.Empty())
	assert.Equal(t, 1, result.Meta.PageCount)
	assert.False(t, result.Meta.HasNext)
	assert.False(t, result.Meta.HasPrevious)
	assert.Empty(t, s.Columns())

	result = s.NextPage()
	assert.Equal(t, 1, result.Meta.CurrentPage)
}

func TestSession_RefreshAfterLoad(t *testing.T) {
	store := records.NewStore()
	s := NewSession(store, Schema{}, NewState(10))
	assert.True(t, s.Result().Empty())

	require.NoError(t, store.Load(loadUsers(t)))
	result := s.Refresh()
	assert.Equal(t, 12, result.Meta.TotalMatching)
}

func TestSession_NormalizesState(t *testing.T) {
	s := NewSession(loadedStore(t, loadUsers(t)), Schema{}, State{CurrentPage: 5})
	assert.Equal(t, DefaultPageSize, s.State().PageSize)
	assert.Equal(t, Ascending, s.State().SortOrder)
	assert.Equal(t, 2, s.State().CurrentPage)
}

func TestSession_LogsIntents(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	s := NewSession(loadedStore(t, loadUsers(t)), Schema{}, NewState(10), WithLogger(logger))
	s.ToggleSort("id")

	assert.Contains(t, buf.String(), `"intent":"toggle_sort"`)
	assert.Contains(t, buf.String(), `"changed":true`)
}
