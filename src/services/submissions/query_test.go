package submissions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Backend-BenefitsIntake/src/models"
)

func sampleSet() []models.Submission {
	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	return []models.Submission{
		{Name: "Alice Johnson", Email: "alice@example.com", PhoneNumber: "555-0101", ReferenceNumber: "ERA-AAAAA-11111", CreatedAt: base},
		{Name: "Bob Smith", Email: "bob@example.com", PhoneNumber: "555-0202", ReferenceNumber: "ERA-BBBBB-22222", CreatedAt: base.Add(time.Hour)},
		{Name: "carol díaz", Email: "carol@example.com", ReferenceNumber: "ERA-CCCCC-33333", CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestFilter(t *testing.T) {
	subs := sampleSet()

	t.Run("EmptyTermKeepsAll", func(t *testing.T) {
		assert.Len(t, Filter(subs, ""), 3)
	})

	t.Run("CaseInsensitiveName", func(t *testing.T) {
		matched := Filter(subs, "ALICE")
		require.Len(t, matched, 1)
		assert.Equal(t, "Alice Johnson", matched[0].Name)
	})

	t.Run("MatchesReferenceNumber", func(t *testing.T) {
		matched := Filter(subs, "bbbbb")
		require.Len(t, matched, 1)
		assert.Equal(t, "Bob Smith", matched[0].Name)
	})

	t.Run("MatchesPhoneWhenPresent", func(t *testing.T) {
		matched := Filter(subs, "555-02")
		assert.Len(t, matched, 1)
	})

	t.Run("NoMatch", func(t *testing.T) {
		assert.Empty(t, Filter(subs, "zzz-does-not-exist"))
	})
}

func TestSort(t *testing.T) {
	subs := sampleSet()

	t.Run("CreatedAtAscendingThenDescendingReverse", func(t *testing.T) {
		asc := Sort(subs, "createdAt", "asc")
		desc := Sort(subs, "createdAt", "desc")
		require.Len(t, asc, 3)
		for i := range asc {
			assert.Equal(t, asc[i].ReferenceNumber, desc[len(desc)-1-i].ReferenceNumber)
		}
	})

	t.Run("NameAscendingIsLocaleAware", func(t *testing.T) {
		sorted := Sort(subs, "name", "asc")
		assert.Equal(t, "Alice Johnson", sorted[0].Name)
		assert.Equal(t, "Bob Smith", sorted[1].Name)
		assert.Equal(t, "carol díaz", sorted[2].Name)
	})

	t.Run("UnknownFieldFallsBackToCreatedAtDesc", func(t *testing.T) {
		sorted := Sort(subs, "bogus", "")
		assert.Equal(t, "ERA-CCCCC-33333", sorted[0].ReferenceNumber)
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		_ = Sort(subs, "name", "asc")
		assert.Equal(t, "Alice Johnson", subs[0].Name)
	})
}

func TestPaginate(t *testing.T) {
	subs := sampleSet()

	t.Run("FirstPage", func(t *testing.T) {
		page := Paginate(subs, models.PaginationParams{Page: 1, Limit: 2})
		assert.Equal(t, int64(3), page.Total)
		assert.Equal(t, 2, page.TotalPages)
		assert.True(t, page.HasNext)
		assert.False(t, page.HasPrevious)
		assert.Len(t, page.Data.([]models.Submission), 2)
	})

	t.Run("PageClampedToLastPage", func(t *testing.T) {
		page := Paginate(subs, models.PaginationParams{Page: 99, Limit: 2})
		assert.Equal(t, 2, page.Page)
		assert.Len(t, page.Data.([]models.Submission), 1)
	})

	t.Run("EmptySetStillHasOnePage", func(t *testing.T) {
		page := Paginate(nil, models.PaginationParams{Page: 1, Limit: 10})
		assert.Equal(t, 1, page.TotalPages)
		assert.Equal(t, 1, page.Page)
		assert.Empty(t, page.Data)
	})
}

func TestQueryNoMatchesKeepsOnePage(t *testing.T) {
	params := models.DefaultPagination()
	params.Search = "nobody-matches-this"

	page := Query(sampleSet(), params)
	assert.Equal(t, int64(0), page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Data)
}
