package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	Code    string
	Date    string
	Status  string
	Deleted bool
}

var active = map[string]bool{"ACTIVE": true, "PLANNED": true, "IN_PROGRESS": true}

func statusOf(r rec) string { return r.Status }

func TestStatusBucket_ActivePrograms(t *testing.T) {
	items := []rec{{Code: "a", Status: "PLANNED"}, {Code: "b", Status: "CANCELLED"}, {Code: "c", Status: "IN_PROGRESS"}, {Code: "d", Status: "COMPLETED"}}

	got := New[rec]().Where(StatusBucket(BucketActive, active, statusOf)).Apply(items)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Code)
	assert.Equal(t, "c", got[1].Code)

	got = New[rec]().Where(StatusBucket(BucketInactive, active, statusOf)).Apply(items)
	assert.Equal(t, []rec{items[1], items[3]}, got)

	got = New[rec]().Where(StatusBucket(BucketAll, active, statusOf)).Apply(items)
	assert.Equal(t, items, got)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	items := []rec{{Code: "PRG-001", Date: "2025-03-01"}, {Code: "PRG-002", Date: "2025-04-01"}}
	pred := Search("prg-002", func(r rec) []string { return []string{r.Code, r.Date} })
	assert.Equal(t, []rec{items[1]}, New[rec]().Where(pred).Apply(items))

	pred = Search("2025-03", func(r rec) []string { return []string{r.Code, r.Date} })
	assert.Equal(t, []rec{items[0]}, New[rec]().Where(pred).Apply(items))

	assert.Nil(t, Search("  ", func(r rec) []string { return nil }))
}

func TestDateRange_Inclusive(t *testing.T) {
	items := []rec{{Date: "2025-03-01"}, {Date: "2025-03-05"}, {Date: "2025-03-10"}}
	dateOf := func(r rec) string { return r.Date }

	got := New[rec]().Where(DateRange("2025-03-01", "2025-03-05", dateOf)).Apply(items)
	assert.Len(t, got, 2)

	got = New[rec]().Where(DateRange("2025-03-05", "", dateOf)).Apply(items)
	assert.Len(t, got, 2)

	got = New[rec]().Where(DateRange("", "2025-03-01", dateOf)).Apply(items)
	assert.Len(t, got, 1)
}

func TestExcludeDeleted(t *testing.T) {
	items := []rec{{Code: "a"}, {Code: "b", Deleted: true}}
	deletedOf := func(r rec) bool { return r.Deleted }

	assert.Len(t, New[rec]().Where(ExcludeDeleted(false, deletedOf)).Apply(items), 1)
	assert.Len(t, New[rec]().Where(ExcludeDeleted(true, deletedOf)).Apply(items), 2)
}

func TestPipeline_IdempotentAndPure(t *testing.T) {
	items := []rec{{Code: "b", Status: "PLANNED"}, {Code: "a", Status: "PLANNED"}, {Code: "c", Status: "CANCELLED"}}
	original := append([]rec(nil), items...)

	build := func() *Pipeline[rec] {
		return New[rec]().
			Where(StatusBucket(BucketActive, active, statusOf)).
			SortBy(func(x, y rec) bool { return x.Code < y.Code })
	}
	first := build().Apply(items)
	second := build().Apply(items)
	assert.Equal(t, first, second)
	assert.Equal(t, original, items, "input must not be mutated")
	assert.Equal(t, "a", first[0].Code)

	assert.Equal(t, first, build().Apply(first))
}

func TestPaginate_Invariants(t *testing.T) {
	for n := 0; n <= 23; n++ {
		for _, size := range []int{1, 3, 10} {
			items := make([]int, n)
			for i := range items {
				items[i] = i
			}
			first := Paginate(items, 1, size)
			assert.Equal(t, (n+size-1)/size, first.TotalPages, "n=%d size=%d", n, size)

			var rebuilt []int
			for p := 1; p <= first.TotalPages; p++ {
				rebuilt = append(rebuilt, Paginate(items, p, size).Items...)
			}
			if n == 0 {
				assert.Empty(t, rebuilt)
			} else {
				assert.Equal(t, items, rebuilt)
			}
		}
	}
}

func TestPaginate_ClampsPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	p := Paginate(items, 9, 2)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, []int{5}, p.Items)

	p = Paginate(items, -1, 2)
	assert.Equal(t, 1, p.Page)

	p = Paginate([]int{}, 4, 2)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.TotalPages)
	assert.Empty(t, p.Items)
}

func TestPaginate_DefaultSize(t *testing.T) {
	p := Paginate(make([]int, 25), 1, 0)
	assert.Equal(t, DefaultPageSize, p.Size)
	assert.Equal(t, 3, p.TotalPages)
}

func TestParseBucket(t *testing.T) {
	assert.Equal(t, BucketActive, ParseBucket("activos"))
	assert.Equal(t, BucketInactive, ParseBucket("INACTIVE"))
	assert.Equal(t, BucketAll, ParseBucket(""))
	assert.Equal(t, BucketAll, ParseBucket("otro"))
}
