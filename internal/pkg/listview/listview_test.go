package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name     string
	Category string
}

func testModel(pageSize int) Model[row] {
	return Model[row]{
		PageSize: pageSize,
		Extractors: []Extractor[row]{
			RowNumber[row],
			func(r row, _ int) string { return r.Name },
			func(r row, _ int) string { return r.Category },
		},
	}
}

func rows(n int) []row {
	out := make([]row, n)
	for i := range out {
		out[i] = row{Name: "item-" + string(rune('a'+i%26)), Category: "cat"}
	}
	return out
}

func TestViewEmptyCollection(t *testing.T) {
	p := testModel(5).View(nil, "", 1)

	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 1, p.Page)
	assert.Empty(t, p.Items)
	assert.True(t, p.Empty())
}

func TestViewNoMatchIsOnePageNotError(t *testing.T) {
	items := []row{{Name: "Global Tech Summit"}, {Name: "Auto Expo"}}

	p := testModel(5).View(items, "does-not-exist", 3)

	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 1, p.Page)
	assert.True(t, p.Empty())
	assert.Equal(t, 2, p.Total)
}

func TestFilterIsCaseInsensitiveSubstring(t *testing.T) {
	items := []row{
		{Name: "Global Tech Summit", Category: "Technology"},
		{Name: "Auto Expo", Category: "Automotive"},
		{Name: "Agritech Fair", Category: "Agriculture"},
	}

	filtered, rowNums := testModel(5).Filter(items, "TECH")

	require.Len(t, filtered, 2)
	assert.Equal(t, "Global Tech Summit", filtered[0].Name)
	assert.Equal(t, "Agritech Fair", filtered[1].Name)
	assert.Equal(t, []int{1, 3}, rowNums)
}

func TestFilterMatchesDerivedRowNumber(t *testing.T) {
	filtered, rowNums := testModel(5).Filter(rows(12), "12")

	require.Len(t, filtered, 1)
	assert.Equal(t, []int{12}, rowNums)
}

func TestPagesPartitionFilteredSet(t *testing.T) {
	items := rows(23)
	m := testModel(5)

	first := m.View(items, "", 1)
	require.Equal(t, 5, first.TotalPages)

	var seen []int
	for page := 1; page <= first.TotalPages; page++ {
		p := m.View(items, "", page)
		assert.LessOrEqual(t, len(p.Items), m.PageSize)
		seen = append(seen, p.Rows...)
	}

	require.Len(t, seen, 23)
	for i, r := range seen {
		assert.Equal(t, i+1, r, "each filtered row appears exactly once, in order")
	}
}

func TestPageClamping(t *testing.T) {
	items := rows(7)
	m := testModel(5)

	assert.Equal(t, 1, m.View(items, "", 0).Page)
	assert.Equal(t, 1, m.View(items, "", -3).Page)
	assert.Equal(t, 2, m.View(items, "", 99).Page)
}

func TestControllerQueryChangeResetsPage(t *testing.T) {
	items := rows(23)
	c := Controller[row]{Model: testModel(5)}

	c.SetPage(4)
	assert.Equal(t, 4, c.View(items).Page)

	c.SetQuery("item")
	assert.Equal(t, 1, c.View(items).Page)

	// same query again must not reset
	c.SetPage(3)
	c.SetQuery("item")
	assert.Equal(t, 3, c.View(items).Page)
}
