package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchitecturesOrder(t *testing.T) {
	tbl, err := Architectures()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"layered", "pipeline", "microkernel", "service_based",
		"event_driven", "space_based", "orchestration_soa", "microservices",
	}, tbl.Entities)
	assert.Equal(t, "deployability", tbl.Characteristics[0])
	assert.Len(t, tbl.Characteristics, 11)

	for _, c := range tbl.Characteristics {
		assert.NotEmpty(t, tbl.Description(c), c)
		assert.True(t, tbl.Selectable(c), c)
		for _, e := range tbl.Entities {
			s, ok := tbl.Score(e, c)
			assert.True(t, ok, "%s/%s", e, c)
			assert.True(t, s >= 1 && s <= MaxScore, "%s/%s = %d", e, c, s)
		}
	}
	assert.Equal(t, "SERVICE BASED", tbl.Heading("service_based"))
}

func TestArchitectureTotals(t *testing.T) {
	tbl, err := Architectures()
	require.NoError(t, err)

	sel := NewSelection()
	_, ok := tbl.Totals(sel)
	assert.False(t, ok)

	assert.True(t, sel.Toggle("cost"))
	assert.True(t, sel.Toggle("simplicity"))
	totals, ok := tbl.Totals(sel)
	require.True(t, ok)
	assert.Equal(t, 10, totals["layered"])
	assert.Equal(t, 2, totals["microservices"])
	assert.Equal(t, 2, sel.Count())

	assert.False(t, sel.Toggle("cost"))
	totals, ok = tbl.Totals(sel)
	require.True(t, ok)
	assert.Equal(t, 5, totals["layered"])
}

func TestDatabasesExcludeReadWrite(t *testing.T) {
	tbl, err := Databases()
	require.NoError(t, err)

	assert.Equal(t, "Relational", tbl.Entities[0])
	assert.Equal(t, "Relational", tbl.Heading("Relational"))

	const rw = "Read/Write priority"
	assert.Contains(t, tbl.Characteristics, rw)
	assert.False(t, tbl.Selectable(rw))
	assert.Equal(t, "Write", tbl.Value("Column family", rw))
	_, ok := tbl.Score("Column family", rw)
	assert.False(t, ok)

	sel := NewSelection()
	sel.Toggle(rw)
	_, ok = tbl.Totals(sel)
	assert.False(t, ok, "read/write alone counts as nothing selected")

	sel.Toggle("Consistency")
	totals, ok := tbl.Totals(sel)
	require.True(t, ok)
	assert.Equal(t, 5, totals["Relational"])
	assert.Equal(t, 2, totals["Key-value"])
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("x", []byte(`{`), nil)
	assert.Error(t, err)
	_, err = Parse("x", []byte(`{"other":{}}`), nil)
	assert.Error(t, err)
	_, err = Parse("x", []byte(`{"architectures":{}}`), nil)
	assert.Error(t, err)

	tbl, err := Parse("x", []byte(`{"architectures":{"b":{"z":1,"a":2},"a":{"z":3,"a":4}}}`), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, tbl.Entities)
	assert.Equal(t, []string{"z", "a"}, tbl.Characteristics)
	assert.Equal(t, "", tbl.Description("z"))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, BandGood, BandOf(4))
	assert.Equal(t, BandMedium, BandOf(3))
	assert.Equal(t, BandBad, BandOf(2))

	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "☆☆☆☆☆", Stars(-1))
	assert.Equal(t, "★★★★★", Stars(9))

	assert.Equal(t, "ORCHESTRATION SOA", Title("orchestration_soa"))
	assert.Equal(t, "Fault Tolerance", Label("fault-tolerance"))
	assert.Equal(t, "mystery", Label("mystery"))
}
