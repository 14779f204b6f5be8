package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gapminder/internal/dataset"
)

const fixtureCSV = `country,continent,year,lifeExp,pop,gdpPercap,iso_alpha,iso_num
Afghanistan,Asia,1952,28.801,8425333,779.4453145,AFG,4
Afghanistan,Asia,2007,43.828,31889923,974.5803384,AFG,4
China,Asia,1952,44,556263527,400.448611,CHN,156
France,Europe,1952,67.41,42459667,7029.809327,FRA,250
"Korea, Rep.",Asia,1952,47.453,20947571,1030.592226,KOR,410
India,Asia,1952,37.373,372000000,546.5657493,IND,356
Norway,Europe,2007,80.196,4627926,49357.19017,NOR,578
`

func loadFixture(t *testing.T) *ColumnStore {
	t.Helper()
	store, err := LoadReader(strings.NewReader(fixtureCSV))
	require.NoError(t, err)
	return store
}

func loadBundled(t *testing.T) *ColumnStore {
	t.Helper()
	store, err := LoadReader(dataset.Open())
	require.NoError(t, err)
	return store
}

// tieStore has two Asian rows with equal population, Beta listed first.
func tieStore() *ColumnStore {
	return &ColumnStore{
		Years:      []int32{1952, 1952, 1952},
		LifeExps:   []float64{50, 60, 70},
		Pops:       []int64{100, 100, 300},
		GdpPercaps: []float64{1, 2, 3},
		IsoAlphas:  []string{"BBB", "AAA", "CCC"},
		IsoNums:    []int32{1, 2, 3},

		CountryIDs:   []int32{0, 1, 2},
		ContinentIDs: []int32{0, 0, 0},

		CountryDict:   []string{"Beta", "Alpha", "Gamma"},
		ContinentDict: []string{"Asia"},
	}
}
