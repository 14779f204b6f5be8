package engine

import "gapminder/internal/models"

// ColumnStore holds the dataset in Struct-of-Arrays format. It is built once
// by the loader and never mutated afterwards; rows keep their source order.
type ColumnStore struct {
	// Data Columns (Flat Arrays)
	Years      []int32
	LifeExps   []float64
	Pops       []int64
	GdpPercaps []float64
	IsoAlphas  []string
	IsoNums    []int32

	// Dictionary Encoded IDs (0..N)
	CountryIDs   []int32
	ContinentIDs []int32

	// Dictionaries (ID -> String)
	CountryDict   []string
	ContinentDict []string
}

func (cs *ColumnStore) Len() int {
	return len(cs.Years)
}

func (cs *ColumnStore) Country(i int) string {
	return cs.CountryDict[cs.CountryIDs[i]]
}

func (cs *ColumnStore) Continent(i int) string {
	return cs.ContinentDict[cs.ContinentIDs[i]]
}

// Row materializes row i.
func (cs *ColumnStore) Row(i int) models.Record {
	return models.Record{
		Country:   cs.Country(i),
		Continent: cs.Continent(i),
		Year:      int(cs.Years[i]),
		LifeExp:   cs.LifeExps[i],
		Pop:       cs.Pops[i],
		GdpPercap: cs.GdpPercaps[i],
		IsoAlpha:  cs.IsoAlphas[i],
		IsoNum:    int(cs.IsoNums[i]),
	}
}

// Value returns the metric column value of row i.
func (cs *ColumnStore) Value(m Metric, i int) float64 {
	switch m {
	case MetricPop:
		return float64(cs.Pops[i])
	case MetricGdpPercap:
		return cs.GdpPercaps[i]
	default:
		return cs.LifeExps[i]
	}
}

// continentID returns the dictionary ID of name, or -1.
func (cs *ColumnStore) continentID(name string) int32 {
	for id, c := range cs.ContinentDict {
		if c == name {
			return int32(id)
		}
	}
	return -1
}

// selectRows returns the row indexes matching keep, in dataset order.
func (cs *ColumnStore) selectRows(keep func(i int) bool) []int {
	var rows []int
	for i := 0; i < cs.Len(); i++ {
		if keep(i) {
			rows = append(rows, i)
		}
	}
	return rows
}
