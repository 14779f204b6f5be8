package engine

import "sort"

// RankedRow is one surviving row of a ranking.
type RankedRow struct {
	Row     int
	Country string
	Value   float64
}

// ClampTopN forces n into [MinTopN, MaxTopN].
func ClampTopN(n int) int {
	return min(max(n, MinTopN), MaxTopN)
}

// Rank filters the store to continent and year, sorts the matches by m
// descending and keeps the first topN. Ties keep dataset order.
func (cs *ColumnStore) Rank(m Metric, continent string, year, topN int) []RankedRow {
	// 1. Filter
	cid := cs.continentID(continent)
	if cid < 0 {
		return nil
	}
	rows := cs.selectRows(func(i int) bool {
		return cs.ContinentIDs[i] == cid && int(cs.Years[i]) == year
	})
	if len(rows) == 0 {
		return nil
	}

	// 2. Build
	ranked := make([]RankedRow, 0, len(rows))
	for _, i := range rows {
		ranked = append(ranked, RankedRow{Row: i, Country: cs.Country(i), Value: cs.Value(m, i)})
	}

	// 3. Sort (stable, descending) and truncate
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Value > ranked[j].Value })
	if n := ClampTopN(topN); len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// YearRows returns the rows of year in dataset order.
func (cs *ColumnStore) YearRows(year int) []int {
	return cs.selectRows(func(i int) bool { return int(cs.Years[i]) == year })
}
