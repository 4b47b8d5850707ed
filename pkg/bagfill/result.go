package bagfill

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/mino"
)

// Combination is a multiset of canonical pieces kept in ascending order.
type Combination []mino.Canonical

// Sorted returns an ordered copy of c.
func (c Combination) Sorted() Combination {
	sorted := make(Combination, len(c))
	copy(sorted, c)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

// Key identifies the multiset. Two combinations holding the same pieces in
// any order have the same key.
func (c Combination) Key() string {
	var b strings.Builder
	for i, p := range c.Sorted() {
		if i > 0 {
			b.WriteRune('.')
		}
		b.WriteString(strconv.Itoa(int(p)))
	}
	return b.String()
}

func (c Combination) Blocks() int {
	var n int
	for _, p := range c {
		n += p.Blocks()
	}
	return n
}

// Counts returns how many of each canonical piece the multiset holds.
func (c Combination) Counts() [mino.CanonicalCount]int {
	var counts [mino.CanonicalCount]int
	for _, p := range c {
		counts[p]++
	}
	return counts
}

func (c Combination) String() string {
	names := make([]string, len(c))
	for i, p := range c {
		names[i] = p.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}

func less(a, b Combination) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Tiling is one concrete full tiling. Cells holds depth markers and
// Pieces[d-1] is the piece placed at depth d.
type Tiling struct {
	Width  int              `json:"width"`
	Height int              `json:"height"`
	Cells  [][]int          `json:"cells"`
	Pieces []mino.Canonical `json:"pieces"`
}

// PieceAt returns the piece covering a cell and its depth.
func (t *Tiling) PieceAt(row, col int) (mino.Canonical, int) {
	d := t.Cells[row][col]
	return t.Pieces[d-1], d
}

type Result struct {
	Combination Combination `json:"combination"`
	Example     *Tiling     `json:"example,omitempty"`
}

type Stats struct {
	Candidates int `json:"candidates"`
	Placements int `json:"placements"`
	Tilings    int `json:"tilings"`
}

// ResultSet holds the distinct piece multisets that fill a bag.
type ResultSet struct {
	Width  int
	Height int
	Stats  Stats

	keys    mapset.Set[string]
	results []Result
}

func NewResultSet(width, height int) *ResultSet {
	return &ResultSet{Width: width, Height: height, keys: mapset.New[string]()}
}

// Insert adds the multiset and reports whether it was new.
func (rs *ResultSet) Insert(c Combination) bool {
	return rs.insert(c, nil)
}

func (rs *ResultSet) insert(c Combination, example *Tiling) bool {
	key := c.Key()
	if rs.keys.Has(key) {
		return false
	}
	rs.keys.Put(key)
	rs.results = append(rs.results, Result{Combination: c.Sorted(), Example: example})
	return true
}

func (rs *ResultSet) Has(c Combination) bool {
	return rs.keys.Has(c.Key())
}

func (rs *ResultSet) Len() int {
	return rs.keys.Size()
}

// Results returns every result, fewest pieces first.
func (rs *ResultSet) Results() []Result {
	results := make([]Result, len(rs.results))
	copy(results, rs.results)
	sort.Slice(results, func(i, j int) bool { return less(results[i].Combination, results[j].Combination) })
	return results
}

func (rs *ResultSet) Combinations() []Combination {
	results := rs.Results()
	combinations := make([]Combination, len(results))
	for i, r := range results {
		combinations[i] = r.Combination
	}
	return combinations
}

// Equal compares the multisets only.
func (rs *ResultSet) Equal(other *ResultSet) bool {
	if rs.Width != other.Width || rs.Height != other.Height || rs.Len() != other.Len() {
		return false
	}

	equal := true
	rs.keys.Each(func(key string) {
		if !other.keys.Has(key) {
			equal = false
		}
	})
	return equal
}

func (rs *ResultSet) String() string {
	return fmt.Sprintf("%dx%d: %d combinations", rs.Width, rs.Height, rs.Len())
}

type resultSetJSON struct {
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Stats   Stats    `json:"stats"`
	Results []Result `json:"results"`
}

func (rs *ResultSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultSetJSON{Width: rs.Width, Height: rs.Height, Stats: rs.Stats, Results: rs.Results()})
}

func (rs *ResultSet) UnmarshalJSON(data []byte) error {
	var decoded resultSetJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*rs = *NewResultSet(decoded.Width, decoded.Height)
	rs.Stats = decoded.Stats
	for _, r := range decoded.Results {
		if r.Combination.Blocks() != rs.Width*rs.Height {
			return fmt.Errorf("combination %s does not fill a %dx%d bag", r.Combination, rs.Width, rs.Height)
		}
		rs.insert(r.Combination, r.Example)
	}
	return nil
}
