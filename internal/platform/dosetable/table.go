package dosetable

// Kind identifies which dosing algorithm a table section belongs to.
type Kind int

const (
	KindIV Kind = iota
	KindBasal
)

func (k Kind) String() string {
	if k == KindIV {
		return "IV"
	}
	return "Basal"
}

// Entry is one glucose range with its dose. Ranges within a level are kept in
// source order and need not be exhaustive or non-overlapping; lookups take the
// first match.
type Entry struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Dose float64 `json:"dose"`
}

// Table maps algorithm kind and level to an ordered list of entries. It is
// built once by a loader and treated as read-only afterwards; a fully built
// Table is safe to share across concurrent readers.
type Table struct {
	kinds map[Kind]*kindTable
}

type kindTable struct {
	order   []int
	entries map[int][]Entry
}

func New() *Table {
	return &Table{kinds: map[Kind]*kindTable{
		KindIV:    {entries: map[int][]Entry{}},
		KindBasal: {entries: map[int][]Entry{}},
	}}
}

// Add appends an entry to the given kind and level. Levels keep the order in
// which they were first added; level-matching iterates in that order.
func (t *Table) Add(k Kind, level int, e Entry) {
	kt := t.kinds[k]
	if _, ok := kt.entries[level]; !ok {
		kt.order = append(kt.order, level)
	}
	kt.entries[level] = append(kt.entries[level], e)
}

// Levels returns the levels defined for a kind, in insertion order.
func (t *Table) Levels(k Kind) []int {
	kt := t.kinds[k]
	out := make([]int, len(kt.order))
	copy(out, kt.order)
	return out
}

// Entries returns the ordered entry list for a level, and whether the level
// is defined at all.
func (t *Table) Entries(k Kind, level int) ([]Entry, bool) {
	es, ok := t.kinds[k].entries[level]
	return es, ok
}
