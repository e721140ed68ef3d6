package dosetable

// Default returns the built-in dose table used when no CSV source is
// available. Values mirror the clinical protocol the service ships with.
func Default() *Table {
	t := New()

	t.Add(KindIV, 1, Entry{Min: 0, Max: 110, Dose: 0})
	t.Add(KindIV, 2, Entry{Min: 111, Max: 150, Dose: 1.0})
	t.Add(KindIV, 3, Entry{Min: 151, Max: 200, Dose: 2.0})
	t.Add(KindIV, 4, Entry{Min: 201, Max: 250, Dose: 3.0})
	t.Add(KindIV, 5, Entry{Min: 251, Max: 300, Dose: 4.0})

	t.Add(KindBasal, 1, Entry{Min: 0, Max: 140, Dose: 0})
	t.Add(KindBasal, 2, Entry{Min: 141, Max: 180, Dose: 2})
	t.Add(KindBasal, 3, Entry{Min: 181, Max: 220, Dose: 4})
	t.Add(KindBasal, 4, Entry{Min: 221, Max: 260, Dose: 6})
	t.Add(KindBasal, 5, Entry{Min: 261, Max: 300, Dose: 8})
	t.Add(KindBasal, 6, Entry{Min: 301, Max: 350, Dose: 16})
	t.Add(KindBasal, 7, Entry{Min: 351, Max: 1000, Dose: 12})

	return t
}
