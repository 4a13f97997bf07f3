package nussinov

// SetCell overwrites a table cell; tests use it to simulate corruption.
func SetCell(t *Table, i, j, v int) { t.set(i, j, v) }

// NewTableForTest allocates an n×n zero table.
func NewTableForTest(n int) *Table { return newTable(n) }
