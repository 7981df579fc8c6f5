package main

// Merge folds the local tables into a single global table. The order of
// locals does not change min, max or count; sums may differ by rounding.
func Merge(locals []*Table) *Table {
	global := NewTable()
	for _, local := range locals {
		if local == nil {
			continue
		}
		local.Range(func(key []byte, s *Stats) {
			global.Get(key).Fold(s)
		})
	}
	return global
}
