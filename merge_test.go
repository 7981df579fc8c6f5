package main

import (
	"context"
	"math"
	"math/rand"
	"testing"
)

func tableFrom(t *testing.T, data string) *Table {
	t.Helper()
	b := []byte(data)
	table, err := ParseChunk(context.Background(), b, Range{Start: 0, End: len(b) - 1})
	if err != nil {
		t.Fatalf("failed to parse %q: %v", data, err)
	}
	return table
}

func TestMerge(t *testing.T) {
	global := Merge([]*Table{
		tableFrom(t, "A;3.0\nB;4.0\n"),
		NewTable(),
		tableFrom(t, "A;5.0\nC;-1.0\n"),
	})
	if global.Len() != 3 {
		t.Fatalf("got %d keys, want 3", global.Len())
	}
	a, _ := global.Lookup([]byte("A"))
	if a.Min != 3 || a.Max != 5 || a.Count != 2 || a.Sum != 8 {
		t.Fatalf("unexpected stats for A: %+v", a)
	}
}

func TestMergeOrderIndependent(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	keys := []string{"Abha", "Bulawayo", "Cairo", "Dakar", "Erbil"}

	var locals []*Table
	for i := 0; i < 12; i++ {
		var data []byte
		for j := 0; j < 200; j++ {
			data = append(data, keys[rnd.Intn(len(keys))]...)
			data = append(data, ';')
			data = append(data, formatTemp(rnd)...)
			data = append(data, '\n')
		}
		locals = append(locals, tableFrom(t, string(data)))
	}

	want := Merge(locals)
	for round := 0; round < 10; round++ {
		shuffled := append([]*Table(nil), locals...)
		rnd.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assertSameStats(t, want, Merge(shuffled))
	}
}

func assertSameStats(t *testing.T, want, got *Table) {
	t.Helper()
	if want.Len() != got.Len() {
		t.Fatalf("got %d keys, want %d", got.Len(), want.Len())
	}
	want.Range(func(key []byte, w *Stats) {
		g, ok := got.Lookup(key)
		if !ok {
			t.Fatalf("missing key %q", key)
		}
		if g.Min != w.Min || g.Max != w.Max || g.Count != w.Count {
			t.Fatalf("key %q: got %+v, want %+v", key, *g, *w)
		}
		if math.Abs(g.Sum-w.Sum) > 1e-6*math.Max(1, math.Abs(w.Sum)) {
			t.Fatalf("key %q: sum %v, want %v", key, g.Sum, w.Sum)
		}
	})
}
