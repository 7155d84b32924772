package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTableReadThrough(t *testing.T) {
	loads := 0
	tbl := NewTable(time.Minute, func(context.Context) ([]int, error) {
		loads++
		return []int{1, 2, 3}, nil
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		data, err := tbl.Get(ctx)
		if err != nil || len(data) != 3 {
			t.Fatalf("get %d: %v %v", i, data, err)
		}
	}
	if loads != 1 {
		t.Fatalf("expected a single load, got %d", loads)
	}
}

func TestTableInvalidate(t *testing.T) {
	loads := 0
	tbl := NewTable(time.Minute, func(context.Context) ([]int, error) {
		loads++
		return []int{loads}, nil
	})

	ctx := context.Background()
	_, _ = tbl.Get(ctx)
	tbl.Invalidate()
	data, _ := tbl.Get(ctx)
	if loads != 2 || data[0] != 2 {
		t.Fatalf("expected reload after invalidate: loads=%d data=%v", loads, data)
	}
}

func TestTableExpiry(t *testing.T) {
	loads := 0
	tbl := NewTable(10*time.Millisecond, func(context.Context) ([]int, error) {
		loads++
		return nil, nil
	})

	ctx := context.Background()
	_, _ = tbl.Get(ctx)
	time.Sleep(20 * time.Millisecond)
	_, _ = tbl.Get(ctx)
	if loads != 2 {
		t.Fatalf("expected reload after TTL, got %d loads", loads)
	}
}

func TestTableLoadErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	tbl := NewTable(time.Minute, func(context.Context) ([]int, error) {
		return nil, boom
	})
	if _, err := tbl.Get(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestTableReturnsCopy(t *testing.T) {
	tbl := NewTable(time.Minute, func(context.Context) ([]int, error) {
		return []int{1}, nil
	})
	ctx := context.Background()
	a, _ := tbl.Get(ctx)
	a[0] = 99
	b, _ := tbl.Get(ctx)
	if b[0] != 1 {
		t.Fatalf("cache leaked its backing array")
	}
}
