package util

import (
	"testing"
	"time"
)

func TestNullString(t *testing.T) {
	if NullString(nil).Valid {
		t.Fatal("expected nil to be invalid")
	}
	empty := ""
	if NullString(&empty).Valid {
		t.Fatal("expected empty string to be invalid")
	}
	s := "hello"
	got := NullString(&s)
	if !got.Valid || got.String != "hello" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestNullInt64(t *testing.T) {
	if NullInt64(nil).Valid {
		t.Fatal("expected nil to be invalid")
	}
	zero := int64(0)
	got := NullInt64(&zero)
	if !got.Valid || got.Int64 != 0 {
		t.Fatalf("expected explicit zero to be valid, got %+v", got)
	}
}

func TestNullFloat64(t *testing.T) {
	if NullFloat64(nil).Valid {
		t.Fatal("expected nil to be invalid")
	}
	f := 2500.50
	got := NullFloat64(&f)
	if !got.Valid || got.Float64 != 2500.50 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestNullTime(t *testing.T) {
	if NullTime(nil).Valid {
		t.Fatal("expected nil to be invalid")
	}
	var zero time.Time
	if NullTime(&zero).Valid {
		t.Fatal("expected zero time to be invalid")
	}
	now := time.Now()
	got := NullTime(&now)
	if !got.Valid || !got.Time.Equal(now) {
		t.Fatalf("unexpected result: %+v", got)
	}
}
