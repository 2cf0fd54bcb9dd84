package server

import (
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRegisterRoutes_RecordLookups(t *testing.T) {
	e := echo.New()
	RegisterRoutes(e)

	want := map[string]bool{
		"GET /api/bail/:id":           false,
		"PATCH /api/bail/:id":         false,
		"GET /api/incarcerations/:id": false,
		"GET /api/criminals/:id":      false,
		"GET /api/arrests/:id":        false,
	}
	for _, r := range e.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for key, found := range want {
		if !found {
			t.Fatalf("route %s not registered", key)
		}
	}
}
