package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avquote/backend/internal/shelf"
)

func TestDebugSchemaFallsBackToReservation(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/Booking") {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"relation does not exist"}`))
			return
		}
		json.NewEncoder(w).Encode([]shelf.Row{{"id": "r1"}})
	}))
	defer remote.Close()
	client, _ := shelf.New(remote.URL, "k")
	h := NewDebugHandler(client)

	w := httptest.NewRecorder()
	h.Schema(w, httptest.NewRequest(http.MethodGet, "/api/debug/schema", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d body=%s", w.Code, w.Body.String())
	}
	var probe shelf.SchemaProbe
	decodeBody(t, w, &probe)
	if probe.Table != "Reservation" || len(probe.Sample) != 1 {
		t.Fatalf("probe = %+v", probe)
	}
}

func TestDebugSchemaWithoutRemoteBackend(t *testing.T) {
	h := NewDebugHandler(nil)
	w := httptest.NewRecorder()
	h.Schema(w, httptest.NewRequest(http.MethodGet, "/api/debug/schema", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("code = %d, want 502", w.Code)
	}
}
