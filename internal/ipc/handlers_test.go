package ipc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func serve(t *testing.T, m *Manager, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	NewServer(m).ServeHTTP(rec, req)
	return rec
}

func TestStatusHandler(t *testing.T) {
	m, _ := startManager(t)

	rec := serve(t, m, http.MethodGet, "/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d", rec.Code)
	}

	var resp StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != StatusOK || resp.Version == "" || resp.PID == 0 {
		t.Errorf("status response: %+v", resp)
	}
	if resp.View.Viewport.W != 400 || resp.View.HasImage {
		t.Errorf("view: %+v", resp.View)
	}
}

func TestCommandHandler(t *testing.T) {
	m, _ := startManager(t)
	path := writePNG(t, 800, 400)

	tests := []struct {
		name     string
		route    string
		body     string
		wantCode int
	}{
		{"load", "/load", `{"path": "` + path + `"}`, http.StatusOK},
		{"load_missing_path", "/load", `{}`, http.StatusBadRequest},
		{"load_bad_file", "/load", `{"path": "/nonexistent/image.png"}`, http.StatusUnprocessableEntity},
		{"zoom_in", "/command", `{"type": "zoom-in"}`, http.StatusOK},
		{"zoom_with_focal", "/command", `{"type": "zoom", "amount": 2, "focal": {"x": 10, "y": 10}}`, http.StatusOK},
		{"no_type", "/command", `{"amount": 2}`, http.StatusBadRequest},
		{"garbage", "/command", `{"type": `, http.StatusBadRequest},
		{"unknown", "/command", `{"type": "spin"}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, m, http.MethodPost, tt.route, tt.body)
			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d: %s", rec.Code, tt.wantCode, rec.Body.String())
			}

			var resp Response
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("body is not a response: %v", err)
			}
		})
	}

	// 75% doubled crosses 100% and stops there
	if got := m.Status().Zoom; !near(got, 100) {
		t.Errorf("zoom after commands = %g%%, want 100%%", got)
	}
}

func TestStopHandler(t *testing.T) {
	m, _ := startManager(t)

	if rec := serve(t, m, http.MethodPost, "/stop", ""); rec.Code != http.StatusOK {
		t.Fatalf("stop code = %d", rec.Code)
	}
	select {
	case <-m.Stopped():
	case <-time.After(5 * time.Second):
		t.Fatal("manager still running")
	}

	if rec := serve(t, m, http.MethodPost, "/command", `{"type": "reset"}`); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("command after stop code = %d", rec.Code)
	}
}
