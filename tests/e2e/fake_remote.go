//go:build e2e

package e2e

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
)

// FakePDF is what the fake remote returns for every badge mutation.
var FakePDF = []byte("%PDF-1.4\n% e2e badge\n")

// FakeRemote answers the GraphQL operations the service issues.
type FakeRemote struct {
	Server *httptest.Server
	Fail   atomic.Bool

	mu         sync.Mutex
	registered []string
	mealScans  []string
}

func NewFakeRemote() *FakeRemote {
	f := &FakeRemote{}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

func (f *FakeRemote) Close() {
	f.Server.Close()
}

func (f *FakeRemote) URL() string {
	return f.Server.URL + "/graphql"
}

func (f *FakeRemote) Reset() {
	f.Fail.Store(false)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = nil
	f.mealScans = nil
}

// Registered returns the offline ids the remote accepted, in order.
func (f *FakeRemote) Registered() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.registered...)
}

func (f *FakeRemote) MealScans() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.mealScans...)
}

func (f *FakeRemote) serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	if r.Method != http.MethodPost {
		// reachability probes
		w.WriteHeader(http.StatusOK)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if f.Fail.Load() && !strings.Contains(req.Query, "__typename") {
		writeJSON(w, map[string]any{"data": nil, "errors": []map[string]string{{"message": "remote unavailable"}}})
		return
	}

	input, _ := req.Variables["input"].(map[string]any)
	switch {
	case strings.Contains(req.Query, "createRegistration"):
		id, _ := input["offlineId"].(string)
		f.mu.Lock()
		f.registered = append(f.registered, id)
		f.mu.Unlock()
		writeJSON(w, map[string]any{"data": map[string]any{"createRegistration": map[string]string{"id": "srv-" + id, "qrCode": "qr-" + id}}})
	case strings.Contains(req.Query, "createMealAttendance"):
		id, _ := input["offlineId"].(string)
		f.mu.Lock()
		f.mealScans = append(f.mealScans, id)
		f.mu.Unlock()
		writeJSON(w, map[string]any{"data": map[string]any{"createMealAttendance": map[string]string{"id": "att-" + id}}})
	case strings.Contains(req.Query, "generateQRCode"):
		regID, _ := req.Variables["registrationId"].(string)
		writeJSON(w, map[string]any{"data": map[string]any{"generateQRCode": map[string]any{
			"qrCode":      "a1b2c3:d4e5f6",
			"base64Image": base64.StdEncoding.EncodeToString([]byte("png")),
			"qrCodeData": map[string]any{
				"registrationId":  regID,
				"eventId":         "evt-1",
				"participantName": "Ada Lovelace",
				"category":        "VIP",
				"timestamp":       "2024-03-15T09:00:00Z",
				"checksum":        "d4e5f6",
			},
		}}})
	case strings.Contains(req.Query, "generateBadgeSheet"):
		writeJSON(w, map[string]any{"data": map[string]any{"generateBadgeSheet": base64.StdEncoding.EncodeToString(FakePDF)}})
	case strings.Contains(req.Query, "generateBadge"):
		writeJSON(w, map[string]any{"data": map[string]any{"generateBadge": base64.StdEncoding.EncodeToString(FakePDF)}})
	case strings.Contains(req.Query, "__typename"):
		writeJSON(w, map[string]any{"data": map[string]any{"__typename": "Query"}})
	default:
		writeJSON(w, map[string]any{"data": nil, "errors": []map[string]string{{"message": "unknown operation"}}})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}
