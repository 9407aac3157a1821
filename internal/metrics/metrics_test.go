package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveSettlements(t *testing.T) {
	m := New()
	m.ObserveSettlements("pairwise", 3)
	m.ObserveSettlements("pairwise", 2)
	m.ObserveSettlements("minimize", 1)

	if got := testutil.ToFloat64(m.SettlementsEmitted.WithLabelValues("pairwise")); got != 5 {
		t.Errorf("pairwise settlements = %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.SettlementsEmitted.WithLabelValues("minimize")); got != 1 {
		t.Errorf("minimize settlements = %v, want 1", got)
	}
}

func TestObserveSettlements_NilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveSettlements("pairwise", 1) // must not panic
}

func TestHandler(t *testing.T) {
	m := New()
	m.RPCRequests.WithLabelValues("/splitease.v1.BillService/GetBill", "ok").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "splitease_rpc_requests_total") {
		t.Errorf("expected rpc counter in exposition, got:\n%s", body)
	}
}
