package main

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestMetricsExported(t *testing.T) {
	provider, err := setupMetrics()
	if err != nil {
		t.Fatalf("setupMetrics: %v", err)
	}
	t.Cleanup(func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Errorf("shutdown: %v", err)
		}
	})

	h := testRouter(t)

	if rr := do(t, h, http.MethodPost, "/evaluate", `{"size":4,"move":"Bab"}`); rr.Code != http.StatusOK {
		t.Fatalf("evaluate status = %d, body %s", rr.Code, rr.Body.String())
	}
	if rr := do(t, h, http.MethodPost, "/evaluate", `{"size":4,"move":"Bda"}`); rr.Code != http.StatusOK {
		t.Fatalf("evaluate status = %d, body %s", rr.Code, rr.Body.String())
	}
	if rr := do(t, h, http.MethodPost, "/moves", `{"size":4,"color":"W"}`); rr.Code != http.StatusOK {
		t.Fatalf("moves status = %d, body %s", rr.Code, rr.Body.String())
	}

	rr := do(t, h, http.MethodGet, "/metrics", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rr.Code)
	}
	body := rr.Body.String()

	if !hasSample(body, "reversi_evaluations_total{", `valid="true"`, " 1") {
		t.Errorf("missing valid evaluation sample in:\n%s", body)
	}
	if !hasSample(body, "reversi_evaluations_total{", `valid="false"`, " 1") {
		t.Errorf("missing invalid evaluation sample in:\n%s", body)
	}
	if !hasSample(body, "reversi_legal_moves_count{", `color="White"`, " 1") {
		t.Errorf("missing legal move histogram sample in:\n%s", body)
	}
	if !hasSample(body, "reversi_legal_moves_sum{", `color="White"`, " 4") {
		t.Errorf("legal move histogram should have summed four moves in:\n%s", body)
	}
}

// hasSample reports whether some exposition line starts with prefix,
// carries label and ends with suffix.
func hasSample(body, prefix, label, suffix string) bool {
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, prefix) && strings.Contains(line, label) && strings.HasSuffix(line, suffix) {
			return true
		}
	}
	return false
}
