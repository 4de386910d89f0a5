package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"mailtriage/internal/api"
	"mailtriage/internal/backend"
	"mailtriage/internal/model"
	"mailtriage/internal/service"
	"mailtriage/internal/util"
)

type stubOracle struct{}

func (stubOracle) Complete(ctx context.Context, prompt string) (string, error) {
	return "inquiry", nil
}

func newTestRouter(jwtSecret string) *Router {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	classifier := service.NewClassifier(stubOracle{}, nil, log)
	dispatcher := service.NewDispatcher(
		backend.NewLogMessenger(log),
		backend.NewLogTicketing(log),
		backend.NewLogFeedback(log),
		log,
	)
	pipeline := service.NewPipeline(classifier, dispatcher, log)
	handler := api.NewProcessHandler(pipeline, log)

	return NewRouter(handler, nil, nil, nil, jwtSecret)
}

func TestReadyzSkipsUnconfiguredBackends(t *testing.T) {
	router := newTestRouter("")

	w := httptest.NewRecorder()
	router.Engine.ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestReadyzReportsRedisDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	classifier := service.NewClassifier(stubOracle{}, nil, log)
	dispatcher := service.NewDispatcher(
		backend.NewLogMessenger(log),
		backend.NewLogTicketing(log),
		backend.NewLogFeedback(log),
		log,
	)
	pipeline := service.NewPipeline(classifier, dispatcher, log)
	handler := api.NewProcessHandler(pipeline, log)

	// 端口未监听，ping 必然失败
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer rdb.Close()
	router := NewRouter(handler, nil, nil, rdb, "")

	w := httptest.NewRecorder()
	router.Engine.ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "redis_not_ready") {
		t.Fatalf("body = %s, want redis_not_ready", w.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter("")

	w := httptest.NewRecorder()
	router.Engine.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestProcessBatchEndpoint(t *testing.T) {
	router := newTestRouter("")

	body := `{"emails": [
		{"id": "001", "from": "a@example.com", "subject": "s", "body": "b", "timestamp": "2024-03-15T10:30:00Z"},
		{"id": "002"}
	]}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/emails/process", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.Engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Results []model.ProcessingResult `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(resp.Results))
	}
	if !resp.Results[0].Success || resp.Results[0].Classification != model.CategoryInquiry {
		t.Fatalf("results[0] = %+v, want successful inquiry", resp.Results[0])
	}
	if resp.Results[1].Success {
		t.Fatalf("results[1] = %+v, want validation failure", resp.Results[1])
	}
}

func TestProcessBatchRejectsBadJSON(t *testing.T) {
	router := newTestRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/emails/process", strings.NewReader("{{{"))
	req.Header.Set("Content-Type", "application/json")
	router.Engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestProcessBatchRequiresAuthWhenConfigured(t *testing.T) {
	router := newTestRouter("test-secret")
	body := `{"emails": []}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/emails/process", strings.NewReader(body))
	router.Engine.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want 401", w.Code)
	}

	token, err := util.GenerateJWT("test-client", "test-secret")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/v1/emails/process", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.Engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status with token = %d, want 200", w.Code)
	}
}

func TestTraceHeaderPropagated(t *testing.T) {
	router := newTestRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set("X-Trace-ID", "abc123")
	router.Engine.ServeHTTP(w, req)

	if got := w.Header().Get("X-Trace-ID"); got != "abc123" {
		t.Fatalf("trace header = %q, want abc123", got)
	}
}
