package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"job-portal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	auth        *mockAuthUC
	jobs        *mockJobUC
	application *mockApplicationUC
	users       *mockUserUC
}

func newTestRouter(t *testing.T, publicDir string) (*gin.Engine, testDeps) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Discard()

	deps := testDeps{
		auth:        new(mockAuthUC),
		jobs:        new(mockJobUC),
		application: new(mockApplicationUC),
		users:       new(mockUserUC),
	}
	r := NewRouter(RouterDeps{
		AuthUC:        deps.auth,
		JobUC:         deps.jobs,
		ApplicationUC: deps.application,
		UserUC:        deps.users,
		HealthUC:      stubHealthUC{},
		PublicDir:     publicDir,
	})
	return r, deps
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
