package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/egzamapp/internal/controller/admin"
	"github.com/lshigami/egzamapp/internal/controller/user"
	"github.com/lshigami/egzamapp/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func routeSet(r *gin.Engine) map[string]bool {
	out := map[string]bool{}
	for _, ri := range r.Routes() {
		out[ri.Method+" "+ri.Path] = true
	}
	return out
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, diagnostics := range []bool{false, true} {
		cfg := testutil.Config()
		cfg.Diagnostics.Enabled = diagnostics

		r := gin.New()
		RegisterRoutes(r, cfg,
			user.NewExamController(nil, cfg),
			user.NewAttemptController(nil),
			admin.NewDiagnosticsController(nil),
		)
		routes := routeSet(r)

		for _, want := range []string{
			http.MethodPost + " /api/exams/upload",
			http.MethodGet + " /api/exams",
			http.MethodGet + " /api/exams/:id",
			http.MethodPost + " /api/exams/:id/start",
			http.MethodPost + " /api/exams/submit",
			http.MethodGet + " /api/test",
		} {
			assert.True(t, routes[want], want)
		}
		assert.Equal(t, diagnostics, routes[http.MethodGet+" /api/diagnostics/db-status"])
	}
}
