package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveOrder("binding", 380)
	m.ObserveOrder("binding", 20)
	m.ObserveUpload("binding-doc", 1024)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Orders.WithLabelValues("binding")))
	assert.Equal(t, 400.0, testutil.ToFloat64(m.OrderValue.WithLabelValues("binding")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Uploads.WithLabelValues("binding-doc")))
	assert.Equal(t, 1024.0, testutil.ToFloat64(m.UploadBytes.WithLabelValues("binding-doc")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("/ping", "200")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "printshop_http_requests_total")
}
