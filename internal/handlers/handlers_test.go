package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

const sampleResult = `{
	"campaign_summary": "แคมเปญทดสอบ",
	"big_idea": "ทำงานน้อยลง ได้ผลมากขึ้น",
	"key_messages": ["ข้อความ 1", "ข้อความ 2"],
	"visual_direction": "โทนสีฟ้า",
	"posts": {
		"Facebook": [
			{"day": 1, "postType": "organic", "caption": "Hello #promo", "visual_prompt": "office"},
			{"day": 3, "postType": "boosted", "caption": "Second post", "visual_prompt": "team"}
		]
	}
}`
