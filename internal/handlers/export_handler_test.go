package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/onegreenvn/campaign-generator-backend/internal/services/campaign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubUploader struct {
	filename    string
	contentType string
	data        []byte
	err         error
}

func (s *stubUploader) Upload(_ context.Context, filename, contentType string, data []byte) (string, error) {
	s.filename, s.contentType, s.data = filename, contentType, data
	if s.err != nil {
		return "", s.err
	}
	return "https://minio.local/campaign-exports/" + filename + "?X-Amz-Signature=abc", nil
}

var exportNow = time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)

func exportRouter(uploader Uploader) *gin.Engine {
	h := NewExportHandler(uploader)
	h.now = func() time.Time { return exportNow }
	r := gin.New()
	r.POST("/exports/json", h.ExportJSON)
	r.POST("/exports/text", h.ExportText)
	r.POST("/exports/xlsx", h.ExportXLSX)
	return r
}

const exportBody = `{"campaign": ` + sampleResult + `, "formData": {"industry": "Technology", "startDate": "2025-03-01", "endDate": "2025-03-03"}}`

func TestExportJSONDownload(t *testing.T) {
	w := performRequest(exportRouter(nil), http.MethodPost, "/exports/json", exportBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "attachment; filename=campaign-1740817800000.json", w.Header().Get("Content-Disposition"))

	doc, err := campaign.ParseExport(w.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01T08:30:00.000Z", doc.GeneratedAt)
	assert.Equal(t, campaign.ExportVersion, doc.ExportVersion)
	assert.Equal(t, "Technology", doc.FormData.Industry)
	assert.Equal(t, 2, doc.Campaign.Posts[models.PlatformFacebook].Len())
}

func TestExportText(t *testing.T) {
	w := performRequest(exportRouter(nil), http.MethodPost, "/exports/text", exportBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "CAMPAIGN EXPORT\n"))
	assert.Contains(t, w.Body.String(), "[FACEBOOK]")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestExportXLSX(t *testing.T) {
	w := performRequest(exportRouter(nil), http.MethodPost, "/exports/xlsx", exportBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeXLSX, w.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Calendar")

	rows, err := f.GetRows("Calendar")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestExportUpload(t *testing.T) {
	uploader := &stubUploader{}
	w := performRequest(exportRouter(uploader), http.MethodPost, "/exports/json?upload=true", exportBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.ExportUploadResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "campaign-1740817800000.json", resp.Filename)
	assert.Contains(t, resp.URL, resp.Filename)
	assert.Equal(t, contentTypeJSON, uploader.contentType)
	assert.NotEmpty(t, uploader.data)
}

func TestExportUploadErrors(t *testing.T) {
	w := performRequest(exportRouter(nil), http.MethodPost, "/exports/text?upload=true", exportBody)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = performRequest(exportRouter(&stubUploader{err: errors.New("bucket gone")}), http.MethodPost, "/exports/text?upload=true", exportBody)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestExportRequiresCampaign(t *testing.T) {
	w := performRequest(exportRouter(nil), http.MethodPost, "/exports/json", `{"formData": {}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
