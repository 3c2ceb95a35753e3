package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"baliance.com/gooxml/document"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolioai/models"
	"portfolioai/services"
)

type stubCompleter struct {
	response string
	err      error
}

func (s *stubCompleter) Complete(context.Context, string, string, float64, int) (string, error) {
	return s.response, s.err
}

func newResumeRouter(t *testing.T, completer services.Completer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	ai := services.NewAIResumeParser(completer, logger)
	handler := NewResumeHandler(services.NewResumeService(ai, logger), logger)

	r := gin.New()
	r.POST("/api/resume/parse", handler.Parse)
	return r
}

func resumeUpload(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resume/parse", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func docxBytes(t *testing.T, lines []string) []byte {
	t.Helper()
	doc := document.New()
	for _, line := range lines {
		doc.AddParagraph().AddRun().AddText(line)
	}
	var buf bytes.Buffer
	require.NoError(t, doc.Save(&buf))
	return buf.Bytes()
}

func TestResumeParse(t *testing.T) {
	completer := &stubCompleter{response: "SKILLS: Go, Rust\nINTERESTS: hiking\nLINKEDIN: Not found\nABOUT_ME: Builds systems."}
	r := newResumeRouter(t, completer)

	data := docxBytes(t, []string{
		"John Smith",
		"john@x.com",
		"",
		"SKILLS",
		"Python, Docker",
		"",
		"EXPERIENCE",
		"Senior Eng at Acme",
		"Jan 2020 - Present",
		"Built things.",
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, resumeUpload(t, "resume.docx", data))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		Profile struct {
			Name      string `json:"name"`
			Email     string `json:"email"`
			Skills    string `json:"skills"`
			Interests string `json:"interests"`
			AboutMe   string `json:"about_me"`
		} `json:"profile"`
		Experiences []struct {
			Title    string `json:"title"`
			Duration string `json:"duration"`
		} `json:"experiences"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.Equal(t, "John Smith", result.Profile.Name)
	assert.Equal(t, "john@x.com", result.Profile.Email)
	assert.Contains(t, result.Profile.Skills, "go")
	assert.Contains(t, result.Profile.Skills, "python")
	assert.Equal(t, "hiking", result.Profile.Interests)
	assert.Equal(t, "Builds systems.", result.Profile.AboutMe)

	require.Len(t, result.Experiences, 1)
	assert.Equal(t, "Senior Eng at Acme", result.Experiences[0].Title)
	assert.Equal(t, "Jan 2020 - Present", result.Experiences[0].Duration)
}

func TestResumeParse_UnsupportedExtension(t *testing.T) {
	r := newResumeRouter(t, &stubCompleter{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, resumeUpload(t, "resume.txt", []byte("plain text")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResumeParse_MissingFile(t *testing.T) {
	r := newResumeRouter(t, &stubCompleter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/resume/parse", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResumeParse_MalformedDocument(t *testing.T) {
	r := newResumeRouter(t, &stubCompleter{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, resumeUpload(t, "resume.docx", []byte("not a real docx")))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestResumeParse_ProviderDown(t *testing.T) {
	r := newResumeRouter(t, &stubCompleter{err: &models.ProviderError{Err: assert.AnError}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, resumeUpload(t, "resume.docx", docxBytes(t, []string{"John Smith"})))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
