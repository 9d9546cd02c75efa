package app

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/abyounis/biofilmwatch/internal/catalog"
	"github.com/abyounis/biofilmwatch/internal/components"
)

func newTestApp() App {
	return App{
		AgentRepo:        catalog.AgentRepo{},
		IsolateRepo:      catalog.IsolateRepo{},
		SurveillanceRepo: catalog.SurveillanceRepo{},
		GwasRepo:         catalog.GwasRepo{},
		ModelRepo:        catalog.ModelRepo{},
		RegulatoryRepo:   catalog.RegulatoryRepo{},
		RNARepo:          catalog.RNARepo{},
		ComponentBuilder: ComponentBuilder{
			Index:        components.Index,
			Genomics:     components.Genomics,
			Regulatory:   components.Regulatory,
			Surveillance: components.Surveillance,
			RNA:          components.RNA,
			Cocktail:     components.Cocktail,
			Upload:       components.Upload,
			Error:        components.Error,
		},
		Config: Config{Port: "8000"},
	}
}

func TestIndexRoute(t *testing.T) {
	a := newTestApp()

	rec := httptest.NewRecorder()
	ComponentHandler(a.index).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "MRSA Biofilm Surveillance")
	assert.Contains(t, rec.Body.String(), "High-Biofilm Isolates")
}

func TestIndexUnknownPath(t *testing.T) {
	a := newTestApp()

	rec := httptest.NewRecorder()
	ComponentHandler(a.index).ServeHTTP(rec, httptest.NewRequest("GET", "/nope", nil))

	assert.Equal(t, 404, rec.Code)
}

func TestSurveillancePage(t *testing.T) {
	a := newTestApp()

	rec := httptest.NewRecorder()
	ComponentHandler(a.surveillance).ServeHTTP(rec, httptest.NewRequest("GET", "/surveillance", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Therapeutic Coverage Calculator")
	assert.Contains(t, rec.Body.String(), "ST239")
}

func TestCocktailFormPost(t *testing.T) {
	a := newTestApp()

	form := url.Values{
		"therapy":   {"Phage"},
		"lineage":   {"ST5", "ST8"},
		"threshold": {"90"},
	}
	req := httptest.NewRequest("POST", "/cocktail", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	ComponentHandler(a.cocktail).ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Recommended Phage Cocktail")
	// vB_SauM-C1 covers both ST5 and ST8 above the cutoff on its own.
	assert.Contains(t, body, "vB_SauM-C1")
	assert.Contains(t, body, "100.0%")
}

func TestCocktailJSONPost(t *testing.T) {
	a := newTestApp()

	req := httptest.NewRequest("POST", "/cocktail",
		strings.NewReader(`{"therapy":"Combination","lineages":["ST22"],"threshold":0.9}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	ComponentHandler(a.cocktail).ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "vB_SauP-S24")
}

func TestCocktailNullJSONBody(t *testing.T) {
	a := newTestApp()

	req := httptest.NewRequest("POST", "/cocktail", strings.NewReader(`null`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	ComponentHandler(a.cocktail).ServeHTTP(rec, req)

	assert.Equal(t, 500, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestCocktailRejectsGet(t *testing.T) {
	a := newTestApp()

	rec := httptest.NewRecorder()
	ComponentHandler(a.cocktail).ServeHTTP(rec, httptest.NewRequest("GET", "/cocktail", nil))

	assert.Equal(t, 405, rec.Code)
}

func TestUploadFasta(t *testing.T) {
	a := newTestApp()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("genome", "isolate.fasta")
	require.NoError(t, err)
	_, err = part.Write([]byte(">seq1\nACGT\n>seq2\nGGCC\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	ComponentHandler(a.upload).ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "isolate.fasta")
	assert.Contains(t, body, "<td>2</td>")
}

func TestExportCSV(t *testing.T) {
	a := newTestApp()

	rec := httptest.NewRecorder()
	a.export(rec, httptest.NewRequest("POST", "/export", nil))

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "isolate_id,date,country"))
}

func TestExportCocktailCSV(t *testing.T) {
	a := newTestApp()

	form := url.Values{
		"therapy":   {"Phage"},
		"lineage":   {"ST5", "ST8"},
		"threshold": {"90"},
	}
	req := httptest.NewRequest("POST", "/export/cocktail", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	a.exportCocktail(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "component,target,coverage,lineages"))
	assert.Contains(t, body, "vB_SauM-C1")
}

func TestExportCocktailRejectsGet(t *testing.T) {
	a := newTestApp()

	rec := httptest.NewRecorder()
	a.exportCocktail(rec, httptest.NewRequest("GET", "/export/cocktail", nil))

	assert.Equal(t, 405, rec.Code)
}

func TestCountSequencesFastq(t *testing.T) {
	content := []byte("@read1\nACGT\n+\nIIII\n@read2\nGGCC\n+\nIIII\n")
	assert.Equal(t, 2, countSequences(content))
}

func TestRateLimiterBlocksBursts(t *testing.T) {
	limiter := newIPLimiter(rate.Every(time.Hour), 2)

	handler := limiter.wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))

	codes := make([]int, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}

	assert.Equal(t, []int{200, 200, 429}, codes)
}
