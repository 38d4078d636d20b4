package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pro6vastgoed/cms-backend/internal/blob"
	"github.com/pro6vastgoed/cms-backend/internal/content"
	"github.com/pro6vastgoed/cms-backend/internal/docstore"
	"github.com/pro6vastgoed/cms-backend/internal/render"
	"github.com/pro6vastgoed/cms-backend/internal/upload"
)

type testEnv struct {
	router *gin.Engine
	store  *docstore.MemoryClient
	blobs  *blob.Memory
	media  *content.MediaRepo
}

func newTestEnv(t *testing.T, maxUpload int64) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := docstore.NewMemory()
	blobs := blob.NewMemory("http://blob.test")

	pages := content.NewPagesRepo(store)
	projects := content.NewProjectsRepo(store)
	settings := content.NewSettingsRepo(store)
	media := content.NewMediaRepo(store)

	handler := NewHandler(HandlerDeps{
		Pages:     pages,
		Projects:  projects,
		Settings:  settings,
		Media:     media,
		Seeder:    content.NewSeeder(store),
		Uploads:   upload.NewPipeline(blobs, maxUpload),
		Blobs:     blobs,
		Renderer:  render.NewGenerator(projects, settings),
		AssetsDir: t.TempDir(),
		QuotaMB:   100,
	})

	router := BuildRouter(RouterDeps{
		ServiceName:    "test-service",
		Version:        "test",
		StoreKind:      "memory",
		AllowedOrigins: []string{"*"},
		AuthClient:     nil,
		Handler:        handler,
	})

	return &testEnv{router: router, store: store, blobs: blobs, media: media}
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func seedProject(t *testing.T, e *testEnv, id string, order int, published bool) {
	t.Helper()
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	repo := content.NewProjectsRepo(e.store)
	require.NoError(t, repo.Create(context.Background(), content.Project{
		ID:          id,
		Slug:        id,
		Title:       "Project " + id,
		Location:    "Alkmaar",
		HeroImage:   "/images/" + id + ".jpg",
		Images:      []string{"/images/" + id + ".jpg"},
		Description: "desc",
		Sections:    []content.Section{},
		Order:       order,
		Published:   published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}))
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestEnv(t, 10<<20)

	rr := e.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "test-service", resp.Service)
	assert.Equal(t, "memory", resp.Store)
}

func TestPublicProjectsOnlyPublished(t *testing.T) {
	e := newTestEnv(t, 10<<20)
	seedProject(t, e, "b", 2, true)
	seedProject(t, e, "a", 1, true)
	seedProject(t, e, "draft", 3, false)

	rr := e.do(http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var projects []content.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &projects))
	require.Len(t, projects, 2)
	assert.Equal(t, "a", projects[0].ID)
	assert.Equal(t, "b", projects[1].ID)
}

func TestAdminProjectsIncludeDrafts(t *testing.T) {
	e := newTestEnv(t, 10<<20)
	seedProject(t, e, "a", 1, true)
	seedProject(t, e, "draft", 2, false)

	rr := e.do(http.MethodGet, "/api/admin/projects", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var projects []content.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &projects))
	assert.Len(t, projects, 2)
}

func TestProjectCRUD(t *testing.T) {
	e := newTestEnv(t, 10<<20)

	create := e.do(http.MethodPost, "/api/admin/projects", map[string]any{
		"id": "nieuw", "slug": "nieuw", "title": "Nieuw", "location": "Alkmaar",
		"order": 1, "published": false,
	})
	require.Equal(t, http.StatusCreated, create.Code)

	get := e.do(http.MethodGet, "/api/admin/projects/nieuw", nil)
	require.Equal(t, http.StatusOK, get.Code)

	update := e.do(http.MethodPut, "/api/admin/projects/nieuw", map[string]any{"published": true})
	require.Equal(t, http.StatusOK, update.Code)

	pub := e.do(http.MethodGet, "/api/projects", nil)
	var projects []content.Project
	require.NoError(t, json.Unmarshal(pub.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "Nieuw", projects[0].Title)

	del := e.do(http.MethodDelete, "/api/admin/projects/nieuw", nil)
	require.Equal(t, http.StatusOK, del.Code)

	gone := e.do(http.MethodGet, "/api/admin/projects/nieuw", nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestCreateProjectRequiresID(t *testing.T) {
	e := newTestEnv(t, 10<<20)
	rr := e.do(http.MethodPost, "/api/admin/projects", map[string]any{"title": "No ID"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSettingsNullBeforeSeed(t *testing.T) {
	e := newTestEnv(t, 10<<20)

	rr := e.do(http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "null", strings.TrimSpace(rr.Body.String()))
}

func TestSettingsUpdateAndRead(t *testing.T) {
	e := newTestEnv(t, 10<<20)

	put := e.do(http.MethodPut, "/api/admin/settings", map[string]any{
		"siteName": "Pro6",
		"logo":     "/images/logo.png",
		"footer": map[string]any{
			"phone":   "072 785 5228",
			"email":   "info@pro6vastgoed.nl",
			"address": map[string]any{"street": "Laat 88", "city": "1811 EK Alkmaar"},
		},
	})
	require.Equal(t, http.StatusOK, put.Code)

	// Admin read returns the full shape.
	admin := e.do(http.MethodGet, "/api/admin/settings", nil)
	require.Equal(t, http.StatusOK, admin.Code)
	var full content.SiteSettings
	require.NoError(t, json.Unmarshal(admin.Body.Bytes(), &full))
	assert.Equal(t, "Pro6", full.SiteName)
	assert.Equal(t, "/images/logo.png", full.Logo)

	// Public read is the flattened contact projection, without admin-only
	// fields like the logo.
	pub := e.do(http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, pub.Code)
	var projection map[string]any
	require.NoError(t, json.Unmarshal(pub.Body.Bytes(), &projection))
	assert.Equal(t, "Pro6", projection["siteName"])
	assert.Equal(t, "072 785 5228", projection["phone"])
	assert.NotContains(t, projection, "logo")
	assert.NotContains(t, projection, "navigation")
}

func TestSeedEndpoint(t *testing.T) {
	e := newTestEnv(t, 10<<20)

	hint := e.do(http.MethodGet, "/api/seed", nil)
	require.Equal(t, http.StatusOK, hint.Code)
	assert.Contains(t, hint.Body.String(), "POST")

	// GET must not have seeded anything.
	empty := e.do(http.MethodGet, "/api/projects", nil)
	assert.Equal(t, "[]", strings.TrimSpace(empty.Body.String()))

	seed := e.do(http.MethodPost, "/api/seed", nil)
	require.Equal(t, http.StatusOK, seed.Code)
	var result map[string]any
	require.NoError(t, json.Unmarshal(seed.Body.Bytes(), &result))
	assert.Equal(t, true, result["seeded"])
	assert.EqualValues(t, 4, result["pages"])

	again := e.do(http.MethodPost, "/api/seed", nil)
	require.Equal(t, http.StatusOK, again.Code)
	require.NoError(t, json.Unmarshal(again.Body.Bytes(), &result))
	assert.Equal(t, false, result["seeded"])
}

func TestProjectPageEndpoint(t *testing.T) {
	e := newTestEnv(t, 10<<20)
	seedProject(t, e, "dok6", 1, true)

	rr := e.do(http.MethodGet, "/api/project-page/dok6", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Project dok6")

	missing := e.do(http.MethodGet, "/api/project-page/nope", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func multipartUpload(t *testing.T, filename, contentType, payload string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func doUpload(e *testEnv, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func TestUploadSuccess(t *testing.T) {
	e := newTestEnv(t, 10<<20)
	body, ct := multipartUpload(t, "hero.jpg", "image/jpeg", "jpegdata")

	rr := doUpload(e, body, ct)
	require.Equal(t, http.StatusOK, rr.Code)

	var result upload.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "hero.jpg", result.Name)
	assert.Equal(t, content.MediaImage, result.Type)
	assert.True(t, strings.HasPrefix(result.Path, "images/"))
	assert.True(t, e.blobs.Has(result.Path))
}

func TestUploadUnsupportedTypeIs415(t *testing.T) {
	e := newTestEnv(t, 10<<20)
	body, ct := multipartUpload(t, "doc.pdf", "application/pdf", "pdfdata")

	rr := doUpload(e, body, ct)
	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
	assert.Zero(t, e.blobs.PutCalls())
}

func TestUploadTooLargeIs413(t *testing.T) {
	e := newTestEnv(t, 8)
	body, ct := multipartUpload(t, "big.png", "image/png", "way more than eight bytes")

	rr := doUpload(e, body, ct)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Zero(t, e.blobs.PutCalls())
}

func TestUploadStoreFailureIs500(t *testing.T) {
	e := newTestEnv(t, 10<<20)
	e.blobs.PutErr = errors.New("bucket down")
	body, ct := multipartUpload(t, "hero.jpg", "image/jpeg", "jpegdata")

	rr := doUpload(e, body, ct)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestUploadWithoutFileIs400(t *testing.T) {
	e := newTestEnv(t, 10<<20)
	rr := e.do(http.MethodPost, "/api/admin/upload", map[string]any{"not": "a file"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteFileSucceedsDespiteBlobFailure(t *testing.T) {
	e := newTestEnv(t, 10<<20)
	e.blobs.DeleteErr = errors.New("bucket down")

	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, e.media.Create(context.Background(), content.MediaFile{
		ID: "m1", Name: "hero.jpg", URL: "http://blob.test/images/hero.jpg",
		Path: "images/hero.jpg", Type: content.MediaImage, Size: 10, CreatedAt: now,
	}))

	rr := e.do(http.MethodPost, "/api/admin/delete", map[string]any{
		"url": "http://blob.test/images/hero.jpg",
		"id":  "m1",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	// The metadata record is gone even though the blob delete failed.
	files, err := e.media.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDeleteFileRequiresURL(t *testing.T) {
	e := newTestEnv(t, 10<<20)
	rr := e.do(http.MethodPost, "/api/admin/delete", map[string]any{"id": "m1"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestStorageUsage(t *testing.T) {
	e := newTestEnv(t, 10<<20)
	_, err := e.blobs.Put(context.Background(), "images/a.jpg", "image/jpeg", strings.NewReader("0123456789"))
	require.NoError(t, err)

	rr := e.do(http.MethodGet, "/api/admin/storage-usage", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var usage map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &usage))
	assert.EqualValues(t, 10, usage["usedBytes"])
	assert.EqualValues(t, 100, usage["quotaMB"])
	assert.EqualValues(t, 1, usage["files"])
}

func TestBlobFilesListing(t *testing.T) {
	e := newTestEnv(t, 10<<20)
	_, err := e.blobs.Put(context.Background(), "images/a.jpg", "image/jpeg", strings.NewReader("x"))
	require.NoError(t, err)

	rr := e.do(http.MethodGet, "/api/admin/blob-files", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var files []blob.ObjectInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &files))
	require.Len(t, files, 1)
	assert.Equal(t, "images/a.jpg", files[0].Key)
}

func TestStaticImagesEmptyDirIsEmptyList(t *testing.T) {
	e := newTestEnv(t, 10<<20)
	rr := e.do(http.MethodGet, "/api/static-images", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestUnknownRouteIs404(t *testing.T) {
	e := newTestEnv(t, 10<<20)
	rr := e.do(http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
