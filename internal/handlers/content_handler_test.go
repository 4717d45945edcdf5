package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campaign-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func newContentTestApp(repo *memContentRepo) *fiber.App {
	log := testLogger()
	handler := NewContentHandler(
		services.NewContentService(repo, log),
		services.NewPageService(repo, log),
		log,
	)

	app := fiber.New()
	app.Get("/api/v1/content", handler.ListContent)
	app.Get("/api/v1/pages/:page", handler.ResolvePage)
	app.Get("/api/v1/settings", handler.ListSettings)
	app.Post("/api/v1/admin/content", handler.UpsertContent)
	app.Post("/api/v1/admin/settings", handler.SaveSettings)
	return app
}

func postJSON(app *fiber.App, path, body string) (*http.Response, error) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return app.Test(req)
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return env
}

func TestUpsertContent_SecondSaveOverwrites(t *testing.T) {
	repo := newMemContentRepo()
	app := newContentTestApp(repo)

	resp, err := postJSON(app, "/api/v1/admin/content", `{"page":"home","key":"hero","type":"HERO","valueEn":"v1"}`)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first save: expected 200, got %d", resp.StatusCode)
	}

	resp, err = postJSON(app, "/api/v1/admin/content", `{"page":"home","key":"hero","type":"HERO","valueEn":"v2"}`)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("second save: expected 200, got %d", resp.StatusCode)
	}

	if len(repo.contents) != 1 {
		t.Fatalf("expected one stored record, got %d", len(repo.contents))
	}
	for _, c := range repo.contents {
		if c.ValueEn != "v2" {
			t.Errorf("expected overwritten value v2, got %q", c.ValueEn)
		}
	}
}

func TestUpsertContent_MissingKey(t *testing.T) {
	app := newContentTestApp(newMemContentRepo())

	resp, err := postJSON(app, "/api/v1/admin/content", `{"page":"home","valueEn":"x"}`)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestResolvePage_LocaleFallback(t *testing.T) {
	repo := newMemContentRepo()
	app := newContentTestApp(repo)

	resp, err := postJSON(app, "/api/v1/admin/content", `{"page":"about","key":"bio_intro","type":"RICH_TEXT","valueEn":"<p>English</p>"}`)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("seed failed: err=%v status=%d", err, resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pages/about?locale=np", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp)
	data, ok := env.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected object data, got %T", env.Data)
	}
	bio, ok := data["bio_intro"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected bio_intro in resolved page, got %v", data)
	}
	// No Nepali value stored, so the English one is served.
	if bio["text"] != "<p>English</p>" {
		t.Errorf("expected English fallback, got %v", bio["text"])
	}
}

func TestSaveSettings_RejectsMissingArray(t *testing.T) {
	app := newContentTestApp(newMemContentRepo())

	resp, err := postJSON(app, "/api/v1/admin/settings", `{"settings":null}`)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp)
	if env.Message != "Settings must be an array" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestSaveSettings_StoresUnderSettingsPage(t *testing.T) {
	repo := newMemContentRepo()
	app := newContentTestApp(repo)

	resp, err := postJSON(app, "/api/v1/admin/settings", `{"settings":[{"key":"site_title","valueEn":"My Campaign"}]}`)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}

	env := decodeEnvelope(t, resp)
	list, ok := env.Data.([]interface{})
	if !ok || len(list) != 1 {
		t.Fatalf("expected one setting, got %v", env.Data)
	}
}
