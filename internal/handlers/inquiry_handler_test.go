package handlers

import (
	"net/http"
	"testing"

	"campaign-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func newInquiryTestApp(repo *memInquiryRepo) *fiber.App {
	log := testLogger()
	handler := NewInquiryHandler(services.NewInquiryService(repo, log), log)

	app := fiber.New()
	app.Post("/api/v1/contact", handler.CreateInquiry)
	app.Get("/api/v1/admin/contact", handler.ListInquiries)
	app.Patch("/api/v1/admin/contact/:id", handler.ToggleInquiryRead)
	return app
}

func TestCreateInquiry_MissingMessage(t *testing.T) {
	repo := newMemInquiryRepo()
	app := newInquiryTestApp(repo)

	resp, err := postJSON(app, "/api/v1/contact", `{"name":"Ram","email":"ram@example.com"}`)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if len(repo.inquiries) != 0 {
		t.Errorf("expected no stored inquiry, got %d", len(repo.inquiries))
	}
}

func TestCreateInquiry_DefaultsSubject(t *testing.T) {
	repo := newMemInquiryRepo()
	app := newInquiryTestApp(repo)

	resp, err := postJSON(app, "/api/v1/contact", `{"name":"Ram","email":"ram@example.com","message":"Namaste"}`)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp)
	data, ok := env.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected inquiry object, got %T", env.Data)
	}
	if data["subject"] != "No Subject" {
		t.Errorf("expected default subject, got %v", data["subject"])
	}
}

func TestToggleInquiryRead_UnknownID(t *testing.T) {
	app := newInquiryTestApp(newMemInquiryRepo())

	req, err := app.Test(newRequest(http.MethodPatch, "/api/v1/admin/contact/99"))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if req.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", req.StatusCode)
	}
}

func TestToggleInquiryRead_InvalidID(t *testing.T) {
	app := newInquiryTestApp(newMemInquiryRepo())

	resp, err := app.Test(newRequest(http.MethodPatch, "/api/v1/admin/contact/abc"))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
