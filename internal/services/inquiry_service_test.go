package services

import (
	"context"
	"errors"
	"testing"
)

func TestInquiryService_Create_Defaults(t *testing.T) {
	svc := NewInquiryService(newFakeInquiryRepo(), testLogger())

	inquiry, err := svc.Create(context.Background(), CreateInquiryInput{
		Name:    "Ram Thapa",
		Email:   "ram@example.com",
		Message: "Namaste",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if inquiry.Subject != "No Subject" {
		t.Errorf("expected default subject, got %q", inquiry.Subject)
	}
	if inquiry.IsRead {
		t.Error("new inquiries must start unread")
	}
}

func TestInquiryService_Create_RequiresFields(t *testing.T) {
	svc := NewInquiryService(newFakeInquiryRepo(), testLogger())

	cases := []CreateInquiryInput{
		{Email: "a@b.com", Message: "hi"},
		{Name: "A", Message: "hi"},
		{Name: "A", Email: "a@b.com"},
	}
	for _, input := range cases {
		_, err := svc.Create(context.Background(), input)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("input %+v: expected validation error, got %v", input, err)
		}
	}
}

func TestInquiryService_ToggleRead_FlipsBothWays(t *testing.T) {
	svc := NewInquiryService(newFakeInquiryRepo(), testLogger())
	ctx := context.Background()

	inquiry, err := svc.Create(ctx, CreateInquiryInput{Name: "A", Email: "a@b.com", Message: "hi"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	toggled, err := svc.ToggleRead(ctx, inquiry.ID)
	if err != nil {
		t.Fatalf("ToggleRead error: %v", err)
	}
	if !toggled.IsRead {
		t.Error("expected read after first toggle")
	}

	toggled, err = svc.ToggleRead(ctx, inquiry.ID)
	if err != nil {
		t.Fatalf("ToggleRead error: %v", err)
	}
	if toggled.IsRead {
		t.Error("expected unread after second toggle")
	}
}

func TestInquiryService_ToggleRead_NotFound(t *testing.T) {
	svc := NewInquiryService(newFakeInquiryRepo(), testLogger())

	if _, err := svc.ToggleRead(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInquiryService_Delete_NotFound(t *testing.T) {
	svc := NewInquiryService(newFakeInquiryRepo(), testLogger())

	if err := svc.Delete(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
