package market

import (
	"context"
	"errors"
	"testing"
)

func validDraft() Draft {
	return Draft{
		Title:      "Keychain",
		Price:      "25",
		CategoryID: 2,
		ImageName:  "keychain.jpg",
		Image:      []byte{0xff, 0xd8},
	}
}

func TestSubmitRejectsMissingRequiredFields(t *testing.T) {
	cases := map[string]func(*Draft){
		"title":    func(d *Draft) { d.Title = "" },
		"price":    func(d *Draft) { d.Price = "" },
		"category": func(d *Draft) { d.CategoryID = 0 },
		"image":    func(d *Draft) { d.Image = nil },
	}
	for name, blank := range cases {
		backend := &fakeBackend{}
		form := NewCreateForm(backend, adminSession(), nil)
		form.Draft = validDraft()
		blank(&form.Draft)
		if _, err := form.Submit(context.Background()); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
		if backend.createCalls != 0 {
			t.Errorf("%s: a bad draft must produce zero network calls", name)
		}
		if form.Message != ValidationMessage {
			t.Errorf("%s: message %q", name, form.Message)
		}
		if form.Busy {
			t.Errorf("%s: busy flag left set", name)
		}
	}
}

func TestSubmitOmitsEmptyDiscount(t *testing.T) {
	backend := &fakeBackend{}
	form := NewCreateForm(backend, adminSession(), nil)
	form.Draft = validDraft()
	backTo, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if backTo != 2 {
		t.Fatalf("must navigate back to category 2, got %d", backTo)
	}
	if backend.lastCreated.DiscountPrice != "" {
		t.Fatalf("empty discount must stay empty, got %q", backend.lastCreated.DiscountPrice)
	}
	if backend.lastCreated.UserID != 5 {
		t.Fatalf("owner user id not forwarded: %d", backend.lastCreated.UserID)
	}
}

func TestSubmitSurfacesServerMessage(t *testing.T) {
	backend := &fakeBackend{createStatus: "error", createMessage: "image too large"}
	form := NewCreateForm(backend, adminSession(), nil)
	form.Draft = validDraft()
	if _, err := form.Submit(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
	if form.Message != "image too large" {
		t.Fatalf("server message lost: %q", form.Message)
	}
	if form.Busy {
		t.Fatalf("busy flag must be cleared on failure")
	}
}

func TestSubmitGenericMessageWhenServerSilent(t *testing.T) {
	backend := &fakeBackend{createStatus: "error"}
	form := NewCreateForm(backend, adminSession(), nil)
	form.Draft = validDraft()
	if _, err := form.Submit(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
	if form.Message != "unknown error" {
		t.Fatalf("got %q", form.Message)
	}
}
