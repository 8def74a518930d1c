package contracts

import (
	"strings"
	"testing"
)

func TestGenerateKeyFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"schemas/listing-detail/v1.json", "ListingDetailPayload/1.0.0"},
		{"schemas/listing-detail/v2.json", "ListingDetailPayload/2.0.0"},
		{"schemas/unexpected.json", ""},
	}
	for _, tt := range tests {
		if got := generateKeyFromPath(tt.path); got != tt.want {
			t.Errorf("generateKeyFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestValidatePayloadAcceptsMinimalListing(t *testing.T) {
	body := []byte(`{"id": "a1", "internalId": "i-1", "slug": "casa-uno"}`)
	if err := ValidatePayload("ListingDetailPayload", "1.0.0", body); err != nil {
		t.Fatalf("ValidatePayload() error = %v", err)
	}
}

func TestValidatePayloadRejectsMissingRequired(t *testing.T) {
	body := []byte(`{"title": "sin identificadores"}`)
	err := ValidatePayload("ListingDetailPayload", "1.0.0", body)
	if err == nil {
		t.Fatal("ValidatePayload() accepted a payload without required fields")
	}
}

func TestValidatePayloadRejectsWrongTypes(t *testing.T) {
	body := []byte(`{"id": "a1", "internalId": "i-1", "slug": "casa-uno", "price": "mucho"}`)
	if err := ValidatePayload("ListingDetailPayload", "1.0.0", body); err == nil {
		t.Fatal("ValidatePayload() accepted a string price")
	}
}

func TestValidatePayloadUnknownSchema(t *testing.T) {
	err := ValidatePayload("NoSuchPayload", "9.0.0", []byte(`{}`))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("error = %v, want a schema-not-found error", err)
	}
}

func TestValidatePayloadRejectsInvalidJSON(t *testing.T) {
	if err := ValidatePayload("ListingDetailPayload", "1.0.0", []byte(`{`)); err == nil {
		t.Fatal("ValidatePayload() accepted malformed JSON")
	}
}
