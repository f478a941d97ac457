package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "validation failed", detailsOK: true},
		{code: CodePrecondition, status: http.StatusUnprocessableEntity, publicMsg: "required selection missing", detailsOK: true},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "resource not found"},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "internal server error"},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable {
			t.Fatalf("code %s should not be retryable", tt.code)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing code")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing code" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	base.WithDetails(map[string]string{"code": "too short"})
	if base.Details() == nil {
		t.Fatalf("details should be preserved")
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodePrecondition, cause, "ctx")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodePrecondition {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestAsAndHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeNotFound, "no order"))
	if got := As(err); got == nil || got.Code() != CodeNotFound {
		t.Fatalf("As failed to return typed error")
	}
	if !HasCode(err, CodeNotFound) {
		t.Fatalf("expected HasCode to match")
	}
	if HasCode(stdErrors.New("plain"), CodeNotFound) {
		t.Fatalf("plain errors carry no code")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should return nil")
	}
}

func TestDumpWalksChain(t *testing.T) {
	err := fmt.Errorf("handler: %w", Wrap(CodeInternal, stdErrors.New("root"), "wrapped"))
	dump := Dump(err)
	if dump.Code != CodeInternal {
		t.Fatalf("expected internal code, got %s", dump.Code)
	}
	if dump.Status != 500 {
		t.Fatalf("expected status 500, got %d", dump.Status)
	}
	if len(dump.Chain) != 3 {
		t.Fatalf("expected 3 chain entries, got %d: %v", len(dump.Chain), dump.Chain)
	}
	if Dump(nil).TopMessage != "" {
		t.Fatalf("expected empty dump for nil")
	}
}

func TestDumpBoundsChain(t *testing.T) {
	err := New(CodeNotFound, "missing")
	var wrapped error = err
	for i := 0; i < maxChainDepth+4; i++ {
		wrapped = fmt.Errorf("layer %d: %w", i, wrapped)
	}
	dump := Dump(wrapped)
	if len(dump.Chain) != maxChainDepth {
		t.Fatalf("expected %d chain entries, got %d", maxChainDepth, len(dump.Chain))
	}
	if dump.Code != CodeNotFound {
		t.Fatalf("expected not found code, got %s", dump.Code)
	}
}
