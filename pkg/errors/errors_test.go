package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidScale, "scale must be positive, got %s", "-1")

	if err.Code != ErrCodeInvalidScale {
		t.Errorf("code = %s, want %s", err.Code, ErrCodeInvalidScale)
	}
	if err.Message != "scale must be positive, got -1" {
		t.Errorf("message = %q", err.Message)
	}
	want := "INVALID_SCALE: scale must be positive, got -1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodePDFWrite, cause, "writing %s", "out.pdf")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	want := "PDF_WRITE: writing out.pdf: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeListNotFound, "could not find card list")

	if !Is(err, ErrCodeListNotFound) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodePDFRead) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeListNotFound) {
		t.Error("Is should not match a plain error")
	}
	if Is(nil, ErrCodeListNotFound) {
		t.Error("Is should not match nil")
	}

	// Codes survive wrapping with %w.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeListNotFound) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if code := GetCode(New(ErrCodeNoKnownCards, "none found")); code != ErrCodeNoKnownCards {
		t.Errorf("GetCode = %s, want %s", code, ErrCodeNoKnownCards)
	}
	if code := GetCode(stderrors.New("plain")); code != "" {
		t.Errorf("GetCode of plain error = %s, want empty", code)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeLayoutInfeasible, "sheet too small for card")
	if msg := UserMessage(err); msg != "sheet too small for card" {
		t.Errorf("UserMessage = %q", msg)
	}
	if msg := UserMessage(stderrors.New("plain failure")); msg != "plain failure" {
		t.Errorf("UserMessage of plain error = %q", msg)
	}
}
