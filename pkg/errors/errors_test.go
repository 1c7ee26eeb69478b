package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeFileNotFound, cause, "open birthdays.txt")

	if err.Code != ErrCodeFileNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeFileNotFound)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidDate, "test"), ErrCodeInvalidDate, true},
		{"non-matching code", New(ErrCodeInvalidDate, "test"), ErrCodeInvalidRecord, false},
		{"wrapped error", Wrap(ErrCodeInvalidRecord, New(ErrCodeInvalidDate, "inner"), "outer"), ErrCodeInvalidRecord, true},
		{"fmt wrapped", fmt.Errorf("ctx: %w", New(ErrCodeInvalidName, "x")), ErrCodeInvalidName, true},
		{"record error", &RecordError{Line: 3, Err: New(ErrCodeInvalidRecord, "x")}, ErrCodeInvalidRecord, true},
		{"non-Error type", errors.New("plain error"), ErrCodeInvalidInput, false},
		{"nil error", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidFormat, "test"), ErrCodeInvalidFormat},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	if !IsInvalid(New(ErrCodeInvalidConfig, "x")) {
		t.Error("INVALID_CONFIG should be invalid")
	}
	if IsInvalid(New(ErrCodeInternal, "x")) {
		t.Error("INTERNAL_ERROR should not be invalid")
	}
	if IsInvalid(errors.New("plain")) {
		t.Error("plain error should not be invalid")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"Error with cause", Wrap(ErrCodeInvalidRecord, errors.New("boom"), "bad year"), "bad year: boom"},
		{"record error", &RecordError{Line: 7, Err: New(ErrCodeInvalidRecord, "expected 4 fields, got 3")}, "line 7: expected 4 fields, got 3"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRecordError(t *testing.T) {
	inner := New(ErrCodeInvalidDate, "month out of range: 13")
	err := &RecordError{Line: 2, Err: inner}

	if err.Error() != "line 2: INVALID_DATE: month out of range: 13" {
		t.Errorf("Error() = %q", err.Error())
	}

	var re *RecordError
	if !errors.As(fmt.Errorf("batch: %w", err), &re) || re.Line != 2 {
		t.Error("errors.As should find RecordError through wrapping")
	}
}
