package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/thenoetrevino/folio/internal/models"
)

// ============================================================================
// Test Helpers
// ============================================================================

type stringerData struct{ Name string }

func (s stringerData) String() string { return "pretty " + s.Name }

// capture swaps *target (os.Stdout or os.Stderr) for a pipe while fn runs
func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	old := *target
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	*target = w

	fn()

	_ = w.Close()
	*target = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func decodeEnvelope(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
	}
	return result
}

// ============================================================================
// Success Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	p := models.NewProject("p1")
	p.Title = "Folio"

	output := capture(t, &os.Stdout, func() {
		if err := (&OutputFormatter{JSON: true}).Success(p); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	result := decodeEnvelope(t, output)
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]interface{})
	if data["title"] != "Folio" || data["id"] != "p1" {
		t.Errorf("Expected project JSON keys, got %v", data)
	}
}

func TestOutputFormatter_Success_Quiet_WithID(t *testing.T) {
	output := capture(t, &os.Stdout, func() {
		_ = (&OutputFormatter{Quiet: true}).Success(models.NewProject("abc-123"))
	})

	if strings.TrimSpace(output) != "abc-123" {
		t.Errorf("Expected 'abc-123', got %q", output)
	}
}

func TestOutputFormatter_Success_Quiet_WithoutID(t *testing.T) {
	output := capture(t, &os.Stdout, func() {
		_ = (&OutputFormatter{Quiet: true}).Success("plain string output")
	})

	// Falls through to pretty print when there is no GetID method
	if !strings.Contains(output, "plain string output") {
		t.Errorf("Expected output to contain the string, got %q", output)
	}
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	tests := []struct {
		name          string
		data          interface{}
		shouldContain string
	}{
		{"stringer", stringerData{Name: "x"}, "pretty x"},
		{"map", map[string]interface{}{"key": "value"}, "key"},
		{"slice", []string{"item1", "item2"}, "item1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := capture(t, &os.Stdout, func() {
				_ = (&OutputFormatter{}).Success(tt.data)
			})
			if !strings.Contains(output, tt.shouldContain) {
				t.Errorf("Expected output to contain %q, got %q", tt.shouldContain, output)
			}
		})
	}
}

// ============================================================================
// Error Tests
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	output := capture(t, &os.Stdout, func() {
		_ = (&OutputFormatter{JSON: true}).ErrorWithSuggestion("NOT_FOUND", "project not found", "run folio project list")
	})

	result := decodeEnvelope(t, output)
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]interface{})
	if errData["code"] != "NOT_FOUND" {
		t.Errorf("Expected code NOT_FOUND, got %v", errData["code"])
	}
	if errData["suggestion"] != "run folio project list" {
		t.Errorf("Expected suggestion, got %v", errData["suggestion"])
	}
}

func TestOutputFormatter_Error_JSONOmitsEmptySuggestion(t *testing.T) {
	output := capture(t, &os.Stdout, func() {
		_ = (&OutputFormatter{JSON: true}).Error("ERROR", "boom")
	})

	errData := decodeEnvelope(t, output)["error"].(map[string]interface{})
	if _, ok := errData["suggestion"]; ok {
		t.Error("Expected no suggestion key")
	}
}

func TestOutputFormatter_Error_HumanReadableGoesToStderr(t *testing.T) {
	var stdout string
	stderr := capture(t, &os.Stderr, func() {
		stdout = capture(t, &os.Stdout, func() {
			_ = (&OutputFormatter{}).ErrorWithSuggestion("ERROR", "something broke", "try again")
		})
	})

	if stdout != "" {
		t.Errorf("Expected nothing on stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "something broke") || !strings.Contains(stderr, "try again") {
		t.Errorf("Expected message and suggestion on stderr, got %q", stderr)
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	want := fmt.Errorf("%w: p1", models.ErrProjectNotFound)

	var got error
	output := capture(t, &os.Stdout, func() {
		got = (&OutputFormatter{JSON: true}).Fail(want, "")
	})

	if !errors.Is(got, models.ErrProjectNotFound) || !Reported(got) {
		t.Errorf("Expected Fail to wrap the original error as reported, got %v", got)
	}
	errData := decodeEnvelope(t, output)["error"].(map[string]interface{})
	if errData["code"] != "NOT_FOUND" {
		t.Errorf("Expected NOT_FOUND code, got %v", errData["code"])
	}
}
