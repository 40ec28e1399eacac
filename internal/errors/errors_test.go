package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "missing argument",
			code:    "E001",
			wantMsg: "Missing required argument",
			wantCat: CategoryCLI,
		},
		{
			name:    "unknown template",
			code:    "E003",
			wantMsg: "Unknown template",
			wantCat: CategoryTemplate,
		},
		{
			name:    "output failure",
			code:    "E005",
			wantMsg: "Failed to write output",
			wantCat: CategoryIO,
		},
		{
			name:    "invalid option value",
			code:    "E010",
			wantMsg: "Invalid option value",
			wantCat: CategoryCLI,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryIO, "file %q not found", "README.md")
	if err.Message != `file "README.md" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `file "README.md" not found`)
	}
	if err.Category != CategoryIO {
		t.Errorf("Category = %q, want %q", err.Category, CategoryIO)
	}
}

func TestError_Error(t *testing.T) {
	err := New("E002")
	if got, want := err.Error(), "E002: Unknown section type"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = New("E004").WithPath("tmpl/basic.md").Wrap(fs.ErrNotExist)
	want := "E004: Failed to load template (tmpl/basic.md): file does not exist"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	plain := &Error{Message: "test error"}
	if plain.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "test error")
	}
}

func TestError_Unwrap(t *testing.T) {
	err := New("E004").Wrap(fs.ErrNotExist)
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see the wrapped cause")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E005") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	e := New("E001")
	if FromError(e, "E005") != e {
		t.Error("FromError should return *Error as-is")
	}

	wrapped := fmt.Errorf("context: %w", e)
	if FromError(wrapped, "E005") != e {
		t.Error("FromError should unwrap to the inner *Error")
	}

	std := stderrors.New("disk full")
	result := FromError(std, "E005")
	if result.Wrapped != std {
		t.Error("standard error should be wrapped")
	}
	if result.Code != "E005" {
		t.Errorf("Code = %q, want E005", result.Code)
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("badges: %w", New("E001"))
	if !HasCode(err, "E001") {
		t.Error("HasCode should find E001 through wrapping")
	}
	if HasCode(err, "E002") {
		t.Error("HasCode should not match a different code")
	}
	if HasCode(stderrors.New("plain"), "E001") {
		t.Error("HasCode should be false for plain errors")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E004").
		WithPath("docs/README.tmpl.md").
		WithSuggestion("Check the --template-file path").
		Wrap(fs.ErrPermission)

	formatted := err.Format()
	for _, want := range []string{"E004", "Failed to load template", "docs/README.tmpl.md", "Hint:", "Cause:"} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() missing %q:\n%s", want, formatted)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E001").WithDetail("--username and --repo are required")

	var decoded map[string]any
	if jerr := json.Unmarshal([]byte(err.FormatJSON()), &decoded); jerr != nil {
		t.Fatalf("FormatJSON produced invalid JSON: %v", jerr)
	}
	if decoded["code"] != "E001" {
		t.Errorf("code = %v, want E001", decoded["code"])
	}
	if decoded["category"] != string(CategoryCLI) {
		t.Errorf("category = %v, want %s", decoded["category"], CategoryCLI)
	}
	if decoded["detail"] != "--username and --repo are required" {
		t.Errorf("detail = %v", decoded["detail"])
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six seven eight nine ten", 15)
	for _, line := range lines {
		if len(line) > 15 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if strings.Join(lines, " ") != "one two three four five six seven eight nine ten" {
		t.Errorf("wrapText lost words: %v", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText of empty text should be nil")
	}
}
