package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestClampWidth(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, MinTerminalWidth},
		{MinTerminalWidth - 1, MinTerminalWidth},
		{80, 80},
		{MaxContentWidth + 50, MaxContentWidth},
	}
	for _, tt := range tests {
		if got := clampWidth(tt.in); got != tt.want {
			t.Errorf("clampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHeaderRender(t *testing.T) {
	out := NewHeader("Form Validation", "authscreen validate",
		Param{Key: "Mode", Value: "Login"},
		Param{Key: "Email", Value: "x@y.com"},
	).SetWidth(80).Render()

	for _, want := range []string{"FORM VALIDATION", "authscreen validate", "Mode:", "Login", "x@y.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Mode:") > strings.Index(out, "Email:") {
		t.Error("params rendered out of order")
	}
}

func TestHeaderWithoutParams(t *testing.T) {
	out := NewHeader("Config", "authscreen config path").SetWidth(70).String()
	// Border, title, command, border
	if lines := strings.Count(out, "\n") + 1; lines != 4 {
		t.Errorf("header has %d lines, want 4:\n%s", lines, out)
	}
}

func TestResultRender(t *testing.T) {
	ok := NewSuccessResult("Form submitted", Param{Key: "Email", Value: "x@y.com"}).SetWidth(80).Render()
	if !strings.Contains(ok, "SUCCESS") || !strings.Contains(ok, SuccessMarker) || !strings.Contains(ok, "x@y.com") {
		t.Errorf("unexpected success box:\n%s", ok)
	}

	bad := NewFailureResult("Form is invalid",
		Param{Key: "Email", Value: "Email is required"},
	).SetWidth(80).String()
	if !strings.Contains(bad, "FAILED") || !strings.Contains(bad, "Email is required") {
		t.Errorf("unexpected failure box:\n%s", bad)
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	p.PrintHeader("Form Validation", "authscreen validate")
	p.PrintFailure("Form is invalid", Param{Key: "Password", Value: "Password is required"})

	out := buf.String()
	if !strings.Contains(out, "FORM VALIDATION") || !strings.Contains(out, "Password is required") {
		t.Errorf("unexpected printer output:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("printer output should end with a newline")
	}
}
