package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/theirongolddev/lifecost/internal/config"
	"github.com/theirongolddev/lifecost/internal/finance"
	"github.com/theirongolddev/lifecost/internal/pipeline"
)

func TestParseSets(t *testing.T) {
	got, err := parseSets([]string{"house_cost=650000", " tax_rate = 30 "})
	if err != nil {
		t.Fatalf("parseSets: %v", err)
	}
	if got["house_cost"] != 650000 || got["tax_rate"] != 30 {
		t.Fatalf("parseSets = %v", got)
	}

	for _, bad := range []string{"house_cost", "=5", "fuel=lots"} {
		if _, err := parseSets([]string{bad}); !errors.Is(err, finance.ErrInvalidArgument) {
			t.Errorf("parseSets(%q) err = %v, want ErrInvalidArgument", bad, err)
		}
	}
}

func TestRenderEstimate(t *testing.T) {
	all, err := config.DefaultProfiles()
	if err != nil {
		t.Fatalf("DefaultProfiles: %v", err)
	}
	p, err := pipeline.FindProfile(all, "us")
	if err != nil {
		t.Fatalf("FindProfile: %v", err)
	}
	est, err := pipeline.Estimate(p, nil)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	var buf bytes.Buffer
	renderEstimate(&buf, est)
	out := buf.String()

	for _, want := range []string{"USA", "$11,531.58", "$1,796.18", "Retirement Savings", "Mortgage"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
