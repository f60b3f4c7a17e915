package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("flexoki-dark").Name; got != "flexoki-dark" {
		t.Errorf("ByName(flexoki-dark) = %q", got)
	}
	if got := ByName("nope").Name; got != Ledger.Name {
		t.Errorf("ByName(nope) = %q, want %q", got, Ledger.Name)
	}
}

func TestDefaultIsLedger(t *testing.T) {
	if Active.Name != "ledger" || All[0].Name != "ledger" {
		t.Errorf("default theme = %q, want ledger", Active.Name)
	}
}

func TestNamesAndValid(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("Names() len = %d, want %d", len(names), len(All))
	}
	for _, n := range names {
		if !Valid(n) {
			t.Errorf("Valid(%q) = false", n)
		}
	}
	if Valid("solarized") {
		t.Error("Valid(solarized) = true")
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(Ledger.Name)
	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Errorf("Active = %q, want terminal", Active.Name)
	}
}

func TestThemesFillEveryRole(t *testing.T) {
	for _, th := range All {
		for role, c := range map[string]string{
			"Background": string(th.Background), "Surface": string(th.Surface),
			"TextPrimary": string(th.TextPrimary), "Accent": string(th.Accent),
			"Green": string(th.Green), "Red": string(th.Red),
		} {
			if c == "" {
				t.Errorf("%s: %s is empty", th.Name, role)
			}
		}
	}
}
