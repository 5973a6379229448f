package palette

import "testing"

func TestName(t *testing.T) {
	tests := map[string]string{
		"#FF0000": "Red",
		"#fe0101": "Red",
		"#3366CC": "Azure",
		"#101010": "Black",
		"#7F7F7F": "Gray",
		"#40E0D0": "Turquoise",
		"#00008B": "Navy",
	}
	for hex, want := range tests {
		got, err := Name(hex)
		if err != nil {
			t.Fatalf("Name(%s): %v", hex, err)
		}
		if got != want {
			t.Errorf("Name(%s) = %s, want %s", hex, got, want)
		}
	}

	if _, err := Name("oops"); err == nil {
		t.Error("expected error for malformed color")
	}
}

func TestDetailedName(t *testing.T) {
	tests := map[string]string{
		"#FF0000": "Dark Red",
		"#3366CC": "Medium Azure",
		"#E0E0FF": "Light Lavender",
		"#FFE000": "Light Gold",
		"#101010": "Black",
		"#7F7F7F": "Gray",
	}
	for hex, want := range tests {
		got, err := DetailedName(hex)
		if err != nil {
			t.Fatalf("DetailedName(%s): %v", hex, err)
		}
		if got != want {
			t.Errorf("DetailedName(%s) = %s, want %s", hex, got, want)
		}
	}
}
