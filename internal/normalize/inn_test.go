package normalize

import "testing"

func TestINN(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantNil bool
		invalid bool
	}{
		{name: "empty", raw: "", wantNil: true, invalid: false},
		{name: "no digits", raw: "ООО Ромашка", wantNil: true, invalid: false},
		{name: "valid 10-digit", raw: "7707083893", want: "7707083893", invalid: false},
		{name: "valid 10-digit with noise", raw: " 77-07\t08 38 93 ", want: "7707083893", invalid: false},
		{name: "wrong check digit 10", raw: "7707083894", want: "7707083894", invalid: true},
		{name: "valid 12-digit", raw: "500100732259", want: "500100732259", invalid: false},
		{name: "wrong check digit 12", raw: "500100732258", want: "500100732258", invalid: true},
		{name: "too short", raw: "12345", want: "12345", invalid: true},
		{name: "eleven digits", raw: "12345678901", want: "12345678901", invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, invalid := INN(tt.raw)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected nil normalized value, got %q", *got)
				}
			} else {
				if got == nil {
					t.Fatalf("expected %q, got nil", tt.want)
				}
				if *got != tt.want {
					t.Errorf("normalized = %q, want %q", *got, tt.want)
				}
			}
			if invalid != tt.invalid {
				t.Errorf("invalid = %v, want %v", invalid, tt.invalid)
			}
		})
	}
}

func TestINNDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		got, invalid := INN("ИНН: 7707-083-893")
		if got == nil || *got != "7707083893" || invalid {
			t.Fatalf("iteration %d: got %v invalid=%v", i, got, invalid)
		}
	}
}
