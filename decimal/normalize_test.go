package decimal

import "testing"

func TestNormalize(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s       string
			wantNeg bool
			wantInt string
			wantFrc string
		}{
			{"0", false, "0", ""},
			{"-0", false, "0", ""},
			{"-0.000", false, "0", "000"},
			{"000123", false, "123", ""},
			{"-000123.4500", true, "123", "4500"},
			{"+.5", false, "0", "5"},
			{"5.", false, "5", ""},
			{"  42  ", false, "42", ""},
			{"1e3", false, "1000", ""},
			{"1.5E+2", false, "150", ""},
			{"-12.5e-3", true, "0", "0125"},
			{"0.0e5", false, "0", ""},
			{"8。25", false, "8", "25"},
		}
		for _, tt := range tests {
			got := Normalize(tt.s)
			if !got.Valid {
				t.Errorf("Normalize(%q) is not valid", tt.s)
				continue
			}
			if got.Negative != tt.wantNeg || got.Integer != tt.wantInt || got.Fraction != tt.wantFrc {
				t.Errorf("Normalize(%q) = %+v, want {%v %q %q}", tt.s, got, tt.wantNeg, tt.wantInt, tt.wantFrc)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"empty":          "",
			"blank":          "   ",
			"sign only":      "-",
			"dot only":       ".",
			"letters":        "abc",
			"trailing char":  "2x",
			"inner space":    "1 2",
			"double dot":     "1.2.3",
			"double sign":    "+-1",
			"missing exp":    "1e",
			"exp range":      "1e4097",
			"exp dot":        "1e1.5",
			"comma":          "1,5",
			"unicode digits": "١٢",
		}
		for name, s := range tests {
			t.Run(name, func(t *testing.T) {
				got := Normalize(s)
				if got.Valid {
					t.Errorf("Normalize(%q) = %+v, want invalid", s, got)
				}
				if got.String() != "" {
					t.Errorf("Normalize(%q).String() = %q, want \"\"", s, got.String())
				}
			})
		}
	})
}

func TestNormalizeSigned(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"-0", "-0"},
		{"-0.0", "-0.0"},
		{"-00.10", "-0.10"},
		{"+0", "0"},
		{"-5", "-5"},
	}
	for _, tt := range tests {
		got := NormalizeSigned(tt.s).String()
		if got != tt.want {
			t.Errorf("NormalizeSigned(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		s    string
		want Status
	}{
		{"", StatusEmpty},
		{"  ", StatusEmpty},
		{"-", StatusPartial},
		{"+", StatusPartial},
		{".", StatusPartial},
		{"-.", StatusPartial},
		{"1.", StatusPartial},
		{"-1.", StatusPartial},
		{"1e", StatusPartial},
		{"1e-", StatusPartial},
		{"8。", StatusPartial},
		{"0", StatusValid},
		{"-0", StatusValid},
		{"1.5", StatusValid},
		{".5", StatusValid},
		{"1e5", StatusValid},
		{"xx", StatusMalformed},
		{"2x", StatusMalformed},
		{"1.2.", StatusMalformed},
		{"--", StatusMalformed},
		{"1 2", StatusMalformed},
	}
	for _, tt := range tests {
		got := Classify(tt.s)
		if got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestNumber_roundHalfUp(t *testing.T) {
	tests := []struct {
		s     string
		scale int
		want  string
	}{
		{"3.455", 2, "3.46"},
		{"9.995", 2, "10.00"},
		{"99.5", 0, "100"},
		{"-0.05", 1, "-0.1"},
		{"-0.04", 1, "0.0"},
		{"0.1", 3, "0.100"},
		{"1.25", 1, "1.3"},
	}
	for _, tt := range tests {
		got := Normalize(tt.s).roundHalfUp(tt.scale).String()
		if got != tt.want {
			t.Errorf("Normalize(%q).roundHalfUp(%v) = %q, want %q", tt.s, tt.scale, got, tt.want)
		}
	}
}

func TestReplaceFullStops(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"8。1", "8.1"},
		{"8．1", "8.1"},
		{"8｡1", "8.1"},
		{"8.1", "8.1"},
	}
	for _, tt := range tests {
		if got := ReplaceFullStops(tt.s); got != tt.want {
			t.Errorf("ReplaceFullStops(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}
