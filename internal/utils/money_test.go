package utils

import "testing"

func TestParseToCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "150", want: 15000},
		{in: "150.5", want: 15050},
		{in: "150.50", want: 15050},
		{in: "0.01", want: 1},
		{in: "0", want: 0},
		{in: "-3.25", want: -325},
		{in: "0.001", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "1.2.3", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseToCents(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseToCents(%q): want error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseToCents(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseToCents(%q)=%d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatFromCents(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{in: 15050, want: "150.50"},
		{in: 1, want: "0.01"},
		{in: 0, want: "0.00"},
		{in: 100, want: "1.00"},
	}

	for _, tc := range cases {
		if got := FormatFromCents(tc.in); got != tc.want {
			t.Errorf("FormatFromCents(%d)=%q, want %q", tc.in, got, tc.want)
		}
	}
}
