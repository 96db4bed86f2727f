package game

import "testing"

func TestRedirectURL(t *testing.T) {
	const (
		cseBase     = "https://forms.example.com/techfest-cse"
		generalBase = "https://forms.example.com/techfest-general"
	)

	cases := []struct {
		name    string
		cse     string
		general string
		code    string
		want    string
	}{
		{
			name:    "non-CSE routes through general form",
			cse:     cseBase,
			general: generalBase,
			code:    "ECE",
			want:    generalBase + "?department=ECE",
		},
		{
			name:    "CSE routes through CSE form",
			cse:     cseBase,
			general: generalBase,
			code:    "CSE",
			want:    cseBase + "?department=CSE",
		},
		{
			name:    "base with existing query gets ampersand",
			cse:     cseBase,
			general: generalBase + "?src=kiosk",
			code:    "MECH",
			want:    generalBase + "?src=kiosk&department=MECH",
		},
		{
			name:    "CSE base with existing query gets ampersand",
			cse:     cseBase + "?src=kiosk",
			general: generalBase,
			code:    "CSE",
			want:    cseBase + "?src=kiosk&department=CSE",
		},
		{
			name:    "code is query escaped",
			cse:     cseBase,
			general: generalBase,
			code:    "R&D",
			want:    generalBase + "?department=R%26D",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := redirectURL(tc.cse, tc.general, tc.code)
			if got != tc.want {
				t.Fatalf("redirectURL(%q) = %q, want %q", tc.code, got, tc.want)
			}
		})
	}
}
