package league

import "testing"

func TestResolve(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name string
		code string
		want League
	}{
		{
			name: "known code",
			code: "BayL",
			want: League{ID: "BayL", LongName: "Bayernliga", Level: 1},
		},
		{
			name: "division after the base code",
			code: "BZL A",
			want: League{ID: "BZL A", LongName: "Bezirksliga", Level: 4, Division: "A"},
		},
		{
			name: "unknown code keeps itself as long name",
			code: "XYZ",
			want: League{ID: "XYZ", LongName: "XYZ"},
		},
		{
			name: "surrounding whitespace is trimmed",
			code: " LL ",
			want: League{ID: "LL", LongName: "Landesliga", Level: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.code, catalog)
			if got != tt.want {
				t.Fatalf("resolve %q: got %+v want %+v", tt.code, got, tt.want)
			}
		})
	}
}

func TestResolveWithoutCatalog(t *testing.T) {
	got := Resolve("BayL", nil)
	if got.LongName != "BayL" || got.Level != 0 {
		t.Fatalf("nil catalog must not enrich: got %+v", got)
	}
}
