package cashout

import "testing"

func TestParseConversion(t *testing.T) {
	testCases := []struct {
		name    string
		notes   string
		want    conversion
		wantErr bool
	}{
		{
			name:  "real export note",
			notes: "Converted 29.98841098 MANA to 36.78628798 LRC",
			want:  conversion{FromQuantity: Q(29.98841098), FromAsset: "MANA", ToQuantity: Q(36.78628798), ToAsset: "LRC"},
		},
		{
			name:  "integer amounts",
			notes: "Converted 10 AAA to 5 BBB",
			want:  conversion{FromQuantity: Q(10), FromAsset: "AAA", ToQuantity: Q(5), ToAsset: "BBB"},
		},
		{
			name:  "destination ticker with digits",
			notes: "Converted 1.5 BTC to 420 1INCH",
			want:  conversion{FromQuantity: Q(1.5), FromAsset: "BTC", ToQuantity: Q(420), ToAsset: "1INCH"},
		},
		{
			name:    "empty note",
			notes:   "",
			wantErr: true,
		},
		{
			name:    "free text",
			notes:   "converted some mana",
			wantErr: true,
		},
		{
			name:    "lowercase ticker",
			notes:   "Converted 10 mana to 5 lrc",
			wantErr: true,
		},
		{
			name:    "missing destination",
			notes:   "Converted 10 MANA to",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseConversion(tc.notes)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseConversion(%q) = %+v, want an error", tc.notes, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseConversion(%q) error = %v", tc.notes, err)
			}
			if got.FromAsset != tc.want.FromAsset || got.ToAsset != tc.want.ToAsset ||
				!got.FromQuantity.Equal(tc.want.FromQuantity) || !got.ToQuantity.Equal(tc.want.ToQuantity) {
				t.Errorf("parseConversion(%q) = %+v, want %+v", tc.notes, got, tc.want)
			}
		})
	}
}
