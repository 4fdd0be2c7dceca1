package order

import "testing"

func TestBadgeFor(t *testing.T) {
	cases := []struct {
		status  string
		label   string
		variant string
	}{
		{"fulfilled", "Expédiée", "success"},
		{"partial", "Partiellement expédiée", "warning"},
		{"restocked", "Retournée en stock", "default"},
		{"pending", "En attente d’expédition", "info"},
		{"unfulfilled", "En préparation", "info"},
		{"", "En préparation", "info"},
		{"teleported", "En préparation", "info"},
	}

	for _, tc := range cases {
		badge := BadgeFor(tc.status)
		if badge.Label != tc.label || badge.Variant != tc.variant {
			t.Errorf("BadgeFor(%q) = %+v, expected {%s %s}", tc.status, badge, tc.label, tc.variant)
		}
	}
}

func TestBadgeFor_Deterministic(t *testing.T) {
	first := BadgeFor("partial")
	second := BadgeFor("partial")
	if first != second {
		t.Fatalf("expected identical badges, got %+v and %+v", first, second)
	}
}
