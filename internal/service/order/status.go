package order

// StatusBadge is the portal display of a fulfillment status: a French label
// plus the badge variant the frontend uses for coloring.
type StatusBadge struct {
	Label   string `json:"label"`
	Variant string `json:"variant"`
}

// statusBadges is the single source of truth for status display. Both the
// order list and the order detail go through BadgeFor.
var statusBadges = map[string]StatusBadge{
	"fulfilled": {Label: "Expédiée", Variant: "success"},
	"partial":   {Label: "Partiellement expédiée", Variant: "warning"},
	"restocked": {Label: "Retournée en stock", Variant: "default"},
	"pending":   {Label: "En attente d’expédition", Variant: "info"},
}

var statusDefault = StatusBadge{Label: "En préparation", Variant: "info"}

// BadgeFor maps a raw Shopify fulfillment status to its portal badge.
// Empty and unrecognized statuses fall back to "En préparation".
func BadgeFor(fulfillmentStatus string) StatusBadge {
	if badge, ok := statusBadges[fulfillmentStatus]; ok {
		return badge
	}
	return statusDefault
}
