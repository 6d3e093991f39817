package provider

// GeoResult is the structured result of an IP geolocation lookup.
// Any field the provider did not report is nil.
type GeoResult struct {
	IP      string
	City    *string
	Region  *string
	Country *string
	// Loc is "latitude,longitude" as reported by the provider.
	Loc *string
	// Org is the network operator, e.g. "AS15169 Google LLC".
	Org *string
}

// IsEmpty reports whether the provider returned no geographic data at all,
// as happens for private or otherwise unroutable addresses.
func (r GeoResult) IsEmpty() bool {
	return r.City == nil && r.Region == nil && r.Country == nil && r.Loc == nil && r.Org == nil
}
