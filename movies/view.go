package movies

// Variant is one of the four things the component can display.
type Variant int

const (
	VariantEmpty Variant = iota
	VariantList
	VariantError
	VariantLoading
)

const (
	// PlaceholderText is shown when there is nothing else to show.
	PlaceholderText = "Found no movies."
	// LoadingText accompanies the loading indicator.
	LoadingText = "Loading..."
)

func (v Variant) String() string {
	switch v {
	case VariantEmpty:
		return "empty"
	case VariantList:
		return "list"
	case VariantError:
		return "error"
	case VariantLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Select picks the variant to display. Later rules override earlier ones, so
// loading wins over a stale error or list from a previous fetch.
func Select(s State) Variant {
	variant := VariantEmpty
	if len(s.Movies) > 0 {
		variant = VariantList
	}
	if s.HasError() {
		variant = VariantError
	}
	if s.IsLoading {
		variant = VariantLoading
	}
	return variant
}
