package category

// All is the storefront filter value meaning "no category filter". It is
// never stored as a category.
const All = "all"

func Defaults() []string {
	return []string{"men", "women", "kids", "accessories"}
}
