package domain

type Category string

const (
	CategoryProperty   Category = "property"
	CategoryConsumer   Category = "consumer"
	CategoryEmployment Category = "employment"
	CategoryNeighbor   Category = "neighbor"
	CategoryGeneral    Category = "general"

	// CategoryGeneric is a corpus key only: it marks a language's single
	// catch-all template. The classifier never produces it.
	CategoryGeneric Category = "generic"
)

// Categories returns the closed set of classification results in
// matcher priority order.
func Categories() []Category {
	return []Category{
		CategoryProperty,
		CategoryConsumer,
		CategoryEmployment,
		CategoryNeighbor,
		CategoryGeneral,
	}
}
