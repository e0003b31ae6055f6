package enums

import "strings"

type Diet string

const (
	DietVegetarian    Diet = "vegetarian"
	DietNonVegetarian Diet = "non_vegetarian"
	DietEggetarian    Diet = "eggetarian"
	DietVegan         Diet = "vegan"
	DietJainFood      Diet = "jain"
)

// ParseDiet folds legacy spellings ("Vegetarian", "Non Vegetarian",
// "non-veg") into the closed enum so the evaluator never has to
// special-case casing or synonyms.
func ParseDiet(raw string) Diet {
	value := strings.ToLower(strings.TrimSpace(raw))
	value = strings.ReplaceAll(value, "-", " ")
	switch value {
	case "vegetarian", "veg":
		return DietVegetarian
	case "non vegetarian", "non veg", "nonvegetarian":
		return DietNonVegetarian
	case "eggetarian", "egg":
		return DietEggetarian
	case "vegan":
		return DietVegan
	case "jain", "jain food":
		return DietJainFood
	default:
		return ""
	}
}
