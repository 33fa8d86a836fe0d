package types

import (
	"strings"
	"unicode"

	"github.com/pageza/recipe-catalog/internal/model"
)

// RecipeDetail is the view model of the detail page. The lists are derived
// from the stored text on every request and never persisted.
type RecipeDetail struct {
	*model.Recipe
	IngredientList  []string
	InstructionList []string
}

// NewRecipeDetail splits ingredients on commas and instructions on periods
func NewRecipeDetail(recipe *model.Recipe) *RecipeDetail {
	return &RecipeDetail{
		Recipe:          recipe,
		IngredientList:  SplitList(recipe.Ingredients, ","),
		InstructionList: SplitSteps(recipe.Instructions),
	}
}

// SplitList splits s on sep, trims every fragment and drops empty ones
func SplitList(s, sep string) []string {
	parts := strings.Split(s, sep)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// SplitSteps splits free-text instructions into steps at periods. A period
// that closes a bare step number ("2.") or sits inside a decimal ("1.5")
// stays part of the step.
func SplitSteps(s string) []string {
	runes := []rune(s)
	steps := []string{}
	var cur strings.Builder

	flush := func() {
		if step := strings.TrimSpace(cur.String()); step != "" {
			steps = append(steps, step)
		}
		cur.Reset()
	}

	for i, r := range runes {
		if r != '.' {
			cur.WriteRune(r)
			continue
		}
		inDecimal := i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1])
		if inDecimal || isStepNumber(cur.String()) {
			cur.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return steps
}

func isStepNumber(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
