package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katebianchi/mealweek/internal/domain"
)

// Form field validators. Each huh input validates its own field so the user
// is corrected per field, mirroring the per-field errors of
// domain.ValidateMeal.

func validateMealName(s string) error {
	return domain.ValidateMealName(s)
}

// validateMacroInput accepts a blank value (meaning zero grams) or any
// non-negative number.
func validateMacroInput(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number of grams")
	}
	if f < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

// parseMacro converts a validated macro input to grams; blank means zero.
func parseMacro(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
