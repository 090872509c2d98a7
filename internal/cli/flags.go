package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// macroValue is a pflag.Value for macro gram flags: a float that must not be
// negative, rejected at parse time so cobra names the offending flag in its
// error message.
type macroValue struct {
	grams *float64
}

var _ pflag.Value = (*macroValue)(nil)

func newMacroValue(p *float64) *macroValue {
	return &macroValue{grams: p}
}

func (v *macroValue) String() string {
	if v.grams == nil {
		return "0"
	}
	return strconv.FormatFloat(*v.grams, 'f', -1, 64)
}

func (v *macroValue) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if f < 0 {
		return fmt.Errorf("must not be negative")
	}
	*v.grams = f
	return nil
}

func (v *macroValue) Type() string { return "grams" }
