package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/planboard/internal/domain"
)

// dateValue is a pflag.Value that parses YYYY-MM-DD into a time.Time, so
// date flags fail at flag-parse time instead of inside the command body.
type dateValue struct {
	t *time.Time
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(t *time.Time) *dateValue {
	return &dateValue{t: t}
}

func (v *dateValue) Set(s string) error {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	*v.t = t
	return nil
}

func (v *dateValue) String() string {
	if v.t == nil || v.t.IsZero() {
		return ""
	}
	return v.t.Format(domain.DateLayout)
}

func (v *dateValue) Type() string { return "date" }
