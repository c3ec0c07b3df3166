package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
)

// ValidateImportSchema checks the import schema before conversion.
// Plan-level problems are hard errors; the returned slice lists all of
// them.
//
// Malformed stage/element/capacity records (missing id, bad date, unknown
// kind) are not hard errors: callers drop them through FilterRecords so a
// partially bad file still yields a board.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	p := &schema.Plan
	if p.Name == "" {
		errs = append(errs, fmt.Errorf("plan.name is required"))
	}
	start, err := parseRequiredDate("plan.start_date", p.StartDate, &errs)
	end, err2 := parseRequiredDate("plan.end_date", p.EndDate, &errs)
	if err == nil && err2 == nil && end.Before(start) {
		errs = append(errs, fmt.Errorf("plan.end_date %q precedes start_date %q", p.EndDate, p.StartDate))
	}
	if p.CapacityCeiling != nil && *p.CapacityCeiling < 0 {
		errs = append(errs, fmt.Errorf("plan.capacity_ceiling must not be negative"))
	}

	return errs
}

// FilterRecords drops malformed stages, elements, capacities, and
// completions, returning the kept schema and one description per dropped
// record. Stage membership refs pointing at dropped elements are pruned.
func FilterRecords(schema *ImportSchema) (*ImportSchema, []string) {
	var dropped []string
	out := &ImportSchema{Plan: schema.Plan}

	keptElems := make(map[string]bool)
	for i, e := range schema.Elements {
		if reason := elementProblem(&e); reason != "" {
			dropped = append(dropped, fmt.Sprintf("elements[%d] (%s): %s", i, e.Ref, reason))
			continue
		}
		if keptElems[e.Ref] {
			dropped = append(dropped, fmt.Sprintf("elements[%d] (%s): duplicate ref", i, e.Ref))
			continue
		}
		keptElems[e.Ref] = true
		out.Elements = append(out.Elements, e)
	}

	for i, s := range schema.Stages {
		if reason := stageProblem(&s); reason != "" {
			dropped = append(dropped, fmt.Sprintf("stages[%d] (%s): %s", i, s.Ref, reason))
			continue
		}
		var refs []string
		for _, ref := range s.ElementRefs {
			if keptElems[ref] {
				refs = append(refs, ref)
			} else {
				dropped = append(dropped, fmt.Sprintf("stages[%d] (%s): unknown element ref %q", i, s.Ref, ref))
			}
		}
		s.ElementRefs = refs
		out.Stages = append(out.Stages, s)
	}

	for i, c := range schema.Capacities {
		if !validDate(c.Date) {
			dropped = append(dropped, fmt.Sprintf("capacities[%d]: invalid date %q", i, c.Date))
			continue
		}
		out.Capacities = append(out.Capacities, c)
	}

	for i, c := range schema.Completions {
		if c.ElementRef == "" || !validDate(c.Date) {
			dropped = append(dropped, fmt.Sprintf("completions[%d]: missing element_ref or invalid date", i))
			continue
		}
		out.Completions = append(out.Completions, c)
	}

	return out, dropped
}

func stageProblem(s *StageImport) string {
	switch {
	case s.Ref == "":
		return "missing ref"
	case s.Name == "":
		return "missing name"
	case !domain.ValidStageKinds[s.Kind]:
		return fmt.Sprintf("invalid kind %q", s.Kind)
	case !validDate(s.StartDate):
		return fmt.Sprintf("invalid start_date %q", s.StartDate)
	case !validDate(s.EndDate):
		return fmt.Sprintf("invalid end_date %q", s.EndDate)
	}
	return ""
}

func elementProblem(e *ElementImport) string {
	switch {
	case e.Ref == "":
		return "missing ref"
	case e.Label == "":
		return "missing label"
	case !domain.ValidElementKinds[e.Kind]:
		return fmt.Sprintf("invalid kind %q", e.Kind)
	case e.Status != "" && !domain.ValidElementStatuses[e.Status]:
		return fmt.Sprintf("invalid status %q", e.Status)
	case !validDate(e.Date):
		return fmt.Sprintf("invalid date %q", e.Date)
	case e.EndDate != nil && !validDate(*e.EndDate):
		return fmt.Sprintf("invalid end_date %q", *e.EndDate)
	}
	return ""
}

func validDate(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}

func parseRequiredDate(field, value string, errs *[]error) (time.Time, error) {
	if value == "" {
		err := fmt.Errorf("%s is required", field)
		*errs = append(*errs, err)
		return time.Time{}, err
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		err = fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value)
		*errs = append(*errs, err)
		return time.Time{}, err
	}
	return t, nil
}
