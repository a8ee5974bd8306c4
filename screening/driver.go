// Package screening orchestrates a single screening call: optional legacy
// rewrite, validation, aggregation, and rule dispatch. It is the only
// package that knows the full pipeline order.
package screening

import (
	"fmt"
	"log/slog"

	"github.com/nycopportunity/benefits-screener/aggregate"
	"github.com/nycopportunity/benefits-screener/legacy"
	"github.com/nycopportunity/benefits-screener/request"
	"github.com/nycopportunity/benefits-screener/rules"
)

// Response is the outcome of a single screening call, carrying enough
// information for the transport layer to pick the right envelope and
// status code without re-deriving it.
type Response struct {
	Success               bool
	EligiblePrograms      []string
	TotalProgramsEligible int
	Errors                []string
	MalformedInput        bool
	InternalError         bool
}

// Screen runs the full pipeline against a raw JSON request body. It never
// panics: aggregator and rule faults are contained and mapped into the
// response, matching the "fail closed" error model.
func Screen(raw []byte) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("screening pipeline panicked", "panic", r)
			resp = Response{Success: false, Errors: []string{"Internal server error"}, InternalError: true}
		}
	}()

	body := raw
	if legacy.Detect(raw) {
		converted, ok := legacy.Convert(raw)
		if !ok {
			return Response{Success: false, Errors: []string{"Failed to convert Drools format payload"}, MalformedInput: true}
		}
		body = converted
	}

	req, errs := request.Parse(body)
	if errs != nil {
		return Response{Success: false, Errors: errs}
	}

	bundle := aggregate.Compute(req)

	codes := evaluateRules(bundle)

	return Response{
		Success:               true,
		EligiblePrograms:      codes,
		TotalProgramsEligible: len(codes),
	}
}

// evaluateRules walks the registry in stable insertion order, isolating
// any rule that panics so one broken predicate can't suppress or corrupt
// the rest.
func evaluateRules(bundle *aggregate.Bundle) []string {
	list := rules.Default.List()
	codes := make([]string, 0, len(list))

	for _, rule := range list {
		if evaluateOne(rule, bundle) {
			codes = append(codes, rule.Code())
		}
	}
	return codes
}

func evaluateOne(rule rules.Rule, bundle *aggregate.Bundle) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("rule evaluation panicked, treating as not eligible",
				"program", rule.Code(), "panic", fmt.Sprint(r))
			ok = false
		}
	}()
	return rule.Evaluate(bundle)
}
