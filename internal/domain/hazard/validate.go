package hazard

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for report and assessment
// inputs.
var validate = validator.New()

// ReportFields are the fields the engine re-validates on every report,
// regardless of what the presentation layer already checked.
type ReportFields struct {
	Title       string `validate:"required"`
	Category    string `validate:"required"`
	Description string `validate:"required"`
	Area        string `validate:"required"`
}

// Human labels for the error message, matching the report form.
var reportFieldLabels = map[string]string{
	"Title":       "Short title",
	"Category":    "Category",
	"Description": "Description (what happened)",
	"Area":        "Area (stand / gate / bay)",
}

// ValidateReport checks the required report fields and returns a
// ValidationError naming every missing field together, not just the first.
func ValidateReport(in ReportFields) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label, ok := reportFieldLabels[fe.Field()]
		if !ok {
			label = fe.Field()
		}
		fields = append(fields, label)
	}
	return &ValidationError{Fields: fields}
}

// AssessmentFields are the triage inputs.
type AssessmentFields struct {
	Likelihood int `validate:"min=1,max=5"`
	Severity   int `validate:"min=1,max=5"`
}

var assessmentFieldLabels = map[string]string{
	"Likelihood": "Likelihood (1-5)",
	"Severity":   "Severity (1-5)",
}

// ValidateAssessment checks likelihood and severity are both in [1,5].
func ValidateAssessment(in AssessmentFields) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label, ok := assessmentFieldLabels[fe.Field()]
		if !ok {
			label = fe.Field()
		}
		fields = append(fields, label)
	}
	return &ValidationError{Fields: fields}
}
