package server

import (
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/thaitax/pit-estimator/internal/calculation"
	"github.com/thaitax/pit-estimator/internal/config"
	"github.com/thaitax/pit-estimator/internal/domain"
)

// ResponseMsg is the error body every handler returns on failure.
type ResponseMsg struct {
	Message string `json:"message"`
}

// assessmentQuery narrows the request parameters that arrive beside the
// snapshot body.
type assessmentQuery struct {
	Format string `query:"format" validate:"omitempty,oneof=json console"`
}

// TaxHandler serves assessment and obligation calculations over HTTP. The
// resolver is stateless, so one handler serves all requests concurrently.
type TaxHandler struct {
	vl       *validator.Validate
	resolver *calculation.TaxResolver
}

// NewTaxHandler creates a handler around a resolver.
func NewTaxHandler(vl *validator.Validate, resolver *calculation.TaxResolver) *TaxHandler {
	return &TaxHandler{vl: vl, resolver: resolver}
}

// CalculateAssessment decodes a wizard snapshot and returns the full tax
// assessment. A snapshot with a missing or unknown employmentType is a bad
// request; everything else normalizes silently inside the engine.
func (t *TaxHandler) CalculateAssessment(c echo.Context) error {
	var q assessmentQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{Message: "Bad request"})
	}
	if err := t.vl.Struct(q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{Message: "Bad request"})
	}

	snapshot, err := t.decodeSnapshot(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{Message: err.Error()})
	}

	assessment := t.resolver.Resolve(snapshot.Profile)
	return c.JSON(http.StatusOK, assessment)
}

// CalculateObligations returns only the PND94 and VAT checks for a snapshot.
func (t *TaxHandler) CalculateObligations(c echo.Context) error {
	snapshot, err := t.decodeSnapshot(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{Message: err.Error()})
	}

	core := snapshot.Profile.Core()
	report := t.resolver.Obligations.Report(core.ThaiIncome, core.Personal)
	return c.JSON(http.StatusOK, report)
}

func (t *TaxHandler) decodeSnapshot(c echo.Context) (config.Snapshot, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return config.Snapshot{}, err
	}
	return config.DecodeSnapshot(body)
}

// Healthcheck reports liveness plus the rule-set tax year in effect.
func (t *TaxHandler) Healthcheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"taxYear": t.taxYear(),
	})
}

func (t *TaxHandler) taxYear() int {
	if t.resolver.Rules.TaxYear != 0 {
		return t.resolver.Rules.TaxYear
	}
	return domain.DefaultRules().TaxYear
}
