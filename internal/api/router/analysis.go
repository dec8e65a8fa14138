package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/propcheck/internal/analysis"
	"github.com/DjordjeVuckovic/propcheck/internal/apperr"
	"github.com/DjordjeVuckovic/propcheck/internal/ast"
	"github.com/DjordjeVuckovic/propcheck/internal/eval"
	"github.com/labstack/echo/v4"
)

type FormulaRequest struct {
	Formula string `json:"formula"`
}

type TableRequest struct {
	Variables []string `json:"variables"`
}

type TableResponse struct {
	Variables []string          `json:"variables"`
	Rows      []eval.Assignment `json:"rows"`
}

// ClassifyRequest carries either formula text or an encoded tree.
type ClassifyRequest struct {
	Formula string    `json:"formula,omitempty"`
	AST     *ast.Node `json:"ast,omitempty"`
}

type EvaluateRequest struct {
	Formula    string          `json:"formula,omitempty"`
	AST        *ast.Node       `json:"ast,omitempty"`
	Assignment eval.Assignment `json:"assignment"`
}

type EvaluateResponse struct {
	Result bool `json:"result"`
}

type AnalysisRouter struct {
	e        *echo.Echo
	analyzer *analysis.Analyzer
}

func NewAnalysisRouter(e *echo.Echo, analyzer *analysis.Analyzer) *AnalysisRouter {
	return &AnalysisRouter{
		e:        e,
		analyzer: analyzer,
	}
}

func (r *AnalysisRouter) Bind() {
	g := r.e.Group("/v1")
	g.POST("/parse", r.parseHandler)
	g.POST("/table", r.tableHandler)
	g.POST("/classify", r.classifyHandler)
	g.POST("/evaluate", r.evaluateHandler)
	g.POST("/sat", r.satHandler)
}

// parseHandler godoc
// @Summary      Parse a formula
// @Description  Returns the tree, its outline and the variables in first-occurrence order.
// @Tags         formulas
// @Accept       json
// @Produce      json
// @Param        request  body      FormulaRequest  true  "Formula"
// @Success      200      {object}  analysis.Parsed
// @Failure      400      {object}  apperr.Response
// @Router       /v1/parse [post]
func (r *AnalysisRouter) parseHandler(c echo.Context) error {
	var req FormulaRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	parsed, err := r.analyzer.Parse(req.Formula)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, parsed)
}

// tableHandler godoc
// @Summary      Enumerate every assignment over a list of variables
// @Tags         formulas
// @Accept       json
// @Produce      json
// @Param        request  body      TableRequest  true  "Variables"
// @Success      200      {object}  TableResponse
// @Failure      400      {object}  apperr.Response
// @Failure      413      {object}  apperr.Response
// @Router       /v1/table [post]
func (r *AnalysisRouter) tableHandler(c echo.Context) error {
	var req TableRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Variables == nil {
		req.Variables = []string{}
	}

	rows, err := r.analyzer.Table(req.Variables)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, TableResponse{Variables: req.Variables, Rows: rows})
}

// classifyHandler godoc
// @Summary      Classify a formula as Tautology, Contradiction or Contingent
// @Description  Accepts formula text or an encoded tree and returns every row with the classification.
// @Tags         formulas
// @Accept       json
// @Produce      json
// @Param        request  body      ClassifyRequest  true  "Formula or tree"
// @Success      200      {object}  analysis.Report
// @Failure      400      {object}  apperr.Response
// @Failure      413      {object}  apperr.Response
// @Router       /v1/classify [post]
func (r *AnalysisRouter) classifyHandler(c echo.Context) error {
	var req ClassifyRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	ctx := c.Request().Context()
	var (
		report *analysis.Report
		err    error
	)
	switch {
	case req.AST != nil && req.Formula != "":
		return apperr.NewValidation("send either formula or ast, not both")
	case req.AST != nil:
		report, err = r.analyzer.AnalyzeExpr(ctx, req.AST.Expr)
	default:
		report, err = r.analyzer.Analyze(ctx, req.Formula)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// evaluateHandler godoc
// @Summary      Evaluate a formula under one assignment
// @Tags         formulas
// @Accept       json
// @Produce      json
// @Param        request  body      EvaluateRequest  true  "Formula or tree with an assignment"
// @Success      200      {object}  EvaluateResponse
// @Failure      400      {object}  apperr.Response
// @Failure      422      {object}  apperr.Response
// @Router       /v1/evaluate [post]
func (r *AnalysisRouter) evaluateHandler(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	expr, err := r.expression(req.Formula, req.AST)
	if err != nil {
		return err
	}

	result, err := r.analyzer.Evaluate(expr, req.Assignment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, EvaluateResponse{Result: result})
}

// satHandler godoc
// @Summary      Decide satisfiability and validity with a SAT solver
// @Description  Not bounded by the variable limit. Returns a witness and a counterexample where they exist.
// @Tags         formulas
// @Accept       json
// @Produce      json
// @Param        request  body      FormulaRequest  true  "Formula"
// @Success      200      {object}  analysis.SatReport
// @Failure      400      {object}  apperr.Response
// @Router       /v1/sat [post]
func (r *AnalysisRouter) satHandler(c echo.Context) error {
	var req FormulaRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	report, err := r.analyzer.Satisfiability(req.Formula)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

func (r *AnalysisRouter) expression(formula string, node *ast.Node) (ast.Expr, error) {
	if node != nil {
		if formula != "" {
			return nil, apperr.NewValidation("send either formula or ast, not both")
		}
		return node.Expr, nil
	}

	parsed, err := r.analyzer.Parse(formula)
	if err != nil {
		return nil, err
	}
	return parsed.AST.Expr, nil
}
