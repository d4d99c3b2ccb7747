package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/errors"
	"github.com/johnquangdev/meeting-analyzer/internal/adapter/dto"
	aiuse "github.com/johnquangdev/meeting-analyzer/internal/usecase/ai"
	pkgvalidator "github.com/johnquangdev/meeting-analyzer/pkg/validator"
)

// AnalysisController handles API endpoints that trigger transcript analysis
type AnalysisController struct {
	svc    aiuse.Service
	logger *zap.Logger
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(svc aiuse.Service, logger *zap.Logger) *AnalysisController {
	return &AnalysisController{svc: svc, logger: logger}
}

// Analyze extracts a title, summary, action items and key points from a transcript
// @Summary      Analyze transcript
// @Description  Sends the transcript to the configured model and returns the structured analysis. Model failures are returned as 200 with a fallback record.
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AnalyzeRequest       true  "Transcript to analyze"
// @Success      200      {object}  entities.AnalysisResult  "Analysis result or fallback record"
// @Failure      400      {object}  dto.ErrorResponse        "Missing transcript or invalid payload"
// @Failure      500      {object}  dto.ErrorResponse        "Unexpected failure"
// @Router       /analyze [post]
func (ac *AnalysisController) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload().WithDetail("cause", err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		if fields := pkgvalidator.FailedFields(err); len(fields) > 0 {
			return HandleError(ac.logger, c, errors.ErrTranscriptRequired().WithDetail("fields", strings.Join(fields, ",")))
		}
		return HandleError(ac.logger, c, errors.ErrInternal(err))
	}

	outcome := ac.svc.Analyze(c.Request().Context(), req.Transcript)
	if outcome.Kind != aiuse.OutcomeParsed && ac.logger != nil {
		ac.logger.Warn("analysis degraded to fallback record",
			zap.String("request_id", getRequestID(c)),
			zap.Stringer("outcome", outcome.Kind),
		)
	}

	return HandleSuccess(ac.logger, c, outcome.Result)
}
