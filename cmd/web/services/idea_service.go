package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"social-spark/cmd/internal/logger"
	"social-spark/cmd/web/clients/ollamaclient"
	"social-spark/cmd/web/metrics"
	"social-spark/cmd/web/trace"
	"social-spark/spark"
)

// TextGenerator 는 프롬프트 하나를 받아 생성된 텍스트 하나를 돌려주는 모델 클라이언트다.
// 운영에서는 *ollamaclient.Client 가 구현한다.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

type IdeaService struct {
	generator TextGenerator
}

type IdeasResult struct {
	Ideas  []string
	Model  string
	Prompt string
}

// GenerateError 는 핸들러가 그대로 사용자에게 보여줄 수 있는 형태의 실패다.
// Kind 는 입력 검증 실패일 때 0 이다.
type GenerateError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Hint       string
	Kind       spark.FailureKind
	Cause      error
}

func (e *GenerateError) Error() string {
	if e == nil {
		return "generation_failed"
	}
	return e.ErrorCode
}

func (e *GenerateError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewIdeaService(generator TextGenerator) *IdeaService {
	return &IdeaService{generator: generator}
}

// Generate 는 요청을 검증하고, 프롬프트를 만들어 모델을 한 번 호출한 뒤
// 응답을 줄 단위 아이디어로 나눈다. 재시도는 하지 않는다.
// 검증에 실패하면 모델은 호출되지 않는다.
func (s *IdeaService) Generate(ctx context.Context, req spark.Request) (IdeasResult, *GenerateError) {
	if err := req.Validate(); err != nil {
		return IdeasResult{}, validationError(ctx, req, err)
	}

	prompt := spark.BuildPrompt(req)
	start := time.Now()
	text, err := s.generator.Generate(ctx, prompt)
	elapsed := time.Since(start)

	fields := logger.Fields{
		"request_id": trace.RequestIDFromContext(ctx),
		"model":      s.generator.Model(),
		"platform":   string(req.Platform),
		"tone":       string(req.Tone),
		"count":      req.Count,
		"duration":   elapsed.String(),
	}

	if err != nil {
		genErr := s.classify(err)
		outcome := genErr.Kind.String()
		metrics.GenerationsTotal.WithLabelValues(outcome, string(req.Platform)).Inc()
		metrics.GenerationDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())

		fields["error"] = err.Error()
		fields["kind"] = outcome
		logger.ErrorWithFields("idea generation failed", fields)
		return IdeasResult{}, genErr
	}

	ideas := spark.SplitIdeas(text)
	metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeSuccess, string(req.Platform)).Inc()
	metrics.GenerationDuration.WithLabelValues(metrics.OutcomeSuccess).Observe(elapsed.Seconds())
	metrics.IdeasReturned.Observe(float64(len(ideas)))

	fields["ideas"] = len(ideas)
	logger.InfoWithFields("ideas generated", fields)

	return IdeasResult{Ideas: ideas, Model: s.generator.Model(), Prompt: prompt}, nil
}

func (s *IdeaService) classify(err error) *GenerateError {
	if errors.Is(err, ollamaclient.ErrUnreachable) {
		f := spark.NewConnectionFailure(s.generator.Model(), err)
		return &GenerateError{
			StatusCode: http.StatusServiceUnavailable,
			ErrorCode:  "ollama_unreachable",
			Message:    f.Message,
			Hint:       f.Hint,
			Kind:       f.Kind,
			Cause:      f,
		}
	}

	f := spark.NewOtherFailure(err)
	return &GenerateError{
		StatusCode: http.StatusBadGateway,
		ErrorCode:  "generation_failed",
		Message:    f.Message,
		Hint:       f.Hint,
		Kind:       f.Kind,
		Cause:      f,
	}
}

func validationError(ctx context.Context, req spark.Request, err error) *GenerateError {
	if errors.Is(err, spark.ErrEmptyTopic) {
		metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeEmptyTopic, platformLabel(req.Platform)).Inc()
		logger.WarnWithFields("empty topic, model not called", logger.Fields{
			"request_id": trace.RequestIDFromContext(ctx),
			"platform":   platformLabel(req.Platform),
		})
		return &GenerateError{
			StatusCode: http.StatusBadRequest,
			ErrorCode:  "empty_topic",
			Message:    spark.EmptyTopicWarning,
			Cause:      err,
		}
	}
	return &GenerateError{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  "invalid_request",
		Message:    err.Error(),
		Cause:      err,
	}
}

// 검증 전 입력이 라벨로 새지 않도록 알 수 없는 값은 "other" 로 묶는다.
func platformLabel(p spark.Platform) string {
	if !p.Valid() {
		return "other"
	}
	return string(p)
}
