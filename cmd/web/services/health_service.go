package services

import (
	"context"
	"errors"

	"social-spark/cmd/web/clients/ollamaclient"
)

type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
	Model() string
}

type HealthService struct {
	lister ModelLister
}

type HealthStatus struct {
	OllamaReachable bool
	ModelAvailable  bool
	Model           string
	Err             error
}

// OK 는 Ollama 가 응답하고 설정된 모델이 받아져 있을 때만 true 다.
func (h HealthStatus) OK() bool {
	return h.OllamaReachable && h.ModelAvailable
}

func NewHealthService(lister ModelLister) *HealthService {
	return &HealthService{lister: lister}
}

func (s *HealthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{Model: s.lister.Model()}

	models, err := s.lister.ListModels(ctx)
	if err != nil {
		// 연결은 됐지만 에러 응답이면 서버 자체는 살아있는 것으로 본다.
		status.OllamaReachable = !errors.Is(err, ollamaclient.ErrUnreachable)
		status.Err = err
		return status
	}

	status.OllamaReachable = true
	for _, name := range models {
		if ollamaclient.MatchesModel(status.Model, name) {
			status.ModelAvailable = true
			break
		}
	}
	return status
}
