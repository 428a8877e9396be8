package spark

import "fmt"

// FailureKind 는 생성 실패의 두 종류를 구분한다.
type FailureKind int

const (
	// ConnectionFailure 는 로컬 엔드포인트에 연결조차 못 한 경우다.
	ConnectionFailure FailureKind = iota + 1
	// OtherFailure 는 연결 이후의 모든 실패다. 비정상 상태 코드, 바디 읽기 실패,
	// 잘못된 JSON, 취소가 여기에 속한다.
	OtherFailure
)

func (k FailureKind) String() string {
	switch k {
	case ConnectionFailure:
		return "connection_failure"
	case OtherFailure:
		return "other_failure"
	default:
		return "unknown"
	}
}

// Failure 는 사용자에게 그대로 보여줄 수 있는 생성 에러다.
type Failure struct {
	Kind    FailureKind
	Message string
	Hint    string
	Err     error
}

func (f *Failure) Error() string {
	if f == nil {
		return "generation failed"
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.Err
}

// NewConnectionFailure 는 로컬 서비스가 떠 있지 않을 때의 메시지를 만든다.
// 힌트에는 실행해야 할 model 이름이 들어간다.
func NewConnectionFailure(model string, err error) *Failure {
	return &Failure{
		Kind:    ConnectionFailure,
		Message: "Could not connect to Ollama. Is Ollama running and have you downloaded a model?",
		Hint:    fmt.Sprintf("Make sure Ollama is installed and run \"ollama run %s\" in a separate terminal.", model),
		Err:     err,
	}
}

// NewOtherFailure 는 원본 에러 문자열을 메시지에 넣는다.
func NewOtherFailure(err error) *Failure {
	detail := "unknown error"
	if err != nil && err.Error() != "" {
		detail = err.Error()
	}
	return &Failure{
		Kind:    OtherFailure,
		Message: fmt.Sprintf("Oops! Something went wrong with the local model: %s. Please try again.", detail),
		Hint:    "Tip: ensure the configured ollama.model matches the model you've downloaded and are running.",
		Err:     err,
	}
}

// EmptyTopicWarning 은 topic 이 비어 있어 모델을 호출하지 않을 때 보여준다.
const EmptyTopicWarning = "Please tell me what your post is about!"
