package spark

import "fmt"

const promptTemplate = "Generate %d %s social media post ideas for %s about: %s. " +
	"Each idea should be concise and engaging. Format each idea on a new line."

// BuildPrompt 는 로컬 모델에 보낼 지시문을 만든다. 필드는 받은 그대로 들어가며
// 검증은 호출자가 먼저 한다.
func BuildPrompt(r Request) string {
	return fmt.Sprintf(promptTemplate, r.Count, r.Tone, r.Platform, r.Topic)
}
