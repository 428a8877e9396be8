package spark

import "strings"

// NoResponsePlaceholder 는 응답에 "response" 필드가 없을 때 대신 쓰는 문구다.
const NoResponsePlaceholder = "No response from local model."

// SplitIdeas 는 모델 응답을 줄 단위로 나눠 공백을 다듬고 빈 줄을 버린다.
// 순서는 원래대로이고 중복도 그대로 둔다.
func SplitIdeas(text string) []string {
	lines := strings.Split(text, "\n")
	ideas := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ideas = append(ideas, line)
	}
	return ideas
}
