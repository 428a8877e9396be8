package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"social-spark/spark"
)

func TestGenerateIdeasRequestDTO_ToRequest(t *testing.T) {
	five := 5

	testCases := []struct {
		name string
		in   GenerateIdeasRequestDTO
		want spark.Request
	}{
		{
			name: "defaults",
			in:   GenerateIdeasRequestDTO{Topic: "coffee"},
			want: spark.Request{Topic: "coffee", Platform: spark.PlatformInstagram, Tone: spark.ToneCasual, Count: 3},
		},
		{
			name: "explicit values and trimmed topic",
			in:   GenerateIdeasRequestDTO{Topic: "  remote work \n", Platform: "LinkedIn", Tone: "Salesy", Count: &five},
			want: spark.Request{Topic: "remote work", Platform: spark.PlatformLinkedIn, Tone: spark.ToneSalesy, Count: 5},
		},
		{
			name: "unknown platform passes through for validation",
			in:   GenerateIdeasRequestDTO{Topic: "x", Platform: "MySpace"},
			want: spark.Request{Topic: "x", Platform: "MySpace", Tone: spark.ToneCasual, Count: 3},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, testCase.in.ToRequest())
		})
	}
}

// 앞뒤 공백만 있는 topic 은 빈 topic 과 같게 다뤄지고, 공백으로 감싼 topic 은
// 프롬프트에 다듬어진 값으로 들어간다.
func TestGenerateIdeasRequestDTO_TopicIsTrimmedBeforePrompting(t *testing.T) {
	padded := GenerateIdeasRequestDTO{Topic: "\t  new organic coffee launch  \n"}.ToRequest()
	plain := GenerateIdeasRequestDTO{Topic: "new organic coffee launch"}.ToRequest()

	assert.Equal(t, spark.BuildPrompt(plain), spark.BuildPrompt(padded))
	assert.Contains(t, spark.BuildPrompt(padded), "about: new organic coffee launch. Each idea")

	blank := GenerateIdeasRequestDTO{Topic: " \n\t "}.ToRequest()
	assert.Empty(t, blank.Topic)
	assert.ErrorIs(t, blank.Validate(), spark.ErrEmptyTopic)
}

func TestNewOptionsResponseDTO(t *testing.T) {
	out := NewOptionsResponseDTO()
	assert.Equal(t, []string{"Instagram", "Twitter/X", "LinkedIn", "Facebook", "Blog Headline"}, out.Platforms)
	assert.Equal(t, []string{"Casual and Exciting", "Professional and Informative", "Humorous", "Salesy", "Thought-Provoking"}, out.Tones)
	assert.Equal(t, 1, out.MinCount)
	assert.Equal(t, 5, out.MaxCount)
	assert.Equal(t, 3, out.DefaultCount)
}
