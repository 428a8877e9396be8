package spark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIdeas(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "blank and whitespace lines dropped",
			text: "Idea A\n\nIdea B\n  ",
			want: []string{"Idea A", "Idea B"},
		},
		{
			name: "lines trimmed",
			text: "  1. Brew bold  \n\t2. Sip slow\t",
			want: []string{"1. Brew bold", "2. Sip slow"},
		},
		{
			name: "crlf",
			text: "one\r\ntwo\r\n",
			want: []string{"one", "two"},
		},
		{
			name: "duplicates kept in order",
			text: "same\nother\nsame",
			want: []string{"same", "other", "same"},
		},
		{
			name: "placeholder is a single idea",
			text: NoResponsePlaceholder,
			want: []string{"No response from local model."},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
		{
			name: "only whitespace",
			text: " \n \n",
			want: []string{},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, SplitIdeas(testCase.text))
		})
	}
}
