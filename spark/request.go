// Package spark 는 소셜 게시물 아이디어 도메인이다. 폼 입력값, 로컬 모델에 보낼
// 프롬프트, 응답을 아이디어 목록으로 나누는 규칙을 담는다.
package spark

import (
	"errors"
	"fmt"
	"strings"
)

// Platform 은 아이디어를 올릴 소셜 네트워크다.
type Platform string

const (
	PlatformInstagram    Platform = "Instagram"
	PlatformTwitter      Platform = "Twitter/X"
	PlatformLinkedIn     Platform = "LinkedIn"
	PlatformFacebook     Platform = "Facebook"
	PlatformBlogHeadline Platform = "Blog Headline"
)

// Tone 은 모델에 요청하는 글의 말투다.
type Tone string

const (
	ToneCasual       Tone = "Casual and Exciting"
	ToneProfessional Tone = "Professional and Informative"
	ToneHumorous     Tone = "Humorous"
	ToneSalesy       Tone = "Salesy"
	ToneProvoking    Tone = "Thought-Provoking"
)

const (
	MinCount     = 1
	MaxCount     = 5
	DefaultCount = 3
)

var (
	ErrEmptyTopic      = errors.New("empty_topic")
	ErrInvalidPlatform = errors.New("invalid_platform")
	ErrInvalidTone     = errors.New("invalid_tone")
	ErrCountOutOfRange = errors.New("count_out_of_range")
)

// Platforms 는 선택 가능한 플랫폼을 화면 순서대로 돌려준다.
func Platforms() []Platform {
	return []Platform{
		PlatformInstagram,
		PlatformTwitter,
		PlatformLinkedIn,
		PlatformFacebook,
		PlatformBlogHeadline,
	}
}

// Tones 는 선택 가능한 말투를 화면 순서대로 돌려준다.
func Tones() []Tone {
	return []Tone{
		ToneCasual,
		ToneProfessional,
		ToneHumorous,
		ToneSalesy,
		ToneProvoking,
	}
}

func (p Platform) Valid() bool {
	for _, v := range Platforms() {
		if p == v {
			return true
		}
	}
	return false
}

func (t Tone) Valid() bool {
	for _, v := range Tones() {
		if t == v {
			return true
		}
	}
	return false
}

// Request 는 생성 버튼을 한 번 누른 입력이다.
type Request struct {
	Topic    string
	Platform Platform
	Tone     Tone
	Count    int
}

// DefaultRequest 는 사용자가 손대기 전 폼에 보이는 기본값이다.
func DefaultRequest() Request {
	return Request{
		Platform: PlatformInstagram,
		Tone:     ToneCasual,
		Count:    DefaultCount,
	}
}

// Validate 는 topic 을 가장 먼저 본다. 다른 값이 틀려도 빈 topic 이면
// 항상 ErrEmptyTopic 이다.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return ErrEmptyTopic
	}
	if !r.Platform.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPlatform, r.Platform)
	}
	if !r.Tone.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTone, r.Tone)
	}
	if r.Count < MinCount || r.Count > MaxCount {
		return fmt.Errorf("%w: %d", ErrCountOutOfRange, r.Count)
	}
	return nil
}
