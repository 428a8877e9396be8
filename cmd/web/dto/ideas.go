package dto

import (
	"strings"

	"social-spark/spark"
)

// GenerateIdeasRequestDTO 는 JSON API 와 HTML 폼이 함께 쓰는 입력이다.
// 비어 있는 platform/tone/count 는 폼 기본값으로 채운다.
// topic 은 binding 으로 막지 않는다. 빈 topic 은 전용 경고로 응답해야 하기 때문이다.
type GenerateIdeasRequestDTO struct {
	Topic    string `json:"topic" form:"topic" example:"new organic coffee launch"`
	Platform string `json:"platform" form:"platform" example:"Instagram"`
	Tone     string `json:"tone" form:"tone" example:"Casual and Exciting"`
	Count    *int   `json:"count" form:"count" binding:"omitempty,min=1,max=5" example:"3"`
}

// ToRequest 는 topic 앞뒤 공백을 제거하고 기본값을 채운 spark.Request 를 만든다.
func (d GenerateIdeasRequestDTO) ToRequest() spark.Request {
	req := spark.DefaultRequest()
	req.Topic = strings.TrimSpace(d.Topic)
	if d.Platform != "" {
		req.Platform = spark.Platform(d.Platform)
	}
	if d.Tone != "" {
		req.Tone = spark.Tone(d.Tone)
	}
	if d.Count != nil {
		req.Count = *d.Count
	}
	return req
}

type GenerateIdeasResponseDTO struct {
	Ideas []string `json:"ideas" example:"Brewing something bold ☕,Meet our new organic roast"`
	Model string   `json:"model" example:"llama2"`
}

type OptionsResponseDTO struct {
	Platforms    []string `json:"platforms"`
	Tones        []string `json:"tones"`
	MinCount     int      `json:"min_count" example:"1"`
	MaxCount     int      `json:"max_count" example:"5"`
	DefaultCount int      `json:"default_count" example:"3"`
}

func NewOptionsResponseDTO() OptionsResponseDTO {
	out := OptionsResponseDTO{
		MinCount:     spark.MinCount,
		MaxCount:     spark.MaxCount,
		DefaultCount: spark.DefaultCount,
	}
	for _, p := range spark.Platforms() {
		out.Platforms = append(out.Platforms, string(p))
	}
	for _, t := range spark.Tones() {
		out.Tones = append(out.Tones, string(t))
	}
	return out
}
