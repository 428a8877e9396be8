package view

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"social-spark/config"
	"social-spark/spark"
)

//go:embed templates/*.html
var templatesFS embed.FS

const IndexTemplate = "index.html"

// Form 은 화면에 다시 채워 넣을 입력값이다.
type Form struct {
	Topic    string
	Platform string
	Tone     string
	Count    int
}

// Page 는 index.html 이 그리는 전부다. Warning, Error, Generated 중 하나만 채워진다.
// Generated 는 모델 호출이 성공했다는 뜻이며 Ideas 가 비어 있어도 결과 영역을 그린다.
type Page struct {
	Title  string
	Intro  template.HTML
	Footer template.HTML

	Form      Form
	Platforms []string
	Tones     []string
	MinCount  int
	MaxCount  int

	Warning string
	Error   string
	Hint    string

	Generated bool
	Ideas     []string
	Model     string
}

// NoIdeasNotice 는 모델이 빈 응답을 돌려줘 보여줄 아이디어가 없을 때의 문구다.
const NoIdeasNotice = "The model returned no ideas. Try again or rephrase your topic."

// Renderer 는 설정의 page 문구를 미리 markdown 으로 변환해 두고 Page 를 만든다.
type Renderer struct {
	title  string
	intro  template.HTML
	footer template.HTML
}

func NewRenderer(cfg config.PageConfig) (*Renderer, error) {
	intro, err := Markdown(cfg.Intro)
	if err != nil {
		return nil, err
	}
	footer, err := Markdown(cfg.Footer)
	if err != nil {
		return nil, err
	}
	return &Renderer{title: cfg.Title, intro: intro, footer: footer}, nil
}

// Page 는 form 값으로 채운 빈 결과 화면을 만든다.
func (r *Renderer) Page(form Form) Page {
	p := Page{
		Title:    r.title,
		Intro:    r.intro,
		Footer:   r.footer,
		Form:     form,
		MinCount: spark.MinCount,
		MaxCount: spark.MaxCount,
	}
	for _, pl := range spark.Platforms() {
		p.Platforms = append(p.Platforms, string(pl))
	}
	for _, t := range spark.Tones() {
		p.Tones = append(p.Tones, string(t))
	}
	return p
}

// FormFromRequest 는 spark.Request 를 화면용 Form 으로 바꾼다.
func FormFromRequest(req spark.Request) Form {
	return Form{
		Topic:    req.Topic,
		Platform: string(req.Platform),
		Tone:     string(req.Tone),
		Count:    req.Count,
	}
}

// Markdown 은 goldmark 로 짧은 문구를 HTML 로 바꾼다. 원시 HTML 은 이스케이프된다.
func Markdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Templates 는 임베드된 템플릿을 파싱한다. gin.Engine.SetHTMLTemplate 에 넘긴다.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"inc":     func(i int) int { return i + 1 },
		"noIdeas": func() string { return NoIdeasNotice },
	}).ParseFS(templatesFS, "templates/*.html")
}
