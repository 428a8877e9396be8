package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const (
	DefaultServerAddr    = ":8501"
	DefaultOllamaBaseURL = "http://localhost:11434"
	DefaultOllamaModel   = "llama2"
)

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Ollama  OllamaConfig  `yaml:"ollama"`
	Page    PageConfig    `yaml:"page"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr               string   `yaml:"addr"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// OllamaConfig 는 로컬 생성 엔드포인트 설정이다.
// 기동 시점에 한 번 고정되며 런타임에 바꾸는 경로는 없다.
type OllamaConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`

	// Timeout 이 0 이면 http.Client 기본값(제한 없음)을 그대로 쓴다.
	Timeout time.Duration `yaml:"timeout"`
}

// PageConfig 는 폼 페이지 상단/하단 문구. intro, footer 는 markdown 이다.
type PageConfig struct {
	Title  string `yaml:"title"`
	Intro  string `yaml:"intro"`
	Footer string `yaml:"footer"`
}

var config *AppConfig

func InitApp() {
	c, err := Load(GetBasePath())
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// Load 는 baseDir 의 .env 와 config.yaml 을 읽어 AppConfig 를 만든다.
// config.yaml 이 없으면 기본값을 쓰고, 형식이 잘못된 경우에만 에러를 반환한다.
// 환경변수는 파일 값보다 우선한다.
func Load(baseDir string) (AppConfig, error) {
	// .env 는 선택 사항이다.
	_ = godotenv.Load(filepath.Join(baseDir, ENV_FILE))

	c := Default()
	data, err := os.ReadFile(filepath.Join(baseDir, CONFIG_FILE))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return AppConfig{}, fmt.Errorf("config: parse %s: %w", CONFIG_FILE, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return AppConfig{}, fmt.Errorf("config: read %s: %w", CONFIG_FILE, err)
	}

	if err := applyEnv(&c); err != nil {
		return AppConfig{}, err
	}
	c.fillDefaults()
	return c, nil
}

func Default() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{Level: "info"},
		Server: ServerConfig{
			Addr:               DefaultServerAddr,
			CORSAllowedOrigins: []string{"*"},
		},
		Ollama: OllamaConfig{
			BaseURL: DefaultOllamaBaseURL,
			Model:   DefaultOllamaModel,
		},
		Page: PageConfig{
			Title:  "Social Spark AI",
			Intro:  "Your Instant Content Generator for social media posts & headlines!",
			Footer: "Powered by Ollama and Go",
		},
	}
}

func applyEnv(c *AppConfig) error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("OLLAMA_BASE_URL"); v != "" {
		c.Ollama.BaseURL = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		c.Ollama.Model = v
	}
	if v := os.Getenv("OLLAMA_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: OLLAMA_TIMEOUT: %w", err)
		}
		c.Ollama.Timeout = d
	}
	return nil
}

// yaml 에서 빈 문자열로 덮어쓴 항목은 기본값으로 되돌린다.
func (c *AppConfig) fillDefaults() {
	d := Default()
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Ollama.BaseURL == "" {
		c.Ollama.BaseURL = d.Ollama.BaseURL
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = d.Ollama.Model
	}
	if c.Page.Title == "" {
		c.Page.Title = d.Page.Title
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return cwd
}
