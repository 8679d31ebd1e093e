package config

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Значения по умолчанию; пароль "admin" считается дефолтным и при старте
// заменяется случайным.
const (
	DefaultPort        = 8080
	DefaultUsername    = "admin"
	DefaultPassword    = "admin"
	DefaultUploadDir   = "./uploads"
	DefaultMaxFiles    = 10
	DefaultMaxFileSize = 100 << 20

	generatedPasswordLen = 12
	passwordAlphabet     = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Settings — неизменяемая после Finalize конфигурация процесса.
// Передаётся конструкторам явно, глобального состояния нет.
type Settings struct {
	Port        int      `yaml:"port"`
	Username    string   `yaml:"username"`
	Password    string   `yaml:"password"`
	UploadDir   string   `yaml:"upload_dir"`
	MaxFiles    int      `yaml:"max_files"`
	MaxFileSize int64    `yaml:"max_file_size"`
	Extensions  []string `yaml:"extensions"`
}

// Load собирает настройки: дефолты, затем YAML-файл (если задан),
// затем ENV-переопределения.
func Load(path string) (*Settings, error) {
	s := &Settings{
		Port:        DefaultPort,
		Username:    DefaultUsername,
		Password:    DefaultPassword,
		UploadDir:   DefaultUploadDir,
		MaxFiles:    DefaultMaxFiles,
		MaxFileSize: DefaultMaxFileSize,
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, s); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	// ENV override
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Port = n
		}
	}
	if v := os.Getenv("AUTH_USER"); v != "" {
		s.Username = v
	}
	if v := os.Getenv("AUTH_PASSWORD"); v != "" {
		s.Password = v
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		s.UploadDir = v
	}
	if v := os.Getenv("MAX_FILES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.MaxFiles = n
		}
	}
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.MaxFileSize = n
		}
	}
	if v := os.Getenv("EXTENSIONS"); v != "" {
		s.Extensions = SplitList(v)
	}

	return s, nil
}

// Finalize приводит настройки к рабочему виду: генерирует пароль вместо
// дефолтного, нормализует список расширений, разворачивает каталог загрузок
// в абсолютный путь и создаёт его. Возвращает true, если пароль сгенерирован.
func (s *Settings) Finalize() (bool, error) {
	generated := false
	if s.Password == DefaultPassword {
		p, err := randomPassword(generatedPasswordLen)
		if err != nil {
			return false, fmt.Errorf("generate password: %w", err)
		}
		s.Password = p
		generated = true
	}

	norm := make([]string, 0, len(s.Extensions))
	for _, e := range s.Extensions {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			norm = append(norm, e)
		}
	}
	s.Extensions = norm

	if s.MaxFiles <= 0 {
		s.MaxFiles = DefaultMaxFiles
	}
	if s.MaxFileSize <= 0 {
		s.MaxFileSize = DefaultMaxFileSize
	}

	abs, err := filepath.Abs(s.UploadDir)
	if err != nil {
		return false, err
	}
	s.UploadDir = abs
	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		return false, fmt.Errorf("create upload dir: %w", err)
	}

	return generated, nil
}

// SplitList разбирает значение вида "png, pdf,txt" в срез без пустых элементов.
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

func randomPassword(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = passwordAlphabet[int(b)%len(passwordAlphabet)]
	}

	return string(buf), nil
}
