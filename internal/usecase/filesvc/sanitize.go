package filesvc

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	disallowedChar = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
)

// SanitizeName приводит клиентское имя файла к безопасному виду: отбрасывает
// компоненты пути, схлопывает пробельные серии в "_" и заменяет на "_" любой
// символ вне [A-Za-z0-9_.-]. Результат никогда не содержит разделителей пути.
func SanitizeName(name string) string {
	// Браузеры иногда присылают полный путь, в том числе с обратными слэшами.
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	name = whitespaceRun.ReplaceAllString(name, "_")
	name = disallowedChar.ReplaceAllString(name, "_")
	if name == "" {
		name = "file"
	}

	return name
}
