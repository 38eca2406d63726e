package i18n

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

// LangEnv forces the UI language when set.
const LangEnv = "COUNTDOWN_LANG"

var (
	mu   sync.RWMutex
	lang = "en"
)

var translations = map[string]map[string]string{
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"ru": "Пауза",
	},
	"Resume": {
		"pt": "Continuar",
		"es": "Reanudar",
		"ru": "Продолжить",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
	"Paused": {
		"pt": "Pausado",
		"es": "En pausa",
		"ru": "На паузе",
	},
	"Running": {
		"pt": "Em andamento",
		"es": "En marcha",
		"ru": "Идёт",
	},
	"Time's up!": {
		"pt": "Tempo esgotado!",
		"es": "¡Se acabó el tiempo!",
		"ru": "Время вышло!",
	},
	"Help": {
		"pt": "Ajuda",
		"es": "Ayuda",
		"ru": "Помощь",
	},
	"Close": {
		"pt": "Fechar",
		"es": "Cerrar",
		"ru": "Закрыть",
	},
}

func init() {
	SetLang(Detect())
}

// Detect picks the language from LangEnv, then from the system locale.
func Detect() string {
	if forcedLang := strings.TrimSpace(os.Getenv(LangEnv)); forcedLang != "" {
		log.Printf("%s is set to: '%s'", LangEnv, forcedLang)
		return normalize(forcedLang)
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		return "en"
	}
	if len(userLocales) == 0 {
		log.Println("No user locale detected, defaulting to english")
		return "en"
	}
	log.Printf("Detected user locale: %s", userLocales[0])
	return normalize(userLocales[0])
}

func normalize(l string) string {
	l = strings.ToLower(l)
	for _, known := range []string{"pt", "es", "ru"} {
		if strings.HasPrefix(l, known) {
			return known
		}
	}
	return "en"
}

// SetLang switches the active language. Unknown languages fall back to english.
func SetLang(l string) {
	mu.Lock()
	defer mu.Unlock()
	lang = normalize(l)
}

func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}
