package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyGenre                = "genre"
	KeyStations             = "stations"
	KeyPlay                 = "play"
	KeyPause                = "pause"
	KeyStop                 = "stop"
	KeyRecord               = "record"
	KeyVolume               = "volume"
	KeySettings             = "settings"
	KeyLanguage             = "language"
	KeyRecordingsDirectory  = "recordings_directory"
	KeyAutoRevealRecordings = "auto_reveal_recordings"
	KeySave                 = "save"
	KeyCancel               = "cancel"
	KeyBrowse               = "browse"
	KeyIdle                 = "idle"
	KeyLoading              = "loading"
	KeyStopped              = "stopped"
	KeySettingsSaved        = "settings_saved"
	KeyRecordingStarted     = "recording_started"
	KeyRecordingSaved       = "recording_saved"
	KeyRecordingFailed      = "recording_failed"
	KeyStreamFailed         = "stream_failed"
	KeyStreamLost           = "stream_lost"
	KeySelectStationFirst   = "select_station_first"
	KeyErrorOpeningFile     = "error_opening_file"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "NetRadio",
		KeyGenre:                "Genre",
		KeyStations:             "Stations",
		KeyPlay:                 "Play",
		KeyPause:                "Pause",
		KeyStop:                 "Stop",
		KeyRecord:               "Record",
		KeyVolume:               "Volume",
		KeySettings:             "Settings",
		KeyLanguage:             "Language",
		KeyRecordingsDirectory:  "Recordings Directory",
		KeyAutoRevealRecordings: "Reveal recordings when saved",
		KeySave:                 "Save",
		KeyCancel:               "Cancel",
		KeyBrowse:               "Browse",
		KeyIdle:                 "Select a station",
		KeyLoading:              "Connecting...",
		KeyStopped:              "Stopped",
		KeySettingsSaved:        "Settings saved successfully!",
		KeyRecordingStarted:     "Recording started",
		KeyRecordingSaved:       "Recording saved",
		KeyRecordingFailed:      "Recording failed",
		KeyStreamFailed:         "Could not connect to station",
		KeyStreamLost:           "Stream connection lost",
		KeySelectStationFirst:   "Select a station first",
		KeyErrorOpeningFile:     "Error opening file",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:             "NetRadio",
		KeyGenre:                "Жанр",
		KeyStations:             "Станции",
		KeyPlay:                 "Играть",
		KeyPause:                "Пауза",
		KeyStop:                 "Стоп",
		KeyRecord:               "Запись",
		KeyVolume:               "Громкость",
		KeySettings:             "Настройки",
		KeyLanguage:             "Язык",
		KeyRecordingsDirectory:  "Папка записей",
		KeyAutoRevealRecordings: "Показывать сохранённые записи",
		KeySave:                 "Сохранить",
		KeyCancel:               "Отмена",
		KeyBrowse:               "Обзор",
		KeyIdle:                 "Выберите станцию",
		KeyLoading:              "Подключение...",
		KeyStopped:              "Остановлено",
		KeySettingsSaved:        "Настройки успешно сохранены!",
		KeyRecordingStarted:     "Запись начата",
		KeyRecordingSaved:       "Запись сохранена",
		KeyRecordingFailed:      "Ошибка записи",
		KeyStreamFailed:         "Не удалось подключиться к станции",
		KeyStreamLost:           "Соединение со станцией потеряно",
		KeySelectStationFirst:   "Сначала выберите станцию",
		KeyErrorOpeningFile:     "Ошибка открытия файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:             "NetRadio",
		KeyGenre:                "Gênero",
		KeyStations:             "Estações",
		KeyPlay:                 "Tocar",
		KeyPause:                "Pausar",
		KeyStop:                 "Parar",
		KeyRecord:               "Gravar",
		KeyVolume:               "Volume",
		KeySettings:             "Configurações",
		KeyLanguage:             "Idioma",
		KeyRecordingsDirectory:  "Diretório de Gravações",
		KeyAutoRevealRecordings: "Mostrar gravações salvas",
		KeySave:                 "Salvar",
		KeyCancel:               "Cancelar",
		KeyBrowse:               "Navegar",
		KeyIdle:                 "Selecione uma estação",
		KeyLoading:              "Conectando...",
		KeyStopped:              "Parado",
		KeySettingsSaved:        "Configurações salvas com sucesso!",
		KeyRecordingStarted:     "Gravação iniciada",
		KeyRecordingSaved:       "Gravação salva",
		KeyRecordingFailed:      "Falha na gravação",
		KeyStreamFailed:         "Não foi possível conectar à estação",
		KeyStreamLost:           "Conexão com a estação perdida",
		KeySelectStationFirst:   "Selecione uma estação primeiro",
		KeyErrorOpeningFile:     "Erro ao abrir arquivo",
	}
}
