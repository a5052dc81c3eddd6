package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyDownload          = "download"
	KeyOpen              = "open"
	KeyReveal            = "reveal"
	KeyCopyPath          = "copy_path"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyFFmpegPath        = "ffmpeg_path"
	KeyCollisionPolicy   = "collision_policy"
	KeyExpandPlaylists   = "expand_playlists"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyEnterURLs         = "enter_urls"
	KeyDestination       = "destination"
	KeyCompletedFiles    = "completed_files"
	KeySettingsSaved     = "settings_saved"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyPleaseChooseDir   = "please_choose_dir"
	KeyExpandingPlaylist = "expanding_playlists"
	KeyPlaylistFailed    = "playlist_failed"
	KeyReady             = "ready"
	KeyStatusResolving   = "status_resolving"
	KeyStatusChecking    = "status_checking"
	KeyStatusDownloading = "status_downloading"
	KeyStatusSaving      = "status_saving"
	KeyStatusDone        = "status_done"
	KeyStatusSkipped     = "status_skipped"
	KeyStatusFailed      = "status_failed"
	KeyBatchFinished     = "batch_finished"
	KeyBatchFailures     = "batch_failures"
	KeySpeed             = "speed"
	KeyPathCopied        = "path_copied"
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
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YT MP3",
		KeyDownload:          "Download MP3",
		KeyOpen:              "Open",
		KeyReveal:            "Show in folder",
		KeyCopyPath:          "Copy path",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeyFFmpegPath:        "FFmpeg Path (empty for automatic)",
		KeyCollisionPolicy:   "When the file exists",
		KeyExpandPlaylists:   "Download whole playlists",
		KeyAutoReveal:        "Show the last file when a batch finishes",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyEnterURLs:         "Paste YouTube links, one per line, or drop them here",
		KeyDestination:       "Save to",
		KeyCompletedFiles:    "Completed files",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyErrorOpeningFile:  "Error opening file",
		KeyPleaseEnterURL:    "Please paste at least one link starting with http",
		KeyPleaseChooseDir:   "Please choose a destination folder",
		KeyExpandingPlaylist: "Reading playlists...",
		KeyPlaylistFailed:    "Some playlists could not be read",
		KeyReady:             "Ready",
		KeyStatusResolving:   "Fetching info",
		KeyStatusChecking:    "Checking history",
		KeyStatusDownloading: "Downloading",
		KeyStatusSaving:      "Saving",
		KeyStatusDone:        "Done",
		KeyStatusSkipped:     "Already downloaded",
		KeyStatusFailed:      "Failed",
		KeyBatchFinished:     "Finished: %d downloaded, %d skipped, %d failed",
		KeyBatchFailures:     "Some downloads failed",
		KeySpeed:             "Speed",
		KeyPathCopied:        "Path copied to clipboard",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YT MP3",
		KeyDownload:          "Скачать MP3",
		KeyOpen:              "Открыть",
		KeyReveal:            "Показать в папке",
		KeyCopyPath:          "Копировать путь",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки",
		KeyFFmpegPath:        "Путь к FFmpeg (пусто для автопоиска)",
		KeyCollisionPolicy:   "Если файл существует",
		KeyExpandPlaylists:   "Скачивать плейлисты целиком",
		KeyAutoReveal:        "Показать последний файл после загрузки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyEnterURLs:         "Вставьте ссылки YouTube по одной на строку или перетащите их сюда",
		KeyDestination:       "Сохранить в",
		KeyCompletedFiles:    "Готовые файлы",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyPleaseEnterURL:    "Вставьте хотя бы одну ссылку, начинающуюся с http",
		KeyPleaseChooseDir:   "Выберите папку для сохранения",
		KeyExpandingPlaylist: "Чтение плейлистов...",
		KeyPlaylistFailed:    "Некоторые плейлисты не удалось прочитать",
		KeyReady:             "Готово к работе",
		KeyStatusResolving:   "Получение сведений",
		KeyStatusChecking:    "Проверка истории",
		KeyStatusDownloading: "Загрузка",
		KeyStatusSaving:      "Сохранение",
		KeyStatusDone:        "Готово",
		KeyStatusSkipped:     "Уже скачано",
		KeyStatusFailed:      "Ошибка",
		KeyBatchFinished:     "Завершено: скачано %d, пропущено %d, ошибок %d",
		KeyBatchFailures:     "Некоторые загрузки не удались",
		KeySpeed:             "Скорость",
		KeyPathCopied:        "Путь скопирован",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YT MP3",
		KeyDownload:          "Baixar MP3",
		KeyOpen:              "Abrir",
		KeyReveal:            "Mostrar na pasta",
		KeyCopyPath:          "Copiar caminho",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyDownloadDirectory: "Diretório de Download",
		KeyFFmpegPath:        "Caminho do FFmpeg (vazio para automático)",
		KeyCollisionPolicy:   "Quando o arquivo existir",
		KeyExpandPlaylists:   "Baixar playlists inteiras",
		KeyAutoReveal:        "Mostrar o último arquivo ao terminar",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyEnterURLs:         "Cole links do YouTube, um por linha, ou solte-os aqui",
		KeyDestination:       "Salvar em",
		KeyCompletedFiles:    "Arquivos concluídos",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyPleaseEnterURL:    "Cole pelo menos um link começando com http",
		KeyPleaseChooseDir:   "Escolha uma pasta de destino",
		KeyExpandingPlaylist: "Lendo playlists...",
		KeyPlaylistFailed:    "Algumas playlists não puderam ser lidas",
		KeyReady:             "Pronto",
		KeyStatusResolving:   "Obtendo informações",
		KeyStatusChecking:    "Verificando histórico",
		KeyStatusDownloading: "Baixando",
		KeyStatusSaving:      "Salvando",
		KeyStatusDone:        "Concluído",
		KeyStatusSkipped:     "Já baixado",
		KeyStatusFailed:      "Falhou",
		KeyBatchFinished:     "Concluído: %d baixados, %d ignorados, %d falharam",
		KeyBatchFailures:     "Alguns downloads falharam",
		KeySpeed:             "Velocidade",
		KeyPathCopied:        "Caminho copiado",
	}
}
