package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyPlay              = "play"
	KeyLevels            = "levels"
	KeyGallery           = "gallery"
	KeyCustomPuzzle      = "custom_puzzle"
	KeySettings          = "settings"
	KeyQuit              = "quit"
	KeyBack              = "back"
	KeyMoves             = "moves"
	KeyBest              = "best"
	KeyNoBest            = "no_best"
	KeyPaused            = "paused"
	KeyResume            = "resume"
	KeyRestart           = "restart"
	KeyMainMenu          = "main_menu"
	KeySolvedTitle       = "solved_title"
	KeySolvedMoves       = "solved_moves"
	KeyNewRecord         = "new_record"
	KeySaveMemory        = "save_memory"
	KeyMemorySaved       = "memory_saved"
	KeyNoMemories        = "no_memories"
	KeyDeleteMemory      = "delete_memory"
	KeyDeleteConfirm     = "delete_confirm"
	KeyDelete            = "delete"
	KeyCancel            = "cancel"
	KeySave              = "save"
	KeyBrowse            = "browse"
	KeyChooseImage       = "choose_image"
	KeyPuzzleSize        = "puzzle_size"
	KeyStartPuzzle       = "start_puzzle"
	KeyImageLoadError    = "image_load_error"
	KeyLanguage          = "language"
	KeyVolume            = "volume"
	KeyMute              = "mute"
	KeyMemoriesDirectory = "memories_directory"
	KeySettingsSaved     = "settings_saved"
	KeyFile              = "file"
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
		KeyAppTitle:          "Aetherial Gardens",
		KeyPlay:              "Play",
		KeyLevels:            "Choose a Garden",
		KeyGallery:           "Memories",
		KeyCustomPuzzle:      "Custom Puzzle",
		KeySettings:          "Settings",
		KeyQuit:              "Quit",
		KeyBack:              "Back",
		KeyMoves:             "Moves",
		KeyBest:              "Best",
		KeyNoBest:            "Not solved yet",
		KeyPaused:            "Paused",
		KeyResume:            "Resume",
		KeyRestart:           "Restart",
		KeyMainMenu:          "Main Menu",
		KeySolvedTitle:       "Garden Restored!",
		KeySolvedMoves:       "Solved in %d moves",
		KeyNewRecord:         "New personal best!",
		KeySaveMemory:        "Save Memory",
		KeyMemorySaved:       "Memory saved to the gallery",
		KeyNoMemories:        "No memories yet. Finish a garden to capture one.",
		KeyDeleteMemory:      "Delete Memory",
		KeyDeleteConfirm:     "Remove this memory? This cannot be undone.",
		KeyDelete:            "Delete",
		KeyCancel:            "Cancel",
		KeySave:              "Save",
		KeyBrowse:            "Browse",
		KeyChooseImage:       "Choose an image...",
		KeyPuzzleSize:        "Puzzle Size",
		KeyStartPuzzle:       "Start Puzzle",
		KeyImageLoadError:    "Could not load that image",
		KeyLanguage:          "Language",
		KeyVolume:            "Volume",
		KeyMute:              "Mute",
		KeyMemoriesDirectory: "Memories Directory",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyFile:              "File",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Эфирные сады",
		KeyPlay:              "Играть",
		KeyLevels:            "Выберите сад",
		KeyGallery:           "Воспоминания",
		KeyCustomPuzzle:      "Свой пазл",
		KeySettings:          "Настройки",
		KeyQuit:              "Выход",
		KeyBack:              "Назад",
		KeyMoves:             "Ходы",
		KeyBest:              "Рекорд",
		KeyNoBest:            "Ещё не решено",
		KeyPaused:            "Пауза",
		KeyResume:            "Продолжить",
		KeyRestart:           "Заново",
		KeyMainMenu:          "Главное меню",
		KeySolvedTitle:       "Сад восстановлен!",
		KeySolvedMoves:       "Решено за %d ходов",
		KeyNewRecord:         "Новый личный рекорд!",
		KeySaveMemory:        "Сохранить воспоминание",
		KeyMemorySaved:       "Воспоминание сохранено в галерею",
		KeyNoMemories:        "Пока нет воспоминаний. Соберите сад, чтобы запечатлеть его.",
		KeyDeleteMemory:      "Удалить воспоминание",
		KeyDeleteConfirm:     "Удалить это воспоминание? Действие необратимо.",
		KeyDelete:            "Удалить",
		KeyCancel:            "Отмена",
		KeySave:              "Сохранить",
		KeyBrowse:            "Обзор",
		KeyChooseImage:       "Выберите изображение...",
		KeyPuzzleSize:        "Размер пазла",
		KeyStartPuzzle:       "Начать пазл",
		KeyImageLoadError:    "Не удалось загрузить изображение",
		KeyLanguage:          "Язык",
		KeyVolume:            "Громкость",
		KeyMute:              "Без звука",
		KeyMemoriesDirectory: "Папка воспоминаний",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyFile:              "Файл",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Jardins Etéreos",
		KeyPlay:              "Jogar",
		KeyLevels:            "Escolha um Jardim",
		KeyGallery:           "Memórias",
		KeyCustomPuzzle:      "Quebra-cabeça Próprio",
		KeySettings:          "Configurações",
		KeyQuit:              "Sair",
		KeyBack:              "Voltar",
		KeyMoves:             "Jogadas",
		KeyBest:              "Recorde",
		KeyNoBest:            "Ainda não resolvido",
		KeyPaused:            "Pausado",
		KeyResume:            "Continuar",
		KeyRestart:           "Reiniciar",
		KeyMainMenu:          "Menu Principal",
		KeySolvedTitle:       "Jardim Restaurado!",
		KeySolvedMoves:       "Resolvido em %d jogadas",
		KeyNewRecord:         "Novo recorde pessoal!",
		KeySaveMemory:        "Salvar Memória",
		KeyMemorySaved:       "Memória salva na galeria",
		KeyNoMemories:        "Nenhuma memória ainda. Complete um jardim para capturar uma.",
		KeyDeleteMemory:      "Excluir Memória",
		KeyDeleteConfirm:     "Remover esta memória? Isso não pode ser desfeito.",
		KeyDelete:            "Excluir",
		KeyCancel:            "Cancelar",
		KeySave:              "Salvar",
		KeyBrowse:            "Navegar",
		KeyChooseImage:       "Escolha uma imagem...",
		KeyPuzzleSize:        "Tamanho do Quebra-cabeça",
		KeyStartPuzzle:       "Começar",
		KeyImageLoadError:    "Não foi possível carregar a imagem",
		KeyLanguage:          "Idioma",
		KeyVolume:            "Volume",
		KeyMute:              "Mudo",
		KeyMemoriesDirectory: "Diretório de Memórias",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyFile:              "Arquivo",
	}
}
