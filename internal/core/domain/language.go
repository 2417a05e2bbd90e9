package domain

type LanguageCode string

const (
	LanguageEnglish  LanguageCode = "english"
	LanguageHindi    LanguageCode = "hindi"
	LanguageTamil    LanguageCode = "tamil"
	LanguageBengali  LanguageCode = "bengali"
	LanguageGujarati LanguageCode = "gujarati"
	LanguageMarathi  LanguageCode = "marathi"
	LanguagePunjabi  LanguageCode = "punjabi"
	LanguageTelugu   LanguageCode = "telugu"
)

type Language struct {
	Code        LanguageCode `json:"code"`
	DisplayName string       `json:"display_name"`
}

// languages is the fixed catalog; order is the presentation order.
var languages = []Language{
	{Code: LanguageEnglish, DisplayName: "English"},
	{Code: LanguageHindi, DisplayName: "हिन्दी"},
	{Code: LanguageTamil, DisplayName: "தமிழ்"},
	{Code: LanguageBengali, DisplayName: "বাংলা"},
	{Code: LanguageGujarati, DisplayName: "ગુજરાતી"},
	{Code: LanguageMarathi, DisplayName: "मराठी"},
	{Code: LanguagePunjabi, DisplayName: "ਪੰਜਾਬੀ"},
	{Code: LanguageTelugu, DisplayName: "తెలుగు"},
}

// Languages returns a copy of the supported language catalog.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// LanguageByCode resolves a language code to its catalog entry.
// Unknown codes report ok=false; callers fall through to fallback
// template resolution rather than failing.
func LanguageByCode(code LanguageCode) (Language, bool) {
	for _, lang := range languages {
		if lang.Code == code {
			return lang, true
		}
	}
	return Language{}, false
}
