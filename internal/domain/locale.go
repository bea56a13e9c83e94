package domain

// Language is a target output language for agent conversations.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

// Currency is a quoting currency. Rate is relative to USD and is used for
// dashboard revenue attribution only; it never affects model selection.
type Currency struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
}

// SupportedLanguages lists the languages the grounding builder can target.
var SupportedLanguages = []Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "es", Name: "Spanish", NativeName: "Español"},
	{Code: "fr", Name: "French", NativeName: "Français"},
	{Code: "de", Name: "German", NativeName: "Deutsch"},
	{Code: "zh", Name: "Chinese", NativeName: "中文"},
	{Code: "ja", Name: "Japanese", NativeName: "日本語"},
	{Code: "ar", Name: "Arabic", NativeName: "العربية"},
	{Code: "pt", Name: "Portuguese", NativeName: "Português"},
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी"},
	{Code: "ru", Name: "Russian", NativeName: "Русский"},
	{Code: "sw", Name: "Swahili", NativeName: "Kiswahili"},
	{Code: "yo", Name: "Yoruba", NativeName: "Yorùbá"},
}

// SupportedCurrencies lists the quoting currencies.
var SupportedCurrencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar", Rate: 1},
	{Code: "EUR", Symbol: "€", Name: "Euro", Rate: 0.92},
	{Code: "GBP", Symbol: "£", Name: "British Pound", Rate: 0.79},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen", Rate: 151},
	{Code: "NGN", Symbol: "₦", Name: "Nigerian Naira", Rate: 1450},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee", Rate: 83},
}

// CurrencyByCode looks up a supported currency, defaulting to USD.
func CurrencyByCode(code string) Currency {
	for _, c := range SupportedCurrencies {
		if c.Code == code {
			return c
		}
	}
	return SupportedCurrencies[0]
}

// LanguageByCode looks up a supported language, defaulting to English.
func LanguageByCode(code string) Language {
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return l
		}
	}
	return SupportedLanguages[0]
}
