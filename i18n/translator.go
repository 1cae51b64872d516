package i18n

// Translator retrieves localized messages for Issue codes. data provides
// optional metadata to embed in the message (for example, "format" or
// "country").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_date_format":
			return "日付フォーマットが不正です"
		case "invalid_country_code":
			return "国コードが不正です"
		case "pattern_exhausted":
			return "パターンに一致する文字列を生成できませんでした"
		case "missing_properties":
			return "object スキーマに properties がありません"
		case "missing_items":
			return "array スキーマに items がありません"
		case "entropy_unavailable":
			return "乱数源を読み取れません"
		}
	default: // "en"
		switch code {
		case "invalid_date_format":
			return "unsupported date format"
		case "invalid_country_code":
			return "unknown country code"
		case "pattern_exhausted":
			return "could not generate a string matching the pattern"
		case "missing_properties":
			return "object schema has no properties"
		case "missing_items":
			return "array schema has no items"
		case "entropy_unavailable":
			return "random source unavailable"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
