package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "name" or "tags").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "descriptor_conflict":
			msg = "1つのプロパティに複数の種類 (get/set/value) が指定されています"
		case "invalid_accessor":
			msg = "アクセサ定義が不正です"
		case "unknown_tag":
			msg = "未知のタグです"
		case "not_configurable":
			msg = "変更できないプロパティです"
		case "not_extensible":
			msg = "オブジェクトは拡張できません"
		case "read_only":
			msg = "読み取り専用のプロパティです"
		case "parse_error":
			msg = "解析エラー"
		}
	default: // "en"
		switch code {
		case "descriptor_conflict":
			msg = "cannot have two types in one definition"
		case "invalid_accessor":
			msg = "invalid accessor definition"
		case "unknown_tag":
			msg = "unknown tag"
		case "not_configurable":
			msg = "property is not configurable"
		case "not_extensible":
			msg = "object is not extensible"
		case "read_only":
			msg = "property is read-only"
		case "parse_error":
			msg = "parse error"
		}
	}
	if msg == "" {
		return code
	}
	if detail := data["detail"]; detail != "" {
		msg += ": " + detail
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	lang = strings.ToLower(lang)
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
