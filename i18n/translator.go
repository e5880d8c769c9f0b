package i18n

import "strings"

// Translator retrieves localized messages for result and error codes.
// data provides optional values substituted into "{key}" placeholders (for
// example "kind" or "type").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	return expand(t.lookup(code), data)
}

func (t dictTranslator) lookup(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "conforms":
			return "適合しています"
		case "not_conform":
			return "仕様に適合しません"
		case "invalid_type":
			return "型が不正です"
		case "parse_error":
			return "解析エラー"
		case "invalid_descriptor":
			return "仕様記述が不正です"
		case "unknown_type":
			return "未知の型です: {type}"
		case "empty_union":
			return "union には1つ以上の要素が必要です"
		case "too_large":
			return "入力が大きすぎます"
		case "duplicate_key":
			return "キーが重複しています: {key}"
		}
	default: // "en"
		switch code {
		case "conforms":
			return "conforms"
		case "not_conform":
			return "does not conform"
		case "invalid_type":
			return "invalid type"
		case "parse_error":
			return "parse error"
		case "invalid_descriptor":
			return "invalid descriptor"
		case "unknown_type":
			return "unknown type: {type}"
		case "empty_union":
			return "union needs at least one member"
		case "too_large":
			return "input too large"
		case "duplicate_key":
			return "duplicate key: {key}"
		}
	}
	return code
}

func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
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
