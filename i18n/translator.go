package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "token" or "source").
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
		case "malformed_config":
			msg = "設定が不正です"
		case "malformed_template":
			msg = "テンプレートが不正です"
		case "unknown_operation":
			msg = "未知の操作 {token} が {source} に含まれています"
		case "invalid_params":
			msg = "操作の引数が不正です: {source}"
		case "malformed_input":
			msg = "入力はオブジェクトである必要があります"
		case "compact_mismatch":
			msg = "compact の対象要素が配列になりません"
		case "duplicate_key":
			msg = "キーが重複しています"
		case "parse_error":
			msg = "解析エラー"
		case "truncated":
			msg = "打ち切られました"
		}
	default: // "en"
		switch code {
		case "malformed_config":
			msg = "malformed config"
		case "malformed_template":
			msg = "malformed template"
		case "unknown_operation":
			msg = `operation "{token}" in "{source}" is not allowed`
		case "invalid_params":
			msg = `invalid operation parameters in "{source}"`
		case "malformed_input":
			msg = "input must be an object"
		case "compact_mismatch":
			msg = "compact element did not transform into an array"
		case "duplicate_key":
			msg = "duplicate key"
		case "parse_error":
			msg = "parse error"
		case "truncated":
			msg = "truncated"
		}
	}
	if msg == "" {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
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
