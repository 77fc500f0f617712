package validator

import (
	"strconv"
	"strings"
)

// フィールドの場所（パスパラメータ or JSONボディ）
type Location string

const (
	LocationPath Location = "path"
	LocationBody Location = "body"
)

// Requestはフレームワークに依存しないリクエストの見え方。
// Bodyはjson.Unmarshalしたmap（数値はfloat64、真偽値はbool）。
type Request struct {
	Params map[string]string
	Body   map[string]any
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Ruleはリクエストの1フィールドを検査する。
// Checkのokはフィールドが存在したかどうか。
type Rule struct {
	Field    string
	Location Location
	Check    func(v any, ok bool) bool
	Message  string
}

// Applyは全ルールを順に評価し、失敗を全部集めて返す。
// フィールド単位の打ち切りはしない。
func Apply(rules []Rule, req Request) []FieldError {
	var errs []FieldError
	for _, r := range rules {
		var v any
		var ok bool
		if r.Location == LocationPath {
			var s string
			s, ok = req.Params[r.Field]
			v = s
		} else {
			v, ok = req.Body[r.Field]
		}
		if !r.Check(v, ok) {
			errs = append(errs, FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return errs
}

// HasBodyRulesはボディを読む必要があるか
func HasBodyRules(rules []Rule) bool {
	for _, r := range rules {
		if r.Location == LocationBody {
			return true
		}
	}
	return false
}

// ---- 述語 ----

// 整数としてパースできる文字列
func IsInt(v any, ok bool) bool {
	s, _ := v.(string)
	if !ok || s == "" {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// 空でない（文字列は空白のみもNG）
func NotEmpty(v any, ok bool) bool {
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// JSONの数値
func IsNumber(v any, ok bool) bool {
	_, isNum := v.(float64)
	return ok && isNum
}

// JSONの数値かつ > 0
func IsPositiveNumber(v any, ok bool) bool {
	f, isNum := v.(float64)
	return ok && isNum && f > 0
}

// JSONの真偽値
func IsBool(v any, ok bool) bool {
	_, isBool := v.(bool)
	return ok && isBool
}
