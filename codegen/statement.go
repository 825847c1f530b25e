package codegen

import (
	"fmt"
	"strings"
)

// Statement は関数本体の 1 ステートメントを表す。
//
// String メソッドは指定されたインデントレベルで文字列表現を返す。
type Statement interface {
	String(indent int) string
}

// VariableDecl は変数宣言を表す。
//
// 例: var v ReviewInput
type VariableDecl struct {
	Name string // 変数名
	Type string // 変数の型
}

// String は変数宣言の文字列表現を返す。
func (v *VariableDecl) String(_ int) string {
	return fmt.Sprintf("var %s %s", v.Name, v.Type)
}

// SwitchStatement は switch 文を表す。
//
// 例:
//
//	switch e {
//	case Episode_newhope, Episode_empire:
//	    return true
//	}
type SwitchStatement struct {
	Expr  string       // switch の式
	Cases []SwitchCase // case のリスト
}

// SwitchCase は switch 文の単一の case を表す。
type SwitchCase struct {
	Values []string    // case の式（そのまま出力される）
	Body   []Statement // この case で実行するステートメント
}

// String は switch 文の文字列表現を返す。
func (s *SwitchStatement) String(indent int) string {
	var buf strings.Builder
	tabs := strings.Repeat("\t", indent)

	buf.WriteString(fmt.Sprintf("switch %s {\n", s.Expr))
	for _, c := range s.Cases {
		if len(c.Values) == 0 {
			continue
		}
		buf.WriteString(tabs + fmt.Sprintf("case %s:\n", strings.Join(c.Values, ", ")))
		for _, stmt := range c.Body {
			buf.WriteString(tabs + "\t")
			buf.WriteString(stmt.String(indent + 1))
			buf.WriteString("\n")
		}
	}
	buf.WriteString(tabs + "}")

	return buf.String()
}

// Assignment は代入文を表す。
//
// 例: v.Stars = 5
type Assignment struct {
	Target string // 代入先
	Value  string // 代入する値
}

// String は代入文の文字列表現を返す。
func (a *Assignment) String(_ int) string {
	return fmt.Sprintf("%s = %s", a.Target, a.Value)
}

// ReturnStatement は return 文を表す。
//
// 例: return selection.Leaf[Human]("name", selection.Value[string]())
type ReturnStatement struct {
	Value string // 返す値（空の場合は単なる return）
}

// String は return 文の文字列表現を返す。
//
// 複数行にまたがる値は 2 行目以降にインデントを付ける。
func (r *ReturnStatement) String(indent int) string {
	if r.Value == "" {
		return "return"
	}
	return "return " + indentContinuation(r.Value, indent)
}

// RawStatement は生の Go コードを表す。
//
// String() メソッドで文字列をそのまま返す。
type RawStatement struct {
	Code string // Go コード
}

// String は生のコードをそのまま返す。
func (r *RawStatement) String(indent int) string {
	return indentContinuation(r.Code, indent)
}

func indentContinuation(code string, indent int) string {
	if indent == 0 || !strings.Contains(code, "\n") {
		return code
	}
	return strings.ReplaceAll(code, "\n", "\n"+strings.Repeat("\t", indent))
}
