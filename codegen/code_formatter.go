package codegen

import (
	"fmt"
	"strings"
)

// CodeFormatter は生成される宣言を Go のソースコード文字列にフォーマットする。
//
// 出力は gofmt 前のテキストであり、整形と import の整理は書き出し時に行う。
type CodeFormatter struct{}

// NewCodeFormatter は新しい CodeFormatter を作成する。
func NewCodeFormatter() *CodeFormatter {
	return &CodeFormatter{}
}

// Param は関数のパラメータを表す。
type Param struct {
	Name string
	Type string
}

// FuncDecl は関数宣言を表す。
type FuncDecl struct {
	Doc        []string    // ドキュメントコメントの各行
	Receiver   string      // レシーバ（例: "e Episode"）。空の場合は関数
	Name       string      // 関数名
	TypeParams string      // 型パラメータ（例: "T any"）
	Params     []Param     // パラメータ
	Result     string      // 戻り値の型
	Body       []Statement // 関数本体
}

// StructMember は構造体のメンバーを表す。
type StructMember struct {
	Doc  []string
	Name string
	Type string
	Tag  string // 空の場合はタグなし
}

// ConstSpec は const ブロック内の 1 定数を表す。
type ConstSpec struct {
	Doc   []string
	Name  string
	Type  string
	Value string
}

// FormatDoc はコメント行を "// " 付きでフォーマットする。
func (f *CodeFormatter) FormatDoc(lines []string, indent string) string {
	var buf strings.Builder
	for _, line := range lines {
		if line == "" {
			buf.WriteString(indent + "//\n")
			continue
		}
		buf.WriteString(indent + "// " + line + "\n")
	}
	return buf.String()
}

// FormatTypeDecl は型定義を文字列にフォーマットする。
//
// 戻り値: フォーマットされた型定義（例: "type Episode string\n"）
func (f *CodeFormatter) FormatTypeDecl(doc []string, typeName, typ string) string {
	return f.FormatDoc(doc, "") + fmt.Sprintf("type %s %s\n", typeName, typ)
}

// FormatStructDecl は構造体の型定義をフォーマットする。
func (f *CodeFormatter) FormatStructDecl(doc []string, typeName string, members []StructMember) string {
	var buf strings.Builder
	buf.WriteString(f.FormatDoc(doc, ""))
	buf.WriteString(fmt.Sprintf("type %s struct {\n", typeName))
	for _, m := range members {
		buf.WriteString(f.FormatDoc(m.Doc, "\t"))
		buf.WriteString(fmt.Sprintf("\t%s %s", m.Name, m.Type))
		if m.Tag != "" {
			buf.WriteString(" `" + m.Tag + "`")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	return buf.String()
}

// FormatConstBlock は const ブロックをフォーマットする。
func (f *CodeFormatter) FormatConstBlock(consts []ConstSpec) string {
	if len(consts) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("const (\n")
	for _, c := range consts {
		buf.WriteString(f.FormatDoc(c.Doc, "\t"))
		buf.WriteString(fmt.Sprintf("\t%s %s = %s\n", c.Name, c.Type, c.Value))
	}
	buf.WriteString(")\n")

	return buf.String()
}

// FormatFunc は関数宣言をフォーマットする。
//
// 生成例:
//
//	func Human_name() selection.Selection[string, Human] {
//		return selection.Leaf[Human]("name", selection.Value[string]())
//	}
func (f *CodeFormatter) FormatFunc(fn FuncDecl) string {
	var buf strings.Builder

	buf.WriteString(f.FormatDoc(fn.Doc, ""))
	buf.WriteString("func ")
	if fn.Receiver != "" {
		buf.WriteString("(" + fn.Receiver + ") ")
	}
	buf.WriteString(fn.Name)
	if fn.TypeParams != "" {
		buf.WriteString("[" + fn.TypeParams + "]")
	}

	params := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		params = append(params, p.Name+" "+p.Type)
	}
	buf.WriteString("(" + strings.Join(params, ", ") + ")")
	if fn.Result != "" {
		buf.WriteString(" " + fn.Result)
	}
	buf.WriteString(" {\n")

	for _, stmt := range fn.Body {
		buf.WriteString("\t")
		buf.WriteString(stmt.String(1))
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	return buf.String()
}

// descriptionDoc はスキーマの description と非推奨理由をコメント行に変換する。
func descriptionDoc(description string, deprecated bool, reason string) []string {
	var lines []string
	if description != "" {
		lines = append(lines, strings.Split(strings.TrimRight(description, "\n"), "\n")...)
	}
	if deprecated {
		if reason == "" {
			reason = "No longer supported"
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "Deprecated: "+strings.ReplaceAll(reason, "\n", " "))
	}

	return lines
}
