package encode

import (
	"strings"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/syntax"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind syntax.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	KindColor ColorAttr = iota
	TextColor
	SpanColor
	NameColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range syntax.Kinds() {
		able := Colorable{
			Kind: k,
			Attr: KindColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SpanColor
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	}
	able := Colorable{Attr: KindColor}

	able.Kind = syntax.FunctionDecl
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Kind = syntax.MethodDecl
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Kind = syntax.ClassDecl
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
	able.Kind = syntax.EnumDecl
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Attr = TextColor
	able.Kind = syntax.NumberLit
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = syntax.StringLit
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Kind = syntax.BoolLit
	colors.Map[able] = color.CyanString
	able.Kind = syntax.NullLit
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Kind = syntax.Identifier
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	able.Attr = NameColor
	able.Kind = syntax.FunctionDecl
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	able.Kind = syntax.ClassDecl
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	able.Kind = syntax.EnumDecl
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k syntax.Kind, a ColorAttr, s string) string {
	res := c.Get(k, a)(s)
	return res
}

func (c *Colors) Get(k syntax.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
