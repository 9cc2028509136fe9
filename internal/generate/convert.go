package generate

import (
	. "github.com/dave/jennifer/jen"
)

const (
	modulePath = "github.com/tradekit/tickexpr-go"
	apdPath    = "github.com/cockroachdb/apd/v3"
)

// scalarConversion describes one raw Go type accepted by FromAny. Every
// entry emits a value arm and a pointer arm; pointer arms map nil to Empty.
type scalarConversion struct {
	GoType string
	// Variant is the target variant for direct conversions.
	Variant string
	// Helper names a fallible conversion helper to call instead of a direct
	// variant conversion.
	Helper string
	// Widen converts the raw value through this type before the helper.
	Widen string
}

// scalarConversions lists the accepted raw types in emission order.
var scalarConversions = []scalarConversion{
	{GoType: "bool", Variant: "Boolean"},
	{GoType: "string", Variant: "String"},
	{GoType: "int", Variant: "Int"},
	{GoType: "int8", Variant: "Int"},
	{GoType: "int16", Variant: "Int"},
	{GoType: "int32", Variant: "Int"},
	{GoType: "int64", Variant: "Int"},
	{GoType: "uint8", Variant: "Int"},
	{GoType: "uint16", Variant: "Int"},
	{GoType: "uint32", Variant: "Int"},
	{GoType: "uint", Helper: "uintValue", Widen: "uint64"},
	{GoType: "uint64", Helper: "uintValue"},
	{GoType: "uintptr", Helper: "uintValue", Widen: "uint64"},
	{GoType: "float32", Variant: "Float"},
	{GoType: "float64", Variant: "Float"},
}

// ConvertFile renders the content of exprfn/convert_gen.go.
func ConvertFile() *File {
	f := NewFilePathName(modulePath+"/exprfn", "exprfn")
	f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")
	f.ImportName("encoding/json", "json")
	f.ImportAlias(apdPath, "apd")

	f.Comment("// FromAny converts a raw scalar produced by the record pipeline into a")
	f.Comment("// Value. nil and nil pointers become Empty; unsigned values that overflow")
	f.Comment("// Int and types outside the accepted set are InvalidArgumentType errors.")
	f.Comment("// The accepted type set and this switch are maintained by")
	f.Comment("// internal/cmd/generate.")
	f.Func().Id("FromAny").Params(Id("v").Any()).Params(Id("Value"), Error()).Block(
		Switch(Id("v").Op(":=").Id("v").Assert(Type())).BlockFunc(func(g *Group) {
			g.Case(Nil()).Block(
				Return(Id("Empty").Values(), Nil()),
			)
			g.Case(Id("Value")).Block(
				Return(Id("v"), Nil()),
			)
			for _, sc := range scalarConversions {
				g.Case(Id(sc.GoType)).Block(
					conversionReturn(sc, Id("v")),
				)
				g.Case(Op("*").Id(sc.GoType)).Block(
					If(Id("v").Op("==").Nil()).Block(
						Return(Id("Empty").Values(), Nil()),
					),
					conversionReturn(sc, Op("*").Id("v")),
				)
			}
			g.Case(Index().Byte()).Block(
				Return(Id("String").Call(Id("v")), Nil()),
			)
			g.Case(Qual("encoding/json", "Number")).Block(
				Return(Id("numberValue").Call(Id("v"))),
			)
			g.Case(Op("*").Qual("encoding/json", "Number")).Block(
				If(Id("v").Op("==").Nil()).Block(
					Return(Id("Empty").Values(), Nil()),
				),
				Return(Id("numberValue").Call(Op("*").Id("v"))),
			)
			g.Case(Qual(apdPath, "Decimal")).Block(
				Return(Id("decimalValue").Call(Op("&").Id("v"))),
			)
			g.Case(Op("*").Qual(apdPath, "Decimal")).Block(
				Return(Id("decimalValue").Call(Id("v"))),
			)
			g.Default().Block(
				Return(Nil(), Op("&").Id("Error").Values(Dict{
					Id("Code"):    Id("CodeInvalidArgumentType"),
					Id("Message"): Qual("fmt", "Sprintf").Call(Lit("cannot convert %T to a value"), Id("v")),
				})),
			)
		}),
	)

	return f
}

func conversionReturn(sc scalarConversion, arg *Statement) *Statement {
	if sc.Helper != "" {
		if sc.Widen != "" {
			arg = Id(sc.Widen).Call(arg)
		}
		return Return(Id(sc.Helper).Call(arg))
	}
	return Return(Id(sc.Variant).Call(arg), Nil())
}
