package validator

// /api/productsの各操作のルール定義。
// メッセージはAPIの固定文言。

func ProductIDRules() []Rule {
	return []Rule{
		{Field: "id", Location: LocationPath, Check: IsInt, Message: "ID no válido"},
	}
}

func ProductCreateRules() []Rule {
	return []Rule{
		{Field: "name", Location: LocationBody, Check: NotEmpty, Message: "El nombre del Producto no puede ir vacío"},
		{Field: "price", Location: LocationBody, Check: IsNumber, Message: "Valor no válido"},
		{Field: "price", Location: LocationBody, Check: NotEmpty, Message: "El precio del Producto no puede ir vacío"},
		{Field: "price", Location: LocationBody, Check: IsPositiveNumber, Message: "Precio no válido"},
	}
}

func ProductUpdateRules() []Rule {
	rules := ProductIDRules()
	rules = append(rules, ProductCreateRules()...)
	rules = append(rules, Rule{
		Field:    "availability",
		Location: LocationBody,
		Check:    IsBool,
		Message:  "Valor para disponibilidad no válido",
	})
	return rules
}
