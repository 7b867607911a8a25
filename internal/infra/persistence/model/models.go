// Package model holds the GORM persistence structs. Domain code never sees them.
package model

// All lists every model in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&TechniqueModel{},
		&ArtworkModel{},
		&PromptPurchaseModel{},
		&OrderModel{},
	}
}
