package main

import (
	"gallery/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(model.All()...)

	gen.Execute()
}
