package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Default returns the built-in eight-product catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}
