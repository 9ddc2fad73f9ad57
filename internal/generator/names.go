package generator

import (
	"github.com/Rana718/funnelgen/internal/dataset"
	"github.com/brianvoe/gofakeit/v7"
)

// applyFakerNames replaces sequential account names with company names.
// The faker has its own stream so no other column changes.
func applyFakerNames(accounts []dataset.Account, seed uint64) {
	faker := gofakeit.New(seed)
	for i := range accounts {
		accounts[i].Name = faker.Company()
	}
}
