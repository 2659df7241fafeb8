package validator

import "fmt"

// Family selects the validation rules for a currency. The set is closed;
// user-defined currencies use FamilyGeneric.
type Family int

const (
	FamilyGeneric Family = iota
	FamilyBitcoin
	FamilyLitecoin
	FamilyDogecoin
	FamilyTron
	FamilyEthereum
	FamilyTether
	FamilyRipple
	FamilyStellar
	FamilyMonero
	FamilyCardano
	FamilySolana

	familyCount
)

var familyNames = [familyCount]string{
	FamilyGeneric:  "generic",
	FamilyBitcoin:  "bitcoin",
	FamilyLitecoin: "litecoin",
	FamilyDogecoin: "dogecoin",
	FamilyTron:     "tron",
	FamilyEthereum: "ethereum",
	FamilyTether:   "tether",
	FamilyRipple:   "ripple",
	FamilyStellar:  "stellar",
	FamilyMonero:   "monero",
	FamilyCardano:  "cardano",
	FamilySolana:   "solana",
}

func (f Family) String() string {
	if f < 0 || f >= familyCount {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// Families returns every defined family in declaration order.
func Families() []Family {
	out := make([]Family, 0, familyCount)
	for f := Family(0); f < familyCount; f++ {
		out = append(out, f)
	}
	return out
}
