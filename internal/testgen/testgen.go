// Package testgen synthesizes invocation test cases for externally callable functions.
package testgen

import (
	"fmt"
	"math/big"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
)

var (
	reUint  = regexp.MustCompile(`^uint\d*$`)
	reInt   = regexp.MustCompile(`^int\d*$`)
	reBytes = regexp.MustCompile(`^bytes\d*$`)
)

// PlaceholderAddress is the canonical value for address parameters.
var PlaceholderAddress = common.HexToAddress("0x1234567890123456789012345678901234567890")

// Unknown marks a parameter whose type has no canonical value. It encodes as JSON null.
type Unknown struct{}

func (Unknown) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (Unknown) String() string { return "<unknown>" }

type typeFamily int

const (
	familyOther typeFamily = iota
	familyUint
	familyInt
	familyBool
	familyAddress
	familyString
	familyBytes
)

func classify(typ string) typeFamily {
	switch {
	case reUint.MatchString(typ):
		return familyUint
	case reInt.MatchString(typ):
		return familyInt
	case typ == "bool":
		return familyBool
	case typ == "address":
		return familyAddress
	case typ == "string":
		return familyString
	case reBytes.MatchString(typ):
		return familyBytes
	default:
		return familyOther
	}
}

func (f typeFamily) integer() bool { return f == familyUint || f == familyInt }

// CanonicalValue returns the nominal argument used for a parameter of type typ.
func CanonicalValue(typ string) any {
	switch classify(typ) {
	case familyUint:
		return big.NewInt(100)
	case familyInt:
		return big.NewInt(-10)
	case familyBool:
		return true
	case familyAddress:
		return PlaceholderAddress
	case familyString:
		return "test"
	case familyBytes:
		return hexutil.Bytes{0x12, 0x34}
	default:
		return Unknown{}
	}
}

// MaxUint256 returns a fresh 2^256-1.
func MaxUint256() *big.Int { return new(big.Int).Set(math.MaxBig256) }

// Generate emits a nominal and a boundary case for every callable function,
// in the order the functions appear in source.
func Generate(source string) []model.TestCase {
	cases := []model.TestCase{}
	for _, sig := range ParseSignatures(source) {
		if !sig.Callable() {
			continue
		}
		cases = append(cases, nominal(sig), boundary(sig))
	}
	return cases
}

func nominal(sig Signature) model.TestCase {
	params := make(map[string]any, len(sig.Params))
	for _, p := range sig.Params {
		params[p.Name] = CanonicalValue(p.Type)
	}
	return model.TestCase{
		Description:  fmt.Sprintf("Nominal call of function %s", sig.Name),
		FunctionName: sig.Name,
		Parameters:   params,
		Expected:     model.OutcomeSuccess,
	}
}

// boundary replaces every integer-typed argument with 2^256-1 and leaves the rest nominal.
func boundary(sig Signature) model.TestCase {
	params := make(map[string]any, len(sig.Params))
	for _, p := range sig.Params {
		if classify(p.Type).integer() {
			params[p.Name] = MaxUint256()
			continue
		}
		params[p.Name] = CanonicalValue(p.Type)
	}
	return model.TestCase{
		Description:  fmt.Sprintf("Boundary call of function %s with extreme values", sig.Name),
		FunctionName: sig.Name,
		Parameters:   params,
		Expected:     model.OutcomeRevert,
		IsBoundary:   true,
	}
}
