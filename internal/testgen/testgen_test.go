package testgen

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
)

const bank = `pragma solidity ^0.8.0;

contract Bank {
    mapping(address => uint256) public balances;

    function deposit() public payable {
        balances[msg.sender] += msg.value;
    }

    function withdraw(uint256 amount) public {
        (bool ok, ) = msg.sender.call{value: amount}(""); require(ok);
    }

    function _settle(address who) internal {
    }

    function audit(address who, bool strict, string memory note, bytes32 tag, int8 delta) external view returns (uint256) {
        return balances[who];
    }

    function sweep(address[] memory targets) external {
    }

    function restricted() public onlyOwner {
    }
}`

func TestParseSignatures(t *testing.T) {
	sigs := ParseSignatures(bank)
	var names []string
	for _, s := range sigs {
		names = append(names, s.Name)
	}
	// restricted carries a modifier and does not match the header pattern
	assert.Equal(t, []string{"deposit", "withdraw", "_settle", "audit", "sweep"}, names)

	assert.Equal(t, "public", sigs[0].Visibility)
	assert.Equal(t, "payable", sigs[0].Mutability)
	assert.Equal(t, 6, sigs[0].Line)

	assert.Equal(t, []Param{{Type: "uint256", Name: "amount"}}, sigs[1].Params)

	assert.False(t, sigs[2].Callable())

	audit := sigs[3]
	assert.Equal(t, "external", audit.Visibility)
	assert.Equal(t, "view", audit.Mutability)
	assert.Equal(t, "uint256", audit.Returns)
	require.Len(t, audit.Params, 5)
	assert.Equal(t, Param{Type: "string", Name: "note"}, audit.Params[2])
}

func TestParseSignatures_DefaultVisibilityAndUnnamed(t *testing.T) {
	sigs := ParseSignatures("function ping(uint256, address payable to) {\n}")
	require.Len(t, sigs, 1)
	assert.Equal(t, "public", sigs[0].Visibility)
	assert.Equal(t, []Param{{Type: "uint256", Name: "arg0"}, {Type: "address", Name: "to"}}, sigs[0].Params)
}

func TestParseSignatures_SkipsMalformedParams(t *testing.T) {
	sigs := ParseSignatures("function bad(uint256 a b) public {\n}\nfunction good() public {\n}")
	require.Len(t, sigs, 1)
	assert.Equal(t, "good", sigs[0].Name)
}

func TestGenerate_WithdrawPair(t *testing.T) {
	src := "function withdraw(uint256 amount) public {\n    msg.sender.call{value: amount}(\"\");\n}"
	cases := Generate(src)
	require.Len(t, cases, 2)

	nom, edge := cases[0], cases[1]
	assert.Equal(t, "withdraw", nom.FunctionName)
	assert.Equal(t, model.OutcomeSuccess, nom.Expected)
	assert.False(t, nom.IsBoundary)
	assert.Equal(t, 0, big.NewInt(100).Cmp(nom.Parameters["amount"].(*big.Int)))

	want := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	assert.Equal(t, "withdraw", edge.FunctionName)
	assert.Equal(t, model.OutcomeRevert, edge.Expected)
	assert.True(t, edge.IsBoundary)
	assert.Equal(t, 0, want.Cmp(edge.Parameters["amount"].(*big.Int)))
}

func TestGenerate_OrderAndFiltering(t *testing.T) {
	cases := Generate(bank)
	var got []string
	for _, c := range cases {
		got = append(got, c.FunctionName)
	}
	assert.Equal(t, []string{"deposit", "deposit", "withdraw", "withdraw", "audit", "audit", "sweep", "sweep"}, got)
	for i := 0; i < len(cases); i += 2 {
		assert.False(t, cases[i].IsBoundary)
		assert.True(t, cases[i+1].IsBoundary)
	}
}

func TestGenerate_CanonicalValues(t *testing.T) {
	cases := Generate(bank)
	nom, edge := cases[4], cases[5]
	require.Equal(t, "audit", nom.FunctionName)

	assert.Equal(t, PlaceholderAddress, nom.Parameters["who"])
	assert.Equal(t, true, nom.Parameters["strict"])
	assert.Equal(t, "test", nom.Parameters["note"])
	assert.Equal(t, hexutil.Bytes{0x12, 0x34}, nom.Parameters["tag"])
	assert.Equal(t, 0, big.NewInt(-10).Cmp(nom.Parameters["delta"].(*big.Int)))

	// only the integer parameter changes in the boundary case
	assert.Equal(t, 0, MaxUint256().Cmp(edge.Parameters["delta"].(*big.Int)))
	assert.Equal(t, PlaceholderAddress, edge.Parameters["who"])
	assert.Equal(t, true, edge.Parameters["strict"])
	assert.Equal(t, "test", edge.Parameters["note"])
}

func TestGenerate_UnknownTypeMarker(t *testing.T) {
	cases := Generate(bank)
	sweep := cases[6]
	require.Equal(t, "sweep", sweep.FunctionName)
	assert.Equal(t, Unknown{}, sweep.Parameters["targets"])
	assert.Equal(t, Unknown{}, cases[7].Parameters["targets"])

	cases = Generate("function setOwner(Ownable target) public {\n}")
	require.Len(t, cases, 2)
	assert.Equal(t, Unknown{}, cases[0].Parameters["target"])
}

func TestGenerate_JSONShape(t *testing.T) {
	cases := Generate("function f(uint256 a, address b, bytes c, Thing d) external {\n}")
	require.Len(t, cases, 2)
	data, err := json.Marshal(cases[1].Parameters)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"a": 115792089237316195423570985008687907853269984665640564039457584007913129639935,
		"b": "0x1234567890123456789012345678901234567890",
		"c": "0x1234",
		"d": null
	}`, string(data))
}

func TestGenerate_NoFunctions(t *testing.T) {
	cases := Generate("contract Empty {}")
	assert.NotNil(t, cases)
	assert.Empty(t, cases)
}

func TestMaxUint256_IsFresh(t *testing.T) {
	a := MaxUint256()
	a.SetInt64(0)
	assert.Equal(t, 256, MaxUint256().BitLen())
}
