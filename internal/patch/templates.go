package patch

import (
	"fmt"
	"strings"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
)

const callerIdentity = "msg.sender"

func reentrancy(function, indent string) string {
	body := []string{
		`require(!_mutex, "ReentrancyGuard: reentrant call");`,
		`_mutex = true;`,
		``,
		`require(balances[msg.sender] >= amount, "Insufficient balance");`,
		``,
		`// Update state before the external call (Checks-Effects-Interactions)`,
		`balances[msg.sender] -= amount;`,
		``,
		`// External call`,
		`(bool success, ) = msg.sender.call{value: amount}("");`,
		`require(success, "Transfer failed");`,
		``,
		`_mutex = false;`,
	}
	var b strings.Builder
	b.WriteString("// DEP Security Patch: reentrancy protection\n")
	b.WriteString("// Add a state variable at the top of the contract:\n")
	b.WriteString("// bool private _mutex;\n\n")
	fmt.Fprintf(&b, "// Replace function %s with:\n", function)
	fmt.Fprintf(&b, "function %s(uint256 amount) public {\n", function)
	for _, l := range body {
		b.WriteString(indent + l + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func integerOverflow() string {
	return `// DEP Security Patch: integer overflow protection
// Import the SafeMath library at the top of the contract:
// import "@openzeppelin/contracts/utils/math/SafeMath.sol";

// Enable it for uint256:
// using SafeMath for uint256;

// Replace raw addition and subtraction with the checked versions:
// balances[msg.sender] = balances[msg.sender].add(msg.value);
// balances[msg.sender] = balances[msg.sender].sub(amount);

// On Solidity 0.8 and later arithmetic is checked by default; make sure the
// operation is not wrapped in an unchecked block.`
}

func txOrigin(original string) string {
	patched := strings.ReplaceAll(original, "tx.origin", callerIdentity)
	return fmt.Sprintf(`// DEP Security Patch: replace tx.origin with %[3]s
// Original line:
// %[1]s

// Patched line:
// %[2]s

// tx.origin is unsafe for authorization: any contract the owner interacts with
// can act on their behalf. %[3]s always refers to the immediate caller.`,
		strings.TrimSpace(original), strings.TrimSpace(patched), callerIdentity)
}

func uncheckedReturn(original, indent string) string {
	return fmt.Sprintf(`// DEP Security Patch: check the return value of the external call
// Original line:
// %[1]s

// Patched line:
%[2]s(bool success, ) = target.call(data);
%[2]srequire(success, "External call failed");

// Always check the result of low-level calls with require().`,
		strings.TrimSpace(original), indent)
}

func selfDestruct(original, indent string) string {
	return fmt.Sprintf(`// DEP Security Patch: guard selfdestruct
// Original line:
// %[1]s

// Patched line:
%[2]srequire(msg.sender == owner, "Only owner can destroy the contract");
%[2]srequire(address(this).balance == 0, "Contract still has funds");
%[2]sselfdestruct(payable(owner));

// Consider a multisig or a timelock in front of destructive operations.`,
		strings.TrimSpace(original), indent)
}

func generic(name string, loc model.Location) string {
	return fmt.Sprintf(`// DEP Security Patch: remediation guidance for "%s"
// Offending line (line %d):
// %s

// Recommendations:
// 1. Review the surrounding code for the reported weakness.
// 2. Follow established smart-contract security practices.
// 3. Prefer audited libraries such as OpenZeppelin.
// 4. Have the contract audited before deploying to mainnet.`,
		name, loc.LineNumber, loc.LineText)
}
