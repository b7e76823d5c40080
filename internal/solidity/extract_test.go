package solidity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNoContract(t *testing.T) {
	_, err := Extract([]string{"pragma solidity ^0.8.0;", "library Math {}"})
	assert.ErrorIs(t, err, ErrNoContract)
}

func TestExtractPreamble(t *testing.T) {
	lines := strings.Split(strings.Join([]string{
		"pragma solidity ^0.8.0;",
		"contract Bank {",
		"    uint public value;",
		"    uint public constant FEE = 100;",
		"    address public immutable token;",
		"    mapping(address => uint) balances;",
		"}",
	}, "\n"), "\n")

	ex, err := Extract(lines)
	require.NoError(t, err)
	assert.Equal(t, 2, ex.ContractLine)
	require.Len(t, ex.PreambleFindings, 1)
	f := ex.PreambleFindings[0]
	assert.Equal(t, "state-visibility", f.RuleID)
	assert.Equal(t, 3, f.Line)
	assert.Equal(t, 1, f.Column)
}

func TestExtractFunctions(t *testing.T) {
	lines := []string{
		"contract Vault {",
		"    function deposit() public payable {",
		"        balances[msg.sender] += msg.value;",
		"    }",
		"    function withdraw(uint amount) external onlyOwner {",
		"        msg.sender.transfer(amount);",
		"    }",
		"}",
	}

	ex, err := Extract(lines)
	require.NoError(t, err)
	require.Len(t, ex.Functions, 2)

	deposit := ex.Functions[0]
	assert.Equal(t, "deposit", deposit.Name)
	assert.Equal(t, 2, deposit.StartLine)
	assert.Equal(t, "public", deposit.Visibility)
	assert.True(t, deposit.IsPayable)
	assert.True(t, deposit.HasStateChange)
	assert.False(t, deposit.HasExternalCall)
	assert.Empty(t, deposit.Modifiers)

	withdraw := ex.Functions[1]
	assert.Equal(t, "withdraw", withdraw.Name)
	assert.Equal(t, 5, withdraw.StartLine)
	assert.Equal(t, "external", withdraw.Visibility)
	assert.False(t, withdraw.IsPayable)
	assert.True(t, withdraw.HasExternalCall)
	assert.Equal(t, []string{"onlyOwner"}, withdraw.Modifiers)
	assert.True(t, withdraw.HasOwnerGuard())
}

func TestExtractUnspecifiedVisibility(t *testing.T) {
	ex, err := Extract([]string{
		"contract C {",
		"    function helper() {",
		"    }",
		"}",
	})
	require.NoError(t, err)
	require.Len(t, ex.Functions, 1)
	assert.Equal(t, "", ex.Functions[0].Visibility)
	assert.False(t, ex.Functions[0].HasOwnerGuard())
}

func TestExtractModifiersSkipReturns(t *testing.T) {
	ex, err := Extract([]string{
		"contract C {",
		"    function total() public view whenNotPaused returns (uint256) {",
		"        return sum;",
		"    }",
		"}",
	})
	require.NoError(t, err)
	require.Len(t, ex.Functions, 1)
	assert.Equal(t, []string{"whenNotPaused"}, ex.Functions[0].Modifiers)
	assert.False(t, ex.Functions[0].HasOwnerGuard())
}

func TestPatterns(t *testing.T) {
	assert.True(t, HasExternalCall(`recipient.call{value: 1}("")`))
	assert.True(t, HasExternalCall("a.send(1)"))
	assert.True(t, HasExternalCall("a.transfer(1)"))
	assert.False(t, HasExternalCall("emit Transfer(a, b, 1)"))

	assert.True(t, HasStateChange("balances[a] = 0"))
	assert.True(t, HasStateChange("total += x"))
	assert.True(t, HasStateChange("total -= x"))
	assert.False(t, HasStateChange("uint x = total"))

	assert.True(t, HasGuard("require(ok)"))
	assert.True(t, HasGuard("if (ok) {"))
	assert.True(t, HasGuard("assert(ok)"))
	assert.False(t, HasGuard("revert()"))
}
