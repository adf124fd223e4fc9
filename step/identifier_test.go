package step

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifier_BareForm(t *testing.T) {
	assert.Equal(t, "0", Identifier(0, nil))
	assert.Equal(t, "1", Identifier(1, nil))
	assert.Equal(t, "42", Identifier(42, nil))
}

func TestIdentifier_DottedForm(t *testing.T) {
	assert.Equal(t, "1.1", Identifier(1, Substep(1)))
	assert.Equal(t, "3.12", Identifier(3, Substep(12)))
}

func TestIdentifier_ZeroSubstepIsPresent(t *testing.T) {
	// Presence is tri-state: an explicit zero substep is not collapsed
	// into the bare form.
	assert.Equal(t, "5.0", Identifier(5, Substep(0)))
	assert.NotEqual(t, Identifier(5, nil), Identifier(5, Substep(0)))
}

func TestIdentifier_Deterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, Identifier(7, Substep(3)), Identifier(7, Substep(3)))
	}
}
