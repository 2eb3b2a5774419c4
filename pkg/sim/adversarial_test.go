package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdversarialInjectorTurns(t *testing.T) {
	env := DefaultEnvironment()
	env.AdversarialTurns = []int{0, 2}
	inj := NewAdversarialInjector(env, testRNG())

	assert.True(t, inj.ShouldInject(0))
	assert.False(t, inj.ShouldInject(1))
	assert.True(t, inj.ShouldInject(2))
	assert.False(t, inj.ShouldInject(3))
}

func TestAdversarialInjectorGenerate(t *testing.T) {
	env := DefaultEnvironment()
	env.AdversarialTurns = []int{0}
	inj := NewAdversarialInjector(env, testRNG())

	known := make(map[string]bool)
	for _, category := range adversarialMessages {
		for _, msg := range category {
			known[msg] = true
		}
	}

	for i := 0; i < 50; i++ {
		msg := inj.Generate(0)
		assert.True(t, known[msg], "generated message not in the template set: %q", msg)
	}
}

func TestNoopInjector(t *testing.T) {
	inj := NoopInjector{}
	assert.False(t, inj.ShouldInject(0))
	assert.Empty(t, inj.Generate(0))
}
