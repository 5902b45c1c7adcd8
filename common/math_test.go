package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecOps(t *testing.T) {
	a := V(16, 16)
	b := V(0.5, 1)

	assert.Equal(t, V(8, 16), a.Mul(b))
	assert.Equal(t, V(16.5, 17), a.Add(b))
	assert.Equal(t, V(15.5, 15), a.Sub(b))
	assert.Equal(t, V(32, 32), a.Scale(2))
}

func TestLerp(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 0, 10, 0, 0},
		{"mid", 0, 10, 0.5, 5},
		{"end", 0, 10, 1, 10},
		{"negative", 10, -10, 0.25, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, Lerp(c.a, c.b, c.t), 1e-9)
		})
	}
	assert.Equal(t, V(5, 10), LerpVec(V(0, 0), V(10, 20), 0.5))
}
