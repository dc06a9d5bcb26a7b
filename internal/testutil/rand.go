//go:build !production

package testutil

import "math/rand/v2"

// NewSeededRand 返回确定性随机源，同一种子下洗牌与摸牌完全可复现
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// ScriptedRand 按预置序列返回随机数，用于精确控制摸牌合成的分支。
// 序列耗尽后 IntN 恒返回 0，Float64 恒返回 1
type ScriptedRand struct {
	Ints   []int
	Floats []float64

	intIdx   int
	floatIdx int
}

func (r *ScriptedRand) IntN(n int) int {
	if r.intIdx >= len(r.Ints) {
		return 0
	}
	v := r.Ints[r.intIdx] % n
	r.intIdx++
	return v
}

func (r *ScriptedRand) Float64() float64 {
	if r.floatIdx >= len(r.Floats) {
		return 1
	}
	v := r.Floats[r.floatIdx]
	r.floatIdx++
	return v
}
