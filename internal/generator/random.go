package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Randは乱数プロバイダ。
// グローバル乱数には依存せず、seed指定で再現可能にする。
// 並行利用は不可（利用側が1ゴルーチンにつき1つ持つ）。
type Rand struct {
	rng *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// UniformIntは[min, max]の一様整数。min > maxはプログラミングエラー。
func (r *Rand) UniformInt(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("generator: UniformInt min %d > max %d", min, max))
	}
	return min + r.rng.Intn(max-min+1)
}

// UniformDecimalは[min, max]の一様値を小数2桁に丸めて返す。
func (r *Rand) UniformDecimal(min, max float64) decimal.Decimal {
	if min > max {
		panic(fmt.Sprintf("generator: UniformDecimal min %v > max %v", min, max))
	}
	v := min + r.rng.Float64()*(max-min)
	return decimal.NewFromFloat(v).Round(2)
}

// DateBetweenは[start, end]（両端含む）の一様な時刻。
func (r *Rand) DateBetween(start, end time.Time) time.Time {
	if start.After(end) {
		panic(fmt.Sprintf("generator: DateBetween start %v after end %v", start, end))
	}
	span := end.Sub(start)
	if span == 0 {
		return start
	}
	return start.Add(time.Duration(r.rng.Int63n(int64(span) + 1)))
}

// Float64は[0,1)の一様値。エラー注入の判定に使う。
func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

// PickOneは候補から1つ選ぶ。空スライスはプログラミングエラー。
func PickOne[T any](r *Rand, candidates []T) T {
	if len(candidates) == 0 {
		panic("generator: PickOne called with no candidates")
	}
	return candidates[r.rng.Intn(len(candidates))]
}
