package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// 汚れデータ注入。データ品質デモ用に、errorRateの確率で
// もっともらしい不正値（型の範囲内）に差し替える。

func (g *Generator) corrupt() bool {
	return g.errorRate > 0 && g.rnd.Float64() < g.errorRate
}

func (g *Generator) maybeString(real string, invalid func() string) string {
	if g.corrupt() {
		return invalid()
	}
	return real
}

func (g *Generator) maybeInt64(real int64, invalid func() int64) int64 {
	if g.corrupt() {
		return invalid()
	}
	return real
}

func (g *Generator) maybeDecimal(real decimal.Decimal, invalid func() decimal.Decimal) decimal.Decimal {
	if g.corrupt() {
		return invalid()
	}
	return real
}

func (g *Generator) maybeDate(real time.Time, invalid func() time.Time) time.Time {
	if g.corrupt() {
		return invalid()
	}
	return real
}

func (g *Generator) invalidDescription() string {
	return fmt.Sprintf("Invalid description %d", g.rnd.UniformInt(1, 1000))
}

// クリーニングレイヤーが不正値を見分ける際の目印。
func isInvalidValue(s string) bool {
	return strings.HasPrefix(s, "Invalid")
}
