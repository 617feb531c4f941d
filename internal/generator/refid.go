package generator

import (
	"errors"
	"fmt"
)

// SkuIDは祖先IDの末尾3文字＋5桁の乱数をハイフンで連結した複合ID。
// ルックアップなしで目視トレースできるのが狙い。
// 祖先IDが3文字未満の場合はエラー（切り出し位置が定義できない）。

var ErrAncestorIDTooShort = errors.New("generator: ancestor id shorter than 3 characters")

const skuIDSuffixLen = 3

func SkuID(categoryID, subcategoryID, productID string, rnd *Rand) (string, error) {
	for _, id := range []string{categoryID, subcategoryID, productID} {
		if len(id) < skuIDSuffixLen {
			return "", fmt.Errorf("%w: %q", ErrAncestorIDTooShort, id)
		}
	}

	num := rnd.UniformInt(10000, 99999)

	return fmt.Sprintf("%s-%s-%s-%d",
		categoryID[len(categoryID)-skuIDSuffixLen:],
		subcategoryID[len(subcategoryID)-skuIDSuffixLen:],
		productID[len(productID)-skuIDSuffixLen:],
		num,
	), nil
}
