package worker

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"datagen/internal/repository"
	"datagen/internal/usecase"
)

// rawレイヤーを読み、不正値を含む行を落としてcleanedレイヤーへ書き直す。
func (p *Pool) handleClean(ctx context.Context, job usecase.Job) error {
	for _, table := range repository.DatasetTables {
		rows, err := p.store.ListRows(ctx, repository.LayerRaw, job.UserID, job.ParentJobID, table, job.Count)
		if err != nil {
			return err
		}

		cleaned := lo.Filter(rows, func(row json.RawMessage, _ int) bool {
			return isCleanRow(table, row, time.Now())
		})
		if len(cleaned) == 0 {
			continue
		}

		err = p.store.SaveRows(ctx, repository.LayerCleaned, job.UserID, job.ParentJobID, job.JobID, table, cleaned)
		if err != nil {
			return err
		}
	}

	return nil
}

// 生成側が混ぜる不正値のパターンを弾く。
// 文字列は大文字小文字を問わず "invalid" を含む値（1234@invalid のような接尾辞も対象）、
// 数値はドメインの範囲、日付は未来日。
func isCleanRow(table string, row json.RawMessage, now time.Time) bool {
	doc := gjson.ParseBytes(row)
	if !doc.IsObject() {
		return false
	}

	clean := true
	doc.ForEach(func(_, value gjson.Result) bool {
		if value.Type == gjson.String &&
			strings.Contains(strings.ToLower(value.Str), "invalid") {
			clean = false
			return false
		}
		return true
	})
	if !clean {
		return false
	}

	switch table {
	case "user":
		sex := doc.Get("sex").Str
		if sex != "M" && sex != "F" && sex != "Other" {
			return false
		}
		if len(doc.Get("password").Str) < 8 {
			return false
		}
		birth, err := time.Parse(time.RFC3339, doc.Get("birth_of_date").Str)
		if err != nil || birth.After(now) {
			return false
		}

	case "products_sku":
		price := doc.Get("price").Float()
		if price < 5.0 || price > 500.0 {
			return false
		}
		quantity := doc.Get("quantity").Int()
		if quantity < 0 || quantity > 9999999 {
			return false
		}

	case "payment":
		// 金額は下流で確定するまで0。負値や桁あふれは不正。
		amount := doc.Get("amount").Float()
		if amount < 0 || amount > 1000000 {
			return false
		}

	case "order_item", "cart":
		quantity := doc.Get("quantity").Int()
		if quantity < 1 || quantity > 99999999 {
			return false
		}
	}

	return true
}
