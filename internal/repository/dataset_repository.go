package repository

import (
	"context"

	"datagen/internal/generator"
)

// 同期生成パス（/write_to_db）の永続化と、get_<table>の閲覧を約束。
type DatasetRepository interface {
	// 1トランザクションで全テーブルへバッチINSERT
	SaveBundles(ctx context.Context, bundles []*generator.Bundle) error
	// 対象テーブルの新しい行をlimit件。tableはハンドラ側でホワイトリスト済みの論理名
	ListRecent(ctx context.Context, table string, limit int) (any, error)
}

// get_<table>で受け付ける論理名 → レコード型の対応はinfra側が持つ。
// ここでは論理名の一覧だけ公開する（ルーティングの検証用）。
var DatasetTables = []string{
	"user",
	"address",
	"category",
	"subcategory",
	"product",
	"products_sku",
	"wishlist",
	"payment",
	"order",
	"order_item",
	"cart",
}
