package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"datagen/internal/generator"
	domainrepo "datagen/internal/repository"
)

const insertBatchSize = 500

type datasetGormRepository struct {
	db *gorm.DB
}

func NewDatasetGormRepository(db *gorm.DB) domainrepo.DatasetRepository {
	return &datasetGormRepository{db: db}
}

// 全Bundleをテーブルごとにまとめ、1トランザクションでバッチINSERTする。
// どこかで失敗したら全体をロールバック（部分コミットなし）。
func (r *datasetGormRepository) SaveBundles(ctx context.Context, bundles []*generator.Bundle) error {
	if len(bundles) == 0 {
		return nil
	}

	users := make([]generator.User, 0, len(bundles))
	addresses := make([]generator.Address, 0, len(bundles))
	categories := make([]generator.Category, 0, len(bundles))
	subcategories := make([]generator.Subcategory, 0, len(bundles))
	products := make([]generator.Product, 0, len(bundles))
	skus := make([]generator.Sku, 0, len(bundles))
	wishlists := make([]generator.Wishlist, 0, len(bundles))
	payments := make([]generator.PaymentDetails, 0, len(bundles))
	orders := make([]generator.OrderDetails, 0, len(bundles))
	orderItems := make([]generator.OrderItem, 0, len(bundles))
	carts := make([]generator.Cart, 0, len(bundles))

	for _, b := range bundles {
		users = append(users, b.User)
		addresses = append(addresses, b.Address)
		categories = append(categories, b.Category)
		subcategories = append(subcategories, b.Subcategory)
		products = append(products, b.Product)
		skus = append(skus, b.Sku)
		wishlists = append(wishlists, b.Wishlist)
		payments = append(payments, b.Payment)
		orders = append(orders, b.Order)
		orderItems = append(orderItems, b.OrderItem)
		carts = append(carts, b.Cart)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, batch := range []any{
			users, addresses, categories, subcategories, products,
			skus, wishlists, payments, orders, orderItems, carts,
		} {
			if err := tx.CreateInBatches(batch, insertBatchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// 論理テーブル名ごとに新しい行をlimit件返す。
func (r *datasetGormRepository) ListRecent(ctx context.Context, table string, limit int) (any, error) {
	tx := r.db.WithContext(ctx).Order("created_at desc").Limit(limit)

	switch table {
	case "user":
		var rows []generator.User
		return rows, tx.Find(&rows).Error
	case "address":
		var rows []generator.Address
		return rows, tx.Find(&rows).Error
	case "category":
		var rows []generator.Category
		return rows, tx.Find(&rows).Error
	case "subcategory":
		var rows []generator.Subcategory
		return rows, tx.Find(&rows).Error
	case "product":
		var rows []generator.Product
		return rows, tx.Find(&rows).Error
	case "products_sku":
		var rows []generator.Sku
		return rows, tx.Find(&rows).Error
	case "wishlist":
		var rows []generator.Wishlist
		return rows, tx.Find(&rows).Error
	case "payment":
		var rows []generator.PaymentDetails
		return rows, tx.Find(&rows).Error
	case "order":
		var rows []generator.OrderDetails
		return rows, tx.Find(&rows).Error
	case "order_item":
		var rows []generator.OrderItem
		return rows, tx.Find(&rows).Error
	case "cart":
		var rows []generator.Cart
		return rows, tx.Find(&rows).Error
	default:
		return nil, fmt.Errorf("dataset: unknown table %q", table)
	}
}
