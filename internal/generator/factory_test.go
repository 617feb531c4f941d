package generator

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func newTestGenerator(seed int64, errorRate float64) *Generator {
	g := New(seed, errorRate)
	g.now = fixedClock()
	return g
}

func TestBundle_ReferencesStayInsideBundle(t *testing.T) {
	g := newTestGenerator(1, 0)

	b, err := g.Bundle()
	assert.NoError(t, err)

	assert.Equal(t, b.User.ID, b.Address.UserID)
	assert.Equal(t, b.Category.ID, b.Subcategory.ParentID)
	assert.Equal(t, b.Subcategory.ID, b.Product.CategoryID)
	assert.Equal(t, b.Product.ID, b.Sku.ProductID)
	assert.Equal(t, b.User.ID, b.Wishlist.UserID)
	assert.Equal(t, b.Sku.ID, b.Wishlist.ProductsSkuID)
	assert.Equal(t, b.User.ID, b.Order.UserID)
	assert.Equal(t, b.Payment.ID, b.Order.PaymentID)
	assert.Equal(t, b.Order.ID, b.OrderItem.OrderID)
	assert.Equal(t, b.Sku.ID, b.OrderItem.ProductsSkuID)
	assert.Equal(t, b.Order.ID, b.Cart.OrderID)
	assert.Equal(t, b.Sku.ID, b.Cart.ProductsSkuID)
}

func TestBundle_IDFormats(t *testing.T) {
	g := newTestGenerator(2, 0)

	b, err := g.Bundle()
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(b.User.ID, "user_id-"))
	assert.True(t, strings.HasPrefix(b.Address.ID, "address_id-"))
	assert.True(t, strings.HasPrefix(b.Category.ID, "category_id-"))
	assert.True(t, strings.HasPrefix(b.Subcategory.ID, "subcategory_id-"))
	assert.True(t, strings.HasPrefix(b.Product.ID, "product_id-"))
	assert.True(t, strings.HasPrefix(b.Wishlist.ID, "wishlist_id-"))
	assert.True(t, strings.HasPrefix(b.Payment.ID, "payment_details_id-"))
	assert.True(t, strings.HasPrefix(b.Order.ID, "order_details_id-"))
	assert.True(t, strings.HasPrefix(b.OrderItem.ID, "order_item_id-"))
	assert.True(t, strings.HasPrefix(b.Cart.ID, "cart_id-"))

	// SKUだけ複合ID：祖先3つの末尾3文字＋5桁
	parts := strings.Split(b.Sku.ID, "-")
	assert.Len(t, parts, 4)
	assert.Equal(t, b.Category.ID[len(b.Category.ID)-3:], parts[0])
	assert.Equal(t, b.Subcategory.ID[len(b.Subcategory.ID)-3:], parts[1])
	assert.Equal(t, b.Product.ID[len(b.Product.ID)-3:], parts[2])
	assert.Len(t, parts[3], 5)
}

func TestBundle_DomainRanges(t *testing.T) {
	g := newTestGenerator(3, 0)

	for i := 0; i < 50; i++ {
		b, err := g.Bundle()
		assert.NoError(t, err)

		assert.True(t, b.Sku.Price.GreaterThanOrEqual(decimal.NewFromFloat(5.0)), "price %s", b.Sku.Price)
		assert.True(t, b.Sku.Price.LessThanOrEqual(decimal.NewFromFloat(500.0)), "price %s", b.Sku.Price)
		assert.GreaterOrEqual(t, b.Sku.Quantity, int64(0))
		assert.LessOrEqual(t, b.Sku.Quantity, int64(9999999))

		assert.GreaterOrEqual(t, b.OrderItem.Quantity, int64(1))
		assert.LessOrEqual(t, b.OrderItem.Quantity, int64(99999999))
		assert.GreaterOrEqual(t, b.Cart.Quantity, int64(1))
		assert.LessOrEqual(t, b.Cart.Quantity, int64(99999999))

		// 支払額は生成段階では常に0
		assert.True(t, b.Payment.Amount.IsZero())

		assert.Contains(t, []string{"M", "F", "Other"}, b.User.Sex)
		assert.Equal(t, b.User.CreatedAt.Year()-b.User.BirthOfDate.Year(), b.User.Age)
	}
}

func TestBundle_LifecycleTimestamps(t *testing.T) {
	g := newTestGenerator(4, 0)

	b, err := g.Bundle()
	assert.NoError(t, err)

	// delete_timeは必ずcreate_timeの後
	assert.True(t, b.User.DeletedAt.After(b.User.CreatedAt))
	assert.True(t, b.Category.DeletedAt.After(b.Category.CreatedAt))
	assert.True(t, b.Sku.DeletedAt.After(b.Sku.CreatedAt))
	assert.True(t, b.User.DeletedAt.Sub(b.User.CreatedAt) <= 365*24*time.Hour)

	// updated_atはcreate_timeと同日以降
	assert.False(t, b.Payment.UpdatedAt.Before(b.Payment.CreatedAt))
	assert.False(t, b.Order.UpdatedAt.Before(b.Order.CreatedAt))
	assert.True(t, b.Order.UpdatedAt.Sub(b.Order.CreatedAt) <= 30*24*time.Hour)
}

func TestBundle_DistinctIDsAcrossInvocations(t *testing.T) {
	g := newTestGenerator(5, 0)

	a, err := g.Bundle()
	assert.NoError(t, err)
	b, err := g.Bundle()
	assert.NoError(t, err)

	assert.NotEqual(t, a.User.ID, b.User.ID)
	assert.NotEqual(t, a.Category.ID, b.Category.ID)
	assert.NotEqual(t, a.Sku.ID, b.Sku.ID)
	assert.NotEqual(t, a.Order.ID, b.Order.ID)
}

// IDはuuid由来なので毎回違うが、seedが同じならフィールド値の列は一致する。
func TestBundle_SameSeedSameValues(t *testing.T) {
	a := newTestGenerator(6, 0)
	b := newTestGenerator(6, 0)

	ba, err := a.Bundle()
	assert.NoError(t, err)
	bb, err := b.Bundle()
	assert.NoError(t, err)

	assert.Equal(t, ba.User.Username, bb.User.Username)
	assert.Equal(t, ba.User.Sex, bb.User.Sex)
	assert.Equal(t, ba.User.BirthOfDate, bb.User.BirthOfDate)
	assert.Equal(t, ba.Category.Name, bb.Category.Name)
	assert.Equal(t, ba.Product.Name, bb.Product.Name)
	assert.True(t, ba.Sku.Price.Equal(bb.Sku.Price))
	assert.Equal(t, ba.Sku.Quantity, bb.Sku.Quantity)
}

func TestBundle_CleanRateProducesNoInvalidValues(t *testing.T) {
	g := newTestGenerator(7, 0)

	for i := 0; i < 20; i++ {
		b, err := g.Bundle()
		assert.NoError(t, err)

		payload, err := json.Marshal(b)
		assert.NoError(t, err)
		assert.NotContains(t, strings.ToLower(string(payload)), `"invalid`)
	}
}

func TestBundle_FullErrorRateCorruptsFields(t *testing.T) {
	g := newTestGenerator(8, 1)

	b, err := g.Bundle()
	assert.NoError(t, err)

	// rate=1なら全maybe系フィールドが不正値になる
	assert.True(t, strings.HasPrefix(b.User.RealName, "InvalidName"))
	assert.True(t, b.User.BirthOfDate.After(b.User.CreatedAt))
	assert.Contains(t, []int64{-100, 99999999}, b.Sku.Quantity)
	assert.True(t,
		b.Sku.Price.Equal(decimal.NewFromFloat(-50.0)) ||
			b.Sku.Price.Equal(decimal.NewFromFloat(999999.99)))
	assert.True(t, strings.HasPrefix(b.Payment.Provider, "Invalid Provider"))
}

func TestSubcategoryName_DerivedFromCategory(t *testing.T) {
	g := newTestGenerator(9, 0)

	category := g.NewCategory()
	sub := g.NewSubcategory(category)

	assert.True(t, strings.HasSuffix(sub.Name, cleanCategoryName(category.Name)),
		"subcategory %q should end with cleaned category name %q", sub.Name, cleanCategoryName(category.Name))
}

type collectingSink struct {
	bundles []*Bundle
}

func (s *collectingSink) Emit(b *Bundle) error {
	s.bundles = append(s.bundles, b)
	return nil
}

func TestRun_EmitsRequestedCount(t *testing.T) {
	g := newTestGenerator(10, 0)
	sink := &collectingSink{}

	err := g.Run(5, sink)
	assert.NoError(t, err)
	assert.Len(t, sink.bundles, 5)
}
