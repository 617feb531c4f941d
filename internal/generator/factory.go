package generator

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Generatorはフェイクのeコマースレコードを合成する。
// 乱数はすべて注入されたseedから引くため、同じseedなら同じ列が出る。
// 並行利用は不可。ワーカーごとに1つ作ること。
type Generator struct {
	rnd       *Rand
	faker     *gofakeit.Faker
	errorRate float64
	now       func() time.Time
}

// errorRateは汚れデータの注入率[0,1]。0でクリーンな出力のみ。
func New(seed int64, errorRate float64) *Generator {
	return &Generator{
		rnd:       NewRand(seed),
		faker:     gofakeit.New(uint64(seed)),
		errorRate: errorRate,
		now:       time.Now,
	}
}

func opaqueID(kind string) string {
	return kind + "_id-" + uuid.NewString()
}

// delete_timeはcreate_timeの1〜365日後（作成時に先に決めてしまう）。
func (g *Generator) deleteTime(created time.Time) time.Time {
	return created.AddDate(0, 0, g.rnd.UniformInt(1, 365))
}

// updated_atはcreate_timeの0〜30日後。
func (g *Generator) updateTime(created time.Time) time.Time {
	return created.AddDate(0, 0, g.rnd.UniformInt(0, 30))
}

func (g *Generator) NewUser() User {
	created := g.now()

	birth := g.maybeDate(
		g.faker.DateRange(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)),
		func() time.Time { return created.AddDate(0, 0, g.rnd.UniformInt(1, 3650)) }, // 未来日
	)

	return User{
		ID:       opaqueID("user"),
		Username: g.maybeString(g.faker.Username(), func() string { return fmt.Sprintf("%d@invalid", g.rnd.UniformInt(1000, 9999)) }),
		RealName: g.maybeString(g.faker.Name(), func() string { return fmt.Sprintf("InvalidName%d", g.rnd.UniformInt(1, 1000)) }),
		PhoneNumber: g.maybeString(g.faker.Phone(), func() string {
			return fmt.Sprintf("invalid-phone-%d", g.rnd.UniformInt(1, 1000))
		}),
		Sex:         g.maybeString(PickOne(g.rnd, sexOptions), func() string { return PickOne(g.rnd, []string{"unknown", "123", ""}) }),
		Job:         g.maybeString(g.faker.JobTitle(), func() string { return fmt.Sprintf("Invalid Job %d", g.rnd.UniformInt(1, 100)) }),
		Company:     g.maybeString(g.faker.Company(), func() string { return fmt.Sprintf("Invalid Company %d", g.rnd.UniformInt(1, 100)) }),
		Email:       g.maybeString(g.faker.Email(), func() string { return fmt.Sprintf("invalid.email%d@bad", g.rnd.UniformInt(1, 1000)) }),
		Password:    g.maybeString(g.faker.Password(true, true, true, false, false, 12), func() string { return "123" }),
		BirthOfDate: birth,
		Age:         created.Year() - birth.Year(),
		CreatedAt:   created,
		DeletedAt:   g.deleteTime(created),
	}
}

func (g *Generator) NewAddress(user User) Address {
	created := g.now()

	return Address{
		ID:     opaqueID("address"),
		UserID: user.ID,
		Title:  g.maybeString(PickOne(g.rnd, addressTitles), func() string { return fmt.Sprintf("Invalid Title %d", g.rnd.UniformInt(1, 10)) }),
		AddressLine: g.maybeString(g.faker.Street(), func() string {
			return fmt.Sprintf("Invalid Address %d", g.rnd.UniformInt(1, 1000))
		}),
		Country:    g.faker.Country(),
		City:       g.faker.City(),
		PostalCode: g.maybeString(g.faker.Zip(), func() string { return fmt.Sprintf("INVALID%d", g.rnd.UniformInt(100, 999)) }),
		CreatedAt:  created,
		DeletedAt:  g.deleteTime(created),
	}
}

func (g *Generator) NewCategory() Category {
	created := g.now()

	name := g.maybeString(PickOne(g.rnd, categoryNames), func() string {
		return fmt.Sprintf("Invalid Category %d", g.rnd.UniformInt(1, 1000))
	})

	// 名前が壊れていたら説明も壊す（元データの相関を保つ）
	var description string
	if isInvalidValue(name) {
		description = g.invalidDescription()
	} else {
		description = g.maybeString(
			g.faker.Sentence(5)+" "+categoryDescriptionTail(name),
			g.invalidDescription,
		)
	}

	return Category{
		ID:          opaqueID("category"),
		Name:        name,
		Description: description,
		CreatedAt:   created,
		DeletedAt:   g.deleteTime(created),
	}
}

func (g *Generator) NewSubcategory(category Category) Subcategory {
	created := g.now()

	realName := PickOne(g.rnd, prefixesFor(category.Name)) + " " + cleanCategoryName(category.Name)
	name := g.maybeString(realName, func() string { return fmt.Sprintf("Invalid Subcategory %d", g.rnd.UniformInt(1, 1000)) })

	var description string
	if isInvalidValue(name) {
		description = g.invalidDescription()
	} else {
		description = g.maybeString(
			g.faker.Sentence(6)+" "+subcategoryDescriptionTail(category.Name),
			g.invalidDescription,
		)
	}

	return Subcategory{
		ID:          opaqueID("subcategory"),
		ParentID:    category.ID,
		Name:        name,
		Description: description,
		CreatedAt:   created,
		DeletedAt:   g.deleteTime(created),
	}
}

func (g *Generator) productName(subcategoryName string) string {
	for _, entry := range productNameTable {
		if containsKeyword(subcategoryName, entry.keyword) {
			name := PickOne(g.rnd, entry.first) + " " + PickOne(g.rnd, entry.second)
			if len(entry.third) > 0 {
				name += " " + PickOne(g.rnd, entry.third)
			}
			return name
		}
	}
	return fmt.Sprintf("%s %s %d",
		PickOne(g.rnd, fallbackProductAdjectives),
		PickOne(g.rnd, fallbackProductNouns),
		g.rnd.UniformInt(1000, 9999),
	)
}

func (g *Generator) NewProduct(subcategory Subcategory) Product {
	created := g.now()

	name := g.maybeString(g.productName(subcategory.Name), func() string {
		return fmt.Sprintf("Invalid Product %d", g.rnd.UniformInt(1, 1000))
	})

	var description string
	if isInvalidValue(name) {
		description = g.invalidDescription()
	} else {
		description = g.maybeString(
			g.faker.Paragraph(1, 2, 8, " ")+" "+productDescriptionTail(subcategory.Name),
			g.invalidDescription,
		)
	}

	return Product{
		ID:          opaqueID("product"),
		Name:        name,
		Description: description,
		CategoryID:  subcategory.ID,
		CreatedAt:   created,
		DeletedAt:   g.deleteTime(created),
	}
}

// NewSkuだけはIDが複合形式（refid.go）。祖先IDが短すぎる場合はエラー。
func (g *Generator) NewSku(category Category, subcategory Subcategory, product Product) (Sku, error) {
	created := g.now()

	id, err := SkuID(category.ID, subcategory.ID, product.ID, g.rnd)
	if err != nil {
		return Sku{}, err
	}

	price := g.maybeDecimal(g.rnd.UniformDecimal(5.0, 500.0), func() decimal.Decimal {
		return PickOne(g.rnd, []decimal.Decimal{
			decimal.NewFromFloat(-50.0),
			decimal.NewFromFloat(999999.99),
		})
	})

	quantity := g.maybeInt64(int64(g.rnd.UniformInt(0, 9999999)), func() int64 {
		return PickOne(g.rnd, []int64{-100, 99999999})
	})

	return Sku{
		ID:        id,
		ProductID: product.ID,
		Price:     price,
		Quantity:  quantity,
		CreatedAt: created,
		DeletedAt: g.deleteTime(created),
	}, nil
}

func (g *Generator) NewWishlist(sku Sku, user User) Wishlist {
	created := g.now()

	return Wishlist{
		ID:            opaqueID("wishlist"),
		UserID:        g.maybeString(user.ID, func() string { return fmt.Sprintf("invalid-user-%d", g.rnd.UniformInt(1, 1000)) }),
		ProductsSkuID: g.maybeString(sku.ID, func() string { return fmt.Sprintf("invalid-sku-%d", g.rnd.UniformInt(1, 1000)) }),
		CreatedAt:     created,
		DeletedAt:     g.deleteTime(created),
	}
}

func (g *Generator) NewPayment() PaymentDetails {
	created := g.now()

	// 金額は下流の集計レイヤーで確定するため0を入れておく
	amount := g.maybeDecimal(decimal.Zero, func() decimal.Decimal {
		return PickOne(g.rnd, []decimal.Decimal{
			decimal.NewFromFloat(-100.0),
			decimal.NewFromFloat(9999999.99),
		})
	})

	return PaymentDetails{
		ID:     opaqueID("payment_details"),
		Amount: amount,
		Provider: g.maybeString(g.faker.CreditCardType(), func() string {
			return fmt.Sprintf("Invalid Provider %d", g.rnd.UniformInt(1, 1000))
		}),
		Status: g.maybeString(string(PickOne(g.rnd, paymentStatuses)), func() string {
			return fmt.Sprintf("Invalid Status %d", g.rnd.UniformInt(1, 1000))
		}),
		CreatedAt: created,
		UpdatedAt: g.updateTime(created),
	}
}

func (g *Generator) NewOrder(user User, payment PaymentDetails) OrderDetails {
	created := g.now()

	return OrderDetails{
		ID:        opaqueID("order_details"),
		UserID:    g.maybeString(user.ID, func() string { return fmt.Sprintf("invalid-user-%d", g.rnd.UniformInt(1, 1000)) }),
		PaymentID: g.maybeString(payment.ID, func() string { return fmt.Sprintf("invalid-payment-%d", g.rnd.UniformInt(1, 1000)) }),
		CreatedAt: created,
		UpdatedAt: g.updateTime(created),
	}
}

func (g *Generator) NewOrderItem(sku Sku, order OrderDetails) OrderItem {
	created := g.now()

	return OrderItem{
		ID:            opaqueID("order_item"),
		OrderID:       g.maybeString(order.ID, func() string { return fmt.Sprintf("invalid-order-%d", g.rnd.UniformInt(1, 1000)) }),
		ProductsSkuID: g.maybeString(sku.ID, func() string { return fmt.Sprintf("invalid-sku-%d", g.rnd.UniformInt(1, 1000)) }),
		Quantity:      g.maybeInt64(int64(g.rnd.UniformInt(1, 99999999)), func() int64 { return PickOne(g.rnd, []int64{-50, 999999999}) }),
		CreatedAt:     created,
		UpdatedAt:     g.updateTime(created),
	}
}

func (g *Generator) NewCart(sku Sku, order OrderDetails) Cart {
	created := g.now()

	return Cart{
		ID:            opaqueID("cart"),
		OrderID:       g.maybeString(order.ID, func() string { return fmt.Sprintf("invalid-order-%d", g.rnd.UniformInt(1, 1000)) }),
		ProductsSkuID: g.maybeString(sku.ID, func() string { return fmt.Sprintf("invalid-sku-%d", g.rnd.UniformInt(1, 1000)) }),
		Quantity:      g.maybeInt64(int64(g.rnd.UniformInt(1, 99999999)), func() int64 { return PickOne(g.rnd, []int64{-50, 999999999}) }),
		CreatedAt:     created,
		UpdatedAt:     g.updateTime(created),
	}
}
