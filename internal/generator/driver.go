package generator

// Bundleは1回の生成で得られる全テーブル1行ずつの組。
// 外部キーはすべてBundle内の先行レコードを指す。
type Bundle struct {
	User        User           `json:"user"`
	Address     Address        `json:"address"`
	Category    Category       `json:"category"`
	Subcategory Subcategory    `json:"subcategory"`
	Product     Product        `json:"product"`
	Sku         Sku            `json:"products_sku"`
	Wishlist    Wishlist       `json:"wishlist"`
	Payment     PaymentDetails `json:"payment"`
	Order       OrderDetails   `json:"order"`
	OrderItem   OrderItem      `json:"order_item"`
	Cart        Cart           `json:"cart"`
}

// Sinkは生成結果の出力先（コンソール、HTTPレスポンス、永続化）。
type Sink interface {
	Emit(b *Bundle) error
}

// Bundleは依存順にファクトリを呼ぶ：
// category → subcategory → product → sku、独立に user → (address, payment → order → (order_item, cart))。
// 途中で失敗したら即中断（リトライなし・部分結果なし）。
func (g *Generator) Bundle() (*Bundle, error) {
	user := g.NewUser()
	address := g.NewAddress(user)

	category := g.NewCategory()
	subcategory := g.NewSubcategory(category)
	product := g.NewProduct(subcategory)

	sku, err := g.NewSku(category, subcategory, product)
	if err != nil {
		return nil, err
	}

	wishlist := g.NewWishlist(sku, user)
	payment := g.NewPayment()
	order := g.NewOrder(user, payment)
	orderItem := g.NewOrderItem(sku, order)
	cart := g.NewCart(sku, order)

	return &Bundle{
		User:        user,
		Address:     address,
		Category:    category,
		Subcategory: subcategory,
		Product:     product,
		Sku:         sku,
		Wishlist:    wishlist,
		Payment:     payment,
		Order:       order,
		OrderItem:   orderItem,
		Cart:        cart,
	}, nil
}

// Runはn個のBundleを順に生成してsinkへ渡す。
func (g *Generator) Run(n int, sink Sink) error {
	for i := 0; i < n; i++ {
		b, err := g.Bundle()
		if err != nil {
			return err
		}
		if err := sink.Emit(b); err != nil {
			return err
		}
	}
	return nil
}
