package store

// 进程级内存存储，main 启动时初始化
var (
	Shops    *ShopStore
	Payments *PaymentStore
)

func Init() {
	Shops = NewShopStore()
	Payments = NewPaymentStore()
}
