package domain

type OrderStatus string

const (
	// OrderStatusProcessing заказ создан, кредит списан, отправка ещё не выполнена.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusSentToDispatch заказ принят службой доставки.
	OrderStatusSentToDispatch OrderStatus = "sent_to_dispatch"
	// OrderStatusDispatchError служба доставки отклонила заказ или не ответила.
	OrderStatusDispatchError OrderStatus = "dispatch_error"
)

const (
	RoleBusiness = "business"

	// SystemPaymentActor is the audit actor for webhook-originated grants.
	SystemPaymentActor = "system:payment-webhook"

	EventTagAdminAdjustment = "admin_adjustment"
	EventTagPaymentComplete = "stripe_payment_completed"
)

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusSentToDispatch || s == OrderStatusDispatchError
}

// CanTransition reports whether an order in status s may move to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	return s == OrderStatusProcessing && next.Terminal()
}
