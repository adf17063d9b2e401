package console

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"

	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
)

// Message keys double as the English format strings.
const (
	msgState           = "[STATE] -> %s"
	msgHeading         = "Scenario %d: %s"
	msgDenied          = "Action '%s' is not available in state '%s'"
	msgVehicleRequired = "Action '%s' rejected in state '%s': vehicle not provided"
	msgRejected        = "Action '%s' rejected in state '%s': %s"
)

var noticeKeys = map[types.Notice]string{
	types.NoticeCarSelected:       "Car selected: %s, fare: %.1f",
	types.NoticeCarChanged:        "Changing the selected car to: %s, fare: %.1f",
	types.NoticeOrderConfirmed:    "Order confirmed. The car is on its way.",
	types.NoticeCarArrived:        "The car has arrived.",
	types.NoticeDelayed:           "The car is delayed. Notifying the passenger.",
	types.NoticeTripStarted:       "Trip started.",
	types.NoticeTripFinished:      "Trip finished. Awaiting payment.",
	types.NoticePaymentSucceeded:  "Payment succeeded. Thank you for the ride!",
	types.NoticePaymentFailed:     "Payment failed. Try again or contact support.",
	types.NoticeCancelledIdle:     "Order cancelled while waiting.",
	types.NoticeCancelledSelected: "Order cancelled before confirmation.",
	types.NoticeCancelledEnRoute:  "Order cancelled before the car arrived.",
	types.NoticeCancelledArrived:  "Order cancelled although the car has already arrived.",
}

var russian = map[string]string{
	msgState:           "[STATE] -> %s",
	msgHeading:         "Сценарий %d: %s",
	msgDenied:          "Действие '%s' недоступно в состоянии '%s'",
	msgVehicleRequired: "Действие '%s' отклонено в состоянии '%s': не указан автомобиль",
	msgRejected:        "Действие '%s' отклонено в состоянии '%s': %s",

	// whole fares, and no fare on re-selection
	"Car selected: %s, fare: %.1f":                          "Выбран автомобиль: %[1]s, тариф: %[2]v",
	"Changing the selected car to: %s, fare: %.1f":          "Изменяем выбранный автомобиль на: %[1]s",
	"Order confirmed. The car is on its way.":               "Заказ подтверждён. Машина выехала.",
	"The car has arrived.":                                  "Автомобиль прибыл к пользователю.",
	"The car is delayed. Notifying the passenger.":          "Автомобиль задерживается. Уведомляем пользователя.",
	"Trip started.":                                         "Поездка начата.",
	"Trip finished. Awaiting payment.":                      "Поездка завершена. Ожидается оплата.",
	"Payment succeeded. Thank you for the ride!":            "Оплата прошла успешно. Спасибо за поездку!",
	"Payment failed. Try again or contact support.":         "Ошибка оплаты. Попробуйте ещё раз или свяжитесь с поддержкой.",
	"Order cancelled while waiting.":                        "Заказ отменён на этапе ожидания.",
	"Order cancelled before confirmation.":                  "Заказ отменён до подтверждения.",
	"Order cancelled before the car arrived.":               "Заказ отменён до прибытия автомобиля.",
	"Order cancelled although the car has already arrived.": "Заказ отменён, хотя машина уже приехала.",

	// scenario titles
	"normal trip":                             "нормальная поездка",
	"cancel before confirmation":              "отмена до подтверждения",
	"car arrived but the order was cancelled": "машина приехала, но заказ отменили",
	"confirmation without a car":              "подтверждение без выбора автомобиля",
	"car changed before confirmation":         "смена автомобиля до подтверждения",
	"payment failed, then retried":            "ошибка оплаты и повторная попытка",
}

func newCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range russian {
		if err := b.SetString(language.Russian, key, msg); err != nil {
			return nil, err
		}
	}
	return b, nil
}
