package types

// Notice identifies the human-readable message describing an accepted action.
// Console reporters translate it into the configured locale.
type Notice string

func (n Notice) String() string {
	return string(n)
}

const (
	NoticeNone Notice = ""

	NoticeCarSelected       Notice = "car_selected"
	NoticeCarChanged        Notice = "car_changed"
	NoticeOrderConfirmed    Notice = "order_confirmed"
	NoticeCarArrived        Notice = "car_arrived"
	NoticeDelayed           Notice = "car_delayed"
	NoticeTripStarted       Notice = "trip_started"
	NoticeTripFinished      Notice = "trip_finished"
	NoticePaymentSucceeded  Notice = "payment_succeeded"
	NoticePaymentFailed     Notice = "payment_failed"
	NoticeCancelledIdle     Notice = "cancelled_idle"
	NoticeCancelledSelected Notice = "cancelled_selected"
	NoticeCancelledEnRoute  Notice = "cancelled_en_route"
	NoticeCancelledArrived  Notice = "cancelled_arrived"
)
