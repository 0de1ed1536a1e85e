package tui

// walletSettledMsg arrives when a connect command has returned.
type walletSettledMsg struct{}

// signingSettledMsg arrives when a submit command has returned.
type signingSettledMsg struct{}

// notificationChangedMsg is sent by the notification center subscription so
// the view redraws when a toast appears or expires.
type notificationChangedMsg struct{}

type copiedMsg struct {
	err error
}
