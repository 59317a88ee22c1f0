package main

import (
	"errors"

	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

var errClipboardUnavailable = errors.New("clipboard unavailable")

// systemClipboard writes text to the OS clipboard. Init can fail on
// headless machines, in which case every write reports
// errClipboardUnavailable.
type systemClipboard struct {
	ready bool
}

func newSystemClipboard(log *zap.Logger) *systemClipboard {
	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard disabled", zap.Error(err))
		return &systemClipboard{}
	}
	return &systemClipboard{ready: true}
}

func (c *systemClipboard) WriteText(s string) error {
	if !c.ready {
		return errClipboardUnavailable
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}
