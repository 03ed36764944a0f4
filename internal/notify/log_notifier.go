package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogNotifier records the event instead of sending it. Stands in until a
// real mail provider is wired behind the Notifier interface.
type LogNotifier struct {
	log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, ev Event) error {
	n.log.WithFields(logrus.Fields{
		"recipient": ev.Recipient,
		"subject":   ev.Subject,
	}).Info("notification emitted")
	return nil
}
