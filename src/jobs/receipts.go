package jobs

import (
	"Backend-FormBuilder/src/config"
)

// SetupReceipts pairs the receipt notifier with the worker that consumes its
// tasks. Without a complete SMTP config neither is built, so nothing gets
// queued that no one will send.
func SetupReceipts(redisAddr string, smtp config.SMTPConfig, client Enqueuer) (*ReceiptNotifier, *Worker, error) {
	sender, err := NewSMTPSender(smtp)
	if err != nil {
		return nil, nil, err
	}
	return NewReceiptNotifier(client), NewWorker(redisAddr, sender), nil
}
