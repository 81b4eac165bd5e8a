package jobs

import (
	"log"

	"github.com/hibiken/asynq"
)

// RegisterHandlers ผูก handler กับ task type
func RegisterHandlers(mux *asynq.ServeMux, sender MailSender) {
	mux.HandleFunc(TypeSubmissionReceipt, HandleSubmissionReceipt(sender))
}

// Worker runs the asynq server in-process next to the HTTP app.
type Worker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

func NewWorker(redisAddr string, sender MailSender) *Worker {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 5,
			Queues:      map[string]int{"default": 1},
		},
	)
	mux := asynq.NewServeMux()
	RegisterHandlers(mux, sender)
	return &Worker{srv: srv, mux: mux}
}

// Start returns once the server is processing.
func (w *Worker) Start() error {
	if err := w.srv.Start(w.mux); err != nil {
		return err
	}
	log.Println("✅ Asynq worker started")
	return nil
}

func (w *Worker) Shutdown() {
	w.srv.Shutdown()
	log.Println("Asynq worker stopped")
}
