package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

const sendTimeout = 10 * time.Second

// Dispatcher decouples notification delivery from request handling.
// Services enqueue after their transaction commits; a single worker
// goroutine drains the queue. Enqueue never blocks and delivery
// failures are logged and dropped, so a slow or broken mail provider
// can never fail or delay a request.
type Dispatcher struct {
	mailer Mailer
	queue  chan Message
	wg     sync.WaitGroup
}

func NewDispatcher(mailer Mailer, queueSize int) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Message, queueSize),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := d.mailer.Send(ctx, msg); err != nil {
			utils.Logger.WithError(err).Warnf("Échec de l'envoi de l'email à %s", msg.ToEmail)
		} else {
			utils.Logger.Infof("Email envoyé à %s", msg.ToEmail)
		}
		cancel()
	}
}

// Enqueue hands the message to the worker. When the queue is full the
// message is dropped with a log line rather than blocking the caller.
func (d *Dispatcher) Enqueue(msg Message) {
	select {
	case d.queue <- msg:
	default:
		utils.Logger.Warnf("File de notifications pleine, email pour %s abandonné", msg.ToEmail)
	}
}

// Close stops accepting messages and waits for the worker to drain
// what was already queued.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}
