package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/seatmap/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	fmt.Printf("send email to %s about %s for flight %s seat %s\n", event.Email, event.Type, event.FlightID, event.SeatID)
	return nil
}
