package publisher

import (
	"SchedCheck/internal/domain"
	"SchedCheck/internal/platform/config"
	"SchedCheck/internal/platform/messaging/zeromq/message"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-zeromq/zmq4"
	json "github.com/json-iterator/go"
)

const (
	REPORT_TOPIC = "report"
)

// ZeroMQReportPublisher broadcasts every finished analysis report so that
// dashboards and other analyzers can follow the verdicts.
type ZeroMQReportPublisher struct {
	pub  zmq4.Socket
	port int
}

func NewZeroMQReportPublisher(conf config.Config) *ZeroMQReportPublisher {
	reconnectOpt := zmq4.WithAutomaticReconnect(true)
	retryOpt := zmq4.WithDialerRetry(time.Second * 5)
	socket := zmq4.NewPub(context.Background(), reconnectOpt, retryOpt)

	z := &ZeroMQReportPublisher{
		pub:  socket,
		port: conf.ReportPubPort,
	}
	return z
}

func (z *ZeroMQReportPublisher) Initialize() error {
	address := fmt.Sprintf("tcp://*:%d", z.port)
	err := z.pub.Listen(address)
	if err != nil {
		log.Println("Error starting report publisher", err)
		return err
	}
	log.Println("Started report publisher on", address)
	return err
}

func (z *ZeroMQReportPublisher) BroadcastReport(report domain.AnalysisReport) error {
	payload, err := MarshalReportMessage(message.ReportMessageFrom(report))
	if err != nil {
		return err
	}
	msg := zmqMessage(REPORT_TOPIC, payload)
	err = z.pub.Send(msg)
	if err != nil {
		return err
	}
	return nil
}

func zmqMessage(topic string, payload []byte) zmq4.Msg {
	msg := zmq4.NewMsgFrom(
		[][]byte{
			[]byte(topic),
			payload,
		}...,
	)
	return msg
}

func MarshalReportMessage(msg message.ReportMessage) ([]byte, error) {
	return json.Marshal(msg)
}
