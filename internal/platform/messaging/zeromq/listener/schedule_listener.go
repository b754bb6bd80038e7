package listener

import (
	"SchedCheck/internal/application/service"
	"SchedCheck/internal/domain"
	"SchedCheck/internal/platform/messaging/zeromq/message"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-zeromq/zmq4"
)

const (
	SchedulePubPortOffset = 8003
	ScheduleTopic         = "schedule"
)

// ZeromqScheduleListener subscribes to every known recorder and feeds the
// schedules they publish into the analysis service.
type ZeromqScheduleListener struct {
	sub             zmq4.Socket
	instanceManager *domain.InstanceManager
	analyzeService  *service.AnalyzeScheduleService
	recorders       map[uint64]domain.AnalyzerInstance
	mu              sync.Mutex
}

func NewZeromqScheduleListener(instanceManager *domain.InstanceManager,
	analyzeService *service.AnalyzeScheduleService) *ZeromqScheduleListener {
	reconnectOpt := zmq4.WithAutomaticReconnect(true)
	retryOpt := zmq4.WithDialerRetry(time.Second * 5)
	sub := zmq4.NewSub(context.Background(), reconnectOpt, retryOpt)
	sub.SetOption(zmq4.OptionSubscribe, ScheduleTopic)

	l := &ZeromqScheduleListener{
		sub:             sub,
		instanceManager: instanceManager,
		analyzeService:  analyzeService,
		recorders:       make(map[uint64]domain.AnalyzerInstance),
	}
	l.subscribeToRecorderChanges()
	return l
}

func (z *ZeromqScheduleListener) subscribeToRecorderChanges() {
	sub := z.instanceManager.Subscribe()
	go func() {
		for recorders := range sub {
			log.Println("Updated recorders on ZeromqScheduleListener")

			z.mu.Lock()
			z.updateSocketSubscriptions(recorders)

			for _, recorder := range recorders {
				z.recorders[recorder.Id] = recorder
			}

			z.mu.Unlock()
		}
	}()
}

func (z *ZeromqScheduleListener) updateSocketSubscriptions(newRecorders []domain.AnalyzerInstance) {
	for _, recorder := range newRecorders {
		if _, found := z.recorders[recorder.Id]; !found {
			err := z.sub.Dial(fmt.Sprintf("tcp://%s:%d", recorder.Host, recorder.Port+SchedulePubPortOffset))
			if err != nil {
				continue
			}
		}
	}
}

func (z *ZeromqScheduleListener) Listen() {
	log.Println("ZeromqScheduleListener - Started.")
	msgCh := make(chan message.ScheduleMessage, 2000)

	go func() {
		for {
			msg, err := z.sub.Recv()
			if err != nil {
				log.Println("Error receiving message:", err)
				if errors.Is(err, zmq4.ErrClosedConn) {
					log.Println("Socket closed, exiting listener")
					return
				}
				continue
			}
			m, err := unmarshalScheduleMessage(msg.Frames[1])
			if err != nil {
				log.Println(err)
				continue
			}
			m.Topic = string(msg.Frames[0])
			msgCh <- m
		}
	}()

	for msg := range msgCh {
		if msg.Topic != ScheduleTopic {
			continue
		}
		go z.analyze(msg)
	}
}

func (z *ZeromqScheduleListener) analyze(msg message.ScheduleMessage) {
	operations := make([]service.OperationInput, 0, len(msg.Operations))
	for _, op := range msg.Operations {
		operations = append(operations, service.OperationInput{
			TransactionId: op.TransactionId,
			Kind:          op.Kind,
			DataItem:      op.DataItem,
		})
	}
	_, err := z.analyzeService.Execute(service.AnalyzeScheduleCommand{
		ScheduleId: msg.ScheduleId,
		Operations: operations,
	})
	if err != nil {
		log.Println("Discarded schedule", msg.ScheduleId, ":", err)
	}
}

func unmarshalScheduleMessage(data []byte) (message.ScheduleMessage, error) {
	var scheduleMsg message.ScheduleMessage
	err := json.Unmarshal(data, &scheduleMsg)
	if err != nil {
		return message.ScheduleMessage{}, fmt.Errorf("error unmarshalling schedule message: %w", err)
	}
	return scheduleMsg, nil
}
