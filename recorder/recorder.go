package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-zeromq/zmq4"
)

const (
	ScheduleTopic = "schedule"
)

// OperationEvent is what instrumented clients push while their transactions
// run. End marks the end of a recorded schedule.
type OperationEvent struct {
	ScheduleId    string `json:"schedule_id"`
	TransactionId string `json:"transaction_id"`
	Kind          string `json:"kind"`
	DataItem      string `json:"data_item,omitempty"`
	End           bool   `json:"end,omitempty"`
}

type OperationMessage struct {
	TransactionId string `json:"transaction_id"`
	Kind          string `json:"kind"`
	DataItem      string `json:"data_item,omitempty"`
}

type ScheduleMessage struct {
	ScheduleId string             `json:"schedule_id"`
	Operations []OperationMessage `json:"operations"`
}

// Recorder serializes concurrently pushed operation events into a single
// arrival order per schedule and publishes completed schedules to the
// analyzers. Arrival order at the PULL socket is the happens-before order
// the analyzers will see.
type Recorder struct {
	pub       zmq4.Socket
	pull      zmq4.Socket
	events    chan zmq4.Msg
	schedules map[string][]OperationMessage
	pubPort   int
	pullPort  int
}

func NewRecorder(pubPort, pullPort int) *Recorder {
	pub := zmq4.NewPub(context.Background())
	pull := zmq4.NewPull(context.Background())

	return &Recorder{
		pub:       pub,
		pull:      pull,
		events:    make(chan zmq4.Msg, 30000),
		schedules: make(map[string][]OperationMessage),
		pubPort:   pubPort,
		pullPort:  pullPort,
	}
}

func (r *Recorder) Listen() {
	pubAddr := fmt.Sprintf("tcp://*:%d", r.pubPort)
	err := r.pub.Listen(pubAddr)
	if err != nil {
		log.Fatalf("Failed to start pub socket on %s: %v", pubAddr, err)
	}
	log.Printf("Pub socket listening on %s\n", pubAddr)

	pullAddr := fmt.Sprintf("tcp://*:%d", r.pullPort)
	err = r.pull.Listen(pullAddr)
	if err != nil {
		log.Fatalf("Failed to start pull socket on %s: %v", pullAddr, err)
	}
	log.Printf("Pull socket listening on %s\n", pullAddr)

	// Goroutine to receive events
	go func() {
		for {
			msg, err := r.pull.Recv()
			if err != nil {
				log.Println("Error receiving message:", err)
				if errors.Is(err, zmq4.ErrClosedConn) {
					log.Println("Socket closed, exiting listener")
					return
				}
				continue
			}
			r.events <- msg
		}
	}()

	for msg := range r.events {
		var event OperationEvent
		if err := json.Unmarshal(msg.Bytes(), &event); err != nil {
			log.Println("Discarding malformed event:", err)
			continue
		}
		if event.End {
			r.publishSchedule(event.ScheduleId)
			continue
		}
		r.schedules[event.ScheduleId] = append(r.schedules[event.ScheduleId], OperationMessage{
			TransactionId: event.TransactionId,
			Kind:          event.Kind,
			DataItem:      event.DataItem,
		})
	}
}

func (r *Recorder) publishSchedule(scheduleId string) {
	operations, found := r.schedules[scheduleId]
	if !found {
		log.Println("End marker for unknown schedule", scheduleId)
		return
	}
	delete(r.schedules, scheduleId)

	payload, err := json.Marshal(ScheduleMessage{
		ScheduleId: scheduleId,
		Operations: operations,
	})
	if err != nil {
		log.Println("Error marshalling schedule:", err)
		return
	}
	err = r.pub.Send(zmq4.NewMsgFrom(
		[][]byte{
			[]byte(ScheduleTopic),
			payload,
		}...,
	))
	if err != nil {
		log.Println("Error sending message:", err)
		return
	}
	log.Printf("Published schedule %s with %d operations\n", scheduleId, len(operations))
}

func main() {
	pubPort := flag.Int("pub-port", 7000, "Port for PUB socket")
	pullPort := flag.Int("pull-port", 7001, "Port for PULL socket")
	flag.Parse()

	if *pubPort <= 0 || *pullPort <= 0 {
		log.Println("Ports must be positive integers")
		os.Exit(1)
	}

	rec := NewRecorder(*pubPort, *pullPort)
	rec.Listen()
}
