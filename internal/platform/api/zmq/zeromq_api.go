package zmq

import (
	"SchedCheck/internal/application/service"
	"SchedCheck/internal/platform/config"
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"

	"github.com/go-zeromq/zmq4"
	json "github.com/json-iterator/go"
)

// Analysis API over multiple REP sockets with a shared worker pool.
type ZmqApi struct {
	sockets    []zmq4.Socket
	config     config.Config
	services   *Services
	ctx        context.Context
	cancel     context.CancelFunc
	workerPool chan Job
}

type Job struct {
	Request  *ApiRequest
	Response chan<- ApiResponse
	SocketID int
}

type Services struct {
	analyze   *service.AnalyzeScheduleService
	getReport *service.GetReportService
}

const (
	ANALYZE    = "ANALYZE"
	GET_REPORT = "GET_REPORT"
)

func NewZmqApi(analyze *service.AnalyzeScheduleService,
	getReport *service.GetReportService, conf config.Config) *ZmqApi {

	ctx, cancel := context.WithCancel(context.Background())

	numSockets := runtime.NumCPU()
	if numSockets > 16 {
		numSockets = 16
	}

	sockets := make([]zmq4.Socket, numSockets)
	for i := range sockets {
		sockets[i] = zmq4.NewRep(ctx)
	}

	return &ZmqApi{
		sockets: sockets,
		config:  conf,
		services: &Services{
			analyze:   analyze,
			getReport: getReport,
		},
		ctx:        ctx,
		cancel:     cancel,
		workerPool: make(chan Job, 10000),
	}
}

func (z *ZmqApi) Listen() {
	address := fmt.Sprintf("tcp://*:%d", z.config.ZmqApiPort)

	for i, socket := range z.sockets {
		if err := socket.Listen(address); err != nil {
			log.Printf("Error binding socket %d: %v", i, err)
			continue
		}
	}

	numWorkers := runtime.NumCPU() * 4
	for i := 0; i < numWorkers; i++ {
		go z.workerRoutine(i)
	}

	log.Printf("ZMQ analysis API listening on %s with %d sockets and %d workers",
		address, len(z.sockets), numWorkers)

	for i, socket := range z.sockets {
		go z.socketListener(i, socket)
	}

	<-z.ctx.Done()
	log.Println("Shutting down ZMQ analysis API...")
}

func (z *ZmqApi) socketListener(socketID int, socket zmq4.Socket) {
	defer log.Printf("Socket listener %d shutdown", socketID)

	for {
		select {
		case <-z.ctx.Done():
			return
		default:
			msg, err := socket.Recv()
			if err != nil {
				if errors.Is(err, zmq4.ErrClosedConn) {
					return
				}
				log.Printf("Socket %d recv error: %v", socketID, err)
				continue
			}

			var req ApiRequest
			if err := json.Unmarshal(msg.Bytes(), &req); err != nil {
				log.Printf("Socket %d unmarshal error: %v", socketID, err)
				z.sendErrorResponse(socket, "malformed request")
				continue
			}

			respChan := make(chan ApiResponse, 1)
			job := Job{
				Request:  &req,
				Response: respChan,
				SocketID: socketID,
			}

			select {
			case z.workerPool <- job:
				response := <-respChan
				responseMsg := z.marshal(response)
				if err := socket.Send(responseMsg); err != nil {
					log.Printf("Socket %d send error: %v", socketID, err)
				}
			case <-z.ctx.Done():
				return
			default:
				// Pool full; analyze on the listener goroutine.
				response := z.processRequest(&req)
				responseMsg := z.marshal(response)
				if err := socket.Send(responseMsg); err != nil {
					log.Printf("Socket %d send error: %v", socketID, err)
				}
			}
		}
	}
}

func (z *ZmqApi) workerRoutine(id int) {
	defer log.Printf("Worker %d shutdown complete", id)

	for {
		select {
		case job := <-z.workerPool:
			response := z.processRequest(job.Request)

			select {
			case job.Response <- response:
			default:
				log.Printf("Worker %d: failed to send response", id)
			}

		case <-z.ctx.Done():
			return
		}
	}
}

func (z *ZmqApi) processRequest(req *ApiRequest) ApiResponse {
	switch req.Action {
	case ANALYZE:
		operations := make([]service.OperationInput, 0, len(req.Operations))
		for _, op := range req.Operations {
			operations = append(operations, service.OperationInput{
				TransactionId: op.TransactionId,
				Kind:          op.Kind,
				DataItem:      op.DataItem,
			})
		}
		result, err := z.services.analyze.Execute(service.AnalyzeScheduleCommand{
			ScheduleId: req.ScheduleId,
			Operations: operations,
		})
		if err != nil {
			return ApiResponse{Success: false, Error: err.Error()}
		}
		return ApiResponse{
			Report: ReportResponse{
				Id:           result.Report.Id,
				ScheduleId:   result.Report.ScheduleId,
				Serializable: result.Report.Result.Serializable,
				Warnings:     result.Report.Result.Warnings,
				Graph:        result.Report.Result.Graph,
			},
			Success: true,
		}

	case GET_REPORT:
		result := z.services.getReport.Execute(service.GetReportQuery{Id: req.ReportId})
		if !result.Found {
			return ApiResponse{Success: false, Error: "report not found"}
		}
		return ApiResponse{
			Report: ReportResponse{
				Id:           result.Report.Id,
				ScheduleId:   result.Report.ScheduleId,
				Serializable: result.Report.Result.Serializable,
				Warnings:     result.Report.Result.Warnings,
				Graph:        result.Report.Result.Graph,
			},
			Success: true,
		}

	default:
		log.Printf("Unknown action: %s", req.Action)
		return ApiResponse{Success: false, Error: "unknown action"}
	}
}

func (z *ZmqApi) sendErrorResponse(socket zmq4.Socket, reason string) {
	errorResponse := ApiResponse{
		Success: false,
		Error:   reason,
	}
	errorMsg := z.marshal(errorResponse)
	if err := socket.Send(errorMsg); err != nil {
		log.Printf("Error sending error response: %v", err)
	}
}

func (z *ZmqApi) marshal(response ApiResponse) zmq4.Msg {
	payload, err := json.Marshal(response)
	if err != nil {
		log.Printf("Error marshalling response: %v", err)
		payload = []byte(`{"success":false}`)
	}
	return zmq4.NewMsg(payload)
}

func (z *ZmqApi) Close() error {
	log.Println("Initiating ZMQ analysis API shutdown...")

	z.cancel()

	var lastErr error
	for i, socket := range z.sockets {
		if socket != nil {
			if err := socket.Close(); err != nil {
				log.Printf("Error closing socket %d: %v", i, err)
				lastErr = err
			}
		}
	}

	log.Println("ZMQ analysis API shutdown complete")
	return lastErr
}
