package bootstrap

import (
	"SchedCheck/internal/application/service"
	"SchedCheck/internal/domain"
	"SchedCheck/internal/platform/api/zmq"
	"SchedCheck/internal/platform/client"
	"SchedCheck/internal/platform/config"
	"SchedCheck/internal/platform/messaging/zeromq/listener"
	"SchedCheck/internal/platform/messaging/zeromq/publisher"
	"SchedCheck/internal/platform/repository"
	"SchedCheck/internal/platform/server"
	"SchedCheck/internal/platform/server/handler/instance"
	"SchedCheck/internal/platform/server/handler/report"
	"SchedCheck/internal/platform/server/handler/schedule"
	"go.uber.org/dig"
)

func Run() (bool, error) {
	container := dig.New()
	serviceConstructors := []interface{}{
		config.LoadConfig,
		domain.NewInstanceManager,
		domain.NewSerializabilityChecker,
		reportRepository,
		reportPublisher,
		service.NewAnalyzeScheduleService,
		service.NewGetReportService,
		service.NewGetAllReportsService,
		service.NewInstanceAutoRegisterService,
		service.NewUpdateInstancesService,
		service.NewGetAllInstancesService,
		schedule.NewScheduleHandler,
		report.NewReportHandler,
		instance.NewInstanceHandler,
		httpServer,
		configServerClient,
		zmq.NewZmqApi,
		listener.NewZeromqScheduleListener,
	}
	for _, service := range serviceConstructors {
		if err := container.Provide(service); err != nil {
			return false, err
		}
	}
	err := container.Invoke(func(s server.Server,
		api *zmq.ZmqApi,
		scheduleListener *listener.ZeromqScheduleListener,
		ar *service.InstanceAutoRegisterService,
		g *service.GetAllInstancesService) {
		ar.Execute()
		err := g.Execute()
		if err != nil {
			return
		}
		go api.Listen()
		go scheduleListener.Listen()
		s.Run()
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func reportRepository() domain.ReportRepository {
	return repository.NewInMemoryReportRepository()
}

func reportPublisher(conf config.Config) domain.ReportBroadcaster {
	pub := publisher.NewZeroMQReportPublisher(conf)
	pub.Initialize()
	return pub
}

func httpServer(conf config.Config, scheduleHandler *schedule.ScheduleHandler,
	reportHandler *report.ReportHandler, instanceHandler *instance.InstanceHandler) server.Server {
	return server.NewServer("0.0.0.0", conf.ServerPort, scheduleHandler, reportHandler, instanceHandler)
}

func configServerClient(conf config.Config) *client.ConfigServerClient {
	return client.NewConfigServerClient(conf.ConfigServerUrl)
}
