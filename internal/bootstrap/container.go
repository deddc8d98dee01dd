package bootstrap

import (
	"context"

	"annotation-notes-be/internal/config"
	"annotation-notes-be/internal/controller"
	"annotation-notes-be/internal/metrics"
	"annotation-notes-be/internal/pkg/logger"
	"annotation-notes-be/internal/repository/unitofwork"
	"annotation-notes-be/internal/service"
	"annotation-notes-be/pkg/events"
	pktNats "annotation-notes-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	Logger  logger.ILogger
	Metrics *metrics.Metrics

	// Controllers
	UserController       controller.IUserController
	NotebookController   controller.INotebookController
	AnnotationController controller.IAnnotationController

	// Background services, started by main
	ActivityConsumer service.IActivityConsumer

	closers []func()
}

func NewContainer(uowFactory unitofwork.RepositoryFactory, cfg *config.Config, sysLogger logger.ILogger) *Container {
	// 1. Event bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	dispatcher := events.NewFanOutDispatcher(sysLogger)
	dispatcher.Register("activity", events.NewChannelSink(pubSub, cfg.Events.Topic))

	appMetrics := metrics.New()
	dispatcher.Register("metrics", appMetrics.EventSink())

	c := &Container{Logger: sysLogger, Metrics: appMetrics}
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	if cfg.Events.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL, cfg.Events.NatsStream, sysLogger)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "NATS unavailable, events stay in-process", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			dispatcher.Register("nats", natsPub)
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 2. Services
	userService := service.NewUserService(uowFactory, dispatcher)
	notebookService := service.NewNotebookService(uowFactory, userService, dispatcher)
	annotationService := service.NewAnnotationService(uowFactory, userService, notebookService, dispatcher)

	activityLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogPath)
	c.ActivityConsumer = service.NewActivityConsumer(pubSub, cfg.Events.Topic, activityLogger)
	c.closers = append(c.closers, func() { _ = activityLogger.Sync() })

	// 3. Controllers
	c.UserController = controller.NewUserController(userService)
	c.NotebookController = controller.NewNotebookController(notebookService)
	c.AnnotationController = controller.NewAnnotationController(annotationService)

	return c
}

// StartBackground launches the activity consumer.
func (c *Container) StartBackground(ctx context.Context) error {
	return c.ActivityConsumer.Consume(ctx)
}

// Close releases the bus and broker connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
