package app

import (
	"github.com/avelkner/innkeeper/config"
	"github.com/avelkner/innkeeper/internal/mq"
	"github.com/avelkner/innkeeper/internal/repository"
	"github.com/avelkner/innkeeper/internal/service/domain"
	"github.com/avelkner/innkeeper/internal/service/workflow"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config

	Logger *zap.Logger
	MQConn *amqp.Connection

	HotelRepo       repository.HotelRepo
	CustomerRepo    repository.CustomerRepo
	ReservationRepo repository.ReservationRepo

	HotelService       domain.HotelService
	CustomerService    domain.CustomerService
	ReservationService domain.ReservationService

	ReservationWorkflow *workflow.ReservationWorkflow
}

// New wires the full dependency graph. mqConn may be nil, in which case
// lifecycle events are not published.
func New(config *config.Config, logger *zap.Logger, mqConn *amqp.Connection) *App {
	hotelRepo := repository.NewHotelRepoJSON(config.HotelsFile(), logger)
	customerRepo := repository.NewCustomerRepoJSON(config.CustomersFile(), logger)
	reservationRepo := repository.NewReservationRepoJSON(config.ReservationsFile(), logger)

	hotelService := domain.NewHotelService(hotelRepo, logger)
	customerService := domain.NewCustomerService(customerRepo, logger)
	reservationService := domain.NewReservationService(reservationRepo, logger)

	reservationWorkflow := workflow.NewReservationWorkflow(
		reservationService, hotelService, customerService, mqConn, logger)

	return &App{
		Config:              config,
		Logger:              logger,
		MQConn:              mqConn,
		HotelRepo:           hotelRepo,
		CustomerRepo:        customerRepo,
		ReservationRepo:     reservationRepo,
		HotelService:        hotelService,
		CustomerService:     customerService,
		ReservationService:  reservationService,
		ReservationWorkflow: reservationWorkflow,
	}
}

func (app *App) Init() error {
	// queues must exist before the first publish
	if app.MQConn != nil {
		return mq.InitQueues(app.MQConn)
	}
	return nil
}

func (app *App) Close() error {
	if app.MQConn != nil {
		return app.MQConn.Close()
	}
	return nil
}
