//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"medassist/internal/handlers/rest/deliveries_get"
	"medassist/internal/handlers/rest/delivery_accept_post"
	"medassist/internal/handlers/rest/delivery_confirm_post"
	"medassist/internal/handlers/rest/delivery_get"
	"medassist/internal/handlers/rest/delivery_status_post"
	"medassist/internal/handlers/rest/driver_location_put"
	"medassist/internal/handlers/rest/driver_profile_get"
	"medassist/internal/handlers/rest/inventory_delete"
	"medassist/internal/handlers/rest/inventory_get"
	"medassist/internal/handlers/rest/inventory_post"
	"medassist/internal/handlers/rest/inventory_put"
	"medassist/internal/handlers/rest/order_accept_post"
	"medassist/internal/handlers/rest/order_decline_post"
	"medassist/internal/handlers/rest/order_get"
	"medassist/internal/handlers/rest/order_prepared_post"
	"medassist/internal/handlers/rest/orders_get"
	"medassist/internal/handlers/rest/pharmacy_profile_get"
	"medassist/internal/handlers/rest/pharmacy_profile_put"
	"medassist/internal/handlers/tasks/inventory_expiry_metrics"
	"medassist/internal/pkg/config"

	deliveryRepo "medassist/internal/repository/delivery"
	inventoryRepo "medassist/internal/repository/inventory"
	locationRepo "medassist/internal/repository/location"
	orderRepo "medassist/internal/repository/order"
	pharmacyRepo "medassist/internal/repository/pharmacy"
	userRepo "medassist/internal/repository/user"
	deliveryService "medassist/internal/service/delivery"
	dispatchService "medassist/internal/service/dispatch"
	driverService "medassist/internal/service/driver"
	inventoryService "medassist/internal/service/inventory"
	orderService "medassist/internal/service/order"
	pharmacyService "medassist/internal/service/pharmacy"

	"medassist/pkg/background"
	"medassist/pkg/logger"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	ExpiryScanInterval time.Duration
)

type DriverApplication struct {
	ServiceDelivery ServiceDelivery
	ServiceDriver   ServiceDriver
}

type ServiceDelivery interface {
	deliveries_get.Service
	delivery_get.Service
	delivery_accept_post.Service
	delivery_status_post.Service
	delivery_confirm_post.Service
}

type ServiceDriver interface {
	driver_profile_get.Service
	driver_location_put.Service
}

// InitializeDriverApplication для HTTP сервиса водителей (cmd/driver-service)
func InitializeDriverApplication(
	log logger.Logger,
	db *mongo.Database,
) (*DriverApplication, error) {
	wire.Build(
		provideDeliveryRepository,
		provideOrderRepository,
		provideUserRepository,
		provideLocationRepository,

		provideServiceDelivery,
		provideServiceDriver,

		wire.Struct(new(DriverApplication), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(driverService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(driverService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(driverService.LocationRepository), new(*locationRepo.Repository)),
	)
	return &DriverApplication{}, nil
}

type PharmacistApplication struct {
	ServiceOrder      ServiceOrder
	ServiceInventory  ServiceInventory
	ServicePharmacy   ServicePharmacy
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_get.Service
	order_get.Service
	order_accept_post.Service
	order_decline_post.Service
	order_prepared_post.Service
}

type ServiceInventory interface {
	inventory_get.Service
	inventory_post.Service
	inventory_put.Service
	inventory_delete.Service
}

type ServicePharmacy interface {
	pharmacy_profile_get.Service
	pharmacy_profile_put.Service
}

// InitializePharmacistApplication для HTTP сервиса аптек (cmd/pharmacist-service)
func InitializePharmacistApplication(
	ctx context.Context,
	log logger.Logger,
	db *mongo.Database,
	cfg *config.Config,
) (*PharmacistApplication, error) {
	wire.Build(
		provideExpiryScanInterval,

		provideOrderRepository,
		provideInventoryRepository,
		providePharmacyRepository,
		provideUserRepository,

		provideServiceOrder,
		provideServiceInventory,
		provideServicePharmacy,

		provideInventoryExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(PharmacistApplication), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceInventory), new(*inventoryService.Inventory)),
		wire.Bind(new(ServicePharmacy), new(*pharmacyService.Pharmacy)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.PharmacyRepository), new(*pharmacyRepo.Repository)),
		wire.Bind(new(inventoryService.Repository), new(*inventoryRepo.Repository)),
		wire.Bind(new(inventoryService.PharmacyRepository), new(*pharmacyRepo.Repository)),
		wire.Bind(new(pharmacyService.Repository), new(*pharmacyRepo.Repository)),
		wire.Bind(new(pharmacyService.UserRepository), new(*userRepo.Repository)),

		wire.Bind(new(inventory_expiry_metrics.Repository), new(*inventoryRepo.Repository)),
	)
	return &PharmacistApplication{}, nil
}

type DispatchWorkerApp struct {
	ServiceDispatch *dispatchService.Dispatch
}

// InitializeDispatchWorkerApp для Kafka воркера (cmd/worker-order-dispatch)
func InitializeDispatchWorkerApp(
	log logger.Logger,
	db *mongo.Database,
) (*DispatchWorkerApp, error) {
	wire.Build(
		provideDeliveryRepository,

		provideServiceDispatch,

		wire.Bind(new(dispatchService.DeliveryRepository), new(*deliveryRepo.Repository)),

		wire.Struct(new(DispatchWorkerApp), "*"),
	)
	return nil, nil
}

func provideDeliveryRepository(db *mongo.Database) *deliveryRepo.Repository {
	return deliveryRepo.New(db)
}

func provideOrderRepository(db *mongo.Database) *orderRepo.Repository {
	return orderRepo.New(db)
}

func provideInventoryRepository(db *mongo.Database) *inventoryRepo.Repository {
	return inventoryRepo.New(db)
}

func providePharmacyRepository(db *mongo.Database) *pharmacyRepo.Repository {
	return pharmacyRepo.New(db)
}

func provideUserRepository(db *mongo.Database) *userRepo.Repository {
	return userRepo.New(db)
}

func provideLocationRepository(db *mongo.Database) *locationRepo.Repository {
	return locationRepo.New(db)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	orderRepository deliveryService.OrderRepository,
	log logger.Logger,
) *deliveryService.Delivery {
	return deliveryService.New(repository, orderRepository, log)
}

func provideServiceDriver(
	userRepository driverService.UserRepository,
	deliveryRepository driverService.DeliveryRepository,
	locationRepository driverService.LocationRepository,
) *driverService.Driver {
	return driverService.New(userRepository, deliveryRepository, locationRepository)
}

func provideServiceOrder(
	repository orderService.Repository,
	pharmacyRepository orderService.PharmacyRepository,
) *orderService.Order {
	return orderService.New(repository, pharmacyRepository)
}

func provideServiceInventory(
	repository inventoryService.Repository,
	pharmacyRepository inventoryService.PharmacyRepository,
) *inventoryService.Inventory {
	return inventoryService.New(repository, pharmacyRepository)
}

func provideServicePharmacy(
	repository pharmacyService.Repository,
	userRepository pharmacyService.UserRepository,
) *pharmacyService.Pharmacy {
	return pharmacyService.New(repository, userRepository)
}

func provideServiceDispatch(
	deliveryRepository dispatchService.DeliveryRepository,
	log logger.Logger,
) *dispatchService.Dispatch {
	return dispatchService.New(deliveryRepository, log)
}

func provideExpiryScanInterval(cfg *config.Config) ExpiryScanInterval {
	return ExpiryScanInterval(cfg.Tasks.InventoryExpiryScanInterval)
}

func provideInventoryExpiryTask(
	log logger.Logger,
	repository inventory_expiry_metrics.Repository,
	interval ExpiryScanInterval,
) *inventory_expiry_metrics.InventoryExpiryMetrics {
	return inventory_expiry_metrics.New(log, repository, time.Duration(interval))
}

func provideTaskList(
	inventoryExpiryTask *inventory_expiry_metrics.InventoryExpiryMetrics,
) []background.Task {
	return []background.Task{
		inventoryExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
