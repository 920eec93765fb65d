package main

import (
	"context"
	"medipass-service/internal/app/config"
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"medipass-service/internal/app/delivery/http/routers"
	"medipass-service/internal/app/drivers/database"
	"medipass-service/internal/app/drivers/logger"
	"medipass-service/internal/app/drivers/messaging"
	"medipass-service/internal/app/drivers/storage"
	"medipass-service/internal/app/services/core/appointments"
	"medipass-service/internal/app/services/core/auth"
	"medipass-service/internal/app/services/core/consultations"
	"medipass-service/internal/app/services/core/departments"
	"medipass-service/internal/app/services/core/doctors"
	"medipass-service/internal/app/services/core/hospitals"
	"medipass-service/internal/app/services/core/insurances"
	"medipass-service/internal/app/services/core/labtests"
	"medipass-service/internal/app/services/core/medications"
	"medipass-service/internal/app/services/core/notifications"
	"medipass-service/internal/app/services/core/nurses"
	"medipass-service/internal/app/services/core/payments"
	"medipass-service/internal/app/services/core/pharmacies"
	"medipass-service/internal/app/services/core/prescriptions"
	"medipass-service/internal/app/services/core/session"
	"medipass-service/internal/app/services/core/slots"
	"medipass-service/internal/app/services/core/users"
	"medipass-service/internal/app/services/shared/locker"
	"medipass-service/internal/app/services/shared/queue"
	"medipass-service/internal/app/services/shared/redis"
	sharedStorage "medipass-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("server starting", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error while shutting down dependencies: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)

	messageQueueService, err := queue.NewRabbitMQService(
		bootstrap.RabbitMQ,
		log,
		internalConfig.RabbitMQ.NotificationQueue,
	)
	if err != nil {
		logrus.Fatalf("Failed to initialize message queue: %v", err)
	}

	// Repositories
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	userRepository := users.NewUserMongoRepository(bootstrap.MongoClient, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, dbName)
	consultationRepository := consultations.NewConsultationMongoRepository(bootstrap.MongoClient, dbName)
	labTestTemplateRepository := labtests.NewLabTestTemplateMongoRepository(bootstrap.MongoClient, dbName)
	labTestRequestRepository := labtests.NewLabTestRequestMongoRepository(bootstrap.MongoClient, dbName)
	labTestResultRepository := labtests.NewLabTestResultMongoRepository(bootstrap.MongoClient, dbName)
	prescriptionRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoClient, dbName)
	paymentRepository := payments.NewPaymentMongoRepository(bootstrap.MongoClient, dbName)
	insuranceRepository := insurances.NewInsuranceMongoRepository(bootstrap.MongoClient, dbName)
	notificationRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoClient, dbName)
	hospitalRepository := hospitals.NewHospitalMongoRepository(bootstrap.MongoClient, dbName)
	hospitalDepartmentRepository := hospitals.NewHospitalDepartmentMongoRepository(bootstrap.MongoClient, dbName)
	departmentRepository := departments.NewDepartmentMongoRepository(bootstrap.MongoClient, dbName)
	pharmacyRepository := pharmacies.NewPharmacyMongoRepository(bootstrap.MongoClient, dbName)
	medicationRepository := medications.NewMedicationMongoRepository(bootstrap.MongoClient, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoClient, dbName)
	nurseRepository := nurses.NewNurseMongoRepository(bootstrap.MongoClient, dbName)

	// Notification pipeline
	notificationDispatcher := notifications.NewQueueNotificationDispatcher(messageQueueService, internalConfig, log)
	notificationWorker := notifications.NewNotificationWorker(messageQueueService, notificationRepository, internalConfig, log)
	go func() {
		if err := notificationWorker.Start(); err != nil {
			log.Error("notification worker stopped", zap.Error(err))
		}
	}()
	bootstrap.WorkerStop = func() {
		messageQueueService.Close()
	}

	// Usecases
	sessionService := session.NewSessionService(redisRepository, internalConfig)
	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, log)
	slotUsecase := slots.NewSlotUsecase(doctorRepository, appointmentRepository, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		doctorRepository,
		userRepository,
		insuranceRepository,
		paymentRepository,
		slotUsecase,
		lockService,
		notificationDispatcher,
		internalConfig,
		log,
	)
	consultationUsecase := consultations.NewConsultationUsecase(
		consultationRepository,
		appointmentRepository,
		doctorRepository,
		labTestTemplateRepository,
		labTestRequestRepository,
		paymentRepository,
		notificationDispatcher,
		log,
	)
	labTestUsecase := labtests.NewLabTestUsecase(
		labTestTemplateRepository,
		labTestRequestRepository,
		labTestResultRepository,
		userRepository,
		notificationDispatcher,
		log,
	)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(
		prescriptionRepository,
		appointmentRepository,
		consultationRepository,
		doctorRepository,
		pharmacyRepository,
		medicationRepository,
		userRepository,
		minioStorage,
		notificationDispatcher,
		internalConfig,
		log,
	)
	paymentUsecase := payments.NewPaymentUsecase(
		paymentRepository,
		appointmentRepository,
		labTestRequestRepository,
		prescriptionRepository,
		insuranceRepository,
		notificationDispatcher,
		log,
	)
	notificationUsecase := notifications.NewNotificationUsecase(notificationRepository, log)
	hospitalUsecase := hospitals.NewHospitalUsecase(hospitalRepository, departmentRepository, hospitalDepartmentRepository, log)
	departmentUsecase := departments.NewDepartmentUsecase(departmentRepository, log)
	pharmacyUsecase := pharmacies.NewPharmacyUsecase(pharmacyRepository, hospitalRepository, log)
	medicationUsecase := medications.NewMedicationUsecase(medicationRepository, pharmacyRepository, log)
	insuranceUsecase := insurances.NewInsuranceUsecase(insuranceRepository, log)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, userRepository, hospitalRepository, hospitalDepartmentRepository, log)
	nurseUsecase := nurses.NewNurseUsecase(nurseRepository, userRepository, hospitalRepository, hospitalDepartmentRepository, log)

	// Controllers
	authController := controllers.NewAuthController(log, authUsecase)
	appointmentController := controllers.NewAppointmentController(log, appointmentUsecase, slotUsecase)
	consultationController := controllers.NewConsultationController(log, consultationUsecase)
	labTestController := controllers.NewLabTestController(log, labTestUsecase)
	prescriptionController := controllers.NewPrescriptionController(log, prescriptionUsecase)
	paymentController := controllers.NewPaymentController(log, paymentUsecase)
	notificationController := controllers.NewNotificationController(log, notificationUsecase)
	hospitalController := controllers.NewHospitalController(log, hospitalUsecase)
	departmentController := controllers.NewDepartmentController(log, departmentUsecase)
	pharmacyController := controllers.NewPharmacyController(log, pharmacyUsecase)
	medicationController := controllers.NewMedicationController(log, medicationUsecase)
	insuranceController := controllers.NewInsuranceController(log, insuranceUsecase)
	doctorController := controllers.NewDoctorController(log, doctorUsecase)
	nurseController := controllers.NewNurseController(log, nurseUsecase)

	// Middlewares and routes
	httpMiddlewares := middlewares.NewMiddlewares(log, sessionService, internalConfig)
	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		httpMiddlewares,
		authController,
		appointmentController,
		consultationController,
		labTestController,
		prescriptionController,
		paymentController,
		notificationController,
		hospitalController,
		departmentController,
		pharmacyController,
		medicationController,
		insuranceController,
		doctorController,
		nurseController,
	)
}
