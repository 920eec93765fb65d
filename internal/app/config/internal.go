package config

type InternalConfig struct {
	App         App
	JWT         JWT
	Minio       AppMinio
	RabbitMQ    AppRabbitMQ
	Appointment AppAppointment
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	EndpointPrefix             string
	MaxRequests                int
	MaxTimeRequestsPerSeconds  int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	BucketName                    string
	PreSignedURLExpiryTimeInHours int
	SignatureMaxUploadSizeInMB    int
}

type AppRabbitMQ struct {
	NotificationQueue string
}

type AppAppointment struct {
	// LockExpirationInSeconds bounds the per-patient booking lock TTL.
	LockExpirationInSeconds int
}
