package main

import "time"

type Config struct {
	JWTSecret            string        `env:"JWT_SECRET,required=true"`
	BridgeSecret         string        `env:"BRIDGE_SECRET,required=true"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=8080"`
	NumberOfPartitions   int           `env:"NUMBER_OF_PARTITIONS,default=8"`
	NumberOfTaskWorkers  int           `env:"NUMBER_OF_TASK_WORKERS,default=4"`
	BufferSize           int           `env:"BUFFER_SIZE,default=1024"`
	TaskBufferSize       int           `env:"TASK_BUFFER_SIZE,default=1024"`
	TaskTimeout          time.Duration `env:"TASK_TIMEOUT,default=10s"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=1s"`
	MentionWindow        time.Duration `env:"MENTION_WINDOW,default=5m"`
	SuppressionStore     string        `env:"SUPPRESSION_STORE,default=memory"`
	MaxSnapshotUsers     int           `env:"MAX_SNAPSHOT_USERS,default=500"`
	MaxMessageBytes      int64         `env:"MAX_MESSAGE_BYTES,default=1048576"`
	PongWait             time.Duration `env:"PONG_WAIT,default=60s"`
	WriteTimeout         time.Duration `env:"WRITE_TIMEOUT,default=10s"`
	StatsInterval        time.Duration `env:"STATS_INTERVAL,default=1m"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}
