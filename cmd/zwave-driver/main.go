package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.bug.st/serial"

	"github.com/librescoot/zwave-driver/pkg/redis"
	"github.com/librescoot/zwave-driver/pkg/store"
	"github.com/librescoot/zwave-driver/pkg/telemetry"
	"github.com/librescoot/zwave-driver/pkg/zwave"
)

// Configuration flags
var (
	serialDevice = flag.String("serial", "/dev/ttyACM0", "Serial device path for the Z-Wave controller dongle")
	baudRate     = flag.Int("baud", 115200, "Serial baud rate")
	readTimeout  = flag.Duration("read-timeout", 100*time.Millisecond, "Per-byte read timeout")
	retries      = flag.Int("retries", 10, "Byte-read retry budget before a frame read is abandoned")
	logLevel     = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	redisAddr    = flag.String("redis-addr", "localhost:6379", "Redis server address")
	redisPass    = flag.String("redis-pass", "", "Redis password")
	redisDB      = flag.Int("redis-db", 0, "Redis database number")
	noRedis      = flag.Bool("no-redis", false, "Disable the Redis node-inventory mirror")
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("Starting Z-Wave driver")
	log.Printf("Serial device: %s", *serialDevice)
	log.Printf("Baud rate: %d", *baudRate)

	logger := telemetry.New("zwave-driver", telemetry.ParseLevel(*logLevel))

	mode := &serial.Mode{
		BaudRate: *baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(*serialDevice, mode)
	if err != nil {
		log.Fatalf("Failed to open serial device %s: %v", *serialDevice, err)
	}
	defer port.Close()
	if err := port.SetReadTimeout(*readTimeout); err != nil {
		log.Fatalf("Failed to set read timeout: %v", err)
	}
	log.Printf("Connected to Z-Wave controller dongle")

	opts := []zwave.Option{
		zwave.WithReadTimeout(*readTimeout),
		zwave.WithRetries(*retries),
		zwave.WithLogger(logger),
	}

	if !*noRedis {
		redisClient, err := redis.New(*redisAddr, *redisPass, *redisDB)
		if err != nil {
			log.Printf("Warning: Redis unavailable, node-inventory mirror disabled: %v", err)
		} else {
			defer redisClient.Close()
			log.Printf("Connected to Redis at %s", *redisAddr)
			opts = append(opts, zwave.WithNodeCache(store.New(redisClient, logger)))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	controller, err := zwave.Open(ctx, port, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Z-Wave controller: %v", err)
	}

	nodes := controller.Nodes()
	log.Printf("Discovered %d node(s): %v", len(nodes), nodes)
	for _, id := range nodes {
		node, _ := controller.Node(id)
		log.Printf("  node %d: types=%v classes=%v", id, node.Types(), node.Classes())
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	log.Printf("Shutting down...")
}
