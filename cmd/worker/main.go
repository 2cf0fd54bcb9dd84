package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/black-vein/oracle/backend/internal/queue"
	"github.com/black-vein/oracle/backend/internal/util"
	"github.com/black-vein/oracle/backend/pkg/logger"
	"github.com/black-vein/oracle/backend/pkg/logger/console"

	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"
)

const maxRetries = 10

func main() {
	util.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	pgConn, err := pgxpool.New(ctx, util.GetEnv("DATABASE_URL"))
	if err != nil {
		logger.Fatal("Unable to connect to database", "err", err)
	}
	defer pgConn.Close()

	conn := queue.Init()
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatal("Failed to open channel", "err", err)
	}
	defer ch.Close()

	queues := []string{queue.AuditQueue}
	if err := queue.SetupQueues(ch, queues); err != nil {
		logger.Fatal("Failed to set up queues", "err", err)
	}

	consumerCh, err := conn.Channel()
	if err != nil {
		logger.Fatal("Failed to open consumer channel", "err", err)
	}
	defer consumerCh.Close()

	// One message at a time across all queues.
	if err := consumerCh.Qos(1, 0, true); err != nil {
		logger.Fatal("Failed to set QoS", "err", err)
	}

	logger.Info("Listening for messages")

	type queuedMessage struct {
		msg       amqp.Delivery
		queueName string
	}

	messageChan := make(chan queuedMessage)

	g, gctx := errgroup.WithContext(ctx)
	for _, queueName := range queues {
		g.Go(func() error {
			msgs, err := consumerCh.Consume(
				queueName,
				queueName+"_consumer",
				false, // autoAck
				false, // exclusive
				false, // noLocal
				false, // noWait
				nil,   // args
			)
			if err != nil {
				logger.Error("Failed to start consuming", "queue", queueName, "err", err)
				return err
			}

			for {
				select {
				case <-gctx.Done():
					logger.Info("Stopping consumer", "queue", queueName)
					return nil
				case msg, ok := <-msgs:
					if !ok {
						logger.Info("Message channel closed", "queue", queueName)
						return nil
					}
					messageChan <- queuedMessage{msg: msg, queueName: queueName}
				}
			}
		})
	}

	go func() {
		for {
			select {
			case <-gctx.Done():
				logger.Info("Stopping message processor")
				return
			case qm := <-messageChan:
				logger.Debug("Received message", "queue", qm.queueName)

				var processingErr error
				switch qm.queueName {
				case queue.AuditQueue:
					processingErr = queue.ProcessAuditEvent(gctx, pgConn, qm.msg.Body)
				}

				if processingErr != nil {
					logger.Error("Error processing message", "queue", qm.queueName, "err", processingErr)
					handleProcessingError(consumerCh, qm.msg, qm.queueName)
				} else if err := qm.msg.Ack(false); err != nil {
					logger.Error("Failed to ack message", "err", err)
				}
			}
		}
	}()

	<-ctx.Done()
	if err := g.Wait(); err != nil {
		logger.Error("Consumer exited with error", "err", err)
	}
	logger.Info("Shutdown signal received, exiting...")
}

func handleProcessingError(ch *amqp.Channel, msg amqp.Delivery, queueName string) {
	retries := 0
	if val, ok := msg.Headers["x-retries"]; ok {
		if v, ok := val.(int32); ok {
			retries = int(v)
		}
	}

	if retries >= maxRetries {
		dlqName := queueName + "_dlq"
		logger.Info("Sending message to DLQ", "dlq", dlqName)
		pubErr := ch.Publish(
			"",
			dlqName,
			false,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        msg.Body,
				Headers:     msg.Headers,
			},
		)
		if pubErr != nil {
			logger.Error("Failed to publish to DLQ", "dlq", dlqName, "err", pubErr)
			msg.Nack(false, true)
			return
		}
		msg.Ack(false)
		return
	}

	retryName := queueName + "_retry"
	headers := msg.Headers
	if headers == nil {
		headers = amqp.Table{}
	}
	headers["x-retries"] = int32(retries + 1)

	pubErr := ch.Publish(
		"",
		retryName,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        msg.Body,
			Headers:     headers,
		},
	)
	if pubErr != nil {
		logger.Error("Failed to publish to retry queue", "retry_queue", retryName, "err", pubErr)
		msg.Nack(false, true)
		return
	}
	msg.Ack(false)
}
